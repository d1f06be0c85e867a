package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/i18n"
)

type menuItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type menuResponse struct {
	Role  string     `json:"role"`
	Menus []menuItem `json:"menus"`
}

// MenuHandler serves the role-dependent navigation entries. The mapping
// itself is static; only the labels vary with the negotiated locale.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// Menu returns the navigation entries for the authenticated user's role.
//
// @Summary      Role-based navigation menu
// @Tags         menu
// @Produce      json
// @Success      200  {object}  menuResponse
// @Failure      401  {object}  map[string]any
// @Router       /menu [get]
func (h *MenuHandler) Menu(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	locale := RequestLocale(c)
	entries := domain.MenuFor(role)
	menus := make([]menuItem, 0, len(entries))
	for _, e := range entries {
		menus = append(menus, menuItem{
			Name: i18n.Resolve(e.Label, locale),
			Path: e.Path,
		})
	}

	return c.JSON(http.StatusOK, menuResponse{
		Role:  string(role),
		Menus: menus,
	})
}
