package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
)

// UsersHandler exposes administrative user management. All routes sit behind
// the ADMIN role; mutations are audited.
type UsersHandler struct {
	users ports.UserRepository
	audit ports.AuditRecorder
}

func NewUsersHandler(users ports.UserRepository, audit ports.AuditRecorder) *UsersHandler {
	return &UsersHandler{users: users, audit: audit}
}

type updateUserRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Role  string `json:"role"  validate:"role"`
}

// List returns every user record, newest first. Password hashes never leave
// the domain type's JSON representation.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/users [get]
func (h *UsersHandler) List(c echo.Context) error {
	users, err := h.users.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Update changes a user's email and/or role.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id} [put]
func (h *UsersHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	target, err := h.users.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return err
	}

	if req.Email != "" {
		target.Email = req.Email
	}
	if req.Role != "" {
		role, _ := domain.ParseRole(req.Role) // validated above
		target.Role = role
	}

	if _, err := h.users.Update(ctx, target); err != nil {
		h.audit.LogError(ctx, target.ID, target.Username, domain.ActionUserUpdate, "User", target.ID, err.Error())
		return err
	}

	h.audit.LogSuccess(ctx, target.ID, target.Username, domain.ActionUserUpdate, "User", target.ID)
	return c.JSON(http.StatusOK, target)
}

// Deactivate soft-deletes a user; the record stays for the audit trail and
// the username remains reserved by the unique index.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [delete]
func (h *UsersHandler) Deactivate(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	affected, err := h.users.Deactivate(ctx, id)
	if err != nil {
		h.audit.LogError(ctx, id, "", domain.ActionUserDeactivate, "User", id, err.Error())
		return err
	}
	if affected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	h.audit.LogSuccess(ctx, id, "", domain.ActionUserDeactivate, "User", id)
	return c.NoContent(http.StatusNoContent)
}
