package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

// DashboardHandler serves aggregate statistics over the user and audit
// stores. The audit trail is read-only here; writes stay on the recorder.
type DashboardHandler struct {
	users ports.UserRepository
	audit ports.AuditRepository
}

func NewDashboardHandler(users ports.UserRepository, audit ports.AuditRepository) *DashboardHandler {
	return &DashboardHandler{users: users, audit: audit}
}

type roleStats struct {
	Admin int64 `json:"ADMIN"`
	User  int64 `json:"USER"`
	Sales int64 `json:"SALES"`
}

type statsResponse struct {
	TotalUsers   int64      `json:"totalUsers"`
	ActiveUsers  int64      `json:"activeUsers"`
	TodayLogins  int64      `json:"todayLogins"`
	SystemStatus string     `json:"systemStatus"`
	RoleStats    *roleStats `json:"roleStats,omitempty"`
}

// Stats returns user totals and today's successful login count. The role
// breakdown is included for administrators only.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	total, err := h.users.Count(ctx)
	if err != nil {
		return err
	}

	active, err := h.users.CountActive(ctx)
	if err != nil {
		return err
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	todayLogins, err := h.audit.CountActionSince(ctx, domain.ActionUserLogin, domain.AuditSuccess, startOfDay)
	if err != nil {
		return err
	}

	resp := statsResponse{
		TotalUsers:   total,
		ActiveUsers:  active,
		TodayLogins:  todayLogins,
		SystemStatus: "online",
	}

	if role == domain.RoleAdmin {
		admins, err := h.users.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		users, err := h.users.CountByRole(ctx, domain.RoleUser)
		if err != nil {
			return err
		}
		sales, err := h.users.CountByRole(ctx, domain.RoleSales)
		if err != nil {
			return err
		}
		resp.RoleStats = &roleStats{Admin: admins, User: users, Sales: sales}
	}

	return c.JSON(http.StatusOK, resp)
}

// Activity returns recent audit entries. Administrators see everyone's
// activity with limit/offset paging; other roles see only their own.
//
// @Summary      Recent activity
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  domain.AuditLog
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	limit := queryInt(c, "limit", defaultActivityLimit)
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	offset := queryInt(c, "offset", 0)

	var entries []domain.AuditLog
	if role == domain.RoleAdmin {
		entries, err = h.audit.FindRecent(ctx, limit, offset)
	} else {
		entries, err = h.audit.FindByUsername(ctx, username)
		if err == nil {
			entries = page(entries, limit, offset)
		}
	}
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.AuditLog{}
	}

	return c.JSON(http.StatusOK, entries)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func page(entries []domain.AuditLog, limit, offset int) []domain.AuditLog {
	if offset >= len(entries) {
		return nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
