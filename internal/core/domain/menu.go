package domain

// MenuEntry is one navigation item a role is authorized to see. Label is a
// message-catalog key; the HTTP layer localizes it before rendering.
type MenuEntry struct {
	Label string
	Path  string
}

// roleMenus is the static role → navigation mapping. Order is significant.
var roleMenus = map[Role][]MenuEntry{
	RoleAdmin: {
		{Label: "menu.user.management", Path: "/admin/users"},
		{Label: "menu.system.settings", Path: "/admin/settings"},
		{Label: "menu.sales.management", Path: "/sales"},
		{Label: "menu.reports", Path: "/reports"},
	},
	RoleSales: {
		{Label: "menu.sales.management", Path: "/sales"},
		{Label: "menu.customer.management", Path: "/customers"},
		{Label: "menu.reports", Path: "/reports"},
	},
	RoleUser: {
		{Label: "menu.profile", Path: "/profile"},
		{Label: "menu.settings", Path: "/settings"},
	},
}

// MenuFor returns the navigation entries authorized for role. Unknown roles
// fall back to the USER menu.
func MenuFor(role Role) []MenuEntry {
	if entries, ok := roleMenus[role]; ok {
		return entries
	}
	return roleMenus[RoleUser]
}
