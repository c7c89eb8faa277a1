// Package auth provides the permission evaluator and the session tokens the
// web layer uses to gate access to the stock engine.
package auth

import "github.com/stockmaster/models"

// Actions the permission evaluator recognizes. Admin is granted everything,
// including actions not listed here.
const (
	ActionViewProducts     = "view_products"
	ActionViewCategories   = "view_categories"
	ActionViewTransactions = "view_transactions"
	ActionAddTransactions  = "add_transactions"
	ActionManageProducts   = "manage_products"
	ActionManageCategories = "manage_categories"
	ActionManageSuppliers  = "manage_suppliers"
	ActionManageUsers      = "manage_users"
	ActionManageSettings   = "manage_settings"
)

// editorActions and viewerActions enumerate the non-admin grants.
var (
	editorActions = []string{
		ActionViewProducts,
		ActionViewCategories,
		ActionViewTransactions,
		ActionAddTransactions,
	}
	viewerActions = []string{
		ActionViewProducts,
		ActionViewCategories,
		ActionViewTransactions,
	}
)

// HasPermission reports whether the role may perform the action. The
// evaluator is stateless: the acting user's role is always an explicit
// input. Unknown roles get no permissions at all.
func HasPermission(role models.Role, action string) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleEditor:
		return contains(editorActions, action)
	case models.RoleViewer:
		return contains(viewerActions, action)
	default:
		return false
	}
}

func contains(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
