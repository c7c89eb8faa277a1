package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockmaster/models"
)

func TestAdminHasEveryPermission(t *testing.T) {
	for _, action := range []string{
		ActionViewProducts,
		ActionAddTransactions,
		ActionManageUsers,
		ActionManageSettings,
		"anything_else",
	} {
		assert.True(t, HasPermission(models.RoleAdmin, action), action)
	}
}

func TestEditorPermissions(t *testing.T) {
	assert.True(t, HasPermission(models.RoleEditor, ActionViewProducts))
	assert.True(t, HasPermission(models.RoleEditor, ActionViewCategories))
	assert.True(t, HasPermission(models.RoleEditor, ActionViewTransactions))
	assert.True(t, HasPermission(models.RoleEditor, ActionAddTransactions))

	assert.False(t, HasPermission(models.RoleEditor, ActionManageProducts))
	assert.False(t, HasPermission(models.RoleEditor, ActionManageUsers))
	assert.False(t, HasPermission(models.RoleEditor, ActionManageSettings))
}

func TestViewerPermissions(t *testing.T) {
	assert.True(t, HasPermission(models.RoleViewer, ActionViewProducts))
	assert.True(t, HasPermission(models.RoleViewer, ActionViewCategories))
	assert.True(t, HasPermission(models.RoleViewer, ActionViewTransactions))

	assert.False(t, HasPermission(models.RoleViewer, ActionAddTransactions))
	assert.False(t, HasPermission(models.RoleViewer, ActionManageProducts))
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	assert.False(t, HasPermission("", ActionViewProducts))
	assert.False(t, HasPermission("SuperUser", ActionViewProducts))
}

func TestSessionCan(t *testing.T) {
	s := Session{UserID: "u1", Role: models.RoleEditor}
	assert.True(t, s.Can(ActionAddTransactions))
	assert.False(t, s.Can(ActionManageUsers))
}
