package models

// Role identifies a user's permission level.
type Role string

const (
	// RoleAdmin may perform every action.
	RoleAdmin Role = "Admin"
	// RoleEditor may view data and record stock movements.
	RoleEditor Role = "Editor"
	// RoleViewer may only view data.
	RoleViewer Role = "Viewer"
)
