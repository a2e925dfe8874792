package models

import "gorm.io/gorm"

// Roles checked by middleware.RequireRole.
const (
	RoleAdmin    = "admin"
	RolePlanner  = "planner"
	RoleOperator = "operator"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:'operator'"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
