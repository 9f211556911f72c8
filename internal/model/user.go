package model

import "time"

// User roles. The hierarchy is not linear: admins manage users, editors
// manage content, viewers can only read.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// UserRoles lists the valid role values.
var UserRoles = []string{RoleAdmin, RoleEditor, RoleViewer}

// User is an admin-console account; table users.
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Role         string     `gorm:"type:varchar(20);not null;default:'viewer'"     json:"role"`
	IsActive     bool       `gorm:"not null;default:true"                          json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user can manage accounts.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsEditor reports whether the user can write content. Admins are editors.
func (u *User) IsEditor() bool { return u.Role == RoleAdmin || u.Role == RoleEditor }
