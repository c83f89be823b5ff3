package model

import (
	"time"

	"invigileye_backend/internals/constants"
)

// UserModel maps the users table. Password holds the seeded plaintext value or a bcrypt
// hash and is never serialized.
type UserModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:text;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	Role      string    `gorm:"column:role;type:text;not null" json:"role"`
	FullName  *string   `gorm:"column:full_name;type:text" json:"full_name"`
	Email     *string   `gorm:"column:email;type:text;index" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName pins the table name
func (UserModel) TableName() string {
	return "users"
}

func (u UserModel) IsAdmin() bool { return u.Role == constants.RoleAdmin }
