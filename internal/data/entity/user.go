package entity

import (
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleDriver UserRole = "DRIVER"
	RoleUser   UserRole = "USER"
	RoleStaff  UserRole = "STAFF"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin, RoleDriver, RoleUser, RoleStaff:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	Base
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	FullName         string     `db:"full_name"`
	Role             UserRole   `db:"role"`
	Phone            *string    `db:"phone"`
	City             *string    `db:"city"`
	AvatarURL        *string    `db:"avatar_url"`
	ResetToken       *string    `db:"reset_token"`
	ResetTokenExpiry *time.Time `db:"reset_token_expiry"`
}
