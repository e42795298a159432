package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RolePatient      Role = "patient"
	RoleHealthExpert Role = "health_expert"
	RoleAdmin        Role = "admin"
	RoleVisitor      Role = "visitor"
)

// User is the account record. The client caches it on the device after login.
type User struct {
	BaseModel
	Name       string `gorm:"size:100" json:"name"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"useremail"`
	Password   string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role       Role   `gorm:"size:20;default:'patient'" json:"role"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Merge copies the non-empty profile fields of patch onto u.
func (u *User) Merge(patch User) {
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Role != "" {
		u.Role = patch.Role
	}
	if patch.IsVerified {
		u.IsVerified = true
	}
}

// NeedsApproval reports whether accounts of this role start unverified.
func (r Role) NeedsApproval() bool {
	return r == RoleHealthExpert
}
