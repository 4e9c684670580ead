package model

import (
	"github.com/google/uuid"
)

// Role separates the single administrator account from employee accounts.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is an account record. Credentials are never part of the persisted
// record; they live only in the authentication seed list.
type User struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Username            string  `json:"username"`
	Role                Role    `json:"role"`
	JobPositionID       string  `json:"jobPositionId"`
	Email               *string `json:"email,omitempty"`
	WhatsappCountryCode *string `json:"whatsappCountryCode,omitempty"` // e.g. "+506"
	WhatsappNumber      *string `json:"whatsappNumber,omitempty"`
}

// NewID mints an opaque collection-unique identifier with a readable prefix,
// e.g. "task-1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
