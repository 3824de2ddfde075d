package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleChef     UserRole = "chef"
	RoleAdmin    UserRole = "admin"
)

// OnboardingStatus tracks the chef profile-completion step. Empty for
// non-chef accounts.
type OnboardingStatus string

const (
	OnboardingPending   OnboardingStatus = "pending"
	OnboardingCompleted OnboardingStatus = "completed"
)

// VettingStatus is the manual approval gate applied to chef accounts
// before they may sell. Empty for non-chef accounts and for chefs that
// have not finished onboarding yet.
type VettingStatus string

const (
	VettingPending  VettingStatus = "pending"
	VettingApproved VettingStatus = "approved"
	VettingRejected VettingStatus = "rejected"
)

type User struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	Name             string           `json:"name" gorm:"not null"`
	Email            string           `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string           `json:"-" gorm:"not null"`
	Phone            string           `json:"phone"`
	Role             UserRole         `json:"role" gorm:"not null;default:'customer'"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status,omitempty"`
	VettingStatus    VettingStatus    `json:"vetting_status,omitempty"`
	ChefProfileID    *uint            `json:"chef_profile_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
