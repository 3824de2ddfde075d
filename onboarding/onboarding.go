// Package onboarding decides which screen a user is allowed on, as a pure
// function of the persisted (role, onboardingStatus, vettingStatus) tuple.
// Redirect side effects live in the HTTP layer; this package only computes
// the destination, so the policy is testable on its own.
package onboarding

import (
	"github.com/blockchainsamuel0/calabarEats/models"
)

// Destination is the single allowed area for a given account state.
type Destination string

const (
	DestinationBrowse        Destination = "browse"
	DestinationProfileSetup  Destination = "profile-setup"
	DestinationVettingStatus Destination = "vetting-status"
	DestinationDashboard     Destination = "dashboard"
)

// Path maps a destination to the client route a caller should be sent to.
func (d Destination) Path() string {
	switch d {
	case DestinationProfileSetup:
		return "/chef-profile-setup"
	case DestinationVettingStatus:
		return "/vetting-status"
	case DestinationDashboard:
		return "/dashboard"
	default:
		return "/"
	}
}

// Resolve computes the allowed destination for an account state:
//
//	non-chef                      → browse (public/customer pages)
//	chef, onboarding pending      → profile setup only
//	chef, onboarded, not approved → vetting status only
//	chef, onboarded, approved     → dashboard
//
// A vetting status of rejected (or anything other than approved) keeps the
// chef on the vetting-status page.
func Resolve(role models.UserRole, onboarding models.OnboardingStatus, vetting models.VettingStatus) Destination {
	if role != models.RoleChef {
		return DestinationBrowse
	}
	if onboarding != models.OnboardingCompleted {
		return DestinationProfileSetup
	}
	if vetting != models.VettingApproved {
		return DestinationVettingStatus
	}
	return DestinationDashboard
}

// ResolveUser is a convenience wrapper over Resolve.
func ResolveUser(u *models.User) Destination {
	return Resolve(u.Role, u.OnboardingStatus, u.VettingStatus)
}
