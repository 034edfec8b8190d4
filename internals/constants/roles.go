package constants

import "fmt"

// Terminal back-office roles. Each non-superadmin role maps to one
// operational page; superadmin passes every gate.
const (
	RoleSuperadmin = "superadmin"
	RoleParking    = "parking"
	RoleLostFound  = "lostfound"
	RoleTicket     = "ticket"
	RoleBus        = "bus"
	RoleLease      = "lease"
)

// Role error message templates
const (
	ErrOnlySuperadminCanAccess = "Only superadmin may access %s."
	ErrRoleCannotAccess        = "Your role is not allowed to access %s."
)

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

func RoleErrorFeature(feature string) string {
	return fmt.Sprintf(ErrRoleCannotAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleParking,
		RoleLostFound,
		RoleTicket,
		RoleBus,
		RoleLease,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}

	ParkingStaff = []string{
		RoleSuperadmin,
		RoleParking,
	}

	LostFoundStaff = []string{
		RoleSuperadmin,
		RoleLostFound,
	}

	TicketStaff = []string{
		RoleSuperadmin,
		RoleTicket,
	}

	BusStaff = []string{
		RoleSuperadmin,
		RoleBus,
	}

	LeaseStaff = []string{
		RoleSuperadmin,
		RoleLease,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
