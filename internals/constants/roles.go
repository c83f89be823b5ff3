package constants

import "fmt"

const (
	RoleAdmin       = "admin"
	RoleInvigilator = "invigilator"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only admins can access %s."
	ErrOnlyStaffCanAccess  = "Only admins or invigilators can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AdminOnly = []string{RoleAdmin}

	AllRoles = []string{
		RoleAdmin,
		RoleInvigilator,
	}
)
