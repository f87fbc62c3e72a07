package policy

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access to employee and shift management
	RoleManager Role = "manager" // Can view the weekly schedule and approve requests
	RoleUser    Role = "user"    // Regular employee
)

// ParseRole maps a backend role string onto a known Role. Unknown values
// come back as-is so capability checks simply fail closed.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleUser:
		return Role(s)
	}
	return Role(s)
}

type Capability string

const (
	// Employee Management
	CapEmployeeManage Capability = "employee.manage"

	// Shift Management
	CapShiftManage       Capability = "shift.manage"
	CapWeekScheduleView  Capability = "schedule.view_week"
	CapScheduleExport    Capability = "schedule.export"

	// Availability Management
	CapAvailabilityEditOthers Capability = "availability.edit_others"

	// Time-off / Swap Workflows
	CapRequestSubmit  Capability = "request.submit"
	CapRequestApprove Capability = "request.approve"
)

// RoleCapabilities maps roles to their capabilities
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapEmployeeManage,
		CapShiftManage,
		CapWeekScheduleView,
		CapScheduleExport,
		CapAvailabilityEditOthers,
		CapRequestApprove,
	},
	RoleManager: {
		CapShiftManage,
		CapWeekScheduleView,
		CapScheduleExport,
		CapAvailabilityEditOthers,
		CapRequestApprove,
	},
	RoleUser: {
		CapRequestSubmit,
	},
}

// Can checks if a role has a specific capability
func Can(role Role, capability Capability) bool {
	capabilities, exists := RoleCapabilities[role]
	if !exists {
		return false
	}

	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}

	return false
}

// CanApprove checks if the role can approve time-off and swap requests
func CanApprove(role Role) bool {
	return Can(role, CapRequestApprove)
}

// CanViewWeekSchedule checks if the role can see the weekly shift calendar
func CanViewWeekSchedule(role Role) bool {
	return Can(role, CapWeekScheduleView)
}
