package swap

import (
	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/timeoff"
)

// Request is a shift-swap request. The API populates both employees and
// both shifts on reads; any of them may be nil if the referenced
// document was deleted.
type Request struct {
	ID                string             `json:"_id"`
	RequestedBy       *shift.EmployeeRef `json:"requested_by,omitempty"`
	RequestedByShift  *shift.Shift       `json:"requested_by_employee_shiftID,omitempty"`
	RequestedFor      *shift.EmployeeRef `json:"requested_for,omitempty"`
	RequestedForShift *shift.Shift       `json:"requested_for_employee_shiftID,omitempty"`
	Reason            string             `json:"reason"`
	Status            timeoff.Status     `json:"status"`
}
