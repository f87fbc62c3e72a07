package timeoff

import "github.com/shiftease/shiftease-web/internal/domain/shift"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is a time-off request as stored by the API. Employee is
// populated with the requester on manager/admin listings.
type Request struct {
	ID        string             `json:"_id"`
	Employee  *shift.EmployeeRef `json:"employee_id,omitempty"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Reason    string             `json:"reason"`
	Status    Status             `json:"status"`
}
