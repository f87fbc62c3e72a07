package shift

// Shift is a single scheduled work block. Employee is populated by the
// API on reads and may be nil for unassigned shifts.
type Shift struct {
	ID        string       `json:"_id"`
	Date      string       `json:"date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Employee  *EmployeeRef `json:"employee_id,omitempty"`
}

// EmployeeRef is the populated assignee embedded in a shift document.
type EmployeeRef struct {
	ID        string `json:"id,omitempty"`
	MongoID   string `json:"_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (r EmployeeRef) Key() string {
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}
