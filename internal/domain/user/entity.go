package user

import "github.com/shopspring/decimal"

// Employee mirrors the scheduling API's user document. The API is not
// consistent about which identifier it populates, so both are kept and
// Key resolves the canonical one.
type Employee struct {
	MongoID          string              `json:"_id,omitempty"`
	ID               string              `json:"id,omitempty"`
	FirstName        string              `json:"first_name"`
	LastName         string              `json:"last_name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	JobTitle         string              `json:"job_title"`
	Department       string              `json:"department"`
	HourlyPayRate    decimal.Decimal     `json:"hourly_pay_rate"`
	EmploymentStatus EmploymentStatus    `json:"employment_status"`
	Role             string              `json:"role"`
	Availability     []AvailabilityEntry `json:"availability,omitempty"`
}

// Key returns the employee's canonical identifier, preferring the
// database id over the shorter alias.
func (e Employee) Key() string {
	if e.MongoID != "" {
		return e.MongoID
	}
	return e.ID
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmploymentStatus string

const (
	FullTime EmploymentStatus = "Full-Time"
	PartTime EmploymentStatus = "Part-Time"
)

// AvailabilityEntry is one recurring day-of-week window an employee can work.
type AvailabilityEntry struct {
	ID        string `json:"_id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DaysOfWeek is the display order for availability entries, regardless of
// the order the server stores them in.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
