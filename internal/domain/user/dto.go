package user

import "github.com/shiftease/shiftease-web/internal/pkg/validator"

type CreateEmployeeRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	JobTitle         string `json:"job_title"`
	Department       string `json:"department"`
	HourlyPayRate    string `json:"hourly_pay_rate"`
	EmploymentStatus string `json:"employment_status"`
	Role             string `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	}
	if r.HourlyPayRate != "" && !validator.IsValidPayRate(r.HourlyPayRate) {
		errs = append(errs, validator.ValidationError{Field: "hourly_pay_rate", Message: "pay rate must be a number with at most two decimal places"})
	}
	if !validator.IsInSlice(r.EmploymentStatus, []string{string(FullTime), string(PartTime)}) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "employment status must be Full-Time or Part-Time"})
	}
	if !validator.IsInSlice(r.Role, []string{"admin", "manager", "user"}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin, manager or user"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest is a full-record replacement, matching the inline
// edit form which always submits every column.
type UpdateEmployeeRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	JobTitle         string `json:"job_title"`
	Department       string `json:"department"`
	HourlyPayRate    string `json:"hourly_pay_rate"`
	EmploymentStatus string `json:"employment_status"`
	Role             string `json:"role"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	if r.HourlyPayRate != "" && !validator.IsValidPayRate(r.HourlyPayRate) {
		errs = append(errs, validator.ValidationError{Field: "hourly_pay_rate", Message: "pay rate must be a number with at most two decimal places"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AvailabilityRequest struct {
	ID        string `json:"_id,omitempty"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *AvailabilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Day, DaysOfWeek) {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "day must be a weekday name"})
	}
	if !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM"})
	}
	if !validator.IsValidTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
