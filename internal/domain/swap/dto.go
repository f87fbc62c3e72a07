package swap

import "github.com/shiftease/shiftease-web/internal/pkg/validator"

// CreateRequest is the swap submission payload. The shiftID suffix on
// the shift fields matches the API's schema.
type CreateRequest struct {
	RequestedBy       string `json:"requested_by"`
	RequestedByShift  string `json:"requested_by_employee_shiftID"`
	RequestedFor      string `json:"requested_for"`
	RequestedForShift string `json:"requested_for_employee_shiftID"`
	Reason            string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestedByShift) {
		errs = append(errs, validator.ValidationError{Field: "requested_by_employee_shiftID", Message: "select one of your shifts"})
	}
	if validator.IsEmpty(r.RequestedFor) {
		errs = append(errs, validator.ValidationError{Field: "requested_for", Message: "select an employee to swap with"})
	}
	if validator.IsEmpty(r.RequestedForShift) {
		errs = append(errs, validator.ValidationError{Field: "requested_for_employee_shiftID", Message: "select the employee's shift"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
