package timeoff

import "github.com/shiftease/shiftease-web/internal/pkg/validator"

type CreateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must not be before start date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecisionRequest moves a pending request to Approved or Rejected.
type DecisionRequest struct {
	Status Status `json:"status"`
}

func (r *DecisionRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return validator.ValidationErrors{
			{Field: "status", Message: "status must be Approved or Rejected"},
		}
	}
	return nil
}
