package shift

import (
	"fmt"

	"github.com/shiftease/shiftease-web/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.StartTime, TimeOptions()) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be on a half hour"})
	}
	if !validator.IsInSlice(r.EndTime, TimeOptions()) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be on a half hour"})
	} else if validator.IsInSlice(r.StartTime, TimeOptions()) && r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be after start time"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimeOptions returns every half-hour mark of the day, the only values
// the shift form offers.
func TimeOptions() []string {
	options := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}
