package shift

import (
	"context"

	"github.com/shiftease/shiftease-web/internal/domain/user"
)

type Gateway interface {
	Create(ctx context.Context, req CreateShiftRequest) error
	// Week returns every shift in the week containing date (YYYY-MM-DD).
	Week(ctx context.Context, date string) ([]Shift, error)
	// MyShifts returns the authenticated user's own shifts.
	MyShifts(ctx context.Context) ([]Shift, error)
	// UserShifts returns another employee's shifts, used when building a
	// swap request.
	UserShifts(ctx context.Context, employeeID string) ([]Shift, error)
	// AssignableEmployees lists employees a shift can be assigned to.
	AssignableEmployees(ctx context.Context) ([]user.Employee, error)
}
