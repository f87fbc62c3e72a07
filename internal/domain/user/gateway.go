package user

import "context"

// Gateway is the scheduling API's user resource, including the
// availability sub-resource.
type Gateway interface {
	List(ctx context.Context) ([]Employee, error)
	Profile(ctx context.Context) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) error
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	Availability(ctx context.Context, userID string) ([]AvailabilityEntry, error)
	AddAvailability(ctx context.Context, userID string, req AvailabilityRequest) ([]AvailabilityEntry, error)
	UpdateAvailability(ctx context.Context, userID, entryID string, req AvailabilityRequest) ([]AvailabilityEntry, error)
	DeleteAvailability(ctx context.Context, userID, entryID string) ([]AvailabilityEntry, error)
}
