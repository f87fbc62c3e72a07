package clock

import "context"

type Gateway interface {
	// Records returns the authenticated user's clock history, newest first.
	Records(ctx context.Context) ([]Record, error)
	ClockIn(ctx context.Context) error
	ClockOut(ctx context.Context) error
}
