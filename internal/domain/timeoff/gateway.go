package timeoff

import "context"

type Gateway interface {
	// ListAll returns every request, for approvers.
	ListAll(ctx context.Context) ([]Request, error)
	// ListMine returns only the authenticated user's requests.
	ListMine(ctx context.Context) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) error
	Decide(ctx context.Context, id string, req DecisionRequest) error
}
