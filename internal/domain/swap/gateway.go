package swap

import "context"

type Gateway interface {
	ListAll(ctx context.Context) ([]Request, error)
	ListMine(ctx context.Context) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) error
	// Decide hits PUT /api/swapshift/{id}/{decision} where decision is
	// "approve" or "reject".
	Decide(ctx context.Context, id, decision string) error
}
