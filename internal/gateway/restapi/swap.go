package restapi

import (
	"context"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/swap"
)

type SwapGateway struct {
	client *Client
}

func NewSwapGateway(client *Client) *SwapGateway {
	return &SwapGateway{client: client}
}

func (g *SwapGateway) ListAll(ctx context.Context) ([]swap.Request, error) {
	var requests []swap.Request
	if err := g.client.do(ctx, http.MethodGet, "/api/swapshift", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (g *SwapGateway) ListMine(ctx context.Context) ([]swap.Request, error) {
	var requests []swap.Request
	if err := g.client.do(ctx, http.MethodGet, "/api/swapshift/user", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (g *SwapGateway) Create(ctx context.Context, req swap.CreateRequest) error {
	return g.client.do(ctx, http.MethodPost, "/api/swapshift", req, nil)
}

func (g *SwapGateway) Decide(ctx context.Context, id, decision string) error {
	err := g.client.do(ctx, http.MethodPut, "/api/swapshift/"+id+"/"+decision, struct{}{}, nil)
	if statusIs(err, http.StatusNotFound) {
		return swap.ErrNotFound
	}
	return err
}
