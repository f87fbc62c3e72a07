package restapi

import (
	"context"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/timeoff"
)

type TimeOffGateway struct {
	client *Client
}

func NewTimeOffGateway(client *Client) *TimeOffGateway {
	return &TimeOffGateway{client: client}
}

func (g *TimeOffGateway) ListAll(ctx context.Context) ([]timeoff.Request, error) {
	var requests []timeoff.Request
	if err := g.client.do(ctx, http.MethodGet, "/api/timeoff", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (g *TimeOffGateway) ListMine(ctx context.Context) ([]timeoff.Request, error) {
	var requests []timeoff.Request
	if err := g.client.do(ctx, http.MethodGet, "/api/timeoff/user", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (g *TimeOffGateway) Create(ctx context.Context, req timeoff.CreateRequest) error {
	return g.client.do(ctx, http.MethodPost, "/api/timeoff", req, nil)
}

func (g *TimeOffGateway) Decide(ctx context.Context, id string, req timeoff.DecisionRequest) error {
	err := g.client.do(ctx, http.MethodPut, "/api/timeoff/"+id, req, nil)
	if statusIs(err, http.StatusNotFound) {
		return timeoff.ErrNotFound
	}
	return err
}
