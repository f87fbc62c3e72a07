package restapi

import (
	"context"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/clock"
)

type ClockGateway struct {
	client *Client
}

func NewClockGateway(client *Client) *ClockGateway {
	return &ClockGateway{client: client}
}

func (g *ClockGateway) Records(ctx context.Context) ([]clock.Record, error) {
	var records []clock.Record
	if err := g.client.do(ctx, http.MethodGet, "/api/clock", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *ClockGateway) ClockIn(ctx context.Context) error {
	err := g.client.do(ctx, http.MethodPost, "/api/clock/in", struct{}{}, nil)
	if statusIs(err, http.StatusBadRequest) {
		return clock.ErrAlreadyClockedIn
	}
	return err
}

func (g *ClockGateway) ClockOut(ctx context.Context) error {
	err := g.client.do(ctx, http.MethodPost, "/api/clock/out", struct{}{}, nil)
	if statusIs(err, http.StatusBadRequest) {
		return clock.ErrNotClockedIn
	}
	return err
}
