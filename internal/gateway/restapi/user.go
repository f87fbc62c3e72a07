package restapi

import (
	"context"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/user"
)

type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) List(ctx context.Context) ([]user.Employee, error) {
	var employees []user.Employee
	if err := g.client.do(ctx, http.MethodGet, "/api/users", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (g *UserGateway) Profile(ctx context.Context) (user.Employee, error) {
	var employee user.Employee
	err := g.client.do(ctx, http.MethodGet, "/api/users/profile", nil, &employee)
	if statusIs(err, http.StatusNotFound) {
		return user.Employee{}, user.ErrNotFound
	}
	return employee, err
}

func (g *UserGateway) Create(ctx context.Context, req user.CreateEmployeeRequest) error {
	err := g.client.do(ctx, http.MethodPost, "/api/users", req, nil)
	if statusIs(err, http.StatusConflict) {
		return user.ErrEmailTaken
	}
	return err
}

func (g *UserGateway) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest) error {
	err := g.client.do(ctx, http.MethodPut, "/api/users/"+id, req, nil)
	if statusIs(err, http.StatusNotFound) {
		return user.ErrNotFound
	}
	return err
}

func (g *UserGateway) Delete(ctx context.Context, id string) error {
	err := g.client.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
	if statusIs(err, http.StatusNotFound) {
		return user.ErrNotFound
	}
	return err
}

func (g *UserGateway) Availability(ctx context.Context, userID string) ([]user.AvailabilityEntry, error) {
	var entries []user.AvailabilityEntry
	if err := g.client.do(ctx, http.MethodGet, "/api/users/"+userID+"/availability", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *UserGateway) AddAvailability(ctx context.Context, userID string, req user.AvailabilityRequest) ([]user.AvailabilityEntry, error) {
	var entries []user.AvailabilityEntry
	if err := g.client.do(ctx, http.MethodPost, "/api/users/"+userID+"/availability", req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// availabilityEnvelope wraps mutation responses; the API returns the
// bare list on reads and creates but an envelope on updates and deletes.
type availabilityEnvelope struct {
	Availability []user.AvailabilityEntry `json:"availability"`
}

func (g *UserGateway) UpdateAvailability(ctx context.Context, userID, entryID string, req user.AvailabilityRequest) ([]user.AvailabilityEntry, error) {
	var envelope availabilityEnvelope
	err := g.client.do(ctx, http.MethodPut, "/api/users/"+userID+"/availability/"+entryID, req, &envelope)
	if statusIs(err, http.StatusNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return envelope.Availability, nil
}

func (g *UserGateway) DeleteAvailability(ctx context.Context, userID, entryID string) ([]user.AvailabilityEntry, error) {
	var envelope availabilityEnvelope
	err := g.client.do(ctx, http.MethodDelete, "/api/users/"+userID+"/availability/"+entryID, nil, &envelope)
	if statusIs(err, http.StatusNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return envelope.Availability, nil
}
