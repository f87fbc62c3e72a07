package restapi

import (
	"context"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/user"
)

type ShiftGateway struct {
	client *Client
}

func NewShiftGateway(client *Client) *ShiftGateway {
	return &ShiftGateway{client: client}
}

func (g *ShiftGateway) Create(ctx context.Context, req shift.CreateShiftRequest) error {
	if req.EmployeeID == "" {
		// The API rejects an explicit empty assignee, so the field is
		// dropped entirely for unassigned shifts.
		payload := map[string]string{
			"date":       req.Date,
			"start_time": req.StartTime,
			"end_time":   req.EndTime,
		}
		return g.client.do(ctx, http.MethodPost, "/api/shifts", payload, nil)
	}
	return g.client.do(ctx, http.MethodPost, "/api/shifts", req, nil)
}

func (g *ShiftGateway) Week(ctx context.Context, date string) ([]shift.Shift, error) {
	var shifts []shift.Shift
	err := g.client.do(ctx, http.MethodGet, "/api/shifts/week/"+date, nil, &shifts)
	if statusIs(err, http.StatusForbidden) {
		return nil, shift.ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (g *ShiftGateway) MyShifts(ctx context.Context) ([]shift.Shift, error) {
	var shifts []shift.Shift
	if err := g.client.do(ctx, http.MethodGet, "/api/shifts/userShifts", nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (g *ShiftGateway) UserShifts(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	var shifts []shift.Shift
	if err := g.client.do(ctx, http.MethodGet, "/api/shifts/user/"+employeeID, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (g *ShiftGateway) AssignableEmployees(ctx context.Context) ([]user.Employee, error) {
	var employees []user.Employee
	if err := g.client.do(ctx, http.MethodGet, "/api/shifts/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
