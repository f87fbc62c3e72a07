package request

import (
	"context"
	"errors"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/swap"
	"github.com/shiftease/shiftease-web/internal/domain/timeoff"
	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

var ErrUnknownDecision = errors.New("decision must be approve or reject")

// Service backs the time-off and shift-swap screens. Listing is scoped
// by the caller's capabilities: approvers see everything, requesters
// only their own submissions.
type Service struct {
	timeoff timeoff.Gateway
	swaps   swap.Gateway
	shifts  shift.Gateway
}

func NewService(timeoffGW timeoff.Gateway, swapGW swap.Gateway, shiftGW shift.Gateway) *Service {
	return &Service{timeoff: timeoffGW, swaps: swapGW, shifts: shiftGW}
}

func (s *Service) TimeOffList(ctx context.Context, sess session.Session) ([]timeoff.Request, error) {
	if sess.Can(policy.CapRequestApprove) {
		return s.timeoff.ListAll(ctx)
	}
	return s.timeoff.ListMine(ctx)
}

func (s *Service) SubmitTimeOff(ctx context.Context, req timeoff.CreateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.timeoff.Create(ctx, req)
}

func (s *Service) DecideTimeOff(ctx context.Context, id string, status timeoff.Status) error {
	req := timeoff.DecisionRequest{Status: status}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.timeoff.Decide(ctx, id, req)
}

func (s *Service) SwapList(ctx context.Context, sess session.Session) ([]swap.Request, error) {
	if sess.Can(policy.CapRequestApprove) {
		return s.swaps.ListAll(ctx)
	}
	return s.swaps.ListMine(ctx)
}

// SwapForm is everything the submission form needs: the requester's own
// shifts and the other employees to swap with.
type SwapForm struct {
	MyShifts  []shift.Shift
	Employees []user.Employee
}

func (s *Service) SwapFormData(ctx context.Context, sess session.Session) (SwapForm, error) {
	myShifts, err := s.shifts.MyShifts(ctx)
	if err != nil {
		return SwapForm{}, err
	}
	employees, err := s.shifts.AssignableEmployees(ctx)
	if err != nil {
		return SwapForm{}, err
	}

	// The requester never swaps with themselves.
	others := make([]user.Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.Key() != sess.UserID {
			others = append(others, emp)
		}
	}

	return SwapForm{MyShifts: myShifts, Employees: others}, nil
}

// EmployeeShifts loads the target employee's shifts for the dependent
// select in the swap form.
func (s *Service) EmployeeShifts(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	return s.shifts.UserShifts(ctx, employeeID)
}

// SubmitSwap stamps the requester from the session; the form never
// supplies it.
func (s *Service) SubmitSwap(ctx context.Context, sess session.Session, req swap.CreateRequest) error {
	req.RequestedBy = sess.UserID
	if err := req.Validate(); err != nil {
		return err
	}
	return s.swaps.Create(ctx, req)
}

func (s *Service) DecideSwap(ctx context.Context, id, decision string) error {
	if decision != "approve" && decision != "reject" {
		return ErrUnknownDecision
	}
	return s.swaps.Decide(ctx, id, decision)
}
