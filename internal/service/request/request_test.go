package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/swap"
	"github.com/shiftease/shiftease-web/internal/domain/timeoff"
	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

type fakeTimeOffGateway struct {
	all, mine   []timeoff.Request
	listedAll   bool
	listedMine  bool
	decidedID   string
	decidedWith timeoff.Status
}

func (f *fakeTimeOffGateway) ListAll(ctx context.Context) ([]timeoff.Request, error) {
	f.listedAll = true
	return f.all, nil
}

func (f *fakeTimeOffGateway) ListMine(ctx context.Context) ([]timeoff.Request, error) {
	f.listedMine = true
	return f.mine, nil
}

func (f *fakeTimeOffGateway) Create(ctx context.Context, req timeoff.CreateRequest) error {
	return nil
}

func (f *fakeTimeOffGateway) Decide(ctx context.Context, id string, req timeoff.DecisionRequest) error {
	f.decidedID = id
	f.decidedWith = req.Status
	return nil
}

type fakeSwapGateway struct {
	created  *swap.CreateRequest
	decision string
}

func (f *fakeSwapGateway) ListAll(ctx context.Context) ([]swap.Request, error)  { return nil, nil }
func (f *fakeSwapGateway) ListMine(ctx context.Context) ([]swap.Request, error) { return nil, nil }

func (f *fakeSwapGateway) Create(ctx context.Context, req swap.CreateRequest) error {
	f.created = &req
	return nil
}

func (f *fakeSwapGateway) Decide(ctx context.Context, id, decision string) error {
	f.decision = id + ":" + decision
	return nil
}

type fakeShiftGateway struct {
	shift.Gateway

	mine      []shift.Shift
	employees []user.Employee
}

func (f *fakeShiftGateway) MyShifts(ctx context.Context) ([]shift.Shift, error) {
	return f.mine, nil
}

func (f *fakeShiftGateway) AssignableEmployees(ctx context.Context) ([]user.Employee, error) {
	return f.employees, nil
}

func newService(to *fakeTimeOffGateway, sw *fakeSwapGateway, sh *fakeShiftGateway) *Service {
	if to == nil {
		to = &fakeTimeOffGateway{}
	}
	if sw == nil {
		sw = &fakeSwapGateway{}
	}
	if sh == nil {
		sh = &fakeShiftGateway{}
	}
	return NewService(to, sw, sh)
}

func TestTimeOffListScopedByRole(t *testing.T) {
	gw := &fakeTimeOffGateway{}
	s := newService(gw, nil, nil)

	_, err := s.TimeOffList(context.Background(), session.Session{Role: policy.RoleManager})
	require.NoError(t, err)
	assert.True(t, gw.listedAll)
	assert.False(t, gw.listedMine)

	gw.listedAll = false
	_, err = s.TimeOffList(context.Background(), session.Session{Role: policy.RoleUser})
	require.NoError(t, err)
	assert.True(t, gw.listedMine)
	assert.False(t, gw.listedAll)
}

func TestDecideTimeOffValidatesStatus(t *testing.T) {
	gw := &fakeTimeOffGateway{}
	s := newService(gw, nil, nil)

	err := s.DecideTimeOff(context.Background(), "r1", timeoff.StatusPending)
	require.Error(t, err)
	assert.Empty(t, gw.decidedID)

	require.NoError(t, s.DecideTimeOff(context.Background(), "r1", timeoff.StatusRejected))
	assert.Equal(t, "r1", gw.decidedID)
	assert.Equal(t, timeoff.StatusRejected, gw.decidedWith)
}

func TestSubmitSwapStampsRequester(t *testing.T) {
	gw := &fakeSwapGateway{}
	s := newService(nil, gw, nil)

	err := s.SubmitSwap(context.Background(), session.Session{UserID: "u7"}, swap.CreateRequest{
		RequestedBy:       "spoofed",
		RequestedByShift:  "s1",
		RequestedFor:      "u9",
		RequestedForShift: "s2",
		Reason:            "family event",
	})

	require.NoError(t, err)
	require.NotNil(t, gw.created)
	assert.Equal(t, "u7", gw.created.RequestedBy)
}

func TestSubmitSwapValidates(t *testing.T) {
	gw := &fakeSwapGateway{}
	s := newService(nil, gw, nil)

	err := s.SubmitSwap(context.Background(), session.Session{UserID: "u7"}, swap.CreateRequest{})

	require.Error(t, err)
	assert.Nil(t, gw.created)
}

func TestSwapFormDataExcludesSelf(t *testing.T) {
	sh := &fakeShiftGateway{
		mine: []shift.Shift{{ID: "s1"}},
		employees: []user.Employee{
			{MongoID: "u7", FirstName: "Me"},
			{MongoID: "u9", FirstName: "Them"},
		},
	}
	s := newService(nil, nil, sh)

	form, err := s.SwapFormData(context.Background(), session.Session{UserID: "u7"})

	require.NoError(t, err)
	assert.Len(t, form.MyShifts, 1)
	require.Len(t, form.Employees, 1)
	assert.Equal(t, "Them", form.Employees[0].FirstName)
}

func TestDecideSwapRejectsUnknownDecision(t *testing.T) {
	gw := &fakeSwapGateway{}
	s := newService(nil, gw, nil)

	err := s.DecideSwap(context.Background(), "sw1", "escalate")
	assert.ErrorIs(t, err, ErrUnknownDecision)
	assert.Empty(t, gw.decision)

	require.NoError(t, s.DecideSwap(context.Background(), "sw1", "approve"))
	assert.Equal(t, "sw1:approve", gw.decision)
}
