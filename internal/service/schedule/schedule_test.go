package schedule

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/user"
)

type fakeShiftGateway struct {
	week      []shift.Shift
	weekErr   error
	mine      []shift.Shift
	gotAnchor string
}

func (f *fakeShiftGateway) Create(ctx context.Context, req shift.CreateShiftRequest) error {
	return nil
}

func (f *fakeShiftGateway) Week(ctx context.Context, date string) ([]shift.Shift, error) {
	f.gotAnchor = date
	return f.week, f.weekErr
}

func (f *fakeShiftGateway) MyShifts(ctx context.Context) ([]shift.Shift, error) {
	return f.mine, nil
}

func (f *fakeShiftGateway) UserShifts(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	return nil, nil
}

func (f *fakeShiftGateway) AssignableEmployees(ctx context.Context) ([]user.Employee, error) {
	return nil, nil
}

func fixedService(gw *fakeShiftGateway, now string) *Service {
	s := NewService(gw)
	s.now = func() time.Time {
		t, _ := time.ParseInLocation("2006-01-02", now, time.Local)
		return t
	}
	return s
}

func ref(id, first, last string) *shift.EmployeeRef {
	return &shift.EmployeeRef{ID: id, FirstName: first, LastName: last}
}

func TestWeekGroupsByEmployeeFirstSeen(t *testing.T) {
	gw := &fakeShiftGateway{week: []shift.Shift{
		{ID: "s1", Date: "2024-06-04", StartTime: "09:00", EndTime: "17:00", Employee: ref("2", "Sam", "Lee")},
		{ID: "s2", Date: "2024-06-03", StartTime: "08:00", EndTime: "12:00", Employee: ref("1", "Jane", "Doe")},
		{ID: "s3", Date: "2024-06-05", StartTime: "12:00", EndTime: "20:00", Employee: ref("2", "Sam", "Lee")},
	}}
	s := fixedService(gw, "2024-06-03")

	view, err := s.Week(context.Background(), "2024-06-03")

	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", gw.gotAnchor)
	assert.Equal(t, []string{
		"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06",
		"2024-06-07", "2024-06-08", "2024-06-09",
	}, view.Days)
	assert.Equal(t, "2024-05-27", view.PrevWeek)
	assert.Equal(t, "2024-06-10", view.NextWeek)

	// Row order follows first appearance in the fetched set, not names.
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "Sam Lee", view.Rows[0].Label)
	assert.Equal(t, "Jane Doe", view.Rows[1].Label)

	assert.Equal(t, "09:00 - 17:00", view.Rows[0].Cells[1])
	assert.Equal(t, "12:00 - 20:00", view.Rows[0].Cells[2])
	assert.Equal(t, "08:00 - 12:00", view.Rows[1].Cells[0])
	assert.Empty(t, view.Rows[1].Cells[1])
}

func TestWeekUnassignedShiftGetsFallbackLabel(t *testing.T) {
	gw := &fakeShiftGateway{week: []shift.Shift{
		{ID: "s1", Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00"},
	}}
	s := fixedService(gw, "2024-06-03")

	view, err := s.Week(context.Background(), "2024-06-03")

	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Employee ID: Unknown", view.Rows[0].Label)
}

func TestWeekErrorIsPassedThrough(t *testing.T) {
	gw := &fakeShiftGateway{weekErr: shift.ErrAccessDenied}
	s := fixedService(gw, "2024-06-03")

	_, err := s.Week(context.Background(), "2024-06-03")

	assert.ErrorIs(t, err, shift.ErrAccessDenied)
}

func TestWeekDefaultsAnchorToToday(t *testing.T) {
	gw := &fakeShiftGateway{}
	s := fixedService(gw, "2024-06-14")

	view, err := s.Week(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2024-06-14", view.Anchor)
	assert.Equal(t, "2024-06-14", gw.gotAnchor)
	assert.Empty(t, view.Rows)
}

func TestUpcomingShiftsFilterSortCap(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02", "2024-06-10", time.Local)
	shifts := []shift.Shift{
		{ID: "past", Date: "2024-06-09"},
		{ID: "today-b", Date: "2024-06-10", StartTime: "14:00"},
		{ID: "today-a", Date: "2024-06-10", StartTime: "08:00"},
		{ID: "later", Date: "2024-06-20"},
		{ID: "soon", Date: "2024-06-12"},
		{ID: "far-1", Date: "2024-07-01"},
		{ID: "far-2", Date: "2024-07-02"},
	}

	upcoming := UpcomingShifts(shifts, now)

	require.Len(t, upcoming, 5)
	// Today's shifts count as upcoming; same-day order stays as fetched.
	assert.Equal(t, "today-b", upcoming[0].ID)
	assert.Equal(t, "today-a", upcoming[1].ID)
	assert.Equal(t, "soon", upcoming[2].ID)
	assert.Equal(t, "later", upcoming[3].ID)
	assert.Equal(t, "far-1", upcoming[4].ID)
}

func TestLocalDateNormalizesTimestamps(t *testing.T) {
	assert.Equal(t, "2024-06-03", LocalDate("2024-06-03"))

	// Timestamps reduce to the calendar date of the instant in local
	// time, not to the raw UTC prefix.
	instant := "2024-06-03T23:30:00Z"
	parsed, err := time.Parse(time.RFC3339, instant)
	require.NoError(t, err)
	assert.Equal(t, parsed.Local().Format("2006-01-02"), LocalDate(instant))
}

func TestMyScheduleBuildsMonthGrid(t *testing.T) {
	gw := &fakeShiftGateway{mine: []shift.Shift{
		{ID: "s1", Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00"},
		{ID: "s2", Date: "2024-06-03", StartTime: "18:00", EndTime: "22:00"},
		{ID: "s3", Date: "2024-06-21", StartTime: "09:00", EndTime: "17:00"},
	}}
	s := fixedService(gw, "2024-06-01")

	view, err := s.MySchedule(context.Background(), "2024-06", "2024-06-03")

	require.NoError(t, err)
	assert.Equal(t, "2024-06", view.Month)
	assert.Equal(t, "June 2024", view.Title)
	assert.Equal(t, "2024-05", view.PrevMonth)
	assert.Equal(t, "2024-07", view.NextMonth)

	// June 2024 starts on a Saturday and spans six Sunday-anchored rows.
	require.Len(t, view.Weeks, 6)
	for _, week := range view.Weeks {
		assert.Len(t, week, 7)
	}
	assert.Equal(t, "2024-05-26", view.Weeks[0][0].Date)
	assert.False(t, view.Weeks[0][0].InMonth)
	assert.Equal(t, "2024-06-01", view.Weeks[0][6].Date)
	assert.True(t, view.Weeks[0][6].InMonth)

	var highlighted []string
	for _, week := range view.Weeks {
		for _, cell := range week {
			if cell.HasShift {
				highlighted = append(highlighted, cell.Date)
			}
		}
	}
	assert.Equal(t, []string{"2024-06-03", "2024-06-21"}, highlighted)

	require.Len(t, view.DayShifts, 2)
	assert.Equal(t, "s1", view.DayShifts[0].ID)
	assert.Equal(t, "s2", view.DayShifts[1].ID)
}

func TestMyScheduleDefaultsToCurrentMonthAndToday(t *testing.T) {
	gw := &fakeShiftGateway{}
	s := fixedService(gw, "2024-06-14")

	view, err := s.MySchedule(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-06", view.Month)
	assert.Equal(t, "2024-06-14", view.Selected)
}

func TestExportWeekWritesGrid(t *testing.T) {
	gw := &fakeShiftGateway{week: []shift.Shift{
		{ID: "s1", Date: "2024-06-03", StartTime: "09:00", EndTime: "17:00", Employee: ref("1", "Jane", "Doe")},
	}}
	s := fixedService(gw, "2024-06-03")

	var buf bytes.Buffer
	name, err := s.ExportWeek(context.Background(), &buf, "2024-06-03")

	require.NoError(t, err)
	assert.Equal(t, "schedule-week-2024-06-03.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Schedule", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	label, err := f.GetCellValue("Schedule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", label)

	cell, err := f.GetCellValue("Schedule", "B2")
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 17:00", cell)
}
