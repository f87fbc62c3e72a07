package schedule

import (
	"context"
	"time"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
)

type Service struct {
	shifts shift.Gateway
	now    func() time.Time
}

func NewService(shifts shift.Gateway) *Service {
	return &Service{shifts: shifts, now: time.Now}
}

// WeekView is one screen of the weekly calendar: seven day columns
// anchored at Anchor and one row per employee that has shifts.
type WeekView struct {
	Anchor   string
	Days     []string
	Rows     []WeekRow
	PrevWeek string
	NextWeek string
}

type WeekRow struct {
	Label string
	// Cells holds one "start - end" string per day column, empty when
	// the employee has no shift that day.
	Cells []string
}

// Week builds the weekly grid for the anchor date (today when empty).
// Row order follows the order employees first appear in the fetched
// shift set, not an alphabetical sort.
func (s *Service) Week(ctx context.Context, anchor string) (WeekView, error) {
	start := parseAnchor(anchor, s.now())

	view := WeekView{
		Anchor:   start.Format(dateLayout),
		Days:     make([]string, 7),
		PrevWeek: start.AddDate(0, 0, -7).Format(dateLayout),
		NextWeek: start.AddDate(0, 0, 7).Format(dateLayout),
	}
	for i := range view.Days {
		view.Days[i] = start.AddDate(0, 0, i).Format(dateLayout)
	}

	fetched, err := s.shifts.Week(ctx, view.Anchor)
	if err != nil {
		return WeekView{}, err
	}

	type group struct {
		label  string
		shifts []shift.Shift
	}
	var order []string
	grouped := map[string]*group{}
	for _, sh := range fetched {
		key := "Unknown"
		label := "Employee ID: Unknown"
		if sh.Employee != nil {
			if id := sh.Employee.Key(); id != "" {
				key = id
				label = "Employee ID: " + id
			}
			if sh.Employee.FirstName != "" || sh.Employee.LastName != "" {
				label = sh.Employee.FirstName + " " + sh.Employee.LastName
			}
		}
		g, ok := grouped[key]
		if !ok {
			g = &group{label: label}
			grouped[key] = g
			order = append(order, key)
		}
		g.shifts = append(g.shifts, sh)
	}

	for _, key := range order {
		g := grouped[key]
		row := WeekRow{Label: g.label, Cells: make([]string, 7)}
		for i, day := range view.Days {
			for _, sh := range g.shifts {
				if LocalDate(sh.Date) == day {
					row.Cells[i] = sh.StartTime + " - " + sh.EndTime
					break
				}
			}
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}
