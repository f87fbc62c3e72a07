package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
)

const monthLayout = "2006-01"

// MonthView backs the personal schedule screen: a month calendar with
// shift days highlighted, the shifts of the selected day and the next
// few upcoming shifts.
type MonthView struct {
	Month     string
	Title     string
	Weeks     [][]DayCell
	Selected  string
	DayShifts []shift.Shift
	Upcoming  []shift.Shift
	PrevMonth string
	NextMonth string
}

type DayCell struct {
	Date     string
	Day      int
	InMonth  bool
	HasShift bool
	Selected bool
}

// MySchedule fetches the user's own shifts once and derives the whole
// view from that single snapshot.
func (s *Service) MySchedule(ctx context.Context, month, selected string) (MonthView, error) {
	fetched, err := s.shifts.MyShifts(ctx)
	if err != nil {
		return MonthView{}, err
	}

	now := s.now()
	first := firstOfMonth(month, now)
	if selected == "" {
		selected = now.Format(dateLayout)
	}

	shiftDays := map[string]bool{}
	for _, sh := range fetched {
		shiftDays[LocalDate(sh.Date)] = true
	}

	view := MonthView{
		Month:     first.Format(monthLayout),
		Title:     first.Format("January 2006"),
		Selected:  selected,
		PrevMonth: first.AddDate(0, -1, 0).Format(monthLayout),
		NextMonth: first.AddDate(0, 1, 0).Format(monthLayout),
	}

	// Grid rows run Sunday..Saturday and pad out the neighbouring months.
	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	end := first.AddDate(0, 1, 0)
	for cursor.Before(end) || cursor.Weekday() != time.Sunday {
		if cursor.Weekday() == time.Sunday {
			view.Weeks = append(view.Weeks, make([]DayCell, 0, 7))
		}
		date := cursor.Format(dateLayout)
		row := len(view.Weeks) - 1
		view.Weeks[row] = append(view.Weeks[row], DayCell{
			Date:     date,
			Day:      cursor.Day(),
			InMonth:  cursor.Month() == first.Month(),
			HasShift: shiftDays[date],
			Selected: date == selected,
		})
		cursor = cursor.AddDate(0, 0, 1)
	}

	for _, sh := range fetched {
		if LocalDate(sh.Date) == selected {
			view.DayShifts = append(view.DayShifts, sh)
		}
	}

	view.Upcoming = UpcomingShifts(fetched, now)

	return view, nil
}

// UpcomingShifts returns at most five shifts on or after today's local
// date, ascending. The sort is stable so same-day shifts keep their
// fetched order.
func UpcomingShifts(shifts []shift.Shift, now time.Time) []shift.Shift {
	today := now.Format(dateLayout)

	var upcoming []shift.Shift
	for _, sh := range shifts {
		if LocalDate(sh.Date) >= today {
			upcoming = append(upcoming, sh)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return LocalDate(upcoming[i].Date) < LocalDate(upcoming[j].Date)
	})
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	return upcoming
}

func firstOfMonth(month string, now time.Time) time.Time {
	if t, err := time.ParseInLocation(monthLayout, month, time.Local); err == nil {
		return t
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
}
