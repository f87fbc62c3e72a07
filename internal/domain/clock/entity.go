package clock

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusClockedIn  Status = "Clocked In"
	StatusClockedOut Status = "Clocked Out"
)

// Record is one clock-in/clock-out pair. ClockOutTime is nil while the
// employee is still clocked in.
type Record struct {
	ID           string     `json:"_id"`
	Status       Status     `json:"status"`
	ClockInTime  *time.Time `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	TotalHours   float64    `json:"total_hours"`
}

// FormatTotalHours renders a duration worked, switching to minutes for
// sessions too short to show meaningfully as hours.
func FormatTotalHours(hours float64) string {
	if hours < 0.01 {
		return fmt.Sprintf("%.2f minutes", hours*60)
	}
	return fmt.Sprintf("%.2f hours", hours)
}
