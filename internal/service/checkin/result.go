package checkin

import (
	"time"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// statsDays is the length of the day-by-day window in Stats.
const statsDays = 7

// CreateResult is a stored check-in and the coaching message it triggered.
type CreateResult struct {
	CheckIn   *domain.CheckIn
	AIMessage string
}

// DayStatus tells whether a calendar day has a check-in.
type DayStatus struct {
	Date    time.Time
	Checked bool
}

// Stats summarizes check-in activity as of the user's today.
type Stats struct {
	TotalCheckIns   int
	ConsecutiveDays int
	TodayCheckIn    bool
	LastCheckInDate *time.Time
	// RecentCheckIns covers today and the six days before, newest first.
	RecentCheckIns []DayStatus
}
