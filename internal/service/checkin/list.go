package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
)

// ListCheckIns returns check-ins newest date first.
func (s *Service) ListCheckIns(ctx context.Context, input ListCheckInsInput) ([]domain.CheckIn, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.checkins.List(ctx, domain.CheckInFilter{
		UserID: input.UserID,
		GoalID: input.GoalID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	return list, nil
}

// Stats computes totals, the current streak and the last seven days.
// Days are calendar days in the user's timezone.
func (s *Service) Stats(ctx context.Context, input StatsInput) (*Stats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if input.GoalID != nil {
		if _, err := s.ownedGoal(ctx, u.ID, *input.GoalID); err != nil {
			return nil, fmt.Errorf("get goal: %w", err)
		}
	}

	exists := func(ctx context.Context, date time.Time) (bool, error) {
		if input.GoalID == nil {
			return s.checkins.ExistsAnyOnDate(ctx, u.ID, date)
		}
		return s.checkins.ExistsOnDate(ctx, u.ID, *input.GoalID, date)
	}

	filter := domain.CheckInFilter{UserID: u.ID, GoalID: input.GoalID}
	total, err := s.checkins.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count checkins: %w", err)
	}

	today := s.today(u)
	streak, err := coaching.CountStreak(ctx, today, exists)
	if err != nil {
		return nil, fmt.Errorf("count streak: %w", err)
	}

	stats := &Stats{
		TotalCheckIns:   total,
		ConsecutiveDays: streak,
		// A streak always starts today.
		TodayCheckIn:   streak > 0,
		RecentCheckIns: make([]DayStatus, 0, statsDays),
	}

	for i := range statsDays {
		date := today.AddDate(0, 0, -i)
		checked := i < streak
		if !checked {
			if checked, err = exists(ctx, date); err != nil {
				return nil, fmt.Errorf("check day %s: %w", domain.FormatDate(date), err)
			}
		}
		stats.RecentCheckIns = append(stats.RecentCheckIns, DayStatus{Date: date, Checked: checked})
	}

	if total > 0 {
		filter.Limit = 1
		latest, err := s.checkins.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("latest checkin: %w", err)
		}
		if len(latest) > 0 {
			stats.LastCheckInDate = &latest[0].CheckInDate
		}
	}

	return stats, nil
}
