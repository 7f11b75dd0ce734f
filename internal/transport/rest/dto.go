package rest

import (
	"time"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/checkin"
	"github.com/heartmarshall/habitcoach-backend/internal/service/reminder"
)

type userResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	ReminderTime string    `json:"reminder_time"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID.String(),
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		ReminderTime: u.ReminderTime,
		Timezone:     u.Timezone,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type goalResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	TargetCount int       `json:"target_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Description: g.Description,
		Frequency:   g.Frequency.String(),
		TargetCount: g.TargetCount,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toGoalResponses(goals []domain.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, toGoalResponse(&goals[i]))
	}
	return out
}

type checkInResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	GoalID      string    `json:"goal_id"`
	CheckInDate string    `json:"check_in_date"`
	Notes       string    `json:"notes"`
	MoodScore   *int      `json:"mood_score"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCheckInResponse(c *domain.CheckIn) checkInResponse {
	return checkInResponse{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		GoalID:      c.GoalID.String(),
		CheckInDate: domain.FormatDate(c.CheckInDate),
		Notes:       c.Notes,
		MoodScore:   c.MoodScore,
		CreatedAt:   c.CreatedAt,
	}
}

func toCheckInResponses(list []domain.CheckIn) []checkInResponse {
	out := make([]checkInResponse, 0, len(list))
	for i := range list {
		out = append(out, toCheckInResponse(&list[i]))
	}
	return out
}

type createCheckInResponse struct {
	CheckIn   checkInResponse `json:"checkin"`
	AIMessage string          `json:"ai_message"`
}

type dayStatusResponse struct {
	Date    string `json:"date"`
	Checked bool   `json:"checked"`
}

type statsResponse struct {
	TotalCheckIns   int                 `json:"total_checkins"`
	ConsecutiveDays int                 `json:"consecutive_days"`
	TodayCheckIn    bool                `json:"today_checkin"`
	LastCheckInDate *string             `json:"last_checkin_date"`
	RecentCheckIns  []dayStatusResponse `json:"recent_checkins"`
}

func toStatsResponse(s *checkin.Stats) statsResponse {
	days := make([]dayStatusResponse, 0, len(s.RecentCheckIns))
	for _, d := range s.RecentCheckIns {
		days = append(days, dayStatusResponse{Date: domain.FormatDate(d.Date), Checked: d.Checked})
	}
	return statsResponse{
		TotalCheckIns:   s.TotalCheckIns,
		ConsecutiveDays: s.ConsecutiveDays,
		TodayCheckIn:    s.TodayCheckIn,
		LastCheckInDate: formatDate(s.LastCheckInDate),
		RecentCheckIns:  days,
	}
}

type reminderResponse struct {
	AIMessage string       `json:"ai_message"`
	User      userResponse `json:"user"`
	Goal      goalResponse `json:"goal"`
}

func toReminderResponse(r *reminder.Reminder) reminderResponse {
	return reminderResponse{
		AIMessage: r.Message,
		User:      toUserResponse(r.User),
		Goal:      toGoalResponse(r.Goal),
	}
}

type batchItemResponse struct {
	GoalID     string `json:"goal_id"`
	Title      string `json:"title"`
	Checked    bool   `json:"checked"`
	AIReminder string `json:"ai_reminder"`
}

func toBatchResponses(items []reminder.BatchItem) []batchItemResponse {
	out := make([]batchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, batchItemResponse{
			GoalID:     it.GoalID.String(),
			Title:      it.Title,
			Checked:    it.Checked,
			AIReminder: it.Message,
		})
	}
	return out
}

type aiMessageResponse struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	GoalID           string         `json:"goal_id"`
	PromptTemplateID *string        `json:"prompt_template_id"`
	FilledPrompt     string         `json:"filled_prompt"`
	AIResponse       string         `json:"ai_response"`
	ContextData      map[string]any `json:"context_data"`
	Source           string         `json:"source"`
	CreatedAt        time.Time      `json:"created_at"`
}

func toAIMessageResponses(list []domain.AIMessage) []aiMessageResponse {
	out := make([]aiMessageResponse, 0, len(list))
	for _, m := range list {
		var tplID *string
		if m.PromptTemplateID != nil {
			s := m.PromptTemplateID.String()
			tplID = &s
		}
		out = append(out, aiMessageResponse{
			ID:               m.ID.String(),
			UserID:           m.UserID.String(),
			GoalID:           m.GoalID.String(),
			PromptTemplateID: tplID,
			FilledPrompt:     m.FilledPrompt,
			AIResponse:       m.AIResponse,
			ContextData:      m.ContextData,
			Source:           m.Source.String(),
			CreatedAt:        m.CreatedAt,
		})
	}
	return out
}

type templateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Variables   []string  `json:"variables"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTemplateResponse(t *domain.PromptTemplate) templateResponse {
	vars := t.Variables
	if vars == nil {
		vars = []string{}
	}
	return templateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Content:     t.Content,
		Variables:   vars,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type channelResponse struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	ChannelID      string    `json:"channel_id"`
	FromUser       string    `json:"from_user"`
	ToUser         string    `json:"to_user"`
	Message        string    `json:"message"`
	SentimentScore *float64  `json:"sentiment_score"`
	SentimentLabel *string   `json:"sentiment_label"`
	CreatedAt      time.Time `json:"created_at"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	var label *string
	if m.SentimentLabel != nil {
		s := m.SentimentLabel.String()
		label = &s
	}
	return messageResponse{
		ID:             m.ID.String(),
		ChannelID:      m.ChannelID.String(),
		FromUser:       m.FromUserID.String(),
		ToUser:         m.ToUserID.String(),
		Message:        m.Body,
		SentimentScore: m.SentimentScore,
		SentimentLabel: label,
		CreatedAt:      m.CreatedAt,
	}
}
