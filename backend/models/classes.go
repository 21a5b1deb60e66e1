package models

type Class struct {
	ID              string `json:"id"`
	BatchID         string `json:"batch_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	OrderNo         int    `json:"order_no"`
	DurationMinutes int    `json:"duration_minutes"`
	IsLive          bool   `json:"is_live"`                // true = live class, false = recorded
	ScheduledAt     string `json:"scheduled_at,omitempty"` // for live classes
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ClassContent struct {
	ID              string `json:"id"`
	ClassID         string `json:"class_id"`
	Type            string `json:"type"` // video, audio
	Title           string `json:"title"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	OrderNo         int    `json:"order_no"`
	CreatedAt       string `json:"created_at"`
}

type SupplementaryContent struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	Type        string `json:"type"` // pdf, link, reference
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	OrderNo     int    `json:"order_no"`
	CreatedAt   string `json:"created_at"`
}

type LiveClass struct {
	ID              string `json:"id"`
	ClassID         string `json:"class_id"`
	MeetingURL      string `json:"meeting_url"`
	MeetingID       string `json:"meeting_id"`
	MeetingPassword string `json:"meeting_password,omitempty"`
	Platform        string `json:"platform"` // zoom, google_meet, teams
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	CreatedAt       string `json:"created_at"`
}
