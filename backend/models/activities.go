package models

type Activity struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	Type        string `json:"type"` // reading_comprehension, assessment
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderNo     int    `json:"order_no"`
	CreatedAt   string `json:"created_at"`
}

type ReadingComprehension struct {
	ID                   string `json:"id"`
	ActivityID           string `json:"activity_id"`
	Content              string `json:"content"` // markdown
	WordCount            int    `json:"word_count"`
	EstimatedReadingTime int    `json:"estimated_reading_time"` // minutes
	CreatedAt            string `json:"created_at"`
}

type Assessment struct {
	ID               string `json:"id"`
	ActivityID       string `json:"activity_id"`
	Title            string `json:"title"`
	Instructions     string `json:"instructions"`
	TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
	PassingScore     int    `json:"passing_score"`
	CreatedAt        string `json:"created_at"`
}

type Question struct {
	ID            string   `json:"id"`
	AssessmentID  string   `json:"assessment_id"`
	Type          string   `json:"type"` // multiple_choice, true_false, short_answer
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options,omitempty"` // for multiple choice
	CorrectAnswer string   `json:"correct_answer"`
	Points        int      `json:"points"`
	OrderNo       int      `json:"order_no"`
	CreatedAt     string   `json:"created_at"`
}
