package models

type Course struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Subject          string   `json:"subject"`
	ClassLevel       int      `json:"class_level"` // 5-12
	ThumbnailURL     string   `json:"thumbnail_url,omitempty"`
	LearningOutcomes []string `json:"learning_outcomes"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type Instructor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	AvatarURL      string   `json:"avatar_url,omitempty"`
	Qualifications []string `json:"qualifications"`
}

type Batch struct {
	ID           string `json:"id"`
	CourseID     string `json:"course_id"`
	InstructorID string `json:"instructor_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	Currency     string `json:"currency"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Schedule     string `json:"schedule,omitempty"` // e.g. "Mon, Wed, Fri - 4:00 PM"
	IsLive       bool   `json:"is_live"`            // true = live batch, false = self-paced
	MaxStudents  int    `json:"max_students,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
