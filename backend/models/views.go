package models

// Combined read views assembled by the store. Joined entities are pointers:
// a nil value means the referenced record no longer exists and the caller
// decides how to render the gap.

type CourseWithBatches struct {
	Course
	Batches []BatchWithInstructor `json:"batches"`
}

type BatchWithInstructor struct {
	Batch
	Instructor *Instructor `json:"instructor,omitempty"`
	Course     *Course     `json:"course,omitempty"`
}

type ClassWithContent struct {
	Class
	Content       []ClassContent         `json:"content"`
	Supplementary []SupplementaryContent `json:"supplementary"`
	Activities    []Activity             `json:"activities"`
	LiveClass     *LiveClass             `json:"live_class,omitempty"`
}

type EnrollmentWithDetails struct {
	Enrollment
	Batch   *BatchWithInstructor `json:"batch,omitempty"`
	Course  *Course              `json:"course,omitempty"`
	Student *StudentProfile      `json:"student,omitempty"`
}

type OrderWithDetails struct {
	Order
	Batch   *BatchWithInstructor `json:"batch,omitempty"`
	Course  *Course              `json:"course,omitempty"`
	Payment *Payment             `json:"payment,omitempty"`
	Student *StudentProfile      `json:"student,omitempty"`
}

type AssessmentWithQuestions struct {
	Assessment Assessment `json:"assessment"`
	Questions  []Question `json:"questions"`
}
