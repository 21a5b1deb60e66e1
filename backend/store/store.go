package store

import (
	"sync"

	"vidyashiksha/backend/models"
)

// PendingEnrollment holds the batch a user tried to enroll in before being
// sent to login, so the flow can resume afterwards.
type PendingEnrollment struct {
	CourseID string `json:"course_id"`
	BatchID  string `json:"batch_id"`
}

// Store owns every collection. Reads take the shared lock and return copies;
// mutations replace whole collections under the exclusive lock. Nothing is
// persisted - a restart goes back to the seed data.
type Store struct {
	mu sync.RWMutex

	users         []models.User
	students      []models.StudentProfile
	instructors   []models.Instructor
	courses       []models.Course
	batches       []models.Batch
	classes       []models.Class
	classContents []models.ClassContent
	supplementary []models.SupplementaryContent
	liveClasses   []models.LiveClass
	activities    []models.Activity
	readings      []models.ReadingComprehension
	assessments   []models.Assessment
	questions     []models.Question
	enrollments   []models.Enrollment
	orders        []models.Order
	payments      []models.Payment

	pending map[string]PendingEnrollment // keyed by user ID
}

// New returns a store populated with the demo dataset.
func New() *Store {
	s := &Store{pending: make(map[string]PendingEnrollment)}
	s.seed()
	return s
}
