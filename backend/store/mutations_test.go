package store

import (
	"testing"

	"vidyashiksha/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestAddCourse(t *testing.T) {
	s := New()

	s.AddCourse(models.Course{
		ID:         "course-7",
		Title:      "Sanskrit Basics",
		Subject:    "Sanskrit",
		ClassLevel: 6,
		CreatedAt:  "2025-01-01T00:00:00Z",
		UpdatedAt:  "2025-01-01T00:00:00Z",
	})

	assert.Len(t, s.GetAllCourses(), 7)
	course, ok := s.GetCourseWithBatches("course-7")
	assert.True(t, ok)
	assert.Equal(t, "Sanskrit Basics", course.Title)
	assert.Empty(t, course.Batches)
	assert.Contains(t, s.GetSubjects(), "Sanskrit")
}

func TestUpdateCourse(t *testing.T) {
	s := New()

	s.UpdateCourse("course-1", models.Course{Title: "Mathematics Foundation v2"})

	course, ok := s.GetCourseWithBatches("course-1")
	assert.True(t, ok)
	assert.Equal(t, "Mathematics Foundation v2", course.Title)
	// untouched fields keep their values
	assert.Equal(t, "Mathematics", course.Subject)
	assert.Equal(t, 8, course.ClassLevel)
	assert.Len(t, course.LearningOutcomes, 4)
	// updated_at is stamped
	assert.NotEqual(t, "2024-01-15T00:00:00Z", course.UpdatedAt)
}

func TestUpdateCourseUnknownID(t *testing.T) {
	s := New()

	before := s.GetAllCourses()
	s.UpdateCourse("course-nope", models.Course{Title: "Ghost"})
	assert.Equal(t, before, s.GetAllCourses())
}

func TestDeleteCourseCascadesToBatches(t *testing.T) {
	s := New()

	s.DeleteCourse("course-1")

	_, ok := s.GetCourseWithBatches("course-1")
	assert.False(t, ok)
	assert.Len(t, s.GetAllCourses(), 5)

	// both batches of course-1 are gone, everything else is untouched
	_, ok = s.GetBatchWithDetails("batch-1a")
	assert.False(t, ok)
	_, ok = s.GetBatchWithDetails("batch-1b")
	assert.False(t, ok)
	assert.Len(t, s.GetAllBatches(), 6)
	_, ok = s.GetBatchWithDetails("batch-2a")
	assert.True(t, ok)

	// the cascade stops at batches: classes and enrollments under the
	// deleted batches stay behind
	assert.Len(t, s.GetClassesForBatch("batch-1a"), 5)
	assert.Equal(t, 2, s.GetBatchEnrollmentCount("batch-1a"))
}

func TestAddBatch(t *testing.T) {
	s := New()

	s.AddBatch(models.Batch{
		ID:           "batch-6b",
		CourseID:     "course-6",
		InstructorID: "inst-3",
		Title:        "Hindi Live Batch",
		Price:        2999,
		Currency:     "INR",
		IsLive:       true,
	})

	course, ok := s.GetCourseWithBatches("course-6")
	assert.True(t, ok)
	assert.Len(t, course.Batches, 2)
}

func TestUpdateBatch(t *testing.T) {
	s := New()

	s.UpdateBatch("batch-1a", models.Batch{Price: 5999, Schedule: "Daily - 5:00 PM"})

	batch, ok := s.GetBatchWithDetails("batch-1a")
	assert.True(t, ok)
	assert.Equal(t, 5999, batch.Price)
	assert.Equal(t, "Daily - 5:00 PM", batch.Schedule)
	assert.Equal(t, "INR", batch.Currency)
	assert.Equal(t, "January Live Batch", batch.Title)
}

func TestDeleteBatch(t *testing.T) {
	s := New()

	s.DeleteBatch("batch-1b")

	_, ok := s.GetBatchWithDetails("batch-1b")
	assert.False(t, ok)

	// the course and its other batch survive
	course, ok := s.GetCourseWithBatches("course-1")
	assert.True(t, ok)
	assert.Len(t, course.Batches, 1)
	assert.Equal(t, "batch-1a", course.Batches[0].ID)
}

func TestEnrollStudent(t *testing.T) {
	s := New()

	enrollment, ok := s.EnrollStudent("user-4", "batch-6a")
	assert.True(t, ok)
	assert.Equal(t, "user-4", enrollment.UserID)
	assert.Equal(t, "batch-6a", enrollment.BatchID)
	assert.Equal(t, "active", enrollment.Status)
	assert.Equal(t, 0, enrollment.ProgressPercentage)

	enrollments := s.GetEnrollmentsWithDetails("user-4")
	assert.Len(t, enrollments, 1)

	// the order mirrors the batch price and currency, and the payment
	// references the order
	orders := s.GetOrdersWithDetails("user-4")
	assert.Len(t, orders, 1)
	assert.Equal(t, 1999, orders[0].Amount)
	assert.Equal(t, "INR", orders[0].Currency)
	assert.Equal(t, "confirmed", orders[0].Status)
	if assert.NotNil(t, orders[0].Payment) {
		assert.Equal(t, orders[0].ID, orders[0].Payment.OrderID)
		assert.Equal(t, "completed", orders[0].Payment.Status)
		assert.Equal(t, "upi", orders[0].Payment.Method)
		assert.NotEmpty(t, orders[0].Payment.TransactionID)
	}
}

func TestEnrollStudentDuplicate(t *testing.T) {
	s := New()

	// user-1 is already enrolled in batch-1a in the seed data
	_, ok := s.EnrollStudent("user-1", "batch-1a")
	assert.False(t, ok)

	count := 0
	for _, e := range s.GetEnrollmentsWithDetails("user-1") {
		if e.BatchID == "batch-1a" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, s.GetOrdersWithDetails("user-1"), 2)
}

func TestEnrollStudentUnknownBatch(t *testing.T) {
	s := New()

	_, ok := s.EnrollStudent("user-5", "batch-nope")
	assert.False(t, ok)
	assert.Empty(t, s.GetEnrollmentsWithDetails("user-5"))
	assert.Empty(t, s.GetOrdersWithDetails("user-5"))
}

func TestEnrollStudentIDsAreUnique(t *testing.T) {
	s := New()

	first, ok := s.EnrollStudent("user-4", "batch-5a")
	assert.True(t, ok)
	second, ok := s.EnrollStudent("user-5", "batch-5a")
	assert.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddUser(t *testing.T) {
	s := New()

	s.AddUser(
		models.User{ID: "user-x", Email: "new@example.com", Role: "student"},
		models.StudentProfile{ID: "student-x", UserID: "user-x", FirstName: "New", LastName: "Student"},
	)

	user, ok := s.GetUserByEmail("new@example.com")
	assert.True(t, ok)
	assert.Equal(t, "user-x", user.ID)
	profile, ok := s.GetStudentByUserID("user-x")
	assert.True(t, ok)
	assert.Equal(t, "student-x", profile.ID)
}

func TestPendingEnrollment(t *testing.T) {
	s := New()

	_, ok := s.GetPendingEnrollment("user-1")
	assert.False(t, ok)

	s.SetPendingEnrollment("user-1", PendingEnrollment{CourseID: "course-1", BatchID: "batch-1a"})
	pending, ok := s.GetPendingEnrollment("user-1")
	assert.True(t, ok)
	assert.Equal(t, "batch-1a", pending.BatchID)

	s.ClearPendingEnrollment("user-1")
	_, ok = s.GetPendingEnrollment("user-1")
	assert.False(t, ok)
}
