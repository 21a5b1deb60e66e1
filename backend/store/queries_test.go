package store

import (
	"testing"

	"vidyashiksha/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestGetCourseWithBatches(t *testing.T) {
	s := New()

	for _, course := range s.GetAllCourses() {
		view, ok := s.GetCourseWithBatches(course.ID)
		assert.True(t, ok)
		assert.Equal(t, course.ID, view.ID)

		// every batch of the view belongs to the course and carries its
		// instructor
		for _, b := range view.Batches {
			assert.Equal(t, course.ID, b.CourseID)
			if assert.NotNil(t, b.Instructor) {
				assert.Equal(t, b.InstructorID, b.Instructor.ID)
			}
		}

		// and no batch of the course is missing from the view
		expected := 0
		for _, b := range s.GetAllBatches() {
			if b.CourseID == course.ID {
				expected++
			}
		}
		assert.Len(t, view.Batches, expected)
	}

	_, ok := s.GetCourseWithBatches("course-nope")
	assert.False(t, ok)
}

func TestGetBatchWithDetails(t *testing.T) {
	s := New()

	batch, ok := s.GetBatchWithDetails("batch-1a")
	assert.True(t, ok)
	assert.Equal(t, "batch-1a", batch.ID)
	assert.NotNil(t, batch.Instructor)
	assert.Equal(t, "inst-1", batch.Instructor.ID)
	assert.NotNil(t, batch.Course)
	assert.Equal(t, "course-1", batch.Course.ID)

	_, ok = s.GetBatchWithDetails("batch-nope")
	assert.False(t, ok)
}

func TestGetBatchWithDetailsDanglingCourse(t *testing.T) {
	s := New()

	// deleting a course also deletes its batches, so fake the dangling case
	// through an update pointing at a course that never existed
	s.UpdateBatch("batch-1a", models.Batch{CourseID: "course-ghost"})

	batch, ok := s.GetBatchWithDetails("batch-1a")
	assert.True(t, ok)
	assert.Nil(t, batch.Course)
	assert.NotNil(t, batch.Instructor)
}

func TestGetClassesForBatch(t *testing.T) {
	s := New()

	classes := s.GetClassesForBatch("batch-1a")
	assert.Len(t, classes, 5)
	for i, class := range classes {
		assert.Equal(t, "batch-1a", class.BatchID)
		assert.Equal(t, i+1, class.OrderNo)
	}

	assert.Empty(t, s.GetClassesForBatch("batch-2a"))
}

func TestGetClassWithContent(t *testing.T) {
	s := New()

	class, ok := s.GetClassWithContent("class-4")
	assert.True(t, ok)
	assert.Len(t, class.Content, 2)
	assert.Equal(t, 1, class.Content[0].OrderNo)
	assert.Equal(t, 2, class.Content[1].OrderNo)
	assert.Len(t, class.Supplementary, 1)
	assert.Len(t, class.Activities, 1)
	assert.Nil(t, class.LiveClass)

	live, ok := s.GetClassWithContent("class-1")
	assert.True(t, ok)
	assert.Empty(t, live.Content)
	assert.Len(t, live.Supplementary, 2)
	assert.Len(t, live.Activities, 2)
	if assert.NotNil(t, live.LiveClass) {
		assert.Equal(t, "zoom", live.LiveClass.Platform)
	}

	_, ok = s.GetClassWithContent("class-nope")
	assert.False(t, ok)
}

func TestQueryIdempotence(t *testing.T) {
	s := New()

	first, ok1 := s.GetCourseWithBatches("course-1")
	second, ok2 := s.GetCourseWithBatches("course-1")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)

	assert.Equal(t, s.GetClassesForBatch("batch-1a"), s.GetClassesForBatch("batch-1a"))
	assert.Equal(t, s.GetEnrollmentsWithDetails("user-1"), s.GetEnrollmentsWithDetails("user-1"))
}

func TestGetEnrollmentsWithDetails(t *testing.T) {
	s := New()

	enrollments := s.GetEnrollmentsWithDetails("user-1")
	assert.Len(t, enrollments, 2)
	for _, e := range enrollments {
		assert.Equal(t, "user-1", e.UserID)
		if assert.NotNil(t, e.Batch) {
			assert.Equal(t, e.BatchID, e.Batch.ID)
		}
		assert.NotNil(t, e.Course)
		assert.Nil(t, e.Student) // only the admin view joins students
	}

	all := s.GetAllEnrollmentsWithDetails()
	assert.Len(t, all, 4)
	for _, e := range all {
		if assert.NotNil(t, e.Student) {
			assert.Equal(t, e.UserID, e.Student.UserID)
		}
	}
}

func TestGetOrdersWithDetails(t *testing.T) {
	s := New()

	orders := s.GetOrdersWithDetails("user-1")
	assert.Len(t, orders, 2)
	for _, o := range orders {
		if assert.NotNil(t, o.Payment) {
			assert.Equal(t, o.ID, o.Payment.OrderID)
			assert.Equal(t, o.Amount, o.Payment.Amount)
		}
		assert.NotNil(t, o.Batch)
		assert.NotNil(t, o.Course)
	}

	all := s.GetAllOrdersWithDetails()
	assert.Len(t, all, 4)
	for _, o := range all {
		assert.NotNil(t, o.Student)
	}
}

func TestGetSubjects(t *testing.T) {
	s := New()

	subjects := s.GetSubjects()
	assert.ElementsMatch(t, []string{"Mathematics", "Science", "English", "Social Studies", "Hindi"}, subjects)
}

func TestGetClassLevels(t *testing.T) {
	s := New()

	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, s.GetClassLevels())
}

func TestGetCoursesForClass(t *testing.T) {
	s := New()

	courses := s.GetCoursesForClass(8)
	assert.Len(t, courses, 1)
	assert.Equal(t, "course-1", courses[0].ID)

	assert.Empty(t, s.GetCoursesForClass(11))
}

func TestGetReadingComprehension(t *testing.T) {
	s := New()

	rc, ok := s.GetReadingComprehension("activity-1-1")
	assert.True(t, ok)
	assert.Equal(t, 270, rc.WordCount)
	assert.Equal(t, 3, rc.EstimatedReadingTime)

	// activity-4-1 is a reading activity with no passage seeded
	_, ok = s.GetReadingComprehension("activity-4-1")
	assert.False(t, ok)
}

func TestGetAssessmentWithQuestions(t *testing.T) {
	s := New()

	view, ok := s.GetAssessmentWithQuestions("activity-1-2")
	assert.True(t, ok)
	assert.Equal(t, "assess-1", view.Assessment.ID)
	assert.Len(t, view.Questions, 4)
	for i, q := range view.Questions {
		assert.Equal(t, "assess-1", q.AssessmentID)
		assert.Equal(t, i+1, q.OrderNo)
	}

	// reading activities have no assessment
	_, ok = s.GetAssessmentWithQuestions("activity-1-1")
	assert.False(t, ok)
}

func TestGetBatchEnrollmentCount(t *testing.T) {
	s := New()

	assert.Equal(t, 2, s.GetBatchEnrollmentCount("batch-1a"))
	assert.Equal(t, 1, s.GetBatchEnrollmentCount("batch-2b"))
	assert.Equal(t, 0, s.GetBatchEnrollmentCount("batch-4a"))
}

func TestIsEnrolled(t *testing.T) {
	s := New()

	assert.True(t, s.IsEnrolled("user-1", "batch-1a"))
	assert.False(t, s.IsEnrolled("user-1", "batch-4a"))
	assert.False(t, s.IsEnrolled("user-5", "batch-1a"))
}

func TestGetUserByEmail(t *testing.T) {
	s := New()

	user, ok := s.GetUserByEmail("arjun@example.com")
	assert.True(t, ok)
	assert.Equal(t, "user-1", user.ID)

	admin, ok := s.GetUserByEmail("admin@vidyashiksha.com")
	assert.True(t, ok)
	assert.Equal(t, "admin", admin.Role)

	_, ok = s.GetUserByEmail("nobody@example.com")
	assert.False(t, ok)
}
