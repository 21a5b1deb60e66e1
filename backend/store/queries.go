package store

import (
	"sort"

	"vidyashiksha/backend/models"
)

// Unlocked lookups shared by the exported queries. Callers hold s.mu.

func (s *Store) findCourse(id string) (models.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (s *Store) findBatch(id string) (models.Batch, bool) {
	for _, b := range s.batches {
		if b.ID == id {
			return b, true
		}
	}
	return models.Batch{}, false
}

func (s *Store) findInstructor(id string) (models.Instructor, bool) {
	for _, i := range s.instructors {
		if i.ID == id {
			return i, true
		}
	}
	return models.Instructor{}, false
}

func (s *Store) findStudent(userID string) (models.StudentProfile, bool) {
	for _, st := range s.students {
		if st.UserID == userID {
			return st, true
		}
	}
	return models.StudentProfile{}, false
}

// batchWithInstructor joins the instructor and course onto a batch. Either
// side may be missing (a course can be deleted out from under its batches),
// in which case the pointer stays nil.
func (s *Store) batchWithInstructor(b models.Batch) models.BatchWithInstructor {
	view := models.BatchWithInstructor{Batch: b}
	if inst, ok := s.findInstructor(b.InstructorID); ok {
		view.Instructor = &inst
	}
	if course, ok := s.findCourse(b.CourseID); ok {
		view.Course = &course
	}
	return view
}

// GetAllCourses returns a copy of the course collection.
func (s *Store) GetAllCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Course, len(s.courses))
	copy(res, s.courses)
	return res
}

// GetCoursesForClass returns the courses taught at the given class level.
func (s *Store) GetCoursesForClass(classLevel int) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.Course{}
	for _, c := range s.courses {
		if c.ClassLevel == classLevel {
			res = append(res, c)
		}
	}
	return res
}

// GetSubjects returns the distinct subjects across all courses,
// in first-seen order.
func (s *Store) GetSubjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	res := []string{}
	for _, c := range s.courses {
		if !seen[c.Subject] {
			seen[c.Subject] = true
			res = append(res, c.Subject)
		}
	}
	return res
}

// GetClassLevels returns the distinct class levels across all courses,
// ascending.
func (s *Store) GetClassLevels() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]bool)
	res := []int{}
	for _, c := range s.courses {
		if !seen[c.ClassLevel] {
			seen[c.ClassLevel] = true
			res = append(res, c.ClassLevel)
		}
	}
	sort.Ints(res)
	return res
}

// GetCourseWithBatches returns a course together with its batches, each
// joined with its instructor.
func (s *Store) GetCourseWithBatches(courseID string) (models.CourseWithBatches, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.findCourse(courseID)
	if !ok {
		return models.CourseWithBatches{}, false
	}

	view := models.CourseWithBatches{Course: course, Batches: []models.BatchWithInstructor{}}
	for _, b := range s.batches {
		if b.CourseID == courseID {
			view.Batches = append(view.Batches, s.batchWithInstructor(b))
		}
	}
	return view, true
}

// GetBatchWithDetails returns a batch joined with its instructor and course.
func (s *Store) GetBatchWithDetails(batchID string) (models.BatchWithInstructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.findBatch(batchID)
	if !ok {
		return models.BatchWithInstructor{}, false
	}
	return s.batchWithInstructor(batch), true
}

// GetAllBatches returns a copy of the batch collection.
func (s *Store) GetAllBatches() []models.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Batch, len(s.batches))
	copy(res, s.batches)
	return res
}

// GetInstructors returns a copy of the instructor collection.
func (s *Store) GetInstructors() []models.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Instructor, len(s.instructors))
	copy(res, s.instructors)
	return res
}

// GetClassesForBatch returns the classes of a batch ordered by order_no.
func (s *Store) GetClassesForBatch(batchID string) []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.Class{}
	for _, c := range s.classes {
		if c.BatchID == batchID {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].OrderNo < res[j].OrderNo })
	return res
}

// GetClassWithContent returns a class joined with its recorded content,
// supplementary material and activities, each ordered by order_no, plus the
// live meeting details when one exists.
func (s *Store) GetClassWithContent(classID string) (models.ClassWithContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var class models.Class
	found := false
	for _, c := range s.classes {
		if c.ID == classID {
			class = c
			found = true
			break
		}
	}
	if !found {
		return models.ClassWithContent{}, false
	}

	view := models.ClassWithContent{
		Class:         class,
		Content:       []models.ClassContent{},
		Supplementary: []models.SupplementaryContent{},
		Activities:    []models.Activity{},
	}
	for _, cc := range s.classContents {
		if cc.ClassID == classID {
			view.Content = append(view.Content, cc)
		}
	}
	for _, sc := range s.supplementary {
		if sc.ClassID == classID {
			view.Supplementary = append(view.Supplementary, sc)
		}
	}
	for _, a := range s.activities {
		if a.ClassID == classID {
			view.Activities = append(view.Activities, a)
		}
	}
	sort.SliceStable(view.Content, func(i, j int) bool { return view.Content[i].OrderNo < view.Content[j].OrderNo })
	sort.SliceStable(view.Supplementary, func(i, j int) bool { return view.Supplementary[i].OrderNo < view.Supplementary[j].OrderNo })
	sort.SliceStable(view.Activities, func(i, j int) bool { return view.Activities[i].OrderNo < view.Activities[j].OrderNo })

	for _, lc := range s.liveClasses {
		if lc.ClassID == classID {
			live := lc
			view.LiveClass = &live
			break
		}
	}
	return view, true
}

func (s *Store) enrollmentDetails(e models.Enrollment, withStudent bool) models.EnrollmentWithDetails {
	view := models.EnrollmentWithDetails{Enrollment: e}
	if batch, ok := s.findBatch(e.BatchID); ok {
		joined := s.batchWithInstructor(batch)
		view.Batch = &joined
		view.Course = joined.Course
	}
	if withStudent {
		if st, ok := s.findStudent(e.UserID); ok {
			view.Student = &st
		}
	}
	return view
}

// GetEnrollmentsWithDetails returns a user's enrollments joined with batch,
// instructor and course.
func (s *Store) GetEnrollmentsWithDetails(userID string) []models.EnrollmentWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.EnrollmentWithDetails{}
	for _, e := range s.enrollments {
		if e.UserID == userID {
			res = append(res, s.enrollmentDetails(e, false))
		}
	}
	return res
}

// GetAllEnrollmentsWithDetails returns every enrollment, additionally joined
// with the student profile.
func (s *Store) GetAllEnrollmentsWithDetails() []models.EnrollmentWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.EnrollmentWithDetails{}
	for _, e := range s.enrollments {
		res = append(res, s.enrollmentDetails(e, true))
	}
	return res
}

func (s *Store) orderDetails(o models.Order, withStudent bool) models.OrderWithDetails {
	view := models.OrderWithDetails{Order: o}
	if batch, ok := s.findBatch(o.BatchID); ok {
		joined := s.batchWithInstructor(batch)
		view.Batch = &joined
		view.Course = joined.Course
	}
	for _, p := range s.payments {
		if p.OrderID == o.ID {
			payment := p
			view.Payment = &payment
			break
		}
	}
	if withStudent {
		if st, ok := s.findStudent(o.UserID); ok {
			view.Student = &st
		}
	}
	return view
}

// GetOrdersWithDetails returns a user's orders joined with batch, course and
// payment.
func (s *Store) GetOrdersWithDetails(userID string) []models.OrderWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.OrderWithDetails{}
	for _, o := range s.orders {
		if o.UserID == userID {
			res = append(res, s.orderDetails(o, false))
		}
	}
	return res
}

// GetAllOrdersWithDetails returns every order, additionally joined with the
// student profile.
func (s *Store) GetAllOrdersWithDetails() []models.OrderWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []models.OrderWithDetails{}
	for _, o := range s.orders {
		res = append(res, s.orderDetails(o, true))
	}
	return res
}

// GetReadingComprehension returns the reading passage attached to an activity.
func (s *Store) GetReadingComprehension(activityID string) (models.ReadingComprehension, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rc := range s.readings {
		if rc.ActivityID == activityID {
			return rc, true
		}
	}
	return models.ReadingComprehension{}, false
}

// GetAssessmentWithQuestions returns the assessment attached to an activity
// together with its questions ordered by order_no.
func (s *Store) GetAssessmentWithQuestions(activityID string) (models.AssessmentWithQuestions, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var assessment models.Assessment
	found := false
	for _, a := range s.assessments {
		if a.ActivityID == activityID {
			assessment = a
			found = true
			break
		}
	}
	if !found {
		return models.AssessmentWithQuestions{}, false
	}

	view := models.AssessmentWithQuestions{Assessment: assessment, Questions: []models.Question{}}
	for _, q := range s.questions {
		if q.AssessmentID == assessment.ID {
			view.Questions = append(view.Questions, q)
		}
	}
	sort.SliceStable(view.Questions, func(i, j int) bool { return view.Questions[i].OrderNo < view.Questions[j].OrderNo })
	return view, true
}

// GetAllStudents returns a copy of the student profiles.
func (s *Store) GetAllStudents() []models.StudentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.StudentProfile, len(s.students))
	copy(res, s.students)
	return res
}

// GetStudentByUserID returns the student profile linked to a user.
func (s *Store) GetStudentByUserID(userID string) (models.StudentProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findStudent(userID)
}

// GetUserByEmail looks a user up by email.
func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// GetUserByID looks a user up by ID.
func (s *Store) GetUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// GetBatchEnrollmentCount counts the enrollments referencing a batch.
func (s *Store) GetBatchEnrollmentCount(batchID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.enrollments {
		if e.BatchID == batchID {
			count++
		}
	}
	return count
}

// IsEnrolled reports whether the user already has an enrollment for the batch.
func (s *Store) IsEnrolled(userID, batchID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isEnrolled(userID, batchID)
}

func (s *Store) isEnrolled(userID, batchID string) bool {
	for _, e := range s.enrollments {
		if e.UserID == userID && e.BatchID == batchID {
			return true
		}
	}
	return false
}
