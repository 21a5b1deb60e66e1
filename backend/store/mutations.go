package store

import "vidyashiksha/backend/models"

// Admin mutations. Each one swaps in a freshly built collection instead of
// editing records in place, so readers holding an earlier copy never see a
// half-applied change.

// AddCourse appends a fully-formed course. The caller supplies the ID.
func (s *Store) AddCourse(course models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append(s.courses, course)
}

// UpdateCourse replaces the matching course with a merged copy and stamps
// updated_at. Zero-valued fields in updates are left as they were. No-op if
// the ID is unknown.
func (s *Store) UpdateCourse(courseID string, updates models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Course, len(s.courses))
	for i, c := range s.courses {
		if c.ID == courseID {
			if updates.Title != "" {
				c.Title = updates.Title
			}
			if updates.Description != "" {
				c.Description = updates.Description
			}
			if updates.Subject != "" {
				c.Subject = updates.Subject
			}
			if updates.ClassLevel != 0 {
				c.ClassLevel = updates.ClassLevel
			}
			if updates.ThumbnailURL != "" {
				c.ThumbnailURL = updates.ThumbnailURL
			}
			if updates.LearningOutcomes != nil {
				c.LearningOutcomes = updates.LearningOutcomes
			}
			c.UpdatedAt = now()
		}
		next[i] = c
	}
	s.courses = next
}

// DeleteCourse removes a course and every batch that belongs to it. Classes,
// enrollments and orders under those batches are left behind; readers
// tolerate the dangling references.
func (s *Store) DeleteCourse(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := []models.Course{}
	for _, c := range s.courses {
		if c.ID != courseID {
			courses = append(courses, c)
		}
	}
	s.courses = courses

	batches := []models.Batch{}
	for _, b := range s.batches {
		if b.CourseID != courseID {
			batches = append(batches, b)
		}
	}
	s.batches = batches
}

// AddBatch appends a fully-formed batch. The caller supplies the ID.
func (s *Store) AddBatch(batch models.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
}

// UpdateBatch replaces the matching batch with a merged copy and stamps
// updated_at. No-op if the ID is unknown.
func (s *Store) UpdateBatch(batchID string, updates models.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Batch, len(s.batches))
	for i, b := range s.batches {
		if b.ID == batchID {
			if updates.CourseID != "" {
				b.CourseID = updates.CourseID
			}
			if updates.InstructorID != "" {
				b.InstructorID = updates.InstructorID
			}
			if updates.Title != "" {
				b.Title = updates.Title
			}
			if updates.Description != "" {
				b.Description = updates.Description
			}
			if updates.Price != 0 {
				b.Price = updates.Price
			}
			if updates.Currency != "" {
				b.Currency = updates.Currency
			}
			if updates.StartDate != "" {
				b.StartDate = updates.StartDate
			}
			if updates.EndDate != "" {
				b.EndDate = updates.EndDate
			}
			if updates.Schedule != "" {
				b.Schedule = updates.Schedule
			}
			if updates.MaxStudents != 0 {
				b.MaxStudents = updates.MaxStudents
			}
			b.UpdatedAt = now()
		}
		next[i] = b
	}
	s.batches = next
}

// DeleteBatch removes a single batch. Nothing else is touched.
func (s *Store) DeleteBatch(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches := []models.Batch{}
	for _, b := range s.batches {
		if b.ID != batchID {
			batches = append(batches, b)
		}
	}
	s.batches = batches
}

// EnrollStudent creates the order, payment and enrollment for a purchase in
// one step. Returns false without touching anything if the batch is unknown
// or the user is already enrolled.
func (s *Store) EnrollStudent(userID, batchID string) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.findBatch(batchID)
	if !ok {
		return models.Enrollment{}, false
	}
	if s.isEnrolled(userID, batchID) {
		return models.Enrollment{}, false
	}

	ts := now()

	order := models.Order{
		ID:        newID("order"),
		UserID:    userID,
		BatchID:   batchID,
		Amount:    batch.Price,
		Currency:  batch.Currency,
		Status:    "confirmed",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.orders = append(s.orders, order)

	payment := models.Payment{
		ID:            newID("payment"),
		OrderID:       order.ID,
		Amount:        batch.Price,
		Currency:      batch.Currency,
		Method:        "upi",
		Status:        "completed",
		TransactionID: newID("TXN"),
		PaidAt:        ts,
		CreatedAt:     ts,
	}
	s.payments = append(s.payments, payment)

	enrollment := models.Enrollment{
		ID:                 newID("enroll"),
		UserID:             userID,
		BatchID:            batchID,
		EnrolledAt:         ts,
		Status:             "active",
		ProgressPercentage: 0,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	s.enrollments = append(s.enrollments, enrollment)

	return enrollment, true
}

// AddUser registers a user with their student profile (signup).
func (s *Store) AddUser(user models.User, profile models.StudentProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.students = append(s.students, profile)
}

// SetPendingEnrollment remembers which batch a user wanted before logging in.
func (s *Store) SetPendingEnrollment(userID string, p PendingEnrollment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = p
}

// GetPendingEnrollment returns the remembered batch, if any.
func (s *Store) GetPendingEnrollment(userID string) (PendingEnrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[userID]
	return p, ok
}

// ClearPendingEnrollment drops the remembered batch.
func (s *Store) ClearPendingEnrollment(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userID)
}
