package controllers

import (
	"time"

	"vidyashiksha/backend/config"
	"vidyashiksha/backend/models"
	"vidyashiksha/backend/store"
	"vidyashiksha/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAdminController(st *store.Store, cfg *config.Config) *AdminController {
	return &AdminController{Store: st, Cfg: cfg}
}

func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	type CourseInput struct {
		Title            string   `json:"title" validate:"required"`
		Description      string   `json:"description"`
		Subject          string   `json:"subject" validate:"required"`
		ClassLevel       int      `json:"class_level" validate:"required,gte=5,lte=12"`
		ThumbnailURL     string   `json:"thumbnail_url"`
		LearningOutcomes []string `json:"learning_outcomes"`
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	course := models.Course{
		ID:               "course-" + uuid.NewString(),
		Title:            input.Title,
		Description:      input.Description,
		Subject:          input.Subject,
		ClassLevel:       input.ClassLevel,
		ThumbnailURL:     input.ThumbnailURL,
		LearningOutcomes: input.LearningOutcomes,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	ac.Store.AddCourse(course)

	return utils.Created(c, course)
}

func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	if _, ok := ac.Store.GetCourseWithBatches(courseID); !ok {
		return utils.NotFound(c, "Course not found")
	}

	var updates models.Course
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if updates.ClassLevel != 0 && (updates.ClassLevel < 5 || updates.ClassLevel > 12) {
		return utils.ValidationError(c, map[string]string{"class_level": "class_level must be between 5 and 12"})
	}

	ac.Store.UpdateCourse(courseID, updates)

	course, _ := ac.Store.GetCourseWithBatches(courseID)
	return utils.Success(c, fiber.StatusOK, course.Course)
}

func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	if _, ok := ac.Store.GetCourseWithBatches(courseID); !ok {
		return utils.NotFound(c, "Course not found")
	}

	ac.Store.DeleteCourse(courseID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (ac *AdminController) CreateBatch(c *fiber.Ctx) error {
	type BatchInput struct {
		CourseID     string `json:"course_id" validate:"required"`
		InstructorID string `json:"instructor_id" validate:"required"`
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description"`
		Price        int    `json:"price" validate:"gte=0"`
		Currency     string `json:"currency" validate:"required"`
		StartDate    string `json:"start_date"`
		EndDate      string `json:"end_date"`
		Schedule     string `json:"schedule"`
		IsLive       bool   `json:"is_live"`
		MaxStudents  int    `json:"max_students"`
	}

	var input BatchInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if _, ok := ac.Store.GetCourseWithBatches(input.CourseID); !ok {
		return utils.NotFound(c, "Course not found")
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	batch := models.Batch{
		ID:           "batch-" + uuid.NewString(),
		CourseID:     input.CourseID,
		InstructorID: input.InstructorID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Currency:     input.Currency,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Schedule:     input.Schedule,
		IsLive:       input.IsLive,
		MaxStudents:  input.MaxStudents,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	ac.Store.AddBatch(batch)

	return utils.Created(c, batch)
}

func (ac *AdminController) UpdateBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")

	if _, ok := ac.Store.GetBatchWithDetails(batchID); !ok {
		return utils.NotFound(c, "Batch not found")
	}

	var updates models.Batch
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	ac.Store.UpdateBatch(batchID, updates)

	batch, _ := ac.Store.GetBatchWithDetails(batchID)
	return utils.Success(c, fiber.StatusOK, batch.Batch)
}

func (ac *AdminController) DeleteBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")

	if _, ok := ac.Store.GetBatchWithDetails(batchID); !ok {
		return utils.NotFound(c, "Batch not found")
	}

	ac.Store.DeleteBatch(batchID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (ac *AdminController) GetEnrollments(c *fiber.Ctx) error {
	return c.JSON(ac.Store.GetAllEnrollmentsWithDetails())
}

func (ac *AdminController) GetOrders(c *fiber.Ctx) error {
	return c.JSON(ac.Store.GetAllOrdersWithDetails())
}

func (ac *AdminController) GetStudents(c *fiber.Ctx) error {
	return c.JSON(ac.Store.GetAllStudents())
}

// EnrollStudent is the back-office "enroll a student" flow. The duplicate
// check happens before any record is created.
func (ac *AdminController) EnrollStudent(c *fiber.Ctx) error {
	type EnrollInput struct {
		UserID  string `json:"user_id" validate:"required"`
		BatchID string `json:"batch_id" validate:"required"`
	}

	var input EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if _, ok := ac.Store.GetBatchWithDetails(input.BatchID); !ok {
		return utils.NotFound(c, "Batch not found")
	}

	if ac.Store.IsEnrolled(input.UserID, input.BatchID) {
		return utils.Conflict(c, "Student is already enrolled in this batch")
	}

	enrollment, ok := ac.Store.EnrollStudent(input.UserID, input.BatchID)
	if !ok {
		return utils.Conflict(c, "Could not enroll student")
	}

	return utils.Created(c, enrollment)
}

func (ac *AdminController) GetStats(c *fiber.Ctx) error {
	totalRevenue := 0
	for _, o := range ac.Store.GetAllOrdersWithDetails() {
		if o.Status == "confirmed" {
			totalRevenue += o.Amount
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total_courses":     len(ac.Store.GetAllCourses()),
		"total_batches":     len(ac.Store.GetAllBatches()),
		"total_students":    len(ac.Store.GetAllStudents()),
		"total_enrollments": len(ac.Store.GetAllEnrollmentsWithDetails()),
		"total_revenue":     totalRevenue,
	})
}
