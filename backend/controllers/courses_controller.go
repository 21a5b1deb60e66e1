package controllers

import (
	"strconv"

	"vidyashiksha/backend/config"
	"vidyashiksha/backend/models"
	"vidyashiksha/backend/store"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(st *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	subject := c.Query("subject")
	classLevel := c.Query("class_level")

	var courses []models.Course
	if classLevel != "" {
		level, err := strconv.Atoi(classLevel)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid class level",
			})
		}
		courses = cc.Store.GetCoursesForClass(level)
	} else {
		courses = cc.Store.GetAllCourses()
	}

	if subject != "" {
		filtered := []models.Course{}
		for _, course := range courses {
			if course.Subject == subject {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	return c.JSON(courses)
}

func (cc *CoursesController) GetSubjects(c *fiber.Ctx) error {
	return c.JSON(cc.Store.GetSubjects())
}

func (cc *CoursesController) GetClassLevels(c *fiber.Ctx) error {
	return c.JSON(cc.Store.GetClassLevels())
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, ok := cc.Store.GetCourseWithBatches(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	return c.JSON(course)
}

func (cc *CoursesController) GetBatchDetails(c *fiber.Ctx) error {
	batchID := c.Params("id")

	batch, ok := cc.Store.GetBatchWithDetails(batchID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Batch not found",
		})
	}

	return c.JSON(fiber.Map{
		"batch":            batch,
		"enrollment_count": cc.Store.GetBatchEnrollmentCount(batchID),
	})
}

func (cc *CoursesController) GetInstructors(c *fiber.Ctx) error {
	return c.JSON(cc.Store.GetInstructors())
}
