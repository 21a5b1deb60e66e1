package controllers

import (
	"math"
	"strings"

	"vidyashiksha/backend/config"
	"vidyashiksha/backend/store"

	"github.com/gofiber/fiber/v2"
)

type LearningController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewLearningController(st *store.Store, cfg *config.Config) *LearningController {
	return &LearningController{Store: st, Cfg: cfg}
}

func (lc *LearningController) GetBatchClasses(c *fiber.Ctx) error {
	return c.JSON(lc.Store.GetClassesForBatch(c.Params("id")))
}

func (lc *LearningController) GetClassDetails(c *fiber.Ctx) error {
	class, ok := lc.Store.GetClassWithContent(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Class not found",
		})
	}

	return c.JSON(class)
}

func (lc *LearningController) GetReadingComprehension(c *fiber.Ctx) error {
	reading, ok := lc.Store.GetReadingComprehension(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reading comprehension not found",
		})
	}

	return c.JSON(reading)
}

func (lc *LearningController) GetAssessment(c *fiber.Ctx) error {
	assessment, ok := lc.Store.GetAssessmentWithQuestions(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	return c.JSON(assessment)
}

// SubmitAssessment grades the submitted answers. Matching is
// case-insensitive; the score is the earned share of total points, rounded to
// a whole percentage.
func (lc *LearningController) SubmitAssessment(c *fiber.Ctx) error {
	type SubmitInput struct {
		Answers map[string]string `json:"answers"` // question ID -> answer
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	assessment, ok := lc.Store.GetAssessmentWithQuestions(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	totalScore := 0
	maxScore := 0
	correct := 0
	for _, q := range assessment.Questions {
		maxScore += q.Points
		answer := input.Answers[q.ID]
		if answer != "" && strings.EqualFold(answer, q.CorrectAnswer) {
			totalScore += q.Points
			correct++
		}
	}

	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(float64(totalScore) / float64(maxScore) * 100))
	}

	return c.JSON(fiber.Map{
		"score":           percentage,
		"passed":          percentage >= assessment.Assessment.PassingScore,
		"passing_score":   assessment.Assessment.PassingScore,
		"correct_answers": correct,
		"total_questions": len(assessment.Questions),
		"points_earned":   totalScore,
		"points_total":    maxScore,
	})
}

func (lc *LearningController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	return c.JSON(lc.Store.GetEnrollmentsWithDetails(userID))
}

func (lc *LearningController) GetMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	return c.JSON(lc.Store.GetOrdersWithDetails(userID))
}
