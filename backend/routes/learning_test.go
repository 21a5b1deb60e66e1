package routes_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetBatchClasses(t *testing.T) {
	resp, classes := doRequestList(t, "GET", "/api/batches/batch-1a/classes", studentToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, classes, 5)
	assert.Equal(t, float64(1), classes[0]["order_no"])
}

func TestGetBatchClassesRequiresAuth(t *testing.T) {
	resp, _ := doRequestList(t, "GET", "/api/batches/batch-1a/classes", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetClassDetails(t *testing.T) {
	resp, class := doRequest(t, "GET", "/api/classes/class-4", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, class["content"].([]interface{}), 2)
	assert.Len(t, class["activities"].([]interface{}), 1)

	// class-1 is a live class
	resp, class = doRequest(t, "GET", "/api/classes/class-1", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, class["live_class"])
}

func TestGetClassDetailsNotFound(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/api/classes/class-nope", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetReadingComprehension(t *testing.T) {
	resp, rc := doRequest(t, "GET", "/api/activities/activity-1-1/reading", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(270), rc["word_count"])

	resp, _ = doRequest(t, "GET", "/api/activities/activity-1-2/reading", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAssessment(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/activities/activity-1-2/assessment", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	questions := result["questions"].([]interface{})
	assert.Len(t, questions, 4)
}

func TestSubmitAssessment(t *testing.T) {
	// three right out of four, with one answer differing only in case
	resp, result := doRequest(t, "POST", "/api/activities/activity-1-2/submit", studentToken, map[string]interface{}{
		"answers": map[string]string{
			"q-1": "x",
			"q-2": "3",
			"q-3": "TRUE",
			"q-4": "2",
		},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(75), result["score"])
	assert.Equal(t, true, result["passed"])
	assert.Equal(t, float64(3), result["correct_answers"])
	assert.Equal(t, float64(4), result["total_questions"])
	assert.Equal(t, float64(30), result["points_earned"])
	assert.Equal(t, float64(40), result["points_total"])
}

func TestSubmitAssessmentAllWrong(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/activities/activity-1-2/submit", studentToken, map[string]interface{}{
		"answers": map[string]string{},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), result["score"])
	assert.Equal(t, false, result["passed"])
}

func TestGetMyEnrollments(t *testing.T) {
	resp, enrollments := doRequestList(t, "GET", "/api/enrollments", studentToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, enrollments, 2)
	for _, e := range enrollments {
		assert.Equal(t, "user-1", e["user_id"])
		assert.NotNil(t, e["batch"])
		assert.NotNil(t, e["course"])
	}
}

func TestGetMyOrders(t *testing.T) {
	resp, orders := doRequestList(t, "GET", "/api/orders", studentToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.NotNil(t, o["payment"])
	}
}
