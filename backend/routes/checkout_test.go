package routes_test

import (
	"testing"

	"vidyashiksha/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCheckout(t *testing.T) {
	token, _ := utils.GenerateJWTToken("user-5", "student", cfg)

	resp, result := doRequest(t, "POST", "/api/checkout/batch-5a", token, map[string]string{
		"method": "upi",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	enrollment := data["enrollment"].(map[string]interface{})
	assert.Equal(t, "user-5", enrollment["user_id"])
	assert.Equal(t, "batch-5a", enrollment["batch_id"])
	assert.Equal(t, "active", enrollment["status"])

	receipt := data["receipt"].(map[string]interface{})
	assert.NotEmpty(t, receipt["transaction_id"])

	// the enrollment and its order are visible to the student afterwards
	resp, enrollments := doRequestList(t, "GET", "/api/enrollments", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, enrollments, 1)

	resp, orders := doRequestList(t, "GET", "/api/orders", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, orders, 1)
	assert.Equal(t, "confirmed", orders[0]["status"])
	assert.NotNil(t, orders[0]["payment"])
}

func TestCheckoutAlreadyEnrolled(t *testing.T) {
	// user-1 is enrolled in batch-1a from the start
	resp, result := doRequest(t, "POST", "/api/checkout/batch-1a", studentToken, map[string]string{
		"method": "card",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Already enrolled in this batch", result["message"])
}

func TestCheckoutUnknownBatch(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/checkout/batch-nope", studentToken, map[string]string{
		"method": "upi",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCheckoutRequiresAuth(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/checkout/batch-5a", "", map[string]string{
		"method": "upi",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPendingEnrollment(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/api/enrollment/pending", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, result := doRequest(t, "PUT", "/api/enrollment/pending", studentToken, map[string]string{
		"course_id": "course-4",
		"batch_id":  "batch-4a",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "batch-4a", result["batch_id"])

	resp, result = doRequest(t, "GET", "/api/enrollment/pending", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "course-4", result["course_id"])

	resp, _ = doRequest(t, "DELETE", "/api/enrollment/pending", studentToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, "GET", "/api/enrollment/pending", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPendingEnrollmentMissingBatch(t *testing.T) {
	resp, _ := doRequest(t, "PUT", "/api/enrollment/pending", studentToken, map[string]string{
		"course_id": "course-4",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
