package controllers

import (
	"vidyashiksha/backend/config"
	"vidyashiksha/backend/services"
	"vidyashiksha/backend/store"
	"vidyashiksha/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckoutController struct {
	Store   *store.Store
	Gateway services.PaymentGateway
	Cfg     *config.Config
}

func NewCheckoutController(st *store.Store, gw services.PaymentGateway, cfg *config.Config) *CheckoutController {
	return &CheckoutController{Store: st, Gateway: gw, Cfg: cfg}
}

// Checkout charges the batch price through the payment gateway and records
// the order, payment and enrollment in one go.
func (cc *CheckoutController) Checkout(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	batchID := c.Params("batchId")

	type CheckoutInput struct {
		Method string `json:"method"` // card, upi, netbanking, wallet
	}
	var input CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Method == "" {
		input.Method = "upi"
	}

	batch, ok := cc.Store.GetBatchWithDetails(batchID)
	if !ok {
		return utils.NotFound(c, "Batch not found")
	}

	if cc.Store.IsEnrolled(userID, batchID) {
		return utils.Conflict(c, "Already enrolled in this batch")
	}

	receipt, err := cc.Gateway.Charge(c.Context(), batch.Price, batch.Currency, input.Method)
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Payment failed")
	}

	enrollment, ok := cc.Store.EnrollStudent(userID, batchID)
	if !ok {
		// The batch vanished (or another enrollment landed) while the
		// charge was in flight.
		return utils.Conflict(c, "Could not complete enrollment")
	}

	cc.Store.ClearPendingEnrollment(userID)

	return utils.Created(c, fiber.Map{
		"enrollment": enrollment,
		"receipt":    receipt,
	})
}

func (cc *CheckoutController) SetPendingEnrollment(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var input store.PendingEnrollment
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.BatchID == "" {
		return utils.BadRequest(c, "batch_id is required")
	}

	cc.Store.SetPendingEnrollment(userID, input)
	return c.JSON(input)
}

func (cc *CheckoutController) GetPendingEnrollment(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	pending, ok := cc.Store.GetPendingEnrollment(userID)
	if !ok {
		return utils.NotFound(c, "No pending enrollment")
	}
	return c.JSON(pending)
}

func (cc *CheckoutController) ClearPendingEnrollment(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	cc.Store.ClearPendingEnrollment(userID)
	return c.SendStatus(fiber.StatusNoContent)
}
