package inventory

import (
	"errors"

	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GoodsReceiptRequest struct {
	PurchaseOrderItemID uint    `json:"purchaseOrderItemId"`
	QuantityReceived    float64 `json:"quantityReceived"`
	IsRejected          bool    `json:"isRejected"`
	RejectionRemarks    *string `json:"rejectionRemarks"`
	IsCompleted         bool    `json:"isCompleted"`
	CreatedBy           uint    `json:"createdBy"`
}

// POST /api/inventory/po/receipt
//
// Records one delivery (or rejection) against a PO line item. The grouped
// detail query folds all receipts of a line item together.
func CreateGoodsReceiptHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body GoodsReceiptRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.PurchaseOrderItemID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "purchaseOrderItemId is required")
		}
		if body.QuantityReceived < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantityReceived cannot be negative")
		}

		var line models.PurchaseOrderItem
		err := db.First(&line, "id = ?", body.PurchaseOrderItemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "purchase order item not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		receipt := models.GoodsReceipt{
			PurchaseOrderItemID: body.PurchaseOrderItemID,
			QuantityReceived:    body.QuantityReceived,
			IsRejected:          body.IsRejected,
			RejectionRemarks:    body.RejectionRemarks,
			IsCompleted:         body.IsCompleted,
			CreatedBy:           body.CreatedBy,
		}
		if err := db.Create(&receipt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "goods receipt recorded successfully",
			"id":      receipt.ID,
		})
	}
}
