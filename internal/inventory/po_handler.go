package inventory

import (
	"fmt"
	"time"

	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CreatePORequest struct {
	VendorID        uint           `json:"vendorId"`
	BillingAddress  *string        `json:"billingAddress"`
	ShippingAddress *string        `json:"shippingAddress"`
	CreatedBy       uint           `json:"createdBy"`
	OfficeID        uint           `json:"officeId"`
	TotalAmount     float64        `json:"totalAmount"`
	Items           []CreatePOItem `json:"items"`
}

type CreatePOItem struct {
	ItemID   uint    `json:"itemId"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type CreatePOResult struct {
	PurchaseOrderID uint   `json:"purchaseOrderId"`
	PONumber        string `json:"poNumber"`
	Message         string `json:"message"`
}

// GET /api/inventory/po/GetGroupedPurchaseOrderDetails?officeId=&poId=&vendorId=
func GetGroupedPurchaseOrderDetailsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID := c.QueryInt("officeId")
		if officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId is required")
		}

		var poID, vendorID *uint
		if v := c.QueryInt("poId"); v > 0 {
			id := uint(v)
			poID = &id
		}
		if v := c.QueryInt("vendorId"); v > 0 {
			id := uint(v)
			vendorID = &id
		}

		rows, err := fetchPODetailRows(db, uint(officeID), poID, vendorID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(groupPODetailRows(rows))
	}
}

// POST /api/inventory/po/CreatePurchaseOrders
//
// Accepts a batch of orders and writes them in ONE transaction: if any
// order in the batch fails, everything already inserted for the batch is
// rolled back. Orders with no line items are skipped, not rejected.
//
// The PO number depends on the generated id, so each header is inserted
// with a placeholder and the final number is stamped by a second update.
func CreatePurchaseOrdersHandler(db *gorm.DB, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []CreatePORequest
		if err := c.BodyParser(&orders); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if len(orders) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no purchase orders provided")
		}

		results := make([]CreatePOResult, 0, len(orders))

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, dto := range orders {
				if len(dto.Items) == 0 {
					continue
				}

				po := models.PurchaseOrder{
					PONumber:        fmt.Sprintf("TEMP-%d-%d", dto.OfficeID, time.Now().UnixNano()),
					VendorID:        dto.VendorID,
					BillingAddress:  dto.BillingAddress,
					ShippingAddress: dto.ShippingAddress,
					TotalAmount:     dto.TotalAmount,
					OfficeID:        dto.OfficeID,
					IsApproved:      true,
					IsActive:        true,
					CreatedBy:       dto.CreatedBy,
				}
				if err := tx.Create(&po).Error; err != nil {
					return err
				}

				poNumber := fmt.Sprintf("PO-%d%d", dto.OfficeID, po.ID)
				err := tx.Model(&models.PurchaseOrder{}).
					Where("id = ?", po.ID).
					Update("po_number", poNumber).Error
				if err != nil {
					return err
				}

				for _, it := range dto.Items {
					line := models.PurchaseOrderItem{
						PurchaseOrderID: po.ID,
						ItemID:          it.ItemID,
						Quantity:        it.Quantity,
						Rate:            it.Rate,
						CreatedBy:       dto.CreatedBy,
					}
					if err := tx.Create(&line).Error; err != nil {
						return err
					}
				}

				results = append(results, CreatePOResult{
					PurchaseOrderID: po.ID,
					PONumber:        poNumber,
					Message:         "Purchase Order created successfully.",
				})
			}
			return nil
		})
		if err != nil {
			logger.Error().Err(err).Int("orders", len(orders)).Msg("purchase order batch rolled back")
			return fiber.NewError(fiber.StatusInternalServerError, "error while creating purchase order: "+err.Error())
		}

		return c.JSON(results)
	}
}

// DELETE /api/inventory/po/:id/office/:officeId
func DeletePurchaseOrderHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err1 := c.ParamsInt("id")
		officeID, err2 := c.ParamsInt("officeId")
		if err1 != nil || err2 != nil {
			return fiber.NewError(fiber.StatusBadRequest, "id and officeId must be numeric")
		}

		res := db.Model(&models.PurchaseOrder{}).
			Where("id = ? AND office_id = ? AND is_active = ?", id, officeID, true).
			Update("is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "purchase order not found")
		}
		return c.JSON(fiber.Map{"message": "purchase order deleted successfully", "id": id})
	}
}
