package workorder

import (
	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type WorkOrderRequest struct {
	PartyID   uint                      `json:"partyId"`
	PoNo      *string                   `json:"poNo"`
	BoardName *string                   `json:"boardName"`
	PoAmount  *int                      `json:"poAmount"`
	OfficeID  uint                      `json:"officeId"`
	CreatedBy *uint                     `json:"createdBy"`
	UpdatedBy *uint                     `json:"updatedBy"`
	Products  []WorkOrderProductRequest `json:"products"`
}

type WorkOrderProductRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  *int    `json:"quantity"`
	Store     *string `json:"store"`
}

// POST /api/work_order/master
//
// Master and product lines go in together; a failure on any line rolls
// the whole work order back.
func CreateWorkOrderHandler(db *gorm.DB, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WorkOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.PartyID == 0 || body.OfficeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "partyId and officeId are required")
		}

		var masterID uint
		err := db.Transaction(func(tx *gorm.DB) error {
			master := models.WorkOrder{
				PartyID:   body.PartyID,
				PoNo:      body.PoNo,
				BoardName: body.BoardName,
				PoAmount:  body.PoAmount,
				OfficeID:  body.OfficeID,
				IsActive:  true,
				CreatedBy: body.CreatedBy,
			}
			if err := tx.Create(&master).Error; err != nil {
				return err
			}
			masterID = master.ID

			for _, p := range body.Products {
				line := models.WorkOrderProduct{
					WorkOrderID: master.ID,
					ProductID:   p.ProductID,
					Quantity:    p.Quantity,
					Store:       p.Store,
					CreatedBy:   body.CreatedBy,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logger.Error().Err(err).Msg("work order create rolled back")
			return fiber.NewError(fiber.StatusInternalServerError, "failed to insert: "+err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "work order and products saved successfully",
			"id":      masterID,
		})
	}
}

// PUT /api/work_order/master/:id
//
// The master is updated unconditionally. Product lines are matched on
// (wo_id, product_id): a payload line with no matching row is skipped —
// updates never insert new children. The response reports how many lines
// matched so callers can detect skips.
func UpdateWorkOrderHandler(db *gorm.DB, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		var body WorkOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.PartyID == 0 || body.OfficeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "partyId and officeId are required")
		}

		var matched int64
		err = db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.WorkOrder{}).
				Where("id = ?", id).
				Updates(map[string]any{
					"party_id":   body.PartyID,
					"po_no":      body.PoNo,
					"board_name": body.BoardName,
					"po_amount":  body.PoAmount,
					"office_id":  body.OfficeID,
					"updated_by": body.UpdatedBy,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}

			for _, p := range body.Products {
				res := tx.Model(&models.WorkOrderProduct{}).
					Where("wo_id = ? AND product_id = ?", id, p.ProductID).
					Updates(map[string]any{
						"quantity":   p.Quantity,
						"store":      p.Store,
						"updated_by": body.UpdatedBy,
					})
				if res.Error != nil {
					return res.Error
				}
				matched += res.RowsAffected
			}
			return nil
		})
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "work order not found")
		}
		if err != nil {
			logger.Error().Err(err).Int("id", id).Msg("work order update rolled back")
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"message":         "work order and matching products updated successfully",
			"id":              id,
			"productsMatched": matched,
		})
	}
}

// DELETE /api/work_order/master/:id/office/:officeId
func DeleteWorkOrderHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err1 := c.ParamsInt("id")
		officeID, err2 := c.ParamsInt("officeId")
		if err1 != nil || err2 != nil {
			return fiber.NewError(fiber.StatusBadRequest, "id and officeId must be numeric")
		}

		res := db.Model(&models.WorkOrder{}).
			Where("id = ? AND office_id = ? AND is_active = ?", id, officeID, true).
			Update("is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no matching work order found for given id and officeId")
		}
		return c.JSON(fiber.Map{"message": "work order soft-deleted successfully", "id": id})
	}
}

// GET /api/work_order/master/office/:officeId
func ListWorkOrdersByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID, err := c.ParamsInt("officeId")
		if err != nil || officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId must be numeric")
		}

		workOrders := make([]models.WorkOrder, 0)
		err = db.Preload("Products").
			Where("office_id = ? AND is_active = ?", officeID, true).
			Find(&workOrders).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(workOrders)
	}
}
