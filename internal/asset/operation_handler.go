package asset

import (
	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OperationMappingRequest struct {
	AssetID      uint   `json:"assetId"`
	OperationIDs []uint `json:"operationIds"`
	UpdatedBy    uint   `json:"updatedBy"`
}

type mappedOperation struct {
	OperationID   uint    `json:"operationId"`
	OperationName string  `json:"operationName"`
	Description   *string `json:"description"`
}

// GET /api/asset/assetOps/operations-by-asset?assetId=
func ListOperationsByAssetHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assetID := c.QueryInt("assetId")
		if assetID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "assetId is required")
		}

		ops := make([]mappedOperation, 0)
		err := db.Raw(`
SELECT o.id AS operation_id, o.operation_name, o.description
FROM asset_operations ao
JOIN operations o ON o.id = ao.operation_id
WHERE ao.asset_id = ? AND ao.is_active = ? AND o.is_active = ?`,
			assetID, true, true).Scan(&ops).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(ops)
	}
}

// POST /api/asset/assetOps/map
//
// Replaces the whole active mapping set for the asset: old mappings are
// soft-deleted and the new set inserted inside one transaction.
func MapAssetOperationsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OperationMappingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.AssetID == 0 || len(body.OperationIDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "at least one operationId is required")
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			err := tx.Model(&models.AssetOperation{}).
				Where("asset_id = ? AND is_active = ?", body.AssetID, true).
				Updates(map[string]any{"is_active": false, "updated_by": body.UpdatedBy}).Error
			if err != nil {
				return err
			}

			for _, opID := range body.OperationIDs {
				mapping := models.AssetOperation{
					AssetID:     body.AssetID,
					OperationID: opID,
					IsActive:    true,
					CreatedBy:   &body.UpdatedBy,
				}
				if err := tx.Create(&mapping).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "asset-operation mappings updated successfully", "status": true})
	}
}

// DELETE /api/asset/assetOps/:id
func DeleteAssetOperationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		res := db.Model(&models.AssetOperation{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "mapping not found")
		}
		return c.JSON(fiber.Map{"message": "mapping deleted successfully", "status": true})
	}
}
