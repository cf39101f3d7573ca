package employee

import (
	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOperationRequest struct {
	OperationName string  `json:"operationName"`
	Description   *string `json:"description"`
	OfficeID      uint    `json:"officeId"`
	CreatedBy     uint    `json:"createdBy"`
}

type OperationMappingRequest struct {
	EmployeeID   uint   `json:"employeeId"`
	OperationIDs []uint `json:"operationIds"`
	UpdatedBy    uint   `json:"updatedBy"`
}

type mappedOperation struct {
	OperationID   uint    `json:"operationId"`
	OperationName string  `json:"operationName"`
	Description   *string `json:"description"`
}

// POST /api/empOps/create
func CreateOperationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOperationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.OperationName == "" || body.OfficeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "operationName and officeId are required")
		}

		op := models.Operation{
			OperationName: body.OperationName,
			Description:   body.Description,
			OfficeID:      body.OfficeID,
			IsActive:      true,
			CreatedBy:     &body.CreatedBy,
		}
		if err := db.Create(&op).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "operation created successfully",
			"id":      op.ID,
		})
	}
}

// GET /api/empOps/operations-by-office?officeId=
func ListOperationsByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID := c.QueryInt("officeId")
		if officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId is required")
		}

		ops := make([]models.Operation, 0)
		err := db.Where("office_id = ? AND is_active = ?", officeID, true).Find(&ops).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(ops)
	}
}

// GET /api/empOps/operations-by-employee?employeeId=
func ListOperationsByEmployeeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.QueryInt("employeeId")
		if employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "employeeId is required")
		}

		ops := make([]mappedOperation, 0)
		err := db.Raw(`
SELECT o.id AS operation_id, o.operation_name, o.description
FROM employee_operations eo
JOIN operations o ON o.id = eo.operation_id
WHERE eo.employee_id = ? AND eo.is_active = ? AND o.is_active = ?`,
			employeeID, true, true).Scan(&ops).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(ops)
	}
}

// POST /api/empOps/map
//
// Replace-set semantics, same as the asset mapping: the previous active
// mappings are soft-deleted and the new set inserted in one transaction.
func MapEmployeeOperationsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OperationMappingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.EmployeeID == 0 || len(body.OperationIDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "at least one operationId is required")
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			err := tx.Model(&models.EmployeeOperation{}).
				Where("employee_id = ? AND is_active = ?", body.EmployeeID, true).
				Updates(map[string]any{"is_active": false, "updated_by": body.UpdatedBy}).Error
			if err != nil {
				return err
			}

			for _, opID := range body.OperationIDs {
				mapping := models.EmployeeOperation{
					EmployeeID:  body.EmployeeID,
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
		return c.JSON(fiber.Map{"message": "mappings updated successfully", "status": true})
	}
}

// DELETE /api/empOps/:id
func DeleteEmployeeOperationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		res := db.Model(&models.EmployeeOperation{}).
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
