package planning

import (
	"errors"
	"time"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateSheet(s *models.PlanningSheet) error {
	if s.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	if s.PlanDate.IsZero() {
		return errors.New("planDate is required")
	}
	if s.EmployeeID == 0 || s.OperationID == 0 || s.AssetID == 0 || s.ItemID == 0 || s.ShiftID == 0 {
		return errors.New("employeeId, operationId, assetId, itemId and shiftId are required")
	}
	return nil
}

// GET /api/planning/dps?officeId=&planDate=2025-08-28
func ListPlanningSheetsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := db.Where("is_active = ?", true)
		if officeID := c.QueryInt("officeId"); officeID > 0 {
			q = q.Where("office_id = ?", officeID)
		}
		if v := c.Query("planDate"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "planDate must be 'YYYY-MM-DD'")
			}
			q = q.Where("plan_date >= ? AND plan_date < ?", d, d.AddDate(0, 0, 1))
		}

		sheets := make([]models.PlanningSheet, 0)
		if err := q.Find(&sheets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(sheets)
	}
}

func CreatePlanningSheetHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.PlanningSheet](db), validateSheet)
}

func UpdatePlanningSheetHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.PlanningSheet](db), validateSheet)
}

func DeletePlanningSheetHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.PlanningSheet](db))
}
