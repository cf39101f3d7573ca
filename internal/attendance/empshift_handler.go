package attendance

import (
	"time"

	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeShiftRequest struct {
	EmployeeID uint      `json:"employeeId"`
	ShiftID    uint      `json:"shiftId"`
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	CreatedBy  uint      `json:"createdBy"`
	UpdatedBy  *uint     `json:"updatedBy"`
}

type EmployeeShiftRow struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	MobileNo     *string   `json:"mobileNo"`
	ShiftID      uint      `json:"shiftId"`
	ShiftName    string    `json:"shiftName"`
	DateFrom     time.Time `json:"dateFrom"`
	DateTo       time.Time `json:"dateTo"`
}

const empShiftSelect = `
SELECT es.id, es.employee_id, e.employee_name, e.phone_number AS mobile_no,
       es.shift_id, s.shift_name, es.date_from, es.date_to
FROM employee_shifts es
JOIN employees e ON e.id = es.employee_id
JOIN shifts s ON s.id = es.shift_id
WHERE es.is_active = ?`

// GET /api/attendance/empShift/by-office?officeId=
func ListEmployeeShiftsByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID := c.QueryInt("officeId")
		if officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId is required")
		}

		rows := make([]EmployeeShiftRow, 0)
		err := db.Raw(empShiftSelect+" AND e.office_id = ?", true, officeID).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rows)
	}
}

// GET /api/attendance/empShift/by-employee/:employeeId
func ListEmployeeShiftsByEmployeeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("employeeId")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "employeeId must be numeric")
		}

		rows := make([]EmployeeShiftRow, 0)
		err = db.Raw(empShiftSelect+" AND es.employee_id = ?", true, employeeID).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rows)
	}
}

// POST /api/attendance/empShift
func AssignEmployeeShiftHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EmployeeShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.EmployeeID == 0 || body.ShiftID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "employeeId and shiftId are required")
		}

		assignment := models.EmployeeShift{
			EmployeeID: body.EmployeeID,
			ShiftID:    body.ShiftID,
			DateFrom:   body.DateFrom,
			DateTo:     body.DateTo,
			IsActive:   true,
			CreatedBy:  body.CreatedBy,
		}
		if err := db.Create(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "shift assigned successfully",
			"id":      assignment.ID,
		})
	}
}

// PUT /api/attendance/empShift/:employeeId/:shiftId
func UpdateEmployeeShiftHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err1 := c.ParamsInt("employeeId")
		shiftID, err2 := c.ParamsInt("shiftId")
		if err1 != nil || err2 != nil {
			return fiber.NewError(fiber.StatusBadRequest, "employeeId and shiftId must be numeric")
		}

		var body EmployeeShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		res := db.Model(&models.EmployeeShift{}).
			Where("employee_id = ? AND shift_id = ? AND is_active = ?", employeeID, shiftID, true).
			Updates(map[string]any{
				"date_from":  body.DateFrom,
				"date_to":    body.DateTo,
				"updated_by": body.UpdatedBy,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "shift assignment not found")
		}
		return c.JSON(fiber.Map{"message": "shift assignment updated successfully"})
	}
}

// DELETE /api/attendance/empShift/:employeeId/:shiftId
func DeleteEmployeeShiftHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err1 := c.ParamsInt("employeeId")
		shiftID, err2 := c.ParamsInt("shiftId")
		if err1 != nil || err2 != nil {
			return fiber.NewError(fiber.StatusBadRequest, "employeeId and shiftId must be numeric")
		}

		res := db.Model(&models.EmployeeShift{}).
			Where("employee_id = ? AND shift_id = ? AND is_active = ?", employeeID, shiftID, true).
			Update("is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "shift assignment not found")
		}
		return c.JSON(fiber.Map{"message": "shift assignment removed successfully"})
	}
}
