package employee

import (
	"errors"
	"os"
	"path/filepath"

	"vaulterp-backend/internal/config"
	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeResponse struct {
	models.Employee
	OfficeName string `json:"officeName"`
}

func validate(e *models.Employee) error {
	if e.EmployeeName == "" {
		return errors.New("employeeName is required")
	}
	if e.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

// GET /api/employee?officeId=
// Each row carries the office name alongside the employee fields.
func ListEmployeesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := db.Preload("Office").Where("is_active = ?", true)
		if officeID := c.QueryInt("officeId"); officeID > 0 {
			q = q.Where("office_id = ?", officeID)
		}

		var employees []models.Employee
		if err := q.Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		resp := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			row := EmployeeResponse{Employee: e}
			if e.Office != nil {
				row.OfficeName = e.Office.OfficeName
			}
			row.Office = nil
			resp = append(resp, row)
		}
		return c.JSON(resp)
	}
}

// GET /api/employee/:id
func GetEmployeeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		var e models.Employee
		err = db.Preload("Office").First(&e, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		row := EmployeeResponse{Employee: e}
		if e.Office != nil {
			row.OfficeName = e.Office.OfficeName
		}
		row.Office = nil
		return c.JSON(row)
	}
}

func CreateEmployeeHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Employee](db), validate)
}

func UpdateEmployeeHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Employee](db), validate)
}

func DeleteEmployeeHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Employee](db))
}

// GET /api/employee/getBy/:imageName — serves a stored profile image.
func GetProfileImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := filepath.Base(c.Params("imageName"))
		path := filepath.Join(cfg.UploadPath, name)
		if _, err := os.Stat(path); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "image not found")
		}
		return c.SendFile(path)
	}
}
