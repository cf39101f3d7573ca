package attendance

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateShift(s *models.Shift) error {
	if s.ShiftName == "" {
		return errors.New("shiftName is required")
	}
	if s.StartTime == "" || s.EndTime == "" {
		return errors.New("startTime and endTime are required")
	}
	if s.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

func ListShiftsHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Shift](db), false)
}

func GetShiftHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Shift](db))
}

func CreateShiftHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Shift](db), validateShift)
}

func UpdateShiftHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Shift](db), validateShift)
}

func DeleteShiftHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Shift](db))
}
