package office

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validate(o *models.Office) error {
	if o.OfficeName == "" {
		return errors.New("officeName is required")
	}
	return nil
}

func ListOfficesHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Office](db), false)
}

func GetOfficeHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Office](db))
}

func CreateOfficeHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Office](db), validate)
}

func UpdateOfficeHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Office](db), validate)
}

func DeleteOfficeHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Office](db))
}
