package inventory

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateCategory(cat *models.Category) error {
	if cat.Name == "" {
		return errors.New("name is required")
	}
	if cat.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

func ListCategoriesHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Category](db), true)
}

func GetCategoryHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Category](db))
}

func CreateCategoryHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Category](db), validateCategory)
}

func UpdateCategoryHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Category](db), validateCategory)
}

func DeleteCategoryHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Category](db))
}

func PendingCategoriesHandler(db *gorm.DB) fiber.Handler {
	return crud.PendingApprovalHandler(repo.New[models.Category](db))
}

func ApproveCategoryHandler(db *gorm.DB) fiber.Handler {
	return crud.ApproveHandler(repo.New[models.Category](db))
}
