package inventory

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateItem(i *models.Item) error {
	if i.Name == "" {
		return errors.New("name is required")
	}
	if i.OfficeID == 0 || i.CategoryID == 0 {
		return errors.New("officeId and categoryId are required")
	}
	return nil
}

func ListItemsHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Item](db), true)
}

func GetItemHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Item](db))
}

func CreateItemHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Item](db), validateItem)
}

func UpdateItemHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Item](db), validateItem)
}

func DeleteItemHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Item](db))
}

func PendingItemsHandler(db *gorm.DB) fiber.Handler {
	return crud.PendingApprovalHandler(repo.New[models.Item](db))
}

func ApproveItemHandler(db *gorm.DB) fiber.Handler {
	return crud.ApproveHandler(repo.New[models.Item](db))
}
