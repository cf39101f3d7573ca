package asset

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validate(a *models.Asset) error {
	if a.AssetCode == "" || a.AssetName == "" {
		return errors.New("assetCode and assetName are required")
	}
	if a.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

func ListAssetsHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Asset](db), false)
}

func GetAssetHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Asset](db))
}

func CreateAssetHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Asset](db), validate)
}

func UpdateAssetHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Asset](db), validate)
}

func DeleteAssetHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Asset](db))
}
