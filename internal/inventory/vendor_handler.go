package inventory

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateVendor(v *models.Vendor) error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	if v.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

func ListVendorsHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.Vendor](db), true)
}

func GetVendorHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Vendor](db))
}

func CreateVendorHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Vendor](db), validateVendor)
}

func UpdateVendorHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Vendor](db), validateVendor)
}

func DeleteVendorHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Vendor](db))
}

func PendingVendorsHandler(db *gorm.DB) fiber.Handler {
	return crud.PendingApprovalHandler(repo.New[models.Vendor](db))
}

func ApproveVendorHandler(db *gorm.DB) fiber.Handler {
	return crud.ApproveHandler(repo.New[models.Vendor](db))
}
