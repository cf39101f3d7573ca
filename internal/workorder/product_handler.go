package workorder

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateProduct(p *models.Product) error {
	if p.ProductName == "" {
		return errors.New("productName is required")
	}
	if p.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

// GET /api/work_order/product/office/:officeId
func ListProductsByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID, err := c.ParamsInt("officeId")
		if err != nil || officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId must be numeric")
		}

		id := uint(officeID)
		products, err := repo.New[models.Product](db).List(repo.ListScope{OfficeID: &id})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(products)
	}
}

func GetProductHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Product](db))
}

func CreateProductHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Product](db), validateProduct)
}

func UpdateProductHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Product](db), validateProduct)
}

func DeleteProductHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Product](db))
}
