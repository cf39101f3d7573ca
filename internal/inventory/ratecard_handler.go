package inventory

import (
	"errors"
	"time"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RateCardRow is the joined listing shape: a rate card plus the item,
// category and vendor it prices.
type RateCardRow struct {
	ID              uint       `json:"id"`
	CategoryName    string     `json:"categoryName"`
	ItemID          uint       `json:"itemId"`
	ItemName        string     `json:"itemName"`
	BrandName       *string    `json:"brandName"`
	Description     *string    `json:"description"`
	HSNCode         *string    `gorm:"column:hsn_code" json:"hsnCode"`
	VendorID        uint       `json:"vendorId"`
	VendorName      string     `json:"vendorName"`
	Price           float64    `json:"price"`
	MeasurementUnit *string    `json:"measurementUnit"`
	ValidTill       *time.Time `json:"validTill"`
	IsApproved      bool       `json:"isApproved"`
	CreatedOn       time.Time  `gorm:"column:created_at" json:"createdOn"`
}

func validateRateCard(rc *models.RateCard) error {
	if rc.ItemID == 0 || rc.VendorID == 0 {
		return errors.New("itemId and vendorId are required")
	}
	if rc.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	return nil
}

// GET /api/inventory/rateCard?officeId=&categoryId=&itemId=&vendorId=
//
// Only approved, unexpired rate cards over approved items/vendors/categories
// are listed. All filters are optional.
func ListRateCardsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := `
SELECT rc.id, cat.name AS category_name,
       i.id AS item_id, i.name AS item_name, i.brand_name, i.description,
       i.hsn_code, i.measurement_unit,
       v.id AS vendor_id, v.name AS vendor_name,
       rc.price, rc.valid_till, rc.is_approved, rc.created_at
FROM rate_cards rc
JOIN items i ON i.id = rc.item_id
JOIN vendors v ON v.id = rc.vendor_id
JOIN categories cat ON cat.id = i.category_id
WHERE rc.is_approved = ? AND rc.is_active = ?
  AND (rc.valid_till IS NULL OR rc.valid_till >= CURRENT_TIMESTAMP)
  AND i.is_approved = ? AND i.is_active = ?
  AND v.is_approved = ? AND v.is_active = ?
  AND cat.is_approved = ? AND cat.is_active = ?`
		args := []any{true, true, true, true, true, true, true, true}

		if officeID := c.QueryInt("officeId"); officeID > 0 {
			query += " AND i.office_id = ?"
			args = append(args, officeID)
		}
		if categoryID := c.QueryInt("categoryId"); categoryID > 0 {
			query += " AND i.category_id = ?"
			args = append(args, categoryID)
		}
		if itemID := c.QueryInt("itemId"); itemID > 0 {
			query += " AND rc.item_id = ?"
			args = append(args, itemID)
		}
		if vendorID := c.QueryInt("vendorId"); vendorID > 0 {
			query += " AND rc.vendor_id = ?"
			args = append(args, vendorID)
		}
		query += " ORDER BY rc.created_at DESC"

		rows := make([]RateCardRow, 0)
		if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rows)
	}
}

func CreateRateCardHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.RateCard](db), validateRateCard)
}

func UpdateRateCardHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.RateCard](db), validateRateCard)
}

func DeleteRateCardHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.RateCard](db))
}

func PendingRateCardsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Rate cards have no office column of their own; the scope rides
		// on the priced item.
		officeID := c.QueryInt("officeId")
		if officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId is required")
		}

		rows := make([]models.RateCard, 0)
		err := db.Raw(`
SELECT rc.* FROM rate_cards rc
JOIN items i ON i.id = rc.item_id
WHERE i.office_id = ? AND rc.is_active = ? AND rc.is_approved = ?`,
			officeID, true, false).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rows)
	}
}

func ApproveRateCardHandler(db *gorm.DB) fiber.Handler {
	return crud.ApproveHandler(repo.New[models.RateCard](db))
}
