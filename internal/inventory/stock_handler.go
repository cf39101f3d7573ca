package inventory

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockRow struct {
	StockID     uint    `gorm:"column:id" json:"stockId"`
	ItemID      uint    `json:"itemId"`
	OfficeID    uint    `json:"officeId"`
	CurrentQty  int     `json:"currentQty"`
	MinQty      int     `json:"minQty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"categoryId"`
}

// GET /api/stock/office?office_id=
func ListStockByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID := c.QueryInt("office_id")
		if officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "office_id is required")
		}

		rows := make([]StockRow, 0)
		err := db.Raw(`
SELECT s.id, s.item_id, s.office_id, s.current_qty, s.min_qty,
       i.name, i.description, i.category_id
FROM stocks s
JOIN items i ON i.id = s.item_id
WHERE s.office_id = ? AND s.is_active = ?`, officeID, true).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rows)
	}
}
