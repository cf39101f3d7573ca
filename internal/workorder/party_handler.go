package workorder

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateParty(p *models.Party) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	return nil
}

// GET /api/work_order/party/office/:officeId
func ListPartiesByOfficeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID, err := c.ParamsInt("officeId")
		if err != nil || officeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "officeId must be numeric")
		}

		id := uint(officeID)
		parties, err := repo.New[models.Party](db).List(repo.ListScope{OfficeID: &id})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(parties)
	}
}

func GetPartyHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.Party](db))
}

func CreatePartyHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.Party](db), validateParty)
}

func UpdatePartyHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.Party](db), validateParty)
}

func DeletePartyHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.Party](db))
}

func PendingPartiesHandler(db *gorm.DB) fiber.Handler {
	return crud.PendingApprovalHandler(repo.New[models.Party](db))
}

func ApprovePartyHandler(db *gorm.DB) fiber.Handler {
	return crud.ApproveHandler(repo.New[models.Party](db))
}
