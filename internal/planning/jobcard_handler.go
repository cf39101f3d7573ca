package planning

import (
	"errors"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func validateJobCard(j *models.JobCard) error {
	if j.AssetID == 0 || j.ShiftID == 0 || j.OperationID == 0 {
		return errors.New("assetId, shiftId and operationId are required")
	}
	if j.OfficeID == 0 {
		return errors.New("officeId is required")
	}
	if j.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

func ListJobCardsHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.JobCard](db), false)
}

func GetJobCardHandler(db *gorm.DB) fiber.Handler {
	return crud.GetHandler(repo.New[models.JobCard](db))
}

func CreateJobCardHandler(db *gorm.DB) fiber.Handler {
	return crud.CreateHandler(repo.New[models.JobCard](db), validateJobCard)
}

func UpdateJobCardHandler(db *gorm.DB) fiber.Handler {
	return crud.UpdateHandler(repo.New[models.JobCard](db), validateJobCard)
}

func DeleteJobCardHandler(db *gorm.DB) fiber.Handler {
	return crud.DeleteHandler(repo.New[models.JobCard](db))
}
