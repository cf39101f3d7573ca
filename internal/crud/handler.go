// Package crud turns a repo.Repository into the uniform HTTP contract every
// master entity shares: list, get, create, update, soft delete, approval.
package crud

import (
	"errors"
	"strconv"

	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// Validator rejects a request body before it reaches the store.
type Validator[T any] func(*T) error

func ListHandler[T repo.Entity](r *repo.Repository[T], approvedOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := repo.ListScope{ApprovedOnly: approvedOnly}

		if v := c.Query("officeId"); v != "" {
			officeID, err := parseUint(v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "officeId must be numeric")
			}
			scope.OfficeID = &officeID
		}

		rows, err := r.List(scope)
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(rows)
	}
}

func GetHandler[T repo.Entity](r *repo.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		m, err := r.GetByID(id)
		if errors.Is(err, repo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(m)
	}
}

func CreateHandler[T repo.Entity](r *repo.Repository[T], validate Validator[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body T
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if validate != nil {
			if err := validate(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		if err := r.Create(&body); err != nil {
			return storeFault(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "record created successfully",
			"id":      body.PrimaryID(),
		})
	}
}

func UpdateHandler[T repo.Entity](r *repo.Repository[T], validate Validator[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		var body T
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if validate != nil {
			if err := validate(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		err = r.Update(id, &body)
		if errors.Is(err, repo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(fiber.Map{"message": "record updated successfully", "id": id})
	}
}

func DeleteHandler[T repo.Entity](r *repo.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		err = r.SoftDelete(id)
		if errors.Is(err, repo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(fiber.Map{"message": "record deleted successfully", "id": id})
	}
}

func PendingApprovalHandler[T repo.Entity](r *repo.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		officeID, err := parseUint(c.Query("officeId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "officeId is required")
		}

		rows, err := r.PendingApproval(officeID)
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(rows)
	}
}

func ApproveHandler[T repo.Entity](r *repo.Repository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}

		var body struct {
			ApprovedBy uint `json:"approvedBy"`
		}
		if err := c.BodyParser(&body); err != nil || body.ApprovedBy == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "approvedBy is required")
		}

		err = r.Approve(id, body.ApprovedBy)
		if errors.Is(err, repo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		if err != nil {
			return storeFault(err)
		}
		return c.JSON(fiber.Map{"message": "record approved successfully", "id": id})
	}
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := parseUint(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
	}
	return id, nil
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func storeFault(err error) error {
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
