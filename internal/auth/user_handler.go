package auth

import (
	"errors"
	"strings"

	"vaulterp-backend/internal/crud"
	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	UsertypeID uint   `json:"usertypeId"`
	EmployeeID uint   `json:"employeeId"`
	OfficeID   *uint  `json:"officeId"`
}

// GET /api/user
func ListUsersHandler(db *gorm.DB) fiber.Handler {
	return crud.ListHandler(repo.New[models.User](db), false)
}

// POST /api/user
func CreateUserHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" || body.EmployeeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "email, password and employeeId are required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
		}

		user := models.User{
			Email:        body.Email,
			PasswordHash: string(hash),
			UsertypeID:   body.UsertypeID,
			EmployeeID:   body.EmployeeID,
			OfficeID:     body.OfficeID,
			IsFirstLogin: true,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "user created successfully",
			"id":      user.ID,
		})
	}
}

// PUT /api/user/:id
func UpdateUserHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		values := map[string]any{
			"email":       strings.TrimSpace(strings.ToLower(body.Email)),
			"usertype_id": body.UsertypeID,
			"employee_id": body.EmployeeID,
			"office_id":   body.OfficeID,
		}
		if body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
			}
			values["password_hash"] = string(hash)
		}

		res := db.Model(&models.User{}).Where("id = ?", id).Updates(values)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return c.JSON(fiber.Map{"message": "user updated successfully", "id": id})
	}
}

// DELETE /api/user/:id
func DeleteUserHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id must be numeric")
		}

		err = repo.New[models.User](db).SoftDelete(uint(id))
		if errors.Is(err, repo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "user deleted successfully", "id": id})
	}
}
