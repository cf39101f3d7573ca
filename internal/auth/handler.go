package auth

import (
	"errors"
	"strings"
	"time"

	"vaulterp-backend/internal/config"
	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
//
// Unknown email and wrong password produce the same response, so the
// caller cannot tell which check failed.
func LoginHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
		}

		var user models.User
		err := db.Where("LOWER(email) = ? AND is_active = ?", body.Email, true).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
		}

		now := time.Now()
		db.Model(&user).Updates(map[string]any{"last_login": now, "is_first_login": false})

		// Display name comes from the linked employee record when present.
		var username *string
		var employee models.Employee
		if err := db.First(&employee, "id = ?", user.EmployeeID).Error; err == nil {
			username = &employee.EmployeeName
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":         user.ID,
				"email":      user.Email,
				"usertypeId": user.UsertypeID,
				"username":   username,
			},
		})
	}
}
