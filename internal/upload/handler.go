// Package upload stores multipart file uploads (profile images, document
// scans) under the configured upload directory and hands back a public URL.
package upload

import (
	"os"
	"path/filepath"

	"vaulterp-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// POST /api/upload — expects a multipart form with a "file" field.
func UploadFileHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}

		if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not prepare upload directory")
		}

		// Random name so uploads never clobber each other.
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(cfg.UploadPath, name)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save file")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"fileName": name,
			"url":      c.BaseURL() + "/uploads/" + name,
		})
	}
}
