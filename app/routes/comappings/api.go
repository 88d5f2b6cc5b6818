package comappings

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/errs"
)

var validate = validator.New()

// UploadMappingsAPI parses an uploaded CO-mapping table and replaces the
// marksheet's mapping set
func UploadMappingsAPI(c *fiber.Ctx, db *sql.DB) error {
	marksheetID := c.Params("marksheetId")

	marksheet, err := database.GetMarksheetByID(db, marksheetID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch marksheet",
		})
	}
	if marksheet == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "Marksheet not found",
		})
	}

	raw, err := mappingContent(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}

	parsed, err := ParseMappingTable(raw)
	if err != nil {
		if errs.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to parse mapping table",
		})
	}

	uploaderID, _ := c.Locals("user_id").(string)
	hash := sha256.Sum256([]byte(raw))

	summary, err := ReplaceMappings(db, marksheet.CourseID, marksheetID, parsed.Mappings, uploaderID, hex.EncodeToString(hash[:]))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to store mappings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"stored":             summary.Stored,
			"skipped_zero_max":   parsed.SkippedZeroMax,
			"skipped_no_co":      parsed.SkippedNoCO,
			"skipped_unknown_co": summary.SkippedUnknownCO,
			"warnings":           append(parsed.Warnings, summary.Warnings...),
		},
		"message": "CO mappings replaced",
	})
}

// mappingContent extracts the raw CSV text from either a JSON body or a
// plain text/CSV upload
func mappingContent(c *fiber.Ctx) (string, error) {
	contentType := c.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req struct {
			Content string `json:"content" validate:"required"`
		}
		if err := c.BodyParser(&req); err != nil {
			return "", errs.NewValidation("invalid request body")
		}
		if err := validate.Struct(&req); err != nil {
			return "", errs.NewValidation("content is required")
		}
		return req.Content, nil
	}

	body := string(c.Body())
	if strings.TrimSpace(body) == "" {
		return "", errs.NewValidation("empty mapping upload")
	}
	return body, nil
}

// GetMappingsAPI returns the valid mapping rows for a marksheet
func GetMappingsAPI(c *fiber.Ctx, db *sql.DB) error {
	marksheetID := c.Params("marksheetId")

	mappings, err := GetValidMappings(db, marksheetID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch mappings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    mappings,
	})
}

// DeleteMappingsAPI removes all mappings and file metadata for a marksheet
func DeleteMappingsAPI(c *fiber.Ctx, db *sql.DB) error {
	marksheetID := c.Params("marksheetId")

	if err := DeleteMappings(db, marksheetID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to delete mappings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "CO mappings deleted",
	})
}
