package controllers

import (
	"fmt"

	"coursecatalog/backend/models"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CatalogController serves the fixed option lists and form suggestions.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

func (cc *CatalogController) GetCatalog(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"categories":      models.Categories,
		"difficulties":    models.Difficulties,
		"statuses":        models.Statuses,
		"instructors":     models.Instructors,
		"otherInstructor": models.OtherInstructor,
	})
}

func (cc *CatalogController) GetInstructors(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.InstructorsFor(c.Query("category")))
}

// GetSuggestions returns a generated description and/or a duration estimate.
func (cc *CatalogController) GetSuggestions(c *fiber.Ctx) error {
	result := fiber.Map{}

	description, descErr := models.SuggestDescription(c.Query("name"), c.Query("category"))
	if descErr == nil {
		result["description"] = description
	}

	difficulty := c.Query("difficulty")
	if estimate, ok := models.DurationEstimate(difficulty); ok {
		result["durationEstimate"] = estimate
		result["durationHint"] = formatEstimate(estimate, difficulty)
	}

	if len(result) == 0 {
		return utils.BadRequest(c, "Please enter course name and select category first")
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func formatEstimate(r models.DurationRange, difficulty string) string {
	return fmt.Sprintf("Suggestion: %d-%d hours for %s level", r.Min, r.Max, difficulty)
}
