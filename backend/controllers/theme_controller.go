package controllers

import (
	"sync"

	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ThemeController keeps the light/dark preference. It is UI state only and
// never touches the catalog.
type ThemeController struct {
	mu    sync.Mutex
	theme string
}

func NewThemeController(initial string) *ThemeController {
	if initial != "dark" {
		initial = "light"
	}
	return &ThemeController{theme: initial}
}

func (tc *ThemeController) GetTheme(c *fiber.Ctx) error {
	tc.mu.Lock()
	theme := tc.theme
	tc.mu.Unlock()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"theme": theme})
}

func (tc *ThemeController) ToggleTheme(c *fiber.Ctx) error {
	tc.mu.Lock()
	if tc.theme == "dark" {
		tc.theme = "light"
	} else {
		tc.theme = "dark"
	}
	theme := tc.theme
	tc.mu.Unlock()

	return utils.Message(c, fiber.StatusOK, "Switched to "+theme+" mode", fiber.Map{"theme": theme})
}
