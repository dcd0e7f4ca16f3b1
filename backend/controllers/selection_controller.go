package controllers

import (
	"coursecatalog/backend/metrics"
	"coursecatalog/backend/models"
	"coursecatalog/backend/store"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SelectionController struct {
	Store   *store.CourseStore
	Metrics *metrics.Metrics
}

func NewSelectionController(s *store.CourseStore, m *metrics.Metrics) *SelectionController {
	return &SelectionController{Store: s, Metrics: m}
}

type selectionInput struct {
	Checked bool `json:"checked"`
}

// GetSelection reports the selection against the filtered view given in the query.
func (sc *SelectionController) GetSelection(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid filter")
	}
	return utils.Success(c, fiber.StatusOK, sc.Store.Summary(filter))
}

func (sc *SelectionController) ToggleSelection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	var input selectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid filter")
	}

	if err := sc.Store.ToggleSelection(id, input.Checked); err != nil {
		return storeError(c, err)
	}
	return sc.respond(c, filter)
}

// SelectAll checks or unchecks every course of the current filtered view only.
func (sc *SelectionController) SelectAll(c *fiber.Ctx) error {
	var input selectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid filter")
	}

	sc.Store.SelectAll(sc.Store.VisibleIDs(filter), input.Checked)
	return sc.respond(c, filter)
}

func (sc *SelectionController) ClearSelection(c *fiber.Ctx) error {
	sc.Store.ClearSelection()
	return sc.respond(c, models.CourseFilter{})
}

// respond refreshes the gauges after a selection change and writes the summary.
func (sc *SelectionController) respond(c *fiber.Ctx, filter models.CourseFilter) error {
	summary := sc.Store.Summary(filter)
	sc.Metrics.Observe(sc.Store.Statistics(), summary.Size)
	return utils.Success(c, fiber.StatusOK, summary)
}
