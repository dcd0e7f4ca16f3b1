package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"coursecatalog/backend/config"
	"coursecatalog/backend/export"
	"coursecatalog/backend/metrics"
	"coursecatalog/backend/models"
	"coursecatalog/backend/store"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store   *store.CourseStore
	Cfg     *config.Config
	Logger  *log.Logger
	Metrics *metrics.Metrics
}

func NewCoursesController(s *store.CourseStore, cfg *config.Config, logger *log.Logger, m *metrics.Metrics) *CoursesController {
	return &CoursesController{Store: s, Cfg: cfg, Logger: logger, Metrics: m}
}

// GetCourses returns the filtered view with the tri-state of "select all" over it.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid filter")
	}

	courses, summary := cc.Store.View(filter)
	return utils.Success(c, fiber.StatusOK, courses, fiber.Map{
		"total":     len(courses),
		"filter":    filter,
		"selected":  summary.Size,
		"selection": summary.State,
	})
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, err := cc.Store.Get(id)
	if err != nil {
		return storeError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"course":   course,
		"selected": cc.Store.IsSelected(id),
		"form":     models.InputFromCourse(course),
	})
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input models.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Store.Create(input)
	if err != nil {
		return storeError(c, err)
	}

	cc.Logger.Printf("created course %d %q", course.ID, course.Name)
	cc.Metrics.Mutation("create", 1)
	return utils.Created(c, "Course created successfully!", course, cc.refresh())
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input models.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Store.Update(id, input)
	if err != nil {
		return storeError(c, err)
	}

	cc.Logger.Printf("updated course %d", course.ID)
	cc.Metrics.Mutation("update", 1)
	return utils.Message(c, fiber.StatusOK, "Course updated successfully!", course, cc.refresh())
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := cc.Store.Delete(id); err != nil {
		return storeError(c, err)
	}

	cc.Logger.Printf("deleted course %d", id)
	cc.Metrics.Mutation("delete", 1)
	return utils.Message(c, fiber.StatusOK, "Course deleted successfully!", fiber.Map{"id": id}, cc.refresh())
}

// BulkDelete removes the listed ids, or the current selection when none are given.
func (cc *CoursesController) BulkDelete(c *fiber.Ctx) error {
	var input struct {
		IDs []uint `json:"ids"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}

	var removed int
	if len(input.IDs) > 0 {
		removed = cc.Store.BulkDelete(input.IDs)
	} else {
		removed = cc.Store.DeleteSelected()
	}

	cc.Logger.Printf("bulk deleted %d courses", removed)
	cc.Metrics.Mutation("bulk_delete", removed)
	return utils.Message(c, fiber.StatusOK, bulkMessage(removed), fiber.Map{"removed": removed}, cc.refresh())
}

func (cc *CoursesController) GetStatistics(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.Store.Statistics())
}

// ExportCourses downloads the filtered view as JSON (default) or CSV.
func (cc *CoursesController) ExportCourses(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid filter")
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	snap := cc.Store.Export(filter)
	c.Set(fiber.HeaderContentType, export.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.FileName(snap, format)))
	c.Set("X-Export-Id", snap.ID)
	c.Set("X-Export-Count", strconv.Itoa(len(snap.Courses)))

	if err := export.Write(c, snap, format); err != nil {
		return utils.InternalServerError(c, "Could not export courses")
	}

	cc.Logger.Printf("exported %d courses as %s (%s)", len(snap.Courses), format, snap.ID)
	return nil
}

func (cc *CoursesController) refresh() fiber.Map {
	stats := cc.Store.Statistics()
	cc.Metrics.Observe(stats, cc.Store.SelectionSize())
	return fiber.Map{"stats": stats}
}

func bulkMessage(n int) string {
	if n == 1 {
		return "1 course deleted successfully!"
	}
	return fmt.Sprintf("%d courses deleted successfully!", n)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func parseFilter(c *fiber.Ctx) (models.CourseFilter, error) {
	var filter models.CourseFilter
	err := c.QueryParser(&filter)
	return filter, err
}

// storeError maps store errors onto response envelopes.
func storeError(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError
	var nf *store.NotFoundError
	switch {
	case errors.As(err, &verr):
		return utils.ValidationError(c, verr.Error(), verr.Messages())
	case errors.As(err, &nf):
		return utils.NotFound(c, nf.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
