package models

import (
	"math"
	"strconv"
	"strings"
)

// DateLayout is the format of Course.CreatedDate and export file dates.
const DateLayout = "2006-01-02"

type Course struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Duration    int     `json:"duration"` // hours
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	CreatedDate string  `json:"createdDate"`
}

// Upper bounds of CourseInput numbers. Keep in sync with the lte= tags below.
const (
	MaxDuration = 10000
	MaxPrice    = 1000000
)

// FormNumber decodes a JSON number or a string holding one, as submitted by forms.
// Text that is not a number decodes to NaN, which fails the finite check.
type FormNumber float64

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = math.NaN()
	}
	*n = FormNumber(f)
	return nil
}

// CourseInput holds raw form values for a create or update.
// Duration and Price are pointers so a missing value is not confused with zero.
type CourseInput struct {
	Name            string      `json:"name" validate:"notblank"`
	Description     string      `json:"description" validate:"notblank"`
	Category        string      `json:"category" validate:"required,category"`
	Instructor      string      `json:"instructor" validate:"notblank"`
	OtherInstructor string      `json:"otherInstructor,omitempty"`
	Difficulty      string      `json:"difficulty" validate:"required,difficulty"`
	Duration        *FormNumber `json:"duration" validate:"required,finite,gte=1,lte=10000,wholehours"`
	Price           *FormNumber `json:"price" validate:"required,finite,gte=0,lte=1000000"`
	Status          string      `json:"status" validate:"required,status"`
}

// InstructorName resolves the "other" sentinel to the free-text name, trimmed.
func (in CourseInput) InstructorName() string {
	instructor := strings.TrimSpace(in.Instructor)
	if instructor == OtherInstructor {
		return strings.TrimSpace(in.OtherInstructor)
	}
	return instructor
}

// InputFromCourse is used to prefill an edit form.
func InputFromCourse(c Course) CourseInput {
	duration := FormNumber(c.Duration)
	price := FormNumber(c.Price)
	in := CourseInput{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Instructor:  c.Instructor,
		Difficulty:  c.Difficulty,
		Duration:    &duration,
		Price:       &price,
		Status:      c.Status,
	}
	if !IsRosterInstructor(c.Category, c.Instructor) {
		in.Instructor = OtherInstructor
		in.OtherInstructor = c.Instructor
	}
	return in
}

// CourseFilter is the search/category/difficulty predicate of the current view.
// Empty fields do not constrain.
type CourseFilter struct {
	Search     string `json:"search" query:"search"`
	Category   string `json:"category" query:"category"`
	Difficulty string `json:"difficulty" query:"difficulty"`
}

type Statistics struct {
	TotalCourses     int `json:"totalCourses"`
	TotalInstructors int `json:"totalInstructors"`
	TotalCategories  int `json:"totalCategories"`
	AveragePrice     int `json:"avgPrice"`
}

type SelectionState string

// SelectionSummary describes the selection against one filtered view.
type SelectionSummary struct {
	Selected []uint         `json:"selected"`
	Size     int            `json:"size"`
	Visible  int            `json:"visible"`
	State    SelectionState `json:"state"`
}

const (
	SelectionNone    SelectionState = "none"
	SelectionPartial SelectionState = "partial"
	SelectionAll     SelectionState = "all"
)

// Snapshot is an export of the filtered view.
type Snapshot struct {
	ID         string       `json:"id"`
	ExportedAt string       `json:"exportedAt"`
	Filter     CourseFilter `json:"filter"`
	Courses    []Course     `json:"courses"`
}
