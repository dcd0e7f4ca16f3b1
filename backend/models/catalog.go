package models

import (
	"errors"
	"slices"
	"strings"
)

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusDraft    = "Draft"

	// OtherInstructor marks an instructor outside the category roster.
	OtherInstructor = "other"
)

var Categories = []string{
	"Web Development", "Data Science", "Mobile Development", "Design",
	"Business", "Marketing", "Photography", "Music", "Languages", "Health & Fitness",
}

var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

var Statuses = []string{StatusActive, StatusInactive, StatusDraft}

var Instructors = map[string][]string{
	"Web Development":    {"Sarah Johnson", "John Smith", "Alex Chen"},
	"Data Science":       {"Dr. Michael Chen", "Dr. Lisa Wang", "Robert Kumar"},
	"Design":             {"Emma Rodriguez", "David Kim", "Sofia Martinez"},
	"Business":           {"James Wilson", "Rachel Green", "Mark Thompson"},
	"Marketing":          {"Jennifer Lee", "Chris Brown", "Maria Garcia"},
	"Mobile Development": {"Alex Chen", "Sarah Kim", "Robert Kumar"},
	"Photography":        {"Maria Garcia", "David Kim", "Sofia Martinez"},
	"Music":              {"James Wilson", "Rachel Green", "Chris Brown"},
	"Languages":          {"Dr. Lisa Wang", "Emma Rodriguez", "Jennifer Lee"},
	"Health & Fitness":   {"Mark Thompson", "Sarah Johnson", "John Smith"},
}

var descriptionTemplates = map[string]string{
	"Web Development":    "Learn modern web development techniques including {topic} with hands-on projects and real-world applications.",
	"Data Science":       "Master {topic} concepts and apply them to real-world data analysis and machine learning projects.",
	"Design":             "Develop your {topic} skills through practical exercises and industry best practices.",
	"Business":           "Enhance your {topic} knowledge with practical strategies and real-world case studies.",
	"Marketing":          "Master {topic} strategies to drive growth and engagement in today's digital landscape.",
	"Mobile Development": "Build mobile applications using {topic} with industry best practices and modern frameworks.",
	"Photography":        "Improve your {topic} skills with professional techniques and creative approaches.",
	"Music":              "Learn {topic} fundamentals and advanced techniques for musical excellence.",
	"Languages":          "Master {topic} through immersive learning and practical conversation practice.",
	"Health & Fitness":   "Achieve your {topic} goals with science-based methods and practical guidance.",
}

type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var durationEstimates = map[string]DurationRange{
	DifficultyBeginner:     {Min: 20, Max: 40},
	DifficultyIntermediate: {Min: 35, Max: 60},
	DifficultyAdvanced:     {Min: 50, Max: 80},
}

var ErrSuggestionInput = errors.New("course name and category are required")

func IsCategory(category string) bool {
	return slices.Contains(Categories, category)
}

func IsDifficulty(difficulty string) bool {
	return slices.Contains(Difficulties, difficulty)
}

func IsStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// IsRosterInstructor reports whether instructor teaches in category.
func IsRosterInstructor(category, instructor string) bool {
	return slices.Contains(Instructors[category], instructor)
}

// InstructorsFor returns the roster of category followed by the "other" option.
func InstructorsFor(category string) []string {
	roster := Instructors[category]
	out := make([]string, 0, len(roster)+1)
	out = append(out, roster...)
	return append(out, OtherInstructor)
}

// SuggestDescription fills the category template with the course name.
func SuggestDescription(name, category string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || category == "" {
		return "", ErrSuggestionInput
	}
	tmpl, ok := descriptionTemplates[category]
	if !ok {
		return "", errors.New("unknown category " + category)
	}
	return strings.Replace(tmpl, "{topic}", strings.ToLower(name), 1), nil
}

// DurationEstimate returns the suggested range of hours for a difficulty.
func DurationEstimate(difficulty string) (DurationRange, bool) {
	r, ok := durationEstimates[difficulty]
	return r, ok
}

// SampleCourses is the catalog shipped with a fresh instance.
func SampleCourses() []Course {
	return []Course{
		{
			ID:          1,
			Name:        "React Fundamentals",
			Description: "Learn the basics of React including components, state, and props",
			Instructor:  "Sarah Johnson",
			Category:    "Web Development",
			Duration:    40,
			Price:       149,
			Difficulty:  DifficultyBeginner,
			Status:      StatusActive,
			CreatedDate: "2024-09-01",
		},
		{
			ID:          2,
			Name:        "Advanced Python",
			Description: "Master advanced Python concepts including decorators, generators, and async programming",
			Instructor:  "Dr. Michael Chen",
			Category:    "Data Science",
			Duration:    60,
			Price:       199,
			Difficulty:  DifficultyAdvanced,
			Status:      StatusActive,
			CreatedDate: "2024-08-15",
		},
		{
			ID:          3,
			Name:        "UI/UX Design Principles",
			Description: "Comprehensive guide to user interface and user experience design",
			Instructor:  "Emma Rodriguez",
			Category:    "Design",
			Duration:    35,
			Price:       129,
			Difficulty:  DifficultyIntermediate,
			Status:      StatusActive,
			CreatedDate: "2024-08-20",
		},
	}
}
