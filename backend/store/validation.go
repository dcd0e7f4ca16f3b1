package store

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"coursecatalog/backend/models"

	"github.com/go-playground/validator/v10"
)

// fieldOrder is the order violations are reported in, matching the course form.
var fieldOrder = []string{
	"name", "description", "category", "instructor",
	"difficulty", "duration", "price", "status",
}

var messages = map[string]map[string]string{
	"name":        {"": "Course name is required"},
	"description": {"": "Description is required"},
	"category": {
		"":         "Category is required",
		"category": "Category must be one of the catalog categories",
	},
	"instructor": {"": "Instructor is required"},
	"difficulty": {
		"":           "Difficulty is required",
		"difficulty": "Difficulty must be Beginner, Intermediate or Advanced",
	},
	"duration": {
		"":           "Duration must be at least 1 hour",
		"finite":     "Duration must be a number",
		"lte":        "Duration must be at most 10000 hours",
		"wholehours": "Duration must be a whole number of hours",
	},
	"price": {
		"":       "Price must be 0 or greater",
		"finite": "Price must be a number",
		"lte":    "Price must be at most 1000000",
	},
	"status": {
		"":       "Status is required",
		"status": "Status must be Active, Inactive or Draft",
	},
}

// Validator checks course inputs and reports all violations at once.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return models.IsDifficulty(fl.Field().String())
	})
	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return models.IsStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("wholehours", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	})

	return &Validator{v: v}
}

// Validate returns nil or a *ValidationError listing one message per failing field.
func (val *Validator) Validate(in models.CourseInput) error {
	found := map[string]string{}

	if err := val.v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			found[fe.Field()] = message(fe.Field(), fe.Tag())
		}
	}

	if _, bad := found["instructor"]; !bad {
		if msg := rosterViolation(in, found); msg != "" {
			found["instructor"] = msg
		}
	}

	if len(found) == 0 {
		return nil
	}

	verr := &ValidationError{}
	for _, field := range fieldOrder {
		if msg, ok := found[field]; ok {
			verr.Violations = append(verr.Violations, FieldViolation{Field: field, Message: msg})
		}
	}
	return verr
}

func rosterViolation(in models.CourseInput, found map[string]string) string {
	instructor := strings.TrimSpace(in.Instructor)
	if instructor == models.OtherInstructor {
		if strings.TrimSpace(in.OtherInstructor) == "" {
			return "Instructor name is required when choosing Other"
		}
		return ""
	}
	if _, bad := found["category"]; bad {
		return ""
	}
	if !models.IsRosterInstructor(in.Category, instructor) {
		return instructor + " does not teach " + in.Category
	}
	return ""
}

func message(field, tag string) string {
	byTag := messages[field]
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag[""]
}
