package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursecatalog/backend/models"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Keep header order in sync with toRow.
var header = []string{
	"id",
	"name",
	"description",
	"instructor",
	"category",
	"difficulty",
	"duration",
	"price",
	"status",
	"createdDate",
}

// ParseFormat defaults to JSON, the format the catalog has always downloaded.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func FileName(snap models.Snapshot, format string) string {
	return fmt.Sprintf("courses_export_%s.%s", snap.ExportedAt, format)
}

func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

func Write(w io.Writer, snap models.Snapshot, format string) error {
	if format == FormatCSV {
		return WriteCSV(w, snap)
	}
	return WriteJSON(w, snap)
}

// WriteJSON writes the snapshot's courses as an indented JSON array.
func WriteJSON(w io.Writer, snap models.Snapshot) error {
	courses := snap.Courses
	if courses == nil {
		courses = []models.Course{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(courses)
}

func WriteCSV(w io.Writer, snap models.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range snap.Courses {
		if err := cw.Write(toRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(c models.Course) []string {
	return []string{
		strconv.FormatUint(uint64(c.ID), 10),
		c.Name,
		c.Description,
		c.Instructor,
		c.Category,
		c.Difficulty,
		strconv.Itoa(c.Duration),
		strconv.FormatFloat(c.Price, 'f', -1, 64),
		c.Status,
		c.CreatedDate,
	}
}
