// Package store owns the authoritative in-memory course collection and the
// bulk-selection set. It performs no I/O.
package store

import (
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"coursecatalog/backend/models"

	"github.com/google/uuid"
)

// CourseStore holds the course collection, the id counter and the selection set.
// Each exported method runs as a single critical section.
type CourseStore struct {
	mu        sync.RWMutex
	courses   []models.Course
	nextID    uint
	selected  map[uint]struct{}
	validator *Validator
	now       func() time.Time
}

type Option func(*CourseStore)

func WithClock(now func() time.Time) Option {
	return func(s *CourseStore) { s.now = now }
}

// WithCourses seeds the collection. The id counter continues after the highest id.
// Seeded records are trusted and not validated.
func WithCourses(courses []models.Course) Option {
	return func(s *CourseStore) {
		s.courses = slices.Clone(courses)
		for _, c := range courses {
			if c.ID >= s.nextID {
				s.nextID = c.ID + 1
			}
		}
	}
}

func WithSampleData() Option {
	return WithCourses(models.SampleCourses())
}

func New(opts ...Option) *CourseStore {
	s := &CourseStore{
		nextID:    1,
		selected:  map[uint]struct{}{},
		validator: NewValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CourseStore) Validate(in models.CourseInput) error {
	return s.validator.Validate(in)
}

func (s *CourseStore) Create(in models.CourseInput) (models.Course, error) {
	if err := s.validator.Validate(in); err != nil {
		return models.Course{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := applyInput(models.Course{
		ID:          s.nextID,
		CreatedDate: s.now().Format(models.DateLayout),
	}, in)
	s.nextID++
	s.courses = append(s.courses, course)
	return course, nil
}

func (s *CourseStore) Update(id uint, in models.CourseInput) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Course{}, &NotFoundError{ID: id}
	}
	if err := s.validator.Validate(in); err != nil {
		return models.Course{}, err
	}
	s.courses[i] = applyInput(s.courses[i], in)
	return s.courses[i], nil
}

// Delete removes the course and its selection. It returns *NotFoundError when
// the id is absent; the selection is cleared either way.
func (s *CourseStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selected, id)
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	s.courses = slices.Delete(s.courses, i, i+1)
	return nil
}

// BulkDelete removes every listed course and returns how many were present.
func (s *CourseStore) BulkDelete(ids []uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ids)
}

// DeleteSelected removes every selected course and empties the selection.
func (s *CourseStore) DeleteSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return s.removeLocked(ids)
}

func (s *CourseStore) removeLocked(ids []uint) int {
	doomed := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
		delete(s.selected, id)
	}
	before := len(s.courses)
	s.courses = slices.DeleteFunc(s.courses, func(c models.Course) bool {
		_, ok := doomed[c.ID]
		return ok
	})
	return before - len(s.courses)
}

func (s *CourseStore) Get(id uint) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Course{}, &NotFoundError{ID: id}
	}
	return s.courses[i], nil
}

func (s *CourseStore) NextID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

func (s *CourseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Filter returns the courses matching f in insertion order.
func (s *CourseStore) Filter(f models.CourseFilter) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(f)
}

func (s *CourseStore) filterLocked(f models.CourseFilter) []models.Course {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if matches(c, term, f) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c models.Course, term string, f models.CourseFilter) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && c.Difficulty != f.Difficulty {
		return false
	}
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.Instructor), term)
}

// VisibleIDs returns the ids of the filtered view.
func (s *CourseStore) VisibleIDs(f models.CourseFilter) []uint {
	return courseIDs(s.Filter(f))
}

func courseIDs(courses []models.Course) []uint {
	ids := make([]uint, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

// SelectAll adds or removes every id. Ids not in the collection are never added.
func (s *CourseStore) SelectAll(ids []uint, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if !checked {
			delete(s.selected, id)
			continue
		}
		if s.indexOf(id) >= 0 {
			s.selected[id] = struct{}{}
		}
	}
}

func (s *CourseStore) ToggleSelection(id uint, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !checked {
		delete(s.selected, id)
		return nil
	}
	if s.indexOf(id) < 0 {
		return &NotFoundError{ID: id}
	}
	s.selected[id] = struct{}{}
	return nil
}

func (s *CourseStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.selected)
}

func (s *CourseStore) SelectionSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

func (s *CourseStore) IsSelected(id uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order.
func (s *CourseStore) Selected() []uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedLocked()
}

func (s *CourseStore) selectedLocked() []uint {
	ids := make([]uint, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SelectionState is the tri-state of a "select all" control over visibleIDs.
func (s *CourseStore) SelectionState(visibleIDs []uint) models.SelectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectionStateLocked(visibleIDs)
}

// View returns the filtered courses and the selection summary over them,
// read under one lock.
func (s *CourseStore) View(f models.CourseFilter) ([]models.Course, models.SelectionSummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.filterLocked(f)
	return view, s.summaryLocked(courseIDs(view))
}

// Summary reports the selection against the view of f.
func (s *CourseStore) Summary(f models.CourseFilter) models.SelectionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaryLocked(courseIDs(s.filterLocked(f)))
}

func (s *CourseStore) summaryLocked(visibleIDs []uint) models.SelectionSummary {
	return models.SelectionSummary{
		Selected: s.selectedLocked(),
		Size:     len(s.selected),
		Visible:  len(visibleIDs),
		State:    s.selectionStateLocked(visibleIDs),
	}
}

func (s *CourseStore) selectionStateLocked(visibleIDs []uint) models.SelectionState {
	n := 0
	for _, id := range visibleIDs {
		if _, ok := s.selected[id]; ok {
			n++
		}
	}
	switch {
	case n == 0:
		return models.SelectionNone
	case n == len(visibleIDs):
		return models.SelectionAll
	default:
		return models.SelectionPartial
	}
}

// Statistics is computed over the full collection, not a filtered view.
func (s *CourseStore) Statistics() models.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	instructors := map[string]struct{}{}
	categories := map[string]struct{}{}
	var total float64
	for _, c := range s.courses {
		instructors[c.Instructor] = struct{}{}
		categories[c.Category] = struct{}{}
		total += c.Price
	}

	stats := models.Statistics{
		TotalCourses:     len(s.courses),
		TotalInstructors: len(instructors),
		TotalCategories:  len(categories),
	}
	if len(s.courses) > 0 {
		stats.AveragePrice = int(math.Floor(total/float64(len(s.courses)) + 0.5))
	}
	return stats
}

// Export snapshots the filtered view.
func (s *CourseStore) Export(f models.CourseFilter) models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		ID:         uuid.NewString(),
		ExportedAt: s.now().Format(models.DateLayout),
		Filter:     f,
		Courses:    s.filterLocked(f),
	}
}

func (s *CourseStore) indexOf(id uint) int {
	return slices.IndexFunc(s.courses, func(c models.Course) bool { return c.ID == id })
}

// applyInput copies validated input onto c, keeping ID and CreatedDate.
// Duration and Price are within their lte bounds here, so the conversions are exact.
func applyInput(c models.Course, in models.CourseInput) models.Course {
	c.Name = strings.TrimSpace(in.Name)
	c.Description = strings.TrimSpace(in.Description)
	c.Instructor = in.InstructorName()
	c.Category = in.Category
	c.Difficulty = in.Difficulty
	c.Duration = int(*in.Duration)
	c.Price = float64(*in.Price)
	c.Status = in.Status
	return c
}
