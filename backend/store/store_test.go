package store

import (
	"errors"
	"testing"
	"time"

	"coursecatalog/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC) }

func newSampleStore() *CourseStore {
	return New(WithSampleData(), WithClock(fixedNow))
}

func TestCreateAssignsNextID(t *testing.T) {
	s := newSampleStore()
	before := s.Statistics().TotalCourses
	nextID := s.NextID()

	course, err := s.Create(validInput())
	require.NoError(t, err)

	assert.Equal(t, nextID, course.ID)
	assert.Equal(t, nextID+1, s.NextID())
	assert.Equal(t, before+1, s.Statistics().TotalCourses)
	assert.Equal(t, "2024-10-05", course.CreatedDate)
	assert.Equal(t, "Emma Rodriguez", course.Instructor)
	assert.Equal(t, 10, course.Duration)
	assert.Equal(t, 50.0, course.Price)
}

func TestCreateInvalidLeavesCollectionUnchanged(t *testing.T) {
	s := newSampleStore()
	nextID := s.NextID()

	_, err := s.Create(models.CourseInput{Name: "Only a name"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, nextID, s.NextID())
}

func TestCreateRejectsOutOfRangeNumbers(t *testing.T) {
	s := newSampleStore()
	before := s.Statistics()

	in := validInput()
	in.Duration = ptr(1e20)
	_, err := s.Create(in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.Price = ptr(1e300)
	_, err = s.Create(in)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, before, s.Statistics())
	for _, c := range s.Filter(models.CourseFilter{}) {
		assert.GreaterOrEqual(t, c.Duration, 1)
	}
}

func TestCreateAtUpperBounds(t *testing.T) {
	s := New()
	in := validInput()
	in.Duration = ptr(models.MaxDuration)
	in.Price = ptr(models.MaxPrice)

	course, err := s.Create(in)
	require.NoError(t, err)
	assert.Equal(t, models.MaxDuration, course.Duration)
	assert.Equal(t, float64(models.MaxPrice), course.Price)
	assert.Equal(t, models.MaxPrice, s.Statistics().AveragePrice)
}

func TestCreateTrimsRosterInstructor(t *testing.T) {
	s := New()
	in := validInput()
	in.Instructor = " Emma Rodriguez "

	course, err := s.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Emma Rodriguez", course.Instructor)
}

func TestCreateStoresOtherInstructorName(t *testing.T) {
	s := New()
	in := validInput()
	in.Instructor = models.OtherInstructor
	in.OtherInstructor = "  Guest Lecturer "

	course, err := s.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Guest Lecturer", course.Instructor)
	assert.Equal(t, uint(1), course.ID)
}

func TestIDsAreNeverReused(t *testing.T) {
	s := New()
	seen := map[uint]bool{}

	for i := 0; i < 5; i++ {
		c, err := s.Create(validInput())
		require.NoError(t, err)
		assert.False(t, seen[c.ID], "id %d reused", c.ID)
		seen[c.ID] = true
	}
	require.NoError(t, s.Delete(5))
	require.NoError(t, s.Delete(2))

	c, err := s.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, uint(6), c.ID)

	ids := map[uint]bool{}
	for _, c := range s.Filter(models.CourseFilter{}) {
		assert.False(t, ids[c.ID])
		ids[c.ID] = true
	}
}

func TestUpdateKeepsIdentityAndCreatedDate(t *testing.T) {
	s := newSampleStore()
	in := validInput()
	in.Name = "Design Systems"

	updated, err := s.Update(1, in)
	require.NoError(t, err)
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, "2024-09-01", updated.CreatedDate)
	assert.Equal(t, "Design Systems", updated.Name)
	assert.Equal(t, "Design", updated.Category)

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissingCourse(t *testing.T) {
	s := newSampleStore()
	_, err := s.Update(99, validInput())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, uint(99), nf.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInvalidLeavesRecordUntouched(t *testing.T) {
	s := newSampleStore()
	original, err := s.Get(2)
	require.NoError(t, err)

	in := validInput()
	in.Description = ""
	_, err = s.Update(2, in)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestDeleteIsStrictButClearsSelection(t *testing.T) {
	s := newSampleStore()
	require.NoError(t, s.ToggleSelection(2, true))

	require.NoError(t, s.Delete(2))
	assert.False(t, s.IsSelected(2))
	assert.Equal(t, 2, s.Len())

	err := s.Delete(2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestBulkDelete(t *testing.T) {
	s := newSampleStore()
	s.SelectAll([]uint{1, 2}, true)

	removed := s.BulkDelete([]uint{1, 2})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.SelectionSize())
}

func TestBulkDeleteCountsOnlyPresentCourses(t *testing.T) {
	s := newSampleStore()
	s.SelectAll([]uint{3}, true)

	removed := s.BulkDelete([]uint{1, 1, 42})
	assert.Equal(t, 1, removed)
	assert.Equal(t, []uint{3}, s.Selected())
}

func TestDeleteSelected(t *testing.T) {
	s := newSampleStore()
	require.NoError(t, s.ToggleSelection(1, true))
	require.NoError(t, s.ToggleSelection(3, true))

	assert.Equal(t, 2, s.DeleteSelected())
	assert.Equal(t, 0, s.SelectionSize())

	remaining := s.Filter(models.CourseFilter{})
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(2), remaining[0].ID)
	assert.Equal(t, 0, s.DeleteSelected())
}

func TestSelectionNeverDangles(t *testing.T) {
	s := newSampleStore()
	s.SelectAll([]uint{1, 2, 3, 77}, true)
	assert.Equal(t, []uint{1, 2, 3}, s.Selected())

	require.NoError(t, s.Delete(1))
	s.BulkDelete([]uint{3})

	for _, id := range s.Selected() {
		_, err := s.Get(id)
		assert.NoError(t, err, "selected id %d is not in the collection", id)
	}
	assert.Equal(t, []uint{2}, s.Selected())
}

func TestToggleSelection(t *testing.T) {
	s := newSampleStore()

	assert.ErrorIs(t, s.ToggleSelection(9, true), ErrNotFound)
	assert.NoError(t, s.ToggleSelection(9, false))

	require.NoError(t, s.ToggleSelection(1, true))
	assert.True(t, s.IsSelected(1))
	require.NoError(t, s.ToggleSelection(1, false))
	assert.False(t, s.IsSelected(1))

	s.SelectAll([]uint{1, 2}, true)
	s.ClearSelection()
	assert.Equal(t, 0, s.SelectionSize())
}

func TestSelectAllOnlyAffectsVisibleCourses(t *testing.T) {
	s := newSampleStore()
	view := models.CourseFilter{Category: "Design"}

	s.SelectAll(s.VisibleIDs(view), true)
	assert.Equal(t, []uint{3}, s.Selected())

	require.NoError(t, s.ToggleSelection(1, true))
	s.SelectAll(s.VisibleIDs(view), false)
	assert.Equal(t, []uint{1}, s.Selected())
}

func TestSelectionState(t *testing.T) {
	s := newSampleStore()
	visible := []uint{1, 2}

	assert.Equal(t, models.SelectionNone, s.SelectionState(visible))

	require.NoError(t, s.ToggleSelection(1, true))
	assert.Equal(t, models.SelectionPartial, s.SelectionState(visible))

	require.NoError(t, s.ToggleSelection(2, true))
	assert.Equal(t, models.SelectionAll, s.SelectionState(visible))

	// selections outside the view do not count
	assert.Equal(t, models.SelectionNone, s.SelectionState([]uint{3}))
	assert.Equal(t, models.SelectionNone, s.SelectionState(nil))
}

func TestView(t *testing.T) {
	s := newSampleStore()
	f := models.CourseFilter{Category: "Design"}

	courses, summary := s.View(f)
	require.Len(t, courses, 1)
	assert.Equal(t, uint(3), courses[0].ID)
	assert.Equal(t, models.SelectionNone, summary.State)

	require.NoError(t, s.ToggleSelection(1, true))
	require.NoError(t, s.ToggleSelection(3, true))
	_, summary = s.View(f)
	assert.Equal(t, models.SelectionSummary{
		Selected: []uint{1, 3},
		Size:     2,
		Visible:  1,
		State:    models.SelectionAll,
	}, summary)

	assert.Equal(t, summary, s.Summary(f))
	assert.Equal(t, models.SelectionPartial, s.Summary(models.CourseFilter{}).State)
}

func TestFilter(t *testing.T) {
	s := newSampleStore()

	testCases := []struct {
		name   string
		filter models.CourseFilter
		want   []uint
	}{
		{"no constraint", models.CourseFilter{}, []uint{1, 2, 3}},
		{"search by name", models.CourseFilter{Search: "python"}, []uint{2}},
		{"search by instructor", models.CourseFilter{Search: "EMMA"}, []uint{3}},
		{"search by description", models.CourseFilter{Search: "components"}, []uint{1}},
		{"category", models.CourseFilter{Category: "Web Development"}, []uint{1}},
		{"difficulty", models.CourseFilter{Difficulty: models.DifficultyAdvanced}, []uint{2}},
		{"combined mismatch", models.CourseFilter{Search: "python", Category: "Design"}, []uint{}},
		{"category is exact", models.CourseFilter{Category: "design"}, []uint{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := []uint{}
			for _, c := range s.Filter(tc.filter) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterIsRepeatable(t *testing.T) {
	s := newSampleStore()
	f := models.CourseFilter{Search: "a"}
	assert.Equal(t, s.Filter(f), s.Filter(f))
}

func TestFilterReturnsCopies(t *testing.T) {
	s := newSampleStore()
	view := s.Filter(models.CourseFilter{})
	view[0].Name = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "React Fundamentals", got.Name)
}

func TestStatistics(t *testing.T) {
	s := newSampleStore()
	assert.Equal(t, models.Statistics{
		TotalCourses:     3,
		TotalInstructors: 3,
		TotalCategories:  3,
		AveragePrice:     159,
	}, s.Statistics())

	in := validInput()
	in.Price = ptr(0)
	_, err := s.Create(in)
	require.NoError(t, err)

	stats := s.Statistics()
	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 3, stats.TotalInstructors)
	assert.Equal(t, 3, stats.TotalCategories)
	assert.Equal(t, 119, stats.AveragePrice)
}

func TestStatisticsRoundsHalfUp(t *testing.T) {
	s := New()
	for _, price := range []float64{10, 11} {
		in := validInput()
		in.Price = ptr(price)
		_, err := s.Create(in)
		require.NoError(t, err)
	}
	assert.Equal(t, 11, s.Statistics().AveragePrice)
}

func TestStatisticsEmptyCollection(t *testing.T) {
	assert.Equal(t, models.Statistics{}, New().Statistics())
}

func TestExport(t *testing.T) {
	s := newSampleStore()
	f := models.CourseFilter{Difficulty: models.DifficultyBeginner}

	snap := s.Export(f)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "2024-10-05", snap.ExportedAt)
	assert.Equal(t, f, snap.Filter)
	require.Len(t, snap.Courses, 1)
	assert.Equal(t, models.SampleCourses()[0], snap.Courses[0])
	assert.Equal(t, 3, s.Len())

	assert.NotEqual(t, snap.ID, s.Export(f).ID)
}

func TestWithCoursesContinuesCounter(t *testing.T) {
	s := New(WithCourses([]models.Course{{ID: 10, Name: "a"}, {ID: 4, Name: "b"}}))
	assert.Equal(t, uint(11), s.NextID())
	assert.Equal(t, uint(1), New().NextID())
	assert.Equal(t, uint(4), newSampleStore().NextID())
}
