package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

func names(items []models.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortStatusOps, ParseSortMode("status_ops"))
	assert.Equal(t, DefaultSort, ParseSortMode(""))
	assert.Equal(t, DefaultSort, ParseSortMode("nope"))
}

func TestNeedsMemorySort(t *testing.T) {
	assert.True(t, NeedsMemorySort(SortStatusOps))
	assert.True(t, NeedsMemorySort(SortNextServiceAsc))
	assert.False(t, NeedsMemorySort(SortNameAsc))
	assert.False(t, NeedsMemorySort(SortUpdatedDesc))
	assert.False(t, NeedsMemorySort(SortCreatedDesc))
}

func TestSort_NameAsc(t *testing.T) {
	in := []models.Equipment{
		{Name: "charlie"},
		{Name: "Alpha"},
		{Name: "bravo"},
	}
	out := Sort(in, SortNameAsc)
	assert.Equal(t, []string{"Alpha", "bravo", "charlie"}, names(out))
}

func TestSort_StatusOps_StatusBeforeDates(t *testing.T) {
	in := []models.Equipment{
		// Active asset due tomorrow still sorts after a maintenance asset
		// with no derivable date at all.
		{Name: "active-due-soon", Status: models.StatusActive, NextServiceDate: "2024-01-02"},
		{Name: "maintenance-unknown", Status: models.StatusMaintenance},
		{Name: "inactive", Status: models.StatusInactive, NextServiceDate: "2024-01-01"},
	}
	out := Sort(in, SortStatusOps)
	assert.Equal(t, []string{"maintenance-unknown", "inactive", "active-due-soon"}, names(out))
}

func TestSort_StatusOps_TieBreaks(t *testing.T) {
	in := []models.Equipment{
		{Name: "later", Status: models.StatusMaintenance, NextServiceDate: "2024-02-01"},
		{Name: "earlier", Status: models.StatusMaintenance, NextServiceDate: "2024-01-01"},
		{Name: "b-same-day", Status: models.StatusMaintenance, NextServiceDate: "2024-01-01"},
		{Name: "a-same-day", Status: models.StatusMaintenance, NextServiceDate: "2024-01-01"},
	}
	out := Sort(in, SortStatusOps)
	require.Len(t, out, 4)
	// Earlier date first; equal dates fall back to name.
	assert.Equal(t, []string{"a-same-day", "b-same-day", "earlier", "later"}, names(out))
}

func TestSort_NextServiceAsc_UnknownLast(t *testing.T) {
	now := time.Now()
	in := []models.Equipment{
		{Name: "unknown-fresh", UpdatedAt: now},
		{Name: "due-late", NextServiceDate: "2025-12-01", UpdatedAt: now.Add(-time.Hour)},
		{Name: "unknown-stale", UpdatedAt: now.Add(-24 * time.Hour)},
		{Name: "due-early", NextServiceDate: "2024-01-01"},
	}
	out := Sort(in, SortNextServiceAsc)
	assert.Equal(t, []string{"due-early", "due-late", "unknown-fresh", "unknown-stale"}, names(out))
}

func TestSort_UpdatedDescAndCreatedDesc(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []models.Equipment{
		{Name: "old", UpdatedAt: t0, CreatedAt: t0.Add(time.Hour)},
		{Name: "new", UpdatedAt: t0.Add(time.Hour), CreatedAt: t0},
	}
	assert.Equal(t, []string{"new", "old"}, names(Sort(in, SortUpdatedDesc)))
	assert.Equal(t, []string{"old", "new"}, names(Sort(in, SortCreatedDesc)))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := []models.Equipment{
		{Name: "b", Status: models.StatusActive},
		{Name: "a", Status: models.StatusMaintenance},
	}
	_ = Sort(in, SortStatusOps)
	assert.Equal(t, []string{"b", "a"}, names(in))
}
