package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

func archived(name string) models.Equipment {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return models.Equipment{Name: name, Status: models.StatusInactive, ArchivedAt: &at}
}

func TestIsArchivedPredicate(t *testing.T) {
	assert.False(t, models.Equipment{}.IsArchived())
	assert.True(t, archived("x").IsArchived())
}

func TestExcludeArchived_Idempotent(t *testing.T) {
	in := []models.Equipment{
		{Name: "live-1"},
		archived("gone"),
		{Name: "live-2"},
	}
	once := ExcludeArchived(in)
	assert.Equal(t, []string{"live-1", "live-2"}, names(once))
	assert.Equal(t, once, ExcludeArchived(once))
}

func TestOnlyArchived(t *testing.T) {
	in := []models.Equipment{{Name: "live"}, archived("gone")}
	assert.Equal(t, []string{"gone"}, names(OnlyArchived(in)))
}

func TestFilterStatus(t *testing.T) {
	in := []models.Equipment{
		{Name: "a", Status: models.StatusActive},
		{Name: "m", Status: models.StatusMaintenance},
	}
	assert.Equal(t, []string{"m"}, names(FilterStatus(in, models.StatusMaintenance)))
	assert.Equal(t, []string{"a", "m"}, names(FilterStatus(in, models.StatusAll)))
	assert.Equal(t, []string{"a", "m"}, names(FilterStatus(in, "")))
}

func TestFilterSearch(t *testing.T) {
	in := []models.Equipment{
		{Name: "Hydraulic Dock Lift"},
		{Name: "Forklift 3"},
		{Name: "Conveyor"},
	}
	assert.Equal(t, []string{"Hydraulic Dock Lift", "Forklift 3"}, names(FilterSearch(in, "lift")))
	assert.Equal(t, []string{"Hydraulic Dock Lift", "Forklift 3", "Conveyor"}, names(FilterSearch(in, "  ")))
}

func TestFiltersPreserveOrder(t *testing.T) {
	in := []models.Equipment{
		{Name: "z", Status: models.StatusActive},
		{Name: "a", Status: models.StatusActive},
		{Name: "m", Status: models.StatusMaintenance},
	}
	out := FilterStatus(FilterSearch(in, ""), models.StatusActive)
	assert.Equal(t, []string{"z", "a"}, names(out))
}

func TestApplyView_ArchivedOverridesIncludeFlag(t *testing.T) {
	v, ok := ViewByKey("archived")
	assert.True(t, ok)
	in := []models.Equipment{{Name: "live"}, archived("gone")}
	assert.Equal(t, []string{"gone"}, names(ApplyView(in, v)))
}

func TestApplyView_MaintenanceFocus(t *testing.T) {
	v, ok := ViewByKey("maintenance_focus")
	assert.True(t, ok)
	in := []models.Equipment{
		{Name: "active", Status: models.StatusActive},
		{Name: "due-later", Status: models.StatusMaintenance, NextServiceDate: "2024-06-01"},
		archived("gone"),
		{Name: "due-first", Status: models.StatusMaintenance, NextServiceDate: "2024-01-01"},
	}
	assert.Equal(t, []string{"due-first", "due-later"}, names(ApplyView(in, v)))
}

func TestBuiltinViews(t *testing.T) {
	assert.Len(t, BuiltinViews(), 3)
	_, ok := ViewByKey("nope")
	assert.False(t, ok)
}
