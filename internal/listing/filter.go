package listing

import (
	"strings"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// Filters produce new slices and preserve relative order, so applying them
// after Sort never disturbs the ordering. Filtering an already-filtered
// list again is a no-op.

// ExcludeArchived drops archived records.
func ExcludeArchived(items []models.Equipment) []models.Equipment {
	out := make([]models.Equipment, 0, len(items))
	for _, e := range items {
		if !e.IsArchived() {
			out = append(out, e)
		}
	}
	return out
}

// OnlyArchived keeps archived records only. Used by the dedicated archived
// view, which overrides the include-archived flag.
func OnlyArchived(items []models.Equipment) []models.Equipment {
	out := make([]models.Equipment, 0, len(items))
	for _, e := range items {
		if e.IsArchived() {
			out = append(out, e)
		}
	}
	return out
}

// FilterStatus keeps records with the given status. "all" or empty keeps
// everything.
func FilterStatus(items []models.Equipment, status string) []models.Equipment {
	if status == "" || status == models.StatusAll {
		return items
	}
	out := make([]models.Equipment, 0, len(items))
	for _, e := range items {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// FilterSearch keeps records whose name contains the query,
// case-insensitively. Empty query keeps everything.
func FilterSearch(items []models.Equipment, query string) []models.Equipment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]models.Equipment, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// ApplyView sorts and filters a list per a saved view: sort first, then the
// archive pass, then status and search.
func ApplyView(items []models.Equipment, v models.SavedView) []models.Equipment {
	out := Sort(items, ParseSortMode(v.Sort))
	if v.ArchivedOnly() {
		out = OnlyArchived(out)
	} else if !v.IncludeArchived {
		out = ExcludeArchived(out)
	}
	out = FilterStatus(out, v.Status)
	out = FilterSearch(out, v.Search)
	return out
}
