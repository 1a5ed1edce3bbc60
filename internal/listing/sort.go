package listing

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// SortMode selects the list ordering.
type SortMode string

const (
	SortNameAsc        SortMode = "name_asc"
	SortStatusOps      SortMode = "status_ops"
	SortNextServiceAsc SortMode = "next_service_asc"
	SortUpdatedDesc    SortMode = "updated_desc"
	SortCreatedDesc    SortMode = "created_desc"
)

// DefaultSort is used when no mode (or an unknown one) is requested.
const DefaultSort = SortUpdatedDesc

// ParseSortMode maps a query value to a SortMode, falling back to
// DefaultSort for unknown input.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNameAsc, SortStatusOps, SortNextServiceAsc, SortUpdatedDesc, SortCreatedDesc:
		return SortMode(s)
	}
	return DefaultSort
}

// NeedsMemorySort reports whether the mode orders by a derived key the
// store cannot produce natively, requiring an in-memory re-sort after the
// query.
func NeedsMemorySort(m SortMode) bool {
	return m == SortStatusOps || m == SortNextServiceAsc
}

// statusPriority orders statuses for operational triage: maintenance
// first, then inactive, then active. Unknown statuses sort last.
func statusPriority(status string) int {
	switch status {
	case models.StatusMaintenance:
		return 0
	case models.StatusInactive:
		return 1
	case models.StatusActive:
		return 2
	}
	return 3
}

// cmpNextService orders two records by derived next-service timestamp
// ascending, with unknown (0) after every known value.
func cmpNextService(a, b models.Equipment) int {
	am, bm := NextServiceMillis(a), NextServiceMillis(b)
	switch {
	case am == bm:
		return 0
	case am == 0:
		return 1
	case bm == 0:
		return -1
	case am < bm:
		return -1
	}
	return 1
}

// Sort returns a new slice ordered by the given mode. The input is never
// mutated; comparisons on the derived next-service key are pure, so the
// derivation is safe to call repeatedly.
func Sort(items []models.Equipment, mode SortMode) []models.Equipment {
	out := slices.Clone(items)

	switch mode {
	case SortNameAsc:
		c := collate.New(language.Und)
		slices.SortStableFunc(out, func(a, b models.Equipment) int {
			return c.CompareString(a.Name, b.Name)
		})

	case SortStatusOps:
		c := collate.New(language.Und)
		slices.SortStableFunc(out, func(a, b models.Equipment) int {
			if d := statusPriority(a.Status) - statusPriority(b.Status); d != 0 {
				return d
			}
			if d := cmpNextService(a, b); d != 0 {
				return d
			}
			return c.CompareString(a.Name, b.Name)
		})

	case SortNextServiceAsc:
		slices.SortStableFunc(out, func(a, b models.Equipment) int {
			if d := cmpNextService(a, b); d != 0 {
				return d
			}
			// Among unknowns, most recently touched first.
			if NextServiceMillis(a) == 0 {
				return b.UpdatedAt.Compare(a.UpdatedAt)
			}
			return 0
		})

	case SortCreatedDesc:
		slices.SortStableFunc(out, func(a, b models.Equipment) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

	default: // SortUpdatedDesc
		slices.SortStableFunc(out, func(a, b models.Equipment) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}

	return out
}
