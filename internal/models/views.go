package models

// StatusAll disables status filtering in a saved view.
const StatusAll = "all"

// SavedView is an immutable named preset of list configuration. Views are
// pure configuration: they are persisted client-side (CLI config file),
// never server-side.
type SavedView struct {
	Key   string `json:"key"`
	Label string `json:"label"`

	IncludeArchived bool   `json:"include_archived"`
	Sort            string `json:"sort"`
	Status          string `json:"status"`
	Search          string `json:"search,omitempty"`
}

// ArchivedOnly reports whether the view selects exclusively archived
// records, overriding the include flag.
func (v SavedView) ArchivedOnly() bool {
	return v.Key == "archived"
}
