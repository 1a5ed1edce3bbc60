package listing

import "github.com/EduardoVisconti/AssetOps/internal/models"

// BuiltinViews are the named list presets. They are configuration only;
// which one a client last used is remembered client-side.
func BuiltinViews() []models.SavedView {
	return []models.SavedView{
		{
			Key:             "operational",
			Label:           "Operational",
			IncludeArchived: false,
			Sort:            string(SortStatusOps),
			Status:          models.StatusAll,
		},
		{
			Key:             "maintenance_focus",
			Label:           "Maintenance focus",
			IncludeArchived: false,
			Sort:            string(SortNextServiceAsc),
			Status:          models.StatusMaintenance,
		},
		{
			Key:             "archived",
			Label:           "Archived",
			IncludeArchived: true,
			Sort:            string(SortUpdatedDesc),
			Status:          models.StatusAll,
		},
	}
}

// ViewByKey resolves a built-in view by key.
func ViewByKey(key string) (models.SavedView, bool) {
	for _, v := range BuiltinViews() {
		if v.Key == key {
			return v, true
		}
	}
	return models.SavedView{}, false
}
