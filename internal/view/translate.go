package view

// Translate resolves a user-facing string by key. Implementations may
// return "" to fall back to the built-in text.
type Translate func(key, fallback string) string

func (t Translate) text(key, fallback string) string {
	if t == nil {
		return fallback
	}
	if s := t(key, fallback); s != "" {
		return s
	}
	return fallback
}

// Translation keys understood by the views.
const (
	KeyEmpty        = "records.empty"
	KeyViewAll      = "records.viewAll"
	KeyPatient      = "records.patient"
	KeyStar         = "actions.star"
	KeyUnstar       = "actions.unstar"
	KeyViewRecord   = "actions.view"
	KeyEditRecord   = "actions.edit"
	KeyDownload     = "actions.download"
	KeyDeleteRecord = "actions.delete"
)
