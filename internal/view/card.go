package view

import "github.com/ehr/recordview/internal/domain/record"

// DescriptionLines is the line clamp applied to descriptions.
const DescriptionLines = 2

// Badge is a label drawn with a color class.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

func statusBadge(s record.Status) Badge {
	return Badge{Label: record.StatusLabel(s), Class: record.StatusColorClass(s)}
}

type CardOptions struct {
	Compact     bool
	ShowPatient bool
	Callbacks   Callbacks
	Translate   Translate
}

// Card is the view model of a single record. Compact cards carry only
// the dense single-line fields and no action row.
type Card struct {
	RecordID string       `json:"recordId"`
	Compact  bool         `json:"compact"`
	Title    string       `json:"title"`
	Date     string       `json:"date"`
	Doctor   string       `json:"doctor,omitempty"`
	Starred  bool         `json:"starred"`
	Status   Badge        `json:"status"`
	Priority *record.Icon `json:"priority,omitempty"`

	TypeLabel        string       `json:"typeLabel,omitempty"`
	TypeIcon         *record.Icon `json:"typeIcon,omitempty"`
	Description      string       `json:"description,omitempty"`
	DescriptionLines int          `json:"descriptionLines,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
	TagOverflow      string       `json:"tagOverflow,omitempty"`
	PatientLabel     string       `json:"patientLabel,omitempty"`
	PatientName      string       `json:"patientName,omitempty"`
	Actions          []Action     `json:"actions,omitempty"`

	callbacks Callbacks
}

func NewCard(r record.Record, opts CardOptions) *Card {
	c := &Card{
		RecordID:  r.ID,
		Compact:   opts.Compact,
		Title:     r.Title,
		Date:      r.Date,
		Starred:   r.IsStarred,
		Status:    statusBadge(r.Status),
		callbacks: opts.Callbacks,
	}
	if opts.Compact {
		c.Doctor = r.Doctor
		c.Priority = record.PriorityIcon(r.Priority)
		return c
	}

	c.TypeLabel = record.TypeLabel(r.Type)
	icon := record.TypeIcon(r.Type)
	c.TypeIcon = &icon
	c.Description = r.Description
	c.DescriptionLines = DescriptionLines
	shown, hidden := record.VisibleTags(r.Tags)
	c.Tags = shown
	c.TagOverflow = record.OverflowLabel(hidden)
	if opts.ShowPatient && r.PatientName != "" {
		c.PatientLabel = opts.Translate.text(KeyPatient, "患者")
		c.PatientName = r.PatientName
	}
	c.Actions = buildActions(r, opts.Callbacks, opts.Translate)
	return c
}

// HasAction reports whether the card shows a button for t.
func (c *Card) HasAction(t Target) bool {
	return hasAction(c.Actions, t)
}

// Handle delivers a user interaction to the card's callbacks.
func (c *Card) Handle(t Target) error {
	return dispatch(t, c.Actions, c.callbacks)
}
