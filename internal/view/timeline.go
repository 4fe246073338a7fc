package view

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ehr/recordview/internal/domain/record"
)

// Hooks are record-id keyed callbacks. The timeline binds them into a
// Callbacks set per entry; a nil hook hides its button everywhere.
type Hooks struct {
	OnClick  func(recordID string)
	OnStar   func(recordID string)
	OnEdit   func(recordID string)
	OnDelete func(recordID string)
}

// Bind closes the hooks over one record id.
func (h Hooks) Bind(recordID string) Callbacks {
	var cb Callbacks
	if h.OnClick != nil {
		cb.OnClick = func() { h.OnClick(recordID) }
	}
	if h.OnStar != nil {
		cb.OnStar = func() { h.OnStar(recordID) }
	}
	if h.OnEdit != nil {
		cb.OnEdit = func() { h.OnEdit(recordID) }
	}
	if h.OnDelete != nil {
		cb.OnDelete = func() { h.OnDelete(recordID) }
	}
	return cb
}

type TimelineOptions struct {
	Hooks       Hooks
	ShowPatient bool
	Translate   Translate
	// Logger receives warnings about unparsable dates. Nil disables them.
	Logger *zerolog.Logger
}

type TimelineEntry struct {
	RecordID    string       `json:"recordId"`
	Title       string       `json:"title"`
	Starred     bool         `json:"starred"`
	TypeLabel   string       `json:"typeLabel"`
	TypeIcon    record.Icon  `json:"typeIcon"`
	Priority    *record.Icon `json:"priority,omitempty"`
	Time        string       `json:"time,omitempty"`
	Doctor      string       `json:"doctor"`
	Department  string       `json:"department,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      Badge        `json:"status"`
	Tags        []string     `json:"tags,omitempty"`
	TagOverflow string       `json:"tagOverflow,omitempty"`
	PatientName string       `json:"patientName,omitempty"`
	Actions     []Action     `json:"actions"`

	callbacks Callbacks
}

// Handle delivers a user interaction to the entry's callbacks.
func (e *TimelineEntry) Handle(t Target) error {
	return dispatch(t, e.Actions, e.callbacks)
}

type TimelineGroup struct {
	Date    string          `json:"date"`
	Header  string          `json:"header"`
	Valid   bool            `json:"valid"`
	Entries []TimelineEntry `json:"entries"`
}

type Timeline struct {
	Groups []TimelineGroup `json:"groups"`
}

// NewTimeline groups records by date, most recent day first.
func NewTimeline(records []record.Record, opts TimelineOptions) *Timeline {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	groups := record.GroupByDate(records)
	tl := &Timeline{Groups: make([]TimelineGroup, 0, len(groups))}
	for _, g := range groups {
		tg := TimelineGroup{
			Date:    g.Date,
			Header:  g.Date,
			Valid:   g.Valid,
			Entries: make([]TimelineEntry, 0, len(g.Records)),
		}
		if g.Valid {
			tg.Header = g.Parsed.Format("2006年01月02日")
		} else {
			logger.Warn().
				Str("date", g.Date).
				Int("records", len(g.Records)).
				Msg("unparsable record date, sorted last")
		}
		for _, r := range g.Records {
			tg.Entries = append(tg.Entries, newTimelineEntry(r, opts))
		}
		tl.Groups = append(tl.Groups, tg)
	}
	return tl
}

func newTimelineEntry(r record.Record, opts TimelineOptions) TimelineEntry {
	cb := opts.Hooks.Bind(r.ID)
	shown, hidden := record.VisibleTags(r.Tags)
	e := TimelineEntry{
		RecordID:    r.ID,
		Title:       r.Title,
		Starred:     r.IsStarred,
		TypeLabel:   record.TypeLabel(r.Type),
		TypeIcon:    record.TypeIcon(r.Type),
		Priority:    record.PriorityIcon(r.Priority),
		Time:        r.Time,
		Doctor:      r.Doctor,
		Department:  r.Department,
		Description: r.Description,
		Status:      statusBadge(r.Status),
		Tags:        shown,
		TagOverflow: record.OverflowLabel(hidden),
		Actions:     buildActions(r, cb, opts.Translate),
		callbacks:   cb,
	}
	if opts.ShowPatient {
		e.PatientName = r.PatientName
	}
	return e
}

// Entry finds the first entry for recordID.
func (t *Timeline) Entry(recordID string) (*TimelineEntry, bool) {
	for gi := range t.Groups {
		for ei := range t.Groups[gi].Entries {
			if t.Groups[gi].Entries[ei].RecordID == recordID {
				return &t.Groups[gi].Entries[ei], true
			}
		}
	}
	return nil, false
}

// Handle delivers an interaction on the entry for recordID.
func (t *Timeline) Handle(recordID string, target Target) error {
	e, ok := t.Entry(recordID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}
	return e.Handle(target)
}

// Len is the total number of entries across all groups.
func (t *Timeline) Len() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Entries)
	}
	return n
}
