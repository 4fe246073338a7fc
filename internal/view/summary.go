package view

import (
	"fmt"
	"strings"

	"github.com/ehr/recordview/internal/domain/record"
)

// SummaryPreviewLimit is the bucket size above which a panel carries the
// "view all" affordance. All rows are still listed.
const SummaryPreviewLimit = 5

type SummaryOptions struct {
	OnRecordClick func(recordID string, t record.RecordType)
	Translate     Translate
}

type SummaryRow struct {
	RecordID string `json:"recordId"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Starred  bool   `json:"starred"`
}

// Panel lists the records of one type.
type Panel struct {
	Type      record.RecordType `json:"type"`
	Label     string            `json:"label"`
	Icon      record.Icon       `json:"icon"`
	Count     int               `json:"count"`
	Rows      []SummaryRow      `json:"rows"`
	EmptyText string            `json:"emptyText,omitempty"`
	// ViewAll is the overflow affordance text. It is not wired to anything.
	ViewAll string `json:"viewAll,omitempty"`

	onClick func(string, record.RecordType)
}

// Heading is the panel title with the record count, e.g. "检验报告 (3)".
func (p Panel) Heading() string {
	return fmt.Sprintf("%s (%d)", p.Label, p.Count)
}

// Click forwards a row click as (recordID, panel type). It reports
// whether the panel lists that record.
func (p Panel) Click(recordID string) bool {
	for _, row := range p.Rows {
		if row.RecordID != recordID {
			continue
		}
		if p.onClick != nil {
			p.onClick(recordID, p.Type)
		}
		return true
	}
	return false
}

type Summary struct {
	Panels []Panel `json:"panels"`
}

// NewSummary builds one panel per bucket, in bucket order.
func NewSummary(buckets record.TypeBuckets, opts SummaryOptions) *Summary {
	s := &Summary{Panels: make([]Panel, 0, len(buckets))}
	for _, b := range buckets {
		p := Panel{
			Type:    b.Type,
			Label:   record.TypeLabel(b.Type),
			Icon:    record.TypeIcon(b.Type),
			Count:   len(b.Records),
			Rows:    make([]SummaryRow, 0, len(b.Records)),
			onClick: opts.OnRecordClick,
		}
		for _, r := range b.Records {
			p.Rows = append(p.Rows, SummaryRow{
				RecordID: r.ID,
				Title:    r.Title,
				Date:     r.Date,
				Starred:  r.IsStarred,
			})
		}
		if p.Count == 0 {
			p.EmptyText = opts.Translate.text(KeyEmpty, "暂无记录")
		}
		if p.Count > SummaryPreviewLimit {
			tmpl := opts.Translate.text(KeyViewAll, "查看全部 {count} 条记录")
			p.ViewAll = strings.ReplaceAll(tmpl, "{count}", fmt.Sprint(p.Count))
		}
		s.Panels = append(s.Panels, p)
	}
	return s
}

// Click forwards a row click to the first panel listing recordID.
func (s *Summary) Click(recordID string) error {
	for _, p := range s.Panels {
		if p.Click(recordID) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
}
