package view

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ehr/recordview/internal/domain/record"
)

func makeRecords(n int, typ record.RecordType) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.Record{
			ID:    fmt.Sprintf("%s-%d", typ, i),
			Title: fmt.Sprintf("%s %d", typ, i),
			Date:  fmt.Sprintf("2024-01-%02d", i+1),
			Type:  typ,
		}
	}
	return out
}

func TestNewSummary_PanelsFollowInputOrder(t *testing.T) {
	buckets := record.TypeBuckets{
		{Type: record.TypeImaging, Records: makeRecords(2, record.TypeImaging)},
		{Type: record.TypeConsultation, Records: makeRecords(1, record.TypeConsultation)},
	}
	s := NewSummary(buckets, SummaryOptions{})
	if len(s.Panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(s.Panels))
	}
	if s.Panels[0].Type != record.TypeImaging || s.Panels[1].Type != record.TypeConsultation {
		t.Errorf("unexpected panel order %s, %s", s.Panels[0].Type, s.Panels[1].Type)
	}
	if got := s.Panels[0].Heading(); got != "影像报告 (2)" {
		t.Errorf("unexpected heading %q", got)
	}
	if s.Panels[0].Icon.Name != "image" {
		t.Errorf("unexpected icon %+v", s.Panels[0].Icon)
	}
}

func TestNewSummary_EmptyBucket(t *testing.T) {
	s := NewSummary(record.TypeBuckets{{Type: record.TypeAllergy, Records: []record.Record{}}}, SummaryOptions{})
	p := s.Panels[0]
	if p.Count != 0 || len(p.Rows) != 0 {
		t.Errorf("expected empty panel, got %+v", p)
	}
	if p.EmptyText != "暂无记录" {
		t.Errorf("expected empty-state text, got %q", p.EmptyText)
	}
}

func TestNewSummary_AbsentTypesOmitted(t *testing.T) {
	s := NewSummary(record.TypeBuckets{}, SummaryOptions{})
	if len(s.Panels) != 0 {
		t.Errorf("expected no panels, got %d", len(s.Panels))
	}
}

func TestNewSummary_RowsAndStar(t *testing.T) {
	recs := makeRecords(2, record.TypeLabResult)
	recs[1].IsStarred = true
	s := NewSummary(record.TypeBuckets{{Type: record.TypeLabResult, Records: recs}}, SummaryOptions{})
	rows := s.Panels[0].Rows
	if rows[0].Starred || !rows[1].Starred {
		t.Errorf("unexpected star flags %+v", rows)
	}
	if rows[1].Title != recs[1].Title || rows[1].Date != recs[1].Date {
		t.Errorf("unexpected row %+v", rows[1])
	}
}

func TestNewSummary_OverflowRendersAllRows(t *testing.T) {
	s := NewSummary(record.TypeBuckets{
		{Type: record.TypeNursing, Records: makeRecords(5, record.TypeNursing)},
		{Type: record.TypePlan, Records: makeRecords(8, record.TypePlan)},
	}, SummaryOptions{})

	if s.Panels[0].ViewAll != "" {
		t.Errorf("5 records should not show view-all, got %q", s.Panels[0].ViewAll)
	}
	p := s.Panels[1]
	if len(p.Rows) != 8 {
		t.Errorf("expected all 8 rows, got %d", len(p.Rows))
	}
	if p.ViewAll != "查看全部 8 条记录" {
		t.Errorf("unexpected view-all text %q", p.ViewAll)
	}
}

func TestSummaryClick(t *testing.T) {
	var gotID string
	var gotType record.RecordType
	calls := 0
	s := NewSummary(record.TypeBuckets{
		{Type: record.TypeImaging, Records: makeRecords(1, record.TypeImaging)},
		{Type: record.TypeReferral, Records: makeRecords(2, record.TypeReferral)},
	}, SummaryOptions{OnRecordClick: func(id string, typ record.RecordType) {
		gotID, gotType = id, typ
		calls++
	}})

	if err := s.Click("referral-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 || gotID != "referral-1" || gotType != record.TypeReferral {
		t.Errorf("unexpected click (%d) %q %q", calls, gotID, gotType)
	}

	if err := s.Click("nope"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
	if calls != 1 {
		t.Errorf("unknown id must not invoke the callback")
	}
}

func TestSummaryClick_NoCallback(t *testing.T) {
	s := NewSummary(record.TypeBuckets{{Type: record.TypeImaging, Records: makeRecords(1, record.TypeImaging)}}, SummaryOptions{})
	if err := s.Click("imaging-0"); err != nil {
		t.Errorf("expected nil error without callback, got %v", err)
	}
}

func TestNewSummary_UnknownType(t *testing.T) {
	s := NewSummary(record.TypeBuckets{{Type: "unknown_type", Records: makeRecords(1, "unknown_type")}}, SummaryOptions{})
	p := s.Panels[0]
	if p.Label != "其他记录" || p.Icon != record.FallbackTypeIcon {
		t.Errorf("expected fallback label and icon, got %q %+v", p.Label, p.Icon)
	}
}
