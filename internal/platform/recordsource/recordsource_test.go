package recordsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ehr/recordview/internal/domain/record"
)

const yamlFixture = `
records:
  - id: r1
    title: CBC
    date: "2024-03-01"
    type: lab_result
    status: completed
    priority: normal
    doctor: Dr. Wang
    tags: [blood, routine, fasting]
  - title: Chest CT
    date: "2024-03-02"
    type: imaging
    status: active
    priority: urgent
    doctor: Dr. Chen
    hasAttachments: true
    attachmentsCount: 2
buckets:
  vital_signs: []
  lab_result:
    - id: b1
      title: CBC
      date: "2024-03-01"
`

func TestDecode_YAML(t *testing.T) {
	f, err := Decode(strings.NewReader(yamlFixture), FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(f.Records))
	}
	if f.Records[0].ID != "r1" || f.Records[0].Type != record.TypeLabResult {
		t.Errorf("unexpected first record %+v", f.Records[0])
	}
	if len(f.Records[0].Tags) != 3 {
		t.Errorf("expected 3 tags, got %v", f.Records[0].Tags)
	}
	if f.Records[1].ID == "" {
		t.Error("expected generated id for record without one")
	}
	if !f.Records[1].HasAttachments || f.Records[1].AttachmentsCount != 2 {
		t.Errorf("unexpected attachments %+v", f.Records[1])
	}
	if len(f.Buckets) != 2 || f.Buckets[0].Type != record.TypeVitalSigns || f.Buckets[1].Type != record.TypeLabResult {
		t.Errorf("unexpected buckets %+v", f.Buckets)
	}
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"records":[{"id":"j1","title":"Flu shot","date":"2023-10-01","type":"vaccination","isStarred":true}]}`
	f, err := Decode(strings.NewReader(doc), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Records) != 1 || !f.Records[0].IsStarred || f.Records[0].Type != record.TypeVaccination {
		t.Errorf("unexpected records %+v", f.Records)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(strings.NewReader("{"), FormatJSON); err == nil {
		t.Error("expected json error")
	}
	if _, err := Decode(strings.NewReader("records: [:"), FormatYAML); err == nil {
		t.Error("expected yaml error")
	}
	if _, err := Decode(strings.NewReader(""), "toml"); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yml")
	if err := os.WriteFile(path, []byte(yamlFixture), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(f.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(f.Records))
	}

	txt := filepath.Join(dir, "records.txt")
	os.WriteFile(txt, []byte("x"), 0o600)
	if _, err := LoadFile(txt); err == nil {
		t.Error("expected unsupported extension error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStore(t *testing.T) {
	s := NewStore([]record.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	starred, err := s.ToggleStar("b")
	if err != nil || !starred {
		t.Fatalf("expected star on, got %v %v", starred, err)
	}
	starred, _ = s.ToggleStar("b")
	if starred {
		t.Error("expected star off after second toggle")
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 2 || s.List()[0].ID != "b" {
		t.Errorf("unexpected records after delete %+v", s.List())
	}
	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := s.ToggleStar("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := NewStore([]record.Record{{ID: "a"}})
	list := s.List()
	list[0].IsStarred = true
	r, _ := s.Get("a")
	if r.IsStarred {
		t.Error("mutating List result must not change the store")
	}
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore([]record.Record{{ID: "a"}})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ToggleStar("a")
		}()
		go func() {
			defer wg.Done()
			_ = s.List()
		}()
	}
	wg.Wait()
	r, _ := s.Get("a")
	if r.IsStarred {
		t.Error("expected an even number of toggles to leave the star off")
	}
}

func TestFile_All(t *testing.T) {
	f, err := Decode(strings.NewReader(yamlFixture), FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	all := f.All()
	if len(all) != 3 {
		t.Fatalf("expected records plus one bucket-only record, got %d", len(all))
	}
	if all[0].ID != "r1" || all[2].ID != "b1" {
		t.Errorf("unexpected order %+v", all)
	}

	f.Buckets[1].Records[0].ID = "r1"
	if got := len(f.All()); got != 2 {
		t.Errorf("expected duplicate id to be skipped, got %d", got)
	}
}
