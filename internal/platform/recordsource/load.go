package recordsource

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ehr/recordview/internal/domain/record"
)

// File is the on-disk fixture layout. Records is a flat list; Buckets is
// an optional pre-bucketed mapping for the summary view.
type File struct {
	Records []record.Record    `json:"records" yaml:"records"`
	Buckets record.TypeBuckets `json:"-" yaml:"buckets,omitempty"`
}

// LoadFile reads a .yaml, .yml or .json fixture. Records without an id
// are given a random one.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Decode(f, FormatJSON)
	case ".yaml", ".yml":
		return Decode(f, FormatYAML)
	}
	return nil, fmt.Errorf("records file %s: unsupported extension", path)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func Decode(r io.Reader, format Format) (*File, error) {
	var out File
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode json records: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&out); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml records: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown records format %q", format)
	}

	for i := range out.Records {
		if out.Records[i].ID == "" {
			out.Records[i].ID = uuid.NewString()
		}
	}
	for bi := range out.Buckets {
		recs := out.Buckets[bi].Records
		for i := range recs {
			if recs[i].ID == "" {
				recs[i].ID = uuid.NewString()
			}
		}
	}
	return &out, nil
}

// All returns Records followed by any bucketed record whose id is not
// already listed, so every record the views can show is in one set.
func (f *File) All() []record.Record {
	seen := make(map[string]bool, len(f.Records))
	out := make([]record.Record, 0, len(f.Records))
	for _, r := range f.Records {
		seen[r.ID] = true
		out = append(out, r)
	}
	for _, b := range f.Buckets {
		for _, r := range b.Records {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	return out
}
