package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeBucket is the list of records filed under one type.
type TypeBucket struct {
	Type    RecordType `json:"type"`
	Records []Record   `json:"records"`
}

// TypeBuckets is an ordered mapping from record type to records. Order is
// whatever the caller supplies; a present key with no records is kept.
type TypeBuckets []TypeBucket

// BucketByType files records under their type, ordering buckets by the
// first appearance of each type.
func BucketByType(records []Record) TypeBuckets {
	index := make(map[RecordType]int)
	var out TypeBuckets
	for _, r := range records {
		i, ok := index[r.Type]
		if !ok {
			i = len(out)
			index[r.Type] = i
			out = append(out, TypeBucket{Type: r.Type})
		}
		out[i].Records = append(out[i].Records, r)
	}
	return out
}

// Get returns the bucket for t and whether it is present.
func (b TypeBuckets) Get(t RecordType) (TypeBucket, bool) {
	for _, bucket := range b {
		if bucket.Type == t {
			return bucket, true
		}
	}
	return TypeBucket{}, false
}

// UnmarshalYAML decodes a mapping of type to record list, keeping the
// document's key order.
func (b *TypeBuckets) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("type buckets: expected mapping, got node kind %d", n.Kind)
	}
	out := make(TypeBuckets, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var recs []Record
		if err := val.Decode(&recs); err != nil {
			return fmt.Errorf("type buckets: decode %q: %w", key.Value, err)
		}
		if recs == nil {
			recs = []Record{}
		}
		out = append(out, TypeBucket{Type: RecordType(key.Value), Records: recs})
	}
	*b = out
	return nil
}
