// Package source supplies pages of diagrams to the list.
//
// A Catalog holds the full, ordered set of diagrams. A Pager serves it one
// page at a time the way a remote search backend would: each fetch may take
// a while, may be filtered by collection, and reports the total it found.
// Concurrent fetches of the same page share one load.
package source

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog file lists no diagrams.
var ErrEmptyCatalog = errors.New("catalog contains no diagrams")

// Diagram is one item of the list.
type Diagram struct {
	ID         string    `json:"id"          yaml:"id"`
	Label      string    `json:"label"       yaml:"label"`
	Summary    string    `json:"summary"     yaml:"summary"`
	Collection string    `json:"collection"  yaml:"collection"`
	UpdatedAt  time.Time `json:"updated_at"  yaml:"updated_at"`
}

// Key returns the diagram's stable identity.
func (d Diagram) Key() string {
	return d.ID
}

// Catalog is an ordered, immutable set of diagrams.
type Catalog struct {
	diagrams    []Diagram
	fingerprint string
}

func newCatalog(diagrams []Diagram) *Catalog {
	return &Catalog{diagrams: diagrams, fingerprint: fingerprint(diagrams)}
}

// fingerprint hashes the ordered diagram contents.
func fingerprint(diagrams []Diagram) string {
	h := sha256.New()
	for _, d := range diagrams {
		for _, field := range []string{d.ID, d.Label, d.Summary, d.Collection, d.UpdatedAt.UTC().Format(time.RFC3339Nano)} {
			_, _ = h.Write([]byte(field))
			_, _ = h.Write([]byte{0})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

type catalogFile struct {
	Diagrams []Diagram `yaml:"diagrams"`
}

// NewCatalog wraps diagrams. Duplicate IDs are rejected.
func NewCatalog(diagrams []Diagram) (*Catalog, error) {
	seen := make(map[string]struct{}, len(diagrams))
	for i, d := range diagrams {
		if d.ID == "" {
			return nil, fmt.Errorf("diagram %d has no id", i)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("duplicate diagram id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	out := make([]Diagram, len(diagrams))
	copy(out, diagrams)
	return newCatalog(out), nil
}

// LoadCatalog reads a YAML catalog of the form `diagrams: [...]`.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var file catalogFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(file.Diagrams) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}
	return NewCatalog(file.Diagrams)
}

// syntheticCollections cycles through generated diagrams.
var syntheticCollections = []string{"Investigations", "Leaks", "Sanctions", "Procurement"} //nolint:gochecknoglobals // Fixed fixture data.

// SyntheticCatalog generates n diagrams with IDs "1".."n".
func SyntheticCatalog(n int) *Catalog {
	if n < 0 {
		n = 0
	}
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	diagrams := make([]Diagram, n)
	for i := range diagrams {
		id := strconv.Itoa(i + 1)
		diagrams[i] = Diagram{
			ID:         id,
			Label:      "Network diagram " + id,
			Summary:    fmt.Sprintf("%d entities, %d links", 3+i%17, 2+i%23),
			Collection: syntheticCollections[i%len(syntheticCollections)],
			UpdatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
	}
	return newCatalog(diagrams)
}

// Fingerprint identifies the catalog's contents. Catalogs with the same
// diagrams in the same order share a fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Len returns the number of diagrams.
func (c *Catalog) Len() int {
	return len(c.diagrams)
}

// Collections returns the distinct collection names in catalog order.
func (c *Catalog) Collections() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range c.diagrams {
		if _, ok := seen[d.Collection]; ok {
			continue
		}
		seen[d.Collection] = struct{}{}
		out = append(out, d.Collection)
	}
	return out
}

// Filter returns the diagrams matching collection (case-insensitive).
// An empty collection matches everything.
func (c *Catalog) Filter(collection string) []Diagram {
	if collection == "" {
		return c.diagrams
	}
	var out []Diagram
	for _, d := range c.diagrams {
		if strings.EqualFold(d.Collection, collection) {
			out = append(out, d)
		}
	}
	return out
}
