package drawing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrMissingInput is returned when a snapshot file does not exist.
var ErrMissingInput = errors.New("drawing snapshot not found")

// Format is the encoding of a snapshot file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatOf picks the format from the file extension; anything but .json is
// YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Snapshot is the document stored in a snapshot file.
type Snapshot struct {
	Entities []Entity `yaml:"entities" json:"entities"`
}

// LoadFile loads and parses a snapshot file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	return Parse(data, FormatOf(path))
}

// Parse decodes a snapshot. Entities without a kind are texts.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &snap)
	default:
		err = yaml.Unmarshal(data, &snap)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	for i := range snap.Entities {
		e := &snap.Entities[i]
		e.Index = i

		if e.Kind == "" {
			e.Kind = KindText
		}
	}

	return &snap, nil
}

// Labels returns the texts on layer, trimmed, without blank ones. With kinds
// given only those kinds are kept; otherwise texts and mtexts.
func (s *Snapshot) Labels(layer string, kinds ...Kind) []Entity {
	var out []Entity

	for _, e := range s.Entities {
		if e.Layer != layer || !e.isLabel() {
			continue
		}

		if len(kinds) > 0 && !hasKind(kinds, e.Kind) {
			continue
		}

		if t, ok := trimmed(e); ok {
			out = append(out, t)
		}
	}

	return out
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}

	return false
}

// Marshal encodes s in format.
func (s *Snapshot) Marshal(format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(s, "", "  ")
	}

	return yaml.Marshal(s)
}

// WriteFile writes entities as a snapshot to path, creating its directory.
func WriteFile(path string, entities []Entity) error {
	snap := &Snapshot{Entities: entities}
	if snap.Entities == nil {
		snap.Entities = []Entity{}
	}

	data, err := snap.Marshal(FormatOf(path))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}

	return nil
}

// LoadFiles loads several snapshots and concatenates their entities, so
// generated labels can be read next to the drawing they belong to.
func LoadFiles(paths ...string) (*Snapshot, error) {
	merged := &Snapshot{}

	for _, p := range paths {
		snap, err := LoadFile(p)
		if err != nil {
			return nil, err
		}

		merged.Entities = append(merged.Entities, snap.Entities...)
	}

	for i := range merged.Entities {
		merged.Entities[i].Index = i
	}

	return merged, nil
}
