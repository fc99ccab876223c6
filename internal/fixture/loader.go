package fixture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/catindex/pkg/types"
)

// JSONL record kinds.
const (
	kindCategory = "category"
	kindEdge     = "edge"
	kindStep     = "step"
)

// Loader reads fixture documents through an afero.Fs.
// Use afero.NewOsFs() for real files or afero.NewMemMapFs() in tests.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader over fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOsLoader creates a Loader over the operating system filesystem.
func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// Load reads the document at path. Files ending in .jsonl are read as one
// record per line; anything else is parsed as YAML. Categories and add
// steps without an id receive a UUID v7. The document is validated before
// it is returned.
func (l *Loader) Load(path string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		doc, err = l.loadJSONL(path)
	} else {
		doc, err = l.loadYAML(path)
	}
	if err != nil {
		return nil, err
	}

	if err := assignMissingIDs(doc); err != nil {
		return nil, err
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return doc, nil
}

func (l *Loader) loadYAML(path string) (*Document, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", path, types.ErrInvalidFixture, err)
	}
	return &doc, nil
}

// jsonlRecord is the union of the JSONL record kinds.
type jsonlRecord struct {
	Kind string `json:"kind"`
	types.Category
	Edge
	Op          string `json:"op"`
	K           int    `json:"k"`
	ExpectError string `json:"expect_error"`
}

// loadJSONL reads one record per line. Blank and malformed lines are
// skipped; a well-formed record of unknown kind is an error.
func (l *Loader) loadJSONL(path string) (*Document, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var doc Document
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 || !json.Valid(raw) {
			continue
		}
		var rec jsonlRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		switch rec.Kind {
		case kindCategory:
			doc.Categories = append(doc.Categories, rec.Category)
		case kindEdge:
			doc.Edges = append(doc.Edges, rec.Edge)
		case kindStep:
			doc.Steps = append(doc.Steps, Step{
				Op:          rec.Op,
				ID:          rec.CategoryID,
				Name:        rec.Name,
				Child:       rec.Child,
				Parent:      rec.Parent,
				K:           rec.K,
				ExpectError: rec.ExpectError,
			})
		default:
			return nil, fmt.Errorf("%s line %d: %w: unknown record kind %q", path, line, types.ErrInvalidFixture, rec.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return &doc, nil
}

func assignMissingIDs(doc *Document) error {
	for i := range doc.Categories {
		if doc.Categories[i].CategoryID != "" {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		doc.Categories[i].CategoryID = id.String()
	}
	for i := range doc.Steps {
		if doc.Steps[i].Op != OpAdd || doc.Steps[i].ID != "" {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		doc.Steps[i].ID = id.String()
	}
	return nil
}
