// Package pointio reads and writes point sets as JSON or YAML documents.
//
// Document shape (JSON shown, YAML is equivalent):
//
//	{"points": [{"x": 1, "y": 2}, {"x": 3, "y": 3}]}
//
// Order is preserved: the position of a point in the file is its index.
package pointio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/closestpair/closest"
)

// Sentinel errors for point-set files.
var (
	// ErrUnknownFormat indicates an unsupported format or file extension.
	ErrUnknownFormat = errors.New("pointio: unknown format")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("pointio: coordinates must be finite")
)

// Format selects the document encoding.
type Format int

const (
	// JSON encodes with encoding/json.
	JSON Format = iota

	// YAML encodes with gopkg.in/yaml.v3.
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// document is the on-disk shape of a point set.
type document struct {
	Points []closest.Point `json:"points" yaml:"points"`
}

// Read decodes a point set from r.
// Empty input (or only whitespace) is an empty point set in both formats.
func Read(r io.Reader, f Format) ([]closest.Point, error) {
	var doc document
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pointio: decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pointio: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	if err := validate(doc.Points); err != nil {
		return nil, err
	}
	return doc.Points, nil
}

// Write encodes points to w.
func Write(w io.Writer, points []closest.Point, f Format) error {
	if err := validate(points); err != nil {
		return err
	}
	if points == nil {
		points = []closest.Point{}
	}
	doc := document{Points: points}

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("pointio: encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("pointio: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("pointio: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return nil
}

// ReadFile reads a point set, choosing the format from the extension.
func ReadFile(path string) ([]closest.Point, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return Read(file, f)
}

// WriteFile writes a point set, choosing the format from the extension.
func WriteFile(path string, points []closest.Point) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(file, points, f)
}

// validate rejects NaN and ±Inf coordinates.
func validate(points []closest.Point) error {
	for k, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d is %v", ErrNonFinite, k, p)
		}
	}
	return nil
}
