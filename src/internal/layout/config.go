// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvLayoutFile names the environment variable consulted when Load is given an empty path.
const EnvLayoutFile = "BYTEBUFFER_LAYOUT_FILE"

var (
	// ErrNoLayout is returned when neither a path nor EnvLayoutFile is set.
	ErrNoLayout = errors.New("layout: no layout file given")
	// ErrInvalidLayout is returned when a layout document fails validation.
	ErrInvalidLayout = errors.New("layout: invalid layout")
)

// configFormat represents supported layout file formats.
type configFormat int

const (
	// configFormatJSON represents JSON layout format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML layout format (.yaml, .yml)
	configFormatYAML
)

// schema is the JSON Schema every layout document must satisfy before it is decoded.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["fields"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "offset", "type"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "offset": {"type": "integer", "minimum": 0, "maximum": 2147483647},
          "type": {"enum": ["uint8", "uint32be", "bytes", "string"]},
          "length": {"type": "integer", "minimum": 0, "maximum": 2147483647}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// detectConfigFormat determines the layout file format based on file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func detectConfigFormat(path string) configFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load reads, validates and returns the layout stored at path.
//
// Configuration priority:
//  1. path, when not empty
//  2. the file named by the BYTEBUFFER_LAYOUT_FILE environment variable
//
// The document is checked against the embedded JSON Schema, then defaults are
// applied (fixed widths for integer fields) and fields are checked for
// overlap and duplicate names.
func Load(path string) (*Layout, error) {
	if path == "" {
		path = os.Getenv(EnvLayoutFile)
	}
	if path == "" {
		return nil, ErrNoLayout
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	return Parse(data, detectConfigFormat(path) == configFormatYAML)
}

// Parse decodes a layout document held in memory. isYAML selects the YAML
// decoder; otherwise data must be JSON.
func Parse(data []byte, isYAML bool) (*Layout, error) {
	var doc gojsonschema.JSONLoader
	if isYAML {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML layout file: %w", err)
		}
		doc = gojsonschema.NewGoLoader(raw)
	} else {
		doc = gojsonschema.NewBytesLoader(data)
	}

	result, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to validate layout file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, strings.Join(msgs, "; "))
	}

	l := &Layout{}
	if isYAML {
		err = yaml.Unmarshal(data, l)
	} else {
		err = json.Unmarshal(data, l)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode layout file: %w", err)
	}

	if err := l.normalize(); err != nil {
		return nil, err
	}
	return l, nil
}

// normalize applies default widths and rejects duplicate, overlapping or
// oversized fields. After it succeeds Offset+Length cannot overflow.
func (l *Layout) normalize() error {
	seen := make(map[string]bool, len(l.Fields))
	for i := range l.Fields {
		f := &l.Fields[i]
		switch f.Type {
		case TypeUint8:
			f.Length = 1
		case TypeUint32BE:
			f.Length = 4
		case TypeBytes, TypeString:
			if f.Length <= 0 {
				return fmt.Errorf("%w: field %q of type %s needs a positive length", ErrInvalidLayout, f.Name, f.Type)
			}
		default:
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidLayout, f.Name, f.Type)
		}
		if f.Offset < 0 {
			return fmt.Errorf("%w: field %q has negative offset", ErrInvalidLayout, f.Name)
		}
		if f.Offset > bytebuffer.MaxLength-f.Length {
			return fmt.Errorf("%w: field %q ends past the largest record of %d bytes", ErrInvalidLayout, f.Name, bytebuffer.MaxLength)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidLayout, f.Name)
		}
		seen[f.Name] = true
	}

	sorted := slices.Clone(l.Fields)
	slices.SortFunc(sorted, func(a, b Field) int { return a.Offset - b.Offset })
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Offset+prev.Length > cur.Offset {
			return fmt.Errorf("%w: field %q overlaps field %q", ErrInvalidLayout, cur.Name, prev.Name)
		}
	}
	return nil
}
