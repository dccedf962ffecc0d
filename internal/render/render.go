// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render serializes an assembled configuration into the formats the
// build tool and operators consume.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/hhconfig/models"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

// ErrUnknownFormat is returned for a format outside [Formats].
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatJS}
}

// ParseFormat maps a user supplied name to a [Format]. The empty string maps
// to [FormatJSON].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatJS:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatJS:
		return "text/javascript"
	default:
		return "application/json"
	}
}

// Render encodes cfg in format f.
func Render(cfg models.ToolConfig, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return renderJSON(cfg)
	case FormatYAML:
		return renderYAML(cfg)
	case FormatJS:
		return renderJS(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// encodeJSON returns the indented JSON encoding of cfg followed by a newline.
// HTML characters are not escaped.
func encodeJSON(cfg models.ToolConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderJSON(cfg models.ToolConfig) ([]byte, error) {
	data, err := encodeJSON(cfg)
	if err != nil {
		return nil, fmt.Errorf("error encoding json config: %w", err)
	}
	return data, nil
}

func renderYAML(cfg models.ToolConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("error encoding yaml config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding yaml config: %w", err)
	}
	return buf.Bytes(), nil
}

// renderJS emits a CommonJS module that loads the plugins and exports cfg.
// JSON is a valid JS object literal, so the body is the JSON encoding.
func renderJS(cfg models.ToolConfig) ([]byte, error) {
	body, err := encodeJSON(cfg)
	if err != nil {
		return nil, fmt.Errorf("error encoding js config: %w", err)
	}
	body = bytes.TrimSuffix(body, []byte("\n"))

	var buf bytes.Buffer
	for _, p := range cfg.Plugins {
		fmt.Fprintf(&buf, "require(%q);\n", p)
	}
	if len(cfg.Plugins) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("module.exports = ")
	buf.Write(body)
	buf.WriteString(";\n")

	return buf.Bytes(), nil
}
