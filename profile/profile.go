// Package profile loads code lists and run settings from YAML or plain-text
// files.
package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	Plain Format = iota
	YAML
)

// Profile is a list of codes plus optional run settings. Nil delays mean
// unset so callers can tell an explicit 0 from a missing key.
type Profile struct {
	Backend        string   `yaml:"backend,omitempty"`
	InitialDelayMs *uint64  `yaml:"initial_delay_ms,omitempty"`
	ItemDelayMs    *uint64  `yaml:"item_delay_ms,omitempty"`
	Codes          []string `yaml:"codes"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return Plain
}

// Load reads a profile from path. "-" reads a plain list from stdin.
func Load(path string) (*Profile, error) {
	if path == "-" {
		return Parse(os.Stdin, Plain)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	defer f.Close()
	return Parse(f, FormatOf(path))
}

func Parse(r io.Reader, format Format) (*Profile, error) {
	if format == YAML {
		return parseYAML(r)
	}
	return parsePlain(r)
}

func parseYAML(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// parsePlain reads one code per line. Blank lines and lines starting with #
// are skipped; surrounding whitespace is kept apart from a trailing \r.
func parsePlain(r io.Reader) (*Profile, error) {
	p := &Profile{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		p.Codes = append(p.Codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read code list: %w", err)
	}
	return p, nil
}

// Delays returns the profile delays with fallbacks for unset values.
func (p *Profile) Delays(initial, item uint64) (uint64, uint64) {
	if p.InitialDelayMs != nil {
		initial = *p.InitialDelayMs
	}
	if p.ItemDelayMs != nil {
		item = *p.ItemDelayMs
	}
	return initial, item
}
