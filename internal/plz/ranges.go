package plz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed plz_ranges.yaml
var embeddedRanges []byte

// Range is one curated entry of the verified table. Codes From..To
// (inclusive) and every code in Codes belong to the constituency. When
// Constituency is empty it is bound by matching Locality against the
// constituency names.
type Range struct {
	Locality     string   `yaml:"locality"`
	From         string   `yaml:"from,omitempty"`
	To           string   `yaml:"to,omitempty"`
	Codes        []string `yaml:"codes,omitempty"`
	Constituency string   `yaml:"constituency,omitempty"`
}

type rangeFile struct {
	Ranges []Range `yaml:"ranges"`
}

// ParseRanges decodes and validates a range file.
func ParseRanges(data []byte) ([]Range, error) {
	var f rangeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode ranges: %w", err)
	}
	for i, r := range f.Ranges {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("range %d (%s): %w", i+1, r.Locality, err)
		}
	}
	return f.Ranges, nil
}

// DefaultRanges returns the curated ranges compiled into the binary.
func DefaultRanges() ([]Range, error) {
	return ParseRanges(embeddedRanges)
}

// LoadRanges reads a range file, or the compiled-in ranges when path is empty.
func LoadRanges(path string) ([]Range, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultRanges()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRanges(data)
}

func (r Range) validate() error {
	if r.Locality == "" && r.Constituency == "" {
		return fmt.Errorf("%w: needs a locality or a constituency", ErrInvalidRange)
	}
	if (r.From == "") != (r.To == "") {
		return fmt.Errorf("%w: from and to must be set together", ErrInvalidRange)
	}
	if r.From == "" && len(r.Codes) == 0 {
		return fmt.Errorf("%w: no codes", ErrInvalidRange)
	}
	if r.From != "" {
		from, err := codeValue(r.From)
		if err != nil {
			return err
		}
		to, err := codeValue(r.To)
		if err != nil {
			return err
		}
		if from > to {
			return fmt.Errorf("%w: %s > %s", ErrInvalidRange, r.From, r.To)
		}
	}
	for _, c := range r.Codes {
		if !ValidCode(c) {
			return fmt.Errorf("%w: %q is not a 5-digit postal code", ErrInvalidRange, c)
		}
	}
	return nil
}

// expand lists every code the range covers.
func (r Range) expand() []string {
	var out []string
	if r.From != "" {
		from, _ := codeValue(r.From)
		to, _ := codeValue(r.To)
		for v := from; v <= to; v++ {
			out = append(out, formatCode(v))
		}
	}
	return append(out, r.Codes...)
}
