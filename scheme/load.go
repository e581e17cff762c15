package scheme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Schemes []tableFileEntry `yaml:"schemes"`
}

type tableFileEntry struct {
	Name                  string `yaml:"name"`
	CardGaps              []int  `yaml:"card_gaps"`
	CVVLengths            []int  `yaml:"cvv_lengths"`
	FullCardNumberPattern string `yaml:"full_card_number_pattern"`
}

// ParseTable reads a YAML scheme table:
//
//	schemes:
//	  - name: visa
//	    card_gaps: [4, 8, 12]
//	    cvv_lengths: [3]
//	    full_card_number_pattern: '4\d{12}(\d{3})?'
//
// Entries keep the file order. An empty pattern leaves the scheme undetectable.
func ParseTable(data []byte) (*Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(doc.Schemes) == 0 {
		return nil, fmt.Errorf("%w: no schemes defined", ErrInvalidTable)
	}

	entries := make([]Metadata, 0, len(doc.Schemes))
	for i, e := range doc.Schemes {
		s, err := Parse(e.Name)
		if err != nil {
			return nil, fmt.Errorf("schemes[%d]: %w", i, err)
		}
		m := Metadata{
			Scheme:     s,
			CardGaps:   e.CardGaps,
			CVVLengths: e.CVVLengths,
		}
		if e.FullCardNumberPattern != "" {
			re, err := CompilePattern(e.FullCardNumberPattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, s, err)
			}
			m.FullCardNumberPattern = re
		}
		entries = append(entries, m)
	}
	return NewTable(entries...)
}

// LoadFile reads a YAML scheme table from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme table: %w", err)
	}
	return ParseTable(data)
}
