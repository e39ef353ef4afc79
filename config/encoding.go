package config

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Charmap resolves the configured encoding name to the charmap used
// for strings in the binary layouts.
func (c *Config) Charmap() (*charmap.Charmap, error) {
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			if cm.String() == c.Encoding {
				return cm, nil
			}
		}
	}
	return nil, errors.Errorf("Failed to find encoding %q", c.Encoding)
}

func ListEncodings() []string {
	list := make([]string, 0)
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			list = append(list, cm.String())
		}
	}
	return list
}
