package config

import (
	_ "embed"
	"errors"
)

// Embedded system defaults, always loaded first.
//
//go:embed termsys.toml
var defaultConfig []byte

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
