package utils

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// EncodeString converts a utf-8 string into the charmap used by the
// binary layouts. Resource and bone names come from the host engine
// and are expected to be representable; anything else is an error,
// not a silent replacement.
func EncodeString(cm *charmap.Charmap, s string) ([]byte, error) {
	bs, _, err := transform.Bytes(cm.NewEncoder(), []byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to encode string %q", s)
	}
	return bs, nil
}

func DecodeString(cm *charmap.Charmap, bs []byte) (string, error) {
	s, _, err := transform.Bytes(cm.NewDecoder(), bs)
	if err != nil {
		return "", errors.Wrapf(err, "Failed to decode string")
	}
	return string(s), nil
}
