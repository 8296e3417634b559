package model

import (
	"encoding/base64"
	"encoding/hex"
)

// Base64 holds a base64 parameter. Its text form is standard base64.
type Base64 []byte

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(text []byte) error {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return err
	}
	*b = out[:n]
	return nil
}

// String returns the base64 text form.
func (b Base64) String() string { return base64.StdEncoding.EncodeToString(b) }

// HexBinary holds a hexBinary parameter. Its text form is lowercase hex.
type HexBinary []byte

// MarshalText implements encoding.TextMarshaler.
func (h HexBinary) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(out, h)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexBinary) UnmarshalText(text []byte) error {
	out := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(out, text)
	if err != nil {
		return err
	}
	*h = out[:n]
	return nil
}

// String returns the hex text form.
func (h HexBinary) String() string { return hex.EncodeToString(h) }
