// Package decode is the streaming decoder generated deserializers read
// from. It wraps a token stream and exposes one read method per leaf shape
// kind; every read is fail-fast, so a generated decoder propagates the first
// element failure and never completes a partial aggregate.
package decode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"time"
)

// Decoder reads typed values from a JSON token stream.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder creates a decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// StartList consumes the opening delimiter of a list value.
func (d *Decoder) StartList() error {
	return d.expectDelim('[')
}

// EndList consumes the closing delimiter of a list value.
func (d *Decoder) EndList() error {
	return d.expectDelim(']')
}

// StartObject consumes the opening delimiter of a map or structure value.
func (d *Decoder) StartObject() error {
	return d.expectDelim('{')
}

// EndObject consumes the closing delimiter of a map or structure value.
func (d *Decoder) EndObject() error {
	return d.expectDelim('}')
}

// More reports whether the current aggregate has another element.
func (d *Decoder) More() bool {
	return d.dec.More()
}

// ReadString reads one string value.
func (d *Decoder) ReadString() (string, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T (%v)", tok, tok)
	}
	return s, nil
}

// ReadBool reads one boolean value.
func (d *Decoder) ReadBool() (bool, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return false, err
	}
	b, ok := tok.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T (%v)", tok, tok)
	}
	return b, nil
}

// ReadBytes reads one base64-encoded blob value.
func (d *Decoder) ReadBytes() ([]byte, error) {
	s, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid blob encoding: %w", err)
	}
	return b, nil
}

// ReadInt8 reads one byte-width integer value.
func (d *Decoder) ReadInt8() (int8, error) {
	n, err := d.readInt(math.MinInt8, math.MaxInt8)
	return int8(n), err
}

// ReadInt16 reads one short-width integer value.
func (d *Decoder) ReadInt16() (int16, error) {
	n, err := d.readInt(math.MinInt16, math.MaxInt16)
	return int16(n), err
}

// ReadInt32 reads one integer value.
func (d *Decoder) ReadInt32() (int32, error) {
	n, err := d.readInt(math.MinInt32, math.MaxInt32)
	return int32(n), err
}

// ReadInt64 reads one long value.
func (d *Decoder) ReadInt64() (int64, error) {
	return d.readInt(math.MinInt64, math.MaxInt64)
}

// ReadFloat32 reads one single-precision float value.
func (d *Decoder) ReadFloat32() (float32, error) {
	f, err := d.readFloat()
	return float32(f), err
}

// ReadFloat64 reads one double-precision float value.
func (d *Decoder) ReadFloat64() (float64, error) {
	return d.readFloat()
}

// ReadTime reads one RFC 3339 timestamp value.
func (d *Decoder) ReadTime() (time.Time, error) {
	s, err := d.ReadString()
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return ts, nil
}

// ReadBigInt reads one arbitrary-precision integer value.
func (d *Decoder) ReadBigInt() (*big.Int, error) {
	num, err := d.readNumber()
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(num.String(), 10)
	if !ok {
		return nil, fmt.Errorf("expected integer, got %s", num)
	}
	return n, nil
}

// ReadBigFloat reads one arbitrary-precision decimal value.
func (d *Decoder) ReadBigFloat() (*big.Float, error) {
	num, err := d.readNumber()
	if err != nil {
		return nil, err
	}
	f, ok := new(big.Float).SetString(num.String())
	if !ok {
		return nil, fmt.Errorf("expected number, got %s", num)
	}
	return f, nil
}

// ReadAny reads one whole value of unmodeled structure into the generic
// JSON representation.
func (d *Decoder) ReadAny() (any, error) {
	var v any
	if err := d.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Skip consumes one whole value, including nested aggregates. Generated
// structure decoders call this for members the model does not know.
func (d *Decoder) Skip() error {
	depth := 0
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch rune(delim) {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

func (d *Decoder) readInt(min, max int64) (int64, error) {
	num, err := d.readNumber()
	if err != nil {
		return 0, err
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %s", num)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("integer %d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}

func (d *Decoder) readFloat() (float64, error) {
	num, err := d.readNumber()
	if err != nil {
		return 0, err
	}
	f, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("expected number, got %s", num)
	}
	return f, nil
}

func (d *Decoder) readNumber() (json.Number, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", err
	}
	num, ok := tok.(json.Number)
	if !ok {
		return "", fmt.Errorf("expected number, got %T (%v)", tok, tok)
	}
	return num, nil
}

func (d *Decoder) expectDelim(want rune) error {
	tok, err := d.dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
