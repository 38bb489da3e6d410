package kit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
)

const MaxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("empty body")
	ErrNotObject    = errors.New("json value is not an object")
	ErrTrailingData = errors.New("extra data after json value")

	ErrFieldMissing = errors.New("field missing")
	ErrFieldType    = errors.New("field has wrong type")
)

// Record is a schemaless JSON object as received on the wire. Numbers decoded
// by DecodeRecord are json.Number so they re-encode exactly as sent.
type Record map[string]any

// DecodeBody reads a single JSON value from the request body. An empty body
// yields ErrEmptyBody.
func DecodeBody(w http.ResponseWriter, r *http.Request) (any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return v, nil
}

func DecodeRecord(w http.ResponseWriter, r *http.Request) (Record, error) {
	v, err := DecodeBody(w, r)
	if err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Record(m), nil
}

// Int reads key as an integer. Integral floats such as 5.0 are accepted;
// strings are not.
func (rec Record) Int(key string) (int64, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldMissing, key)
	}

	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is %q", ErrFieldType, key, n.String())
		}
		return floatToInt(key, f)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return floatToInt(key, n)
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrFieldType, key, v)
	}
}

func (rec Record) Float(key string) (float64, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFieldMissing, key)
	}

	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is %q", ErrFieldType, key, n.String())
		}
		return f, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrFieldType, key, v)
	}
}

func (rec Record) String(key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldMissing, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrFieldType, key, v)
	}
	return s, nil
}

func floatToInt(key string, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s is %v", ErrFieldType, key, f)
	}
	return int64(f), nil
}
