package kit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, body string) (Record, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return DecodeRecord(httptest.NewRecorder(), r)
}

func TestDecodeRecord(t *testing.T) {
	rec, err := decodeRecord(t, ` {"id": 12345678901234567, "price": 9.99, "tags": ["a"]} `)
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567"), rec["id"])

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":12345678901234567,"price":9.99,"tags":["a"]}`, string(out))
}

func TestDecodeRecord_Errors(t *testing.T) {
	cases := []struct {
		body string
		want error
	}{
		{"", ErrEmptyBody},
		{"   ", ErrEmptyBody},
		{"[1]", ErrNotObject},
		{`"x"`, ErrNotObject},
		{"null", ErrNotObject},
		{`{"a":1} {"b":2}`, ErrTrailingData},
		{`{"a":1} x`, ErrTrailingData},
	}

	for _, c := range cases {
		_, err := decodeRecord(t, c.body)
		assert.ErrorIs(t, err, c.want, "body %q", c.body)
	}

	_, err := decodeRecord(t, `{"a":`)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyBody))
}

func TestDecodeBody_TooLarge(t *testing.T) {
	body := `{"blob":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	_, err := DecodeBody(httptest.NewRecorder(), r)

	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, err, &tooLarge)
}

func TestRecordInt(t *testing.T) {
	rec := Record{
		"n":     json.Number("5"),
		"f":     json.Number("5.0"),
		"frac":  json.Number("5.5"),
		"big":   json.Number("1e300"),
		"raw":   int64(7),
		"float": 8.0,
		"s":     "5",
		"b":     true,
	}

	n, err := rec.Int("n")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = rec.Int("f")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = rec.Int("raw")
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	n, err = rec.Int("float")
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)

	for _, k := range []string{"frac", "big", "s", "b"} {
		_, err := rec.Int(k)
		assert.ErrorIs(t, err, ErrFieldType, k)
	}

	_, err = rec.Int("missing")
	assert.ErrorIs(t, err, ErrFieldMissing)
}

func TestRecordFloatAndString(t *testing.T) {
	rec := Record{"price": json.Number("19.5"), "name": "Mouse"}

	f, err := rec.Float("price")
	require.NoError(t, err)
	assert.Equal(t, 19.5, f)

	_, err = rec.Float("name")
	assert.ErrorIs(t, err, ErrFieldType)

	s, err := rec.String("name")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", s)

	_, err = rec.String("price")
	assert.ErrorIs(t, err, ErrFieldType)

	_, err = rec.String("nope")
	assert.ErrorIs(t, err, ErrFieldMissing)
}

func TestWriteDecodeError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{ErrEmptyBody, http.StatusBadRequest, "empty body"},
		{ErrNotObject, http.StatusBadRequest, "bad json"},
		{ErrTrailingData, http.StatusBadRequest, "bad json"},
		{&http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, "body too large"},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		WriteDecodeError(w, httptest.NewRequest(http.MethodPost, "/", nil), c.err)

		assert.Equal(t, c.status, w.Code)

		var er ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
		assert.Equal(t, c.msg, er.Error)
	}
}
