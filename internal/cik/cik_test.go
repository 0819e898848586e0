package cik

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "single digit", raw: "7", want: "7", wantOK: true},
		{name: "apple unpadded", raw: "320193", want: "320193", wantOK: true},
		{name: "already padded", raw: "0000320193", want: "0000320193", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "eleven digits", raw: "12345678901", wantOK: false},
		{name: "negative sign", raw: "-123", wantOK: false},
		{name: "plus sign", raw: "+123", wantOK: false},
		{name: "letters", raw: "abc", wantOK: false},
		{name: "mixed", raw: "12a4", wantOK: false},
		{name: "whitespace", raw: " 123", wantOK: false},
		{name: "trailing newline", raw: "123\n", wantOK: false},
		{name: "non-ascii digits", raw: "١٢٣", wantOK: false},
		{name: "decimal point", raw: "12.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveQuery(t *testing.T) {
	t.Run("reads CIK key", func(t *testing.T) {
		got, ok := ResolveQuery(url.Values{"CIK": {"320193"}})
		assert.True(t, ok)
		assert.Equal(t, "320193", got)
	})

	t.Run("key is case sensitive", func(t *testing.T) {
		_, ok := ResolveQuery(url.Values{"cik": {"320193"}})
		assert.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := ResolveQuery(url.Values{})
		assert.False(t, ok)
	})

	t.Run("nil values", func(t *testing.T) {
		_, ok := ResolveQuery(nil)
		assert.False(t, ok)
	})

	t.Run("first value wins", func(t *testing.T) {
		got, ok := ResolveQuery(url.Values{"CIK": {"42", "bogus"}})
		assert.True(t, ok)
		assert.Equal(t, "42", got)
	})
}

func TestPad(t *testing.T) {
	assert.Equal(t, "0000000123", Pad("123"))
	assert.Equal(t, "0000320193", Pad("320193"))
	assert.Equal(t, "1234567890", Pad("1234567890"))

	// Every valid identifier pads to exactly Width and keeps its digits as a suffix.
	for n := 1; n <= Width; n++ {
		id := strings.Repeat("9", n)
		padded := Pad(id)
		assert.Len(t, padded, Width)
		assert.True(t, strings.HasSuffix(padded, id))
		assert.Equal(t, strings.Repeat("0", Width-n), strings.TrimSuffix(padded, id))
	}
}
