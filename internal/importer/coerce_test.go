package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"none marker", "none", nil},
		{"null marker", "NULL", nil},
		{"plain", "1.75", f(1.75)},
		{"integer string", "210", f(210)},
		{"padded", " 1.24 ", f(1.24)},
		{"garbage", "abc", nil},
		{"native float", 1.24, f(1.24)},
		{"native bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, floatValue(tt.in))
		})
	}
}

func TestIntValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"plain", "210", n(210)},
		{"decimal string", "210.5", nil},
		{"garbage", "hot", nil},
		{"native integral", float64(60), n(60)},
		{"native fractional", 60.5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, intValue(tt.in))
		})
	}
}

func TestBoolValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *bool
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"none marker", "None", nil},
		{"true", "true", b(true)},
		{"one", "1", b(true)},
		{"yes", "yes", b(true)},
		{"mixed case", "TrUe", b(true)},
		{"false", "false", b(false)},
		{"no", "no", b(false)},
		{"anything else", "definitely", b(false)},
		{"native bool", true, b(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, boolValue(tt.in))
		})
	}
}

func TestTrimmedString(t *testing.T) {
	require.Nil(t, trimmedString(nil))
	require.Nil(t, trimmedString(""))
	require.Nil(t, trimmedString("   "))
	require.Equal(t, "PLA", *trimmedString("  PLA  "))
}

func TestStringValue(t *testing.T) {
	require.Nil(t, stringValue(nil))
	require.Equal(t, "", *stringValue(""))
	require.Equal(t, "x", *stringValue("x"))
	require.Equal(t, "42", *stringValue(42))
}

func TestExtraFields(t *testing.T) {
	rec := Record{
		"name":         "Prusament",
		"extra.color":  "red",
		"extra.rating": 5.0,
		"extra.note":   nil,
	}
	require.Equal(t, map[string]string{
		"color":  "red",
		"rating": "5",
		"note":   "",
	}, extraFields(rec))
}

func TestExtraOrNil(t *testing.T) {
	require.Nil(t, extraOrNil(Record{"name": "Prusament"}))
	require.Equal(t, map[string]string{"color": "red"}, extraOrNil(Record{"extra.color": "red"}))
}

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }
func b(v bool) *bool       { return &v }
