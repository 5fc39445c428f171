package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat("vendors.csv")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, format)

	format, err = DetectFormat("spools.json")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	_, err = DetectFormat("vendors.txt")
	require.Error(t, err)

	_, err = DetectFormat("vendors")
	require.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV("name,comment\nPrusament,great\nSunlu,\n")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Prusament", records[0]["name"])
	require.Equal(t, "great", records[0]["comment"])
	require.Equal(t, "", records[1]["comment"])
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	records, err := ParseCSV("name,comment\n")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV("")
	require.ErrorIs(t, err, ErrNoHeaders)
}

func TestParseCSV_ShortRow(t *testing.T) {
	records, err := ParseCSV("name,comment,external_id\nPrusament\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Prusament", records[0]["name"])
	require.Nil(t, records[0]["comment"])
	require.Nil(t, records[0]["external_id"])
}

func TestParseCSV_BOM(t *testing.T) {
	records, err := ParseCSV("\ufeffname\nPrusament\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Prusament", records[0]["name"])
}

func TestParseJSON(t *testing.T) {
	records, err := ParseJSON(`[{"name":"PLA","density":1.24,"archived":true,"comment":null}]`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "PLA", records[0]["name"])
	require.Equal(t, 1.24, records[0]["density"])
	require.Equal(t, true, records[0]["archived"])
	require.Nil(t, records[0]["comment"])
}

func TestParseJSON_EmptyArray(t *testing.T) {
	records, err := ParseJSON(`[]`)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParseJSON_NotAnArray(t *testing.T) {
	for _, content := range []string{
		`{"name":"PLA"}`,
		`"PLA"`,
		`42`,
		`[1, 2]`,
	} {
		_, err := ParseJSON(content)
		require.ErrorIs(t, err, ErrNotAnArray, "content: %s", content)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON(`[{"name":`)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotAnArray)
}

func TestParse_Dispatch(t *testing.T) {
	records, err := Parse("name\nA\n", FormatCSV)
	require.NoError(t, err)
	require.Len(t, records, 1)

	records, err = Parse(`[{"name":"A"}]`, FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = Parse("x", Format("xml"))
	require.Error(t, err)
}
