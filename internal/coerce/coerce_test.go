package coerce

import (
	"testing"

	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalDate(t *testing.T) {
	f := schema.Field{Name: "Expire Date", Kind: schema.Date}

	cases := []struct {
		in   string
		want string
	}{
		{"2020-01-01", "2020-01-01"},
		{"2020/1/1", "2020-01-01"},
		{"Jan 2, 2020", "2020-01-02"},
		{"2020-02", "2020-02-01"},
		{"", ""},
	}
	for _, c := range cases {
		got, err := Canonical(f, c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := Canonical(f, "not a date")
	require.Error(t, err)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Expire Date", ve.Field)
	assert.Equal(t, "not a date", ve.Text)
}

func TestCanonicalDateList(t *testing.T) {
	f := schema.Field{Name: "Recur Dates", Kind: schema.DateList}

	got, err := Canonical(f, "2020;2020-02")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01 ; 2020-02-01", got)

	got, err = Canonical(f, " 2020-03-05 ; ; 2021-01-02 ")
	require.NoError(t, err)
	assert.Equal(t, "2020-03-05 ; 2021-01-02", got)

	_, err = Canonical(f, "2020-01-01;bogus")
	assert.Error(t, err)
}

func TestCanonicalNumbers(t *testing.T) {
	intField := schema.Field{Name: "AGE", Kind: schema.Int}
	floatField := schema.Field{Name: "Patient Weight (Kg)", Kind: schema.Float}

	got, err := Canonical(intField, "63")
	require.NoError(t, err)
	assert.Equal(t, "63", got)

	_, err = Canonical(intField, "63.5")
	assert.Error(t, err)

	got, err = Canonical(floatField, "63.5")
	require.NoError(t, err)
	assert.Equal(t, "63.5", got)

	got, err = Canonical(floatField, "63")
	require.NoError(t, err)
	assert.Equal(t, "63.0", got)

	_, err = Canonical(floatField, "heavy")
	assert.Error(t, err)
}

func TestCanonicalBool(t *testing.T) {
	f := schema.Field{Name: "Immunotherapy", Kind: schema.Bool}

	for in, want := range map[string]string{
		"TRUE":  "TRUE",
		"true":  "TRUE",
		"True":  "TRUE",
		"FALSE": "FALSE",
		"yes":   "FALSE",
	} {
		got, err := Canonical(f, in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestCanonicalString(t *testing.T) {
	f := schema.Field{Name: "Sex", Kind: schema.String}
	got, err := Canonical(f, "Male")
	require.NoError(t, err)
	assert.Equal(t, "Male", got)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "12.0", FormatFloat(12))
	assert.Equal(t, "12.3", FormatFloat(12.3))
	assert.Equal(t, "0.5", FormatFloat(0.5))
}
