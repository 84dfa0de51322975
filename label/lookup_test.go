package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/label"
)

func TestLabelToOrdinal(t *testing.T) {
	cases := []struct {
		label     string
		scheme    label.Scheme
		increment bool
		want      int
	}{
		{"AA", label.Letters, false, 27},
		{"02AC", label.Numalpha, true, 3},
		{"02CC", label.Numalpha, false, 3},
		{"C01", label.Alphanumeric, true, 3},
		{"C01", label.Alphanumeric, false, 1},
		{"MCMXCIV", label.Roman, false, 1994},
		{"0x00FF", label.Hex, false, 255},
		{"ω", label.Greek, false, 24},
	}
	for _, tc := range cases {
		got, err := label.LabelToOrdinal(tc.label, tc.scheme, tc.increment)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}

	_, err := label.LabelToOrdinal("IIX", label.Roman, false)
	assert.ErrorIs(t, err, label.ErrFormat)
	_, err = label.LabelToOrdinal("1", label.Scheme(42), false)
	assert.ErrorIs(t, err, label.ErrUnknownScheme)
}

func TestOrdinalToLabel(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		scheme    label.Scheme
		increment bool
		template  string
		opts      []label.Option
		want      string
	}{
		{"NumalphaTemplate", 3, label.Numalpha, true, "02AA", nil, "02AC"},
		{"NumalphaBlock", 4, label.Numalpha, false, "7XXX", nil, "7DDD"},
		{"NumbersTemplate", 7, label.Numbers, false, "001", nil, "007"},
		{"NumbersDefault", 7, label.Numbers, false, "", nil, "07"},
		{"AlphanumericBare", 5, label.Alphanumeric, false, "", nil, "5"},
		{"AlphanumericSuffix", 5, label.Alphanumeric, false, "R01", nil, "R05"},
		{"AlphanumericPrefix", 2, label.Alphanumeric, true, "A01", nil, "B01"},
		{"HexMinDigits", 1, label.Hex, false, "", []label.Option{label.WithMinDigits(2)}, "0x01"},
		{"Letters", 703, label.Letters, false, "", nil, "AAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := label.OrdinalToLabel(tc.n, tc.scheme, tc.increment, tc.template, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrdinalToLabel_Errors(t *testing.T) {
	_, err := label.OrdinalToLabel(3, label.Numalpha, true, "")
	assert.ErrorIs(t, err, label.ErrFormat, "numalpha needs a template")

	_, err = label.OrdinalToLabel(2, label.Alphanumeric, true, "")
	assert.ErrorIs(t, err, label.ErrFormat, "prefix mode needs a template")

	_, err = label.OrdinalToLabel(1, label.Roman, false, "IIZ")
	assert.ErrorIs(t, err, label.ErrFormat)

	_, err = label.OrdinalToLabel(4000, label.Roman, false, "")
	assert.ErrorIs(t, err, label.ErrRange)

	_, err = label.OrdinalToLabel(1, label.Scheme(0), false, "")
	assert.ErrorIs(t, err, label.ErrUnknownScheme)
}
