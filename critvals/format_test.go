package critvals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statclass/critvals"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		f      critvals.Format
		want   string
	}{
		{1.6448536, 3, critvals.FormatSig, "1.64"},
		{-2.3263479, 3, critvals.FormatSig, "-2.33"},
		{1.5, 3, critvals.FormatSig, "1.50"},
		{2, 3, critvals.FormatSig, "2.00"},
		{15.987, 3, critvals.FormatSig, "16.0"},
		{0.05, 3, critvals.FormatSig, "0.0500"},
		{100, 3, critvals.FormatSig, "100"},
		{1234.5, 3, critvals.FormatSig, "1.23e+03"},
		{0.0000123, 2, critvals.FormatSig, "1.2e-05"},
		{0, 3, critvals.FormatSig, "0.000"},
		{1.6448536, 3, critvals.FormatDec, "1.645"},
		{18.307, 1, critvals.FormatDec, "18.3"},
		{2, 2, critvals.FormatDec, "2.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, critvals.FormatValue(tc.x, tc.digits, tc.f), "%v/%d/%v", tc.x, tc.digits, tc.f)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := critvals.ParseFormat("dec")
	require.NoError(t, err)
	assert.Equal(t, critvals.FormatDec, f)
	assert.Equal(t, "dec", f.String())

	f, err = critvals.ParseFormat("sig")
	require.NoError(t, err)
	assert.Equal(t, critvals.FormatSig, f)

	_, err = critvals.ParseFormat("sci")
	require.ErrorIs(t, err, critvals.ErrFormat)
	assert.Equal(t, "Format(7)", critvals.Format(7).String())
}
