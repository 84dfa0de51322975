package axis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/axis"
	"github.com/katalvlaran/lvlabel/label"
)

func TestNew_Size(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := axis.New("X", size)
		assert.ErrorIs(t, err, axis.ErrSize)
	}

	a, err := axis.New("Y", 3)
	require.NoError(t, err)
	assert.Equal(t, "Y", a.Name())
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 1, a.Origin())
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, label.Numbers, a.Scheme())
	assert.Empty(t, a.Ranges())
}

func TestWithStep_Panics(t *testing.T) {
	assert.Panics(t, func() { axis.WithStep(0) })
}

// TestLabels_Default covers the default continuation for both schemes.
func TestLabels_Default(t *testing.T) {
	cases := []struct {
		name string
		size int
		opts []axis.Option
		want []string
	}{
		{"Numbers", 4, nil, []string{"1", "2", "3", "4"}},
		{"NumbersSeedStep", 4, []axis.Option{axis.WithOrigin(10), axis.WithStep(5)}, []string{"10", "15", "20", "25"}},
		{"NumbersDown", 3, []axis.Option{axis.WithOrigin(1), axis.WithStep(-1)}, []string{"1", "0", "-1"}},
		{"Letters", 4, []axis.Option{axis.WithLetters(), axis.WithOrigin(25)}, []string{"Y", "Z", "AA", "AB"}},
		{"LettersWrapForward", 3, []axis.Option{axis.WithLetters(), axis.WithOrigin(label.LettersMax)}, []string{"ZZZ", "A", "B"}},
		{"LettersWrapBackward", 3, []axis.Option{axis.WithLetters(), axis.WithStep(-1)}, []string{"A", "ZZZ", "ZZY"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := axis.New("X", tc.size, tc.opts...)
			require.NoError(t, err)
			got, err := a.Labels()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLabels_CustomThenDefault checks that default labels resume after the
// custom ranges at origin + len(custom)*step.
func TestLabels_CustomThenDefault(t *testing.T) {
	a, err := axis.New("X", 5,
		axis.WithRange(label.Range{Start: "02A", End: "02C", Step: 1, Scheme: label.Numalpha, IncrementPrefix: true}),
	)
	require.NoError(t, err)

	got, err := a.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"02A", "02B", "02C", "4", "5"}, got)

	b, err := axis.New("Y", 6,
		axis.WithLetters(),
		axis.WithStep(2),
		axis.WithRange(label.Range{Start: "I", End: "II", Step: 1, Scheme: label.Roman}),
	)
	require.NoError(t, err)
	got, err = b.Labels()
	require.NoError(t, err)
	// seed = 1 + 2*2 = 5 (E), then G, I, K
	assert.Equal(t, []string{"I", "II", "E", "G", "I", "K"}, got)
}

func TestLabels_Truncated(t *testing.T) {
	a, err := axis.New("X", 3,
		axis.WithRange(label.Range{Start: "A01", End: "A02", Step: 1, Scheme: label.Alphanumeric}),
		axis.WithRange(label.Range{Start: "B01", End: "B05", Step: 1, Scheme: label.Alphanumeric}),
	)
	require.NoError(t, err)
	got, err := a.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"A01", "A02", "B01"}, got)
}

func TestLabels_RangeError(t *testing.T) {
	a, err := axis.New("X", 3,
		axis.WithRange(label.Range{Start: "A01", End: "A05", Step: 10, Scheme: label.Alphanumeric}),
	)
	require.NoError(t, err)
	_, err = a.Labels()
	assert.ErrorIs(t, err, label.ErrStep)
	assert.Contains(t, err.Error(), "axis X range 1")
}

func TestLabels_LabelOptions(t *testing.T) {
	a, err := axis.New("X", 2,
		axis.WithLabelOptions(label.WithMinDigits(2)),
		axis.WithRange(label.Range{Start: "0x0A", End: "0x0B", Step: 1, Scheme: label.Hex}),
	)
	require.NoError(t, err)
	got, err := a.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"0x0A", "0x0B"}, got)
}

func TestLabelAt_PositionOf(t *testing.T) {
	a, err := axis.New("X", 5,
		axis.WithRange(label.Range{Start: "02A", End: "02C", Step: 1, Scheme: label.Numalpha, IncrementPrefix: true}),
	)
	require.NoError(t, err)

	s, err := a.LabelAt(3)
	require.NoError(t, err)
	assert.Equal(t, "02C", s)

	for _, pos := range []int{0, 6} {
		_, err := a.LabelAt(pos)
		assert.ErrorIs(t, err, axis.ErrPosition)
	}

	pos, err := a.PositionOf("4")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)

	pos, err = a.PositionOf("02b")
	require.NoError(t, err, "case-insensitive fallback")
	assert.Equal(t, 2, pos)

	_, err = a.PositionOf("02Z")
	assert.ErrorIs(t, err, axis.ErrUnknownLabel)
}

// TestPositionOf_ExactWins shows an exact match beating an earlier
// case-insensitive one.
func TestPositionOf_ExactWins(t *testing.T) {
	a, err := axis.New("X", 2,
		axis.WithRange(label.Range{Start: "a1", End: "a1", Step: 1, Scheme: label.Alphanumeric}),
		axis.WithRange(label.Range{Start: "A1", End: "A1", Step: 1, Scheme: label.Alphanumeric}),
	)
	require.NoError(t, err)
	pos, err := a.PositionOf("A1")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		size   int
		ranges []label.Range
		err    error
	}{
		{"OK", 10, []label.Range{
			{Start: "1", End: "3", Step: 1, Scheme: label.Numbers},
			{Start: "A", End: "C", Step: 1, Scheme: label.Letters},
		}, nil},
		{"SameLabelDifferentSchemes", 10, []label.Range{
			{Start: "A01", End: "A02", Step: 1, Scheme: label.Alphanumeric},
			{Start: "1", End: "2", Step: 1, Scheme: label.Numbers},
		}, nil},
		{"TooMany", 4, []label.Range{
			{Start: "1", End: "3", Step: 1, Scheme: label.Numbers},
			{Start: "A", End: "B", Step: 1, Scheme: label.Letters},
		}, axis.ErrTooManyLabels},
		{"Overlap", 10, []label.Range{
			{Start: "A", End: "D", Step: 1, Scheme: label.Letters},
			{Start: "C", End: "E", Step: 1, Scheme: label.Letters},
		}, axis.ErrOverlap},
		{"IncrementNumbers", 10, []label.Range{
			{Start: "1", End: "3", Step: 1, Scheme: label.Numbers, IncrementPrefix: true},
		}, axis.ErrIncrementMode},
		{"BadRange", 10, []label.Range{
			{Start: "02AA", End: "03AC", Step: 1, Scheme: label.Numalpha, IncrementPrefix: true},
		}, label.ErrPrefixMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := make([]axis.Option, 0, len(tc.ranges))
			for _, r := range tc.ranges {
				opts = append(opts, axis.WithRange(r))
			}
			a, err := axis.New("X", tc.size, opts...)
			require.NoError(t, err)

			err = a.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRanges_Copy(t *testing.T) {
	r := label.Range{Start: "1", End: "2", Step: 1, Scheme: label.Numbers}
	a, err := axis.New("X", 2, axis.WithRange(r))
	require.NoError(t, err)

	got := a.Ranges()
	got[0].Start = "9"
	assert.Equal(t, "1", a.Ranges()[0].Start)
}
