package fakejson

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "shared", want: PolicyShared},
		{in: "fresh", want: PolicyFresh},
		{in: " FRESH ", want: PolicyFresh},
		{in: "Shared", want: PolicyShared},
		{in: "copy", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Policy {
	t.Helper()
	p, err := ParsePolicy(s)
	require.NoError(t, err)
	return p
}

func TestAssemble(t *testing.T) {
	t.Run("SharedReferencesOneRecord", func(t *testing.T) {
		src := &counterSource{}
		ds, err := Assemble(src, Shape{Elements: 3, Fields: 2, ArrayLen: 3}, Options{Policy: PolicyShared})
		require.NoError(t, err)
		require.Len(t, ds, 3)

		// Only one record's worth of names was drawn.
		assert.Equal(t, 2, src.n)
		first := reflect.ValueOf(ds[0]).Pointer()
		for i := range ds {
			assert.Equal(t, first, reflect.ValueOf(ds[i]).Pointer(), "slot %d", i)
		}
	})

	t.Run("FreshBuildsIndependently", func(t *testing.T) {
		src := &counterSource{}
		ds, err := Assemble(src, Shape{Elements: 3, Fields: 2, ArrayLen: 3}, Options{Policy: PolicyFresh})
		require.NoError(t, err)
		require.Len(t, ds, 3)

		assert.Equal(t, 6, src.n)
		assert.Contains(t, ds[0], "Name 1")
		assert.Contains(t, ds[2], "Name 6")
		assert.NotEqual(t, reflect.ValueOf(ds[0]).Pointer(), reflect.ValueOf(ds[1]).Pointer())
	})

	t.Run("OnRecordCalledPerSlot", func(t *testing.T) {
		for _, policy := range []Policy{PolicyShared, PolicyFresh} {
			var seen []int
			_, err := Assemble(&counterSource{}, Shape{Elements: 4, Fields: 1, ArrayLen: 1}, Options{
				Policy:   policy,
				OnRecord: func(i int) { seen = append(seen, i) },
			})
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3}, seen, policy.String())
		}
	})

	t.Run("ZeroElements", func(t *testing.T) {
		src := &counterSource{}
		ds, err := Assemble(src, Shape{Elements: 0, Fields: 5, ArrayLen: 5}, Options{})
		require.NoError(t, err)
		assert.NotNil(t, ds)
		assert.Empty(t, ds)
		assert.Zero(t, src.n)
	})

	t.Run("InvalidShape", func(t *testing.T) {
		_, err := Assemble(&counterSource{}, Shape{Elements: -1}, Options{})
		assert.True(t, errors.Is(err, ErrInvalidShape))
	})

	t.Run("UnknownPolicy", func(t *testing.T) {
		_, err := Assemble(&counterSource{}, Shape{Elements: 1}, Options{Policy: Policy(7)})
		assert.ErrorIs(t, err, ErrUnknownPolicy)
	})
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"large", "small"}, ListPresets())

	small, err := Preset(DefaultPreset)
	require.NoError(t, err)
	assert.Equal(t, Shape{Elements: 100, Fields: 100, ArrayLen: 100}, small.Shape)
	assert.Equal(t, PolicyShared, small.Policy)

	large, err := Preset("large")
	require.NoError(t, err)
	assert.Equal(t, Shape{Elements: 1000, Fields: 1000, ArrayLen: 1000}, large.Shape)
	assert.Equal(t, PolicyFresh, large.Policy)

	_, err = Preset("huge")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
