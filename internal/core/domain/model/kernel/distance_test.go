package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewDistance(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		errType error
	}{
		{name: "zero", value: 0},
		{name: "integer", value: 5},
		{name: "fractional", value: 2.75},
		{name: "negative", value: -1, errType: errs.ErrValueIsOutOfRange},
		{name: "positive infinity", value: math.Inf(1), errType: errs.ErrValueIsOutOfRange},
		{name: "negative infinity", value: math.Inf(-1), errType: errs.ErrValueIsOutOfRange},
		{name: "not a number", value: math.NaN(), errType: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := kernel.NewDistance(tt.value)

			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				require.ErrorIs(t, d.Validate(), kernel.ErrDistanceIsNotConstructed)
				return
			}
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.InDelta(t, tt.value, d.Value(), 0)
		})
	}
}

func TestDistance_String(t *testing.T) {
	assert.Equal(t, "8", kernel.MustNewDistance(8).String())
	assert.Equal(t, "2.5", kernel.MustNewDistance(2.5).String())
}

func TestZeroDistance(t *testing.T) {
	d := kernel.ZeroDistance()

	require.NoError(t, d.Validate())
	assert.Zero(t, d.Value())
}
