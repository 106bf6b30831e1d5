package kernel_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from non-negative amount", func(t *testing.T) {
		testCases := []int64{0, 1, 120000, 9_999_999_999}

		for _, amount := range testCases {
			price, err := kernel.NewPrice(amount)

			require.NoError(t, err)
			assert.Equal(t, amount, price.Amount())
		}
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var price kernel.Price

		assert.Equal(t, int64(0), price.Amount())
	})
}

func TestPrice_IsEqual(t *testing.T) {
	a, _ := kernel.NewPrice(12000)
	b, _ := kernel.NewPrice(12000)
	c, _ := kernel.NewPrice(12001)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPrice_MultiplyQuantity(t *testing.T) {
	price, _ := kernel.NewPrice(120000)

	assert.Equal(t, int64(120000), price.MultiplyQuantity(1))
	assert.Equal(t, int64(360000), price.MultiplyQuantity(3))
	assert.Equal(t, int64(0), price.MultiplyQuantity(0))
	assert.Equal(t, int64(-120000), price.MultiplyQuantity(-1))
}

func TestPrice_Add(t *testing.T) {
	a, _ := kernel.NewPrice(10000)
	b, _ := kernel.NewPrice(2500)

	assert.Equal(t, int64(12500), a.Add(b).Amount())
}

func TestPrice_String(t *testing.T) {
	price, _ := kernel.NewPrice(12000)

	assert.Equal(t, "12000", price.String())
}
