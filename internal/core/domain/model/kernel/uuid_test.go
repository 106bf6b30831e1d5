package kernel_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "69d78f38-3bbd-4dd7-90ab-7f7a1622ab9f"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		orderID := kernel.NewUUID()

		assert.NoError(t, orderID.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", orderID.String())
	})

	t.Run("should create distinct ids for distinct orders", func(t *testing.T) {
		firstOrderID := kernel.NewUUID()
		secondOrderID := kernel.NewUUID()

		assert.False(t, firstOrderID.IsEqual(secondOrderID))
		assert.NotEqual(t, firstOrderID.String(), secondOrderID.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse the canonical form", func(t *testing.T) {
		orderID, err := kernel.UUIDFromString(orderIDText)

		require.NoError(t, err)
		assert.Equal(t, orderIDText, orderID.String())
		assert.NoError(t, orderID.Validate())
	})

	t.Run("should accept the alternate textual forms", func(t *testing.T) {
		forms := []string{
			"{69d78f38-3bbd-4dd7-90ab-7f7a1622ab9f}",
			"urn:uuid:69d78f38-3bbd-4dd7-90ab-7f7a1622ab9f",
			"69d78f383bbd4dd790ab7f7a1622ab9f",
		}

		for _, form := range forms {
			orderID, err := kernel.UUIDFromString(form)
			require.NoError(t, err, "form: %s", form)
			assert.Equal(t, orderIDText, orderID.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"order-1",
			"69d78f38-3bbd-4dd7-90ab",
			"69d78f38-3bbd-4dd7-90ab-7f7a1622ab9f-trailing",
			"zzz78f38-3bbd-4dd7-90ab-7f7a1622ab9f",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should rebuild the id stored in a database column", func(t *testing.T) {
		stored := uuid.MustParse(orderIDText)

		orderID, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.Equal(t, orderIDText, orderID.String())
	})

	t.Run("should reject a truncated column value", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x69, 0xd7, 0x8f})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		var zero [16]byte
		_, err := kernel.UUIDFromBytes(zero[:])

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("should render the canonical form", func(t *testing.T) {
		menuID := kernel.NewUUID()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, menuID.String())
	})

	t.Run("should be stable across calls", func(t *testing.T) {
		menuID, err := kernel.UUIDFromString(orderIDText)
		require.NoError(t, err)

		assert.Equal(t, menuID.String(), menuID.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying uuid.UUID", func(t *testing.T) {
		tableID := kernel.NewUUID()
		raw := tableID.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, tableID.String(), raw.String())
	})

	t.Run("should return a copy that cannot corrupt the id", func(t *testing.T) {
		tableID := kernel.NewUUID()
		before := tableID.String()

		raw := tableID.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, tableID.String())
		assert.NoError(t, tableID.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match two references to the same order", func(t *testing.T) {
		first, err := kernel.UUIDFromString(orderIDText)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(orderIDText)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("should not match ids of different orders", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should treat two zero values as equal", func(t *testing.T) {
		var first, second kernel.UUID

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should pass for a constructed id", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should fail for a zero-value field", func(t *testing.T) {
		var orderRef struct{ ID kernel.UUID }

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, orderRef.ID.Validate())
	})

	t.Run("should fail for the parsed nil UUID", func(t *testing.T) {
		nilID, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, nilID.Validate())
	})
}
