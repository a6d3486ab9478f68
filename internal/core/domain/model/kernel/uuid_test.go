package kernel_test

import (
	"testing"

	"boxoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-nil UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	sessionID := "8f14e45f-ceea-4671-9b59-d5a2a778c3dd"

	t.Run("should parse the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(sessionID)

		require.NoError(t, err)
		assert.Equal(t, sessionID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should parse braced, urn and compact forms", func(t *testing.T) {
		for _, input := range []string{
			"{8f14e45f-ceea-4671-9b59-d5a2a778c3dd}",
			"urn:uuid:8f14e45f-ceea-4671-9b59-d5a2a778c3dd",
			"8f14e45fceea46719b59d5a2a778c3dd",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, sessionID, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"8f14e45f-ceea-4671-9b59",
			"8f14e45f-ceea-4671-9b59-d5a2a778c3dd-extra",
			"zz14e45f-ceea-4671-9b59-d5a2a778c3dd",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from sixteen bytes", func(t *testing.T) {
		raw := []byte{
			0x8f, 0x14, 0xe4, 0x5f, 0xce, 0xea, 0x46, 0x71,
			0x9b, 0x59, 0xd5, 0xa2, 0xa7, 0x78, 0xc3, 0xdd,
		}

		id, err := kernel.UUIDFromBytes(raw)

		require.NoError(t, err)
		assert.Equal(t, "8f14e45f-ceea-4671-9b59-d5a2a778c3dd", id.String())
	})

	t.Run("should reject a short byte slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x8f, 0x14, 0xe4})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying uuid.UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("should return a copy the caller cannot mutate through", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should be symmetric for equal values", func(t *testing.T) {
		id1, err := kernel.UUIDFromString("8f14e45f-ceea-4671-9b59-d5a2a778c3dd")
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString("8f14e45f-ceea-4671-9b59-d5a2a778c3dd")
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("should compare zero values as equal", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept a constructor built UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should reject the parsed nil UUID", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_AsIdentifierField(t *testing.T) {
	type ticketCode struct {
		ID kernel.UUID
	}

	t.Run("should validate when set from the constructor", func(t *testing.T) {
		code := ticketCode{ID: kernel.NewUUID()}

		assert.NoError(t, code.ID.Validate())
	})

	t.Run("should flag an uninitialized field", func(t *testing.T) {
		var code ticketCode

		assert.Error(t, code.ID.Validate())
	})
}
