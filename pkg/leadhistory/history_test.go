package leadhistory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Valid log", func(t *testing.T) {
		raw := `[{"estado":"nuevo","timestamp":"2024-05-01T10:00:00Z","usuario":"Carla"}]`

		entries := Parse(1, raw)

		require.Len(t, entries, 1)
		assert.Equal(t, "nuevo", entries[0].Estado)
		assert.Equal(t, "Carla", entries[0].Usuario)
	})

	t.Run("Empty string yields empty log", func(t *testing.T) {
		assert.Empty(t, Parse(1, ""))
	})

	t.Run("Corrupt JSON recovers with empty log", func(t *testing.T) {
		entries := Parse(1, "{not json at all")

		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("JSON null yields empty log, not nil", func(t *testing.T) {
		entries := Parse(1, "null")

		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	entries := []Entry{
		NewEntry("nuevo", "Carla"),
		AssignedEntry("Martín"),
	}

	decoded := Parse(1, Encode(entries))

	require.Len(t, decoded, 2)
	assert.Equal(t, entries, decoded)
}

func TestEncodeNil(t *testing.T) {
	assert.Equal(t, "[]", Encode(nil))
}

func TestNewEntryTimestamp(t *testing.T) {
	entry := NewEntry("contactado", "Carla")

	ts, err := time.Parse(time.RFC3339, entry.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestSystemEntries(t *testing.T) {
	t.Run("Round-robin assignment label", func(t *testing.T) {
		entry := AssignedEntry("Martín")

		assert.Equal(t, "Asignado automáticamente a Martín (Round Robin)", entry.Estado)
		assert.Equal(t, "Sistema", entry.Usuario)
	})

	t.Run("Reassignment label", func(t *testing.T) {
		entry := ReassignedEntry("Sin asignar", "Carla")

		assert.Equal(t, "Reasignado a Sin asignar", entry.Estado)
		assert.Equal(t, "Carla", entry.Usuario)
	})
}
