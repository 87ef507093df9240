package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()
	require.False(t, a.IsZero())
	require.Len(t, a.String(), 26)

	// Monotonic entropy means same-millisecond IDs still sort.
	require.Less(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := New()
	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestNewAtEmbedsTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestMustParsePanicsOnGarbage(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustParse("zzz") })
}
