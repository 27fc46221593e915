package forage_test

import (
	"testing"
	"time"

	"github.com/foragehq/forage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_RelativeForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		ago  time.Duration
	}{
		{"2h", 2 * time.Hour},
		{"3d", 3 * 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"45m", 45 * time.Minute},
		{"10 min ago", 10 * time.Minute},
		{"5 hrs ago", 5 * time.Hour},
		{"2H", 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got := forage.ParseTimestamp(tt.text)

			require.NotNil(t, got)
			assert.WithinDuration(t, time.Now().Add(-tt.ago), *got, 5*time.Second)
		})
	}
}

func TestParseTimestamp_JustNow(t *testing.T) {
	t.Parallel()

	got := forage.ParseTimestamp("Just now")

	require.NotNil(t, got)
	assert.WithinDuration(t, time.Now(), *got, 5*time.Second)
}

func TestParseTimestamp_Yesterday(t *testing.T) {
	t.Parallel()

	// The time-of-day suffix is dropped; only the day shifts.
	got := forage.ParseTimestamp("Yesterday at 3:45 PM")

	require.NotNil(t, got)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -1), *got, 5*time.Second)
}

func TestParseTimestamp_AbsoluteFormats(t *testing.T) {
	t.Parallel()

	t.Run("full date with year", func(t *testing.T) {
		t.Parallel()

		got := forage.ParseTimestamp("January 15, 2024 at 2:30 PM")

		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
		assert.Equal(t, 14, got.Hour())
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("date without year gets current year", func(t *testing.T) {
		t.Parallel()

		got := forage.ParseTimestamp("January 15 at 2:30 PM")

		require.NotNil(t, got)
		assert.Equal(t, time.Now().Year(), got.Year())
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("abbreviated month", func(t *testing.T) {
		t.Parallel()

		got := forage.ParseTimestamp("Jan 15, 2024 at 2:30 PM")

		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
	})

	t.Run("slash date", func(t *testing.T) {
		t.Parallel()

		got := forage.ParseTimestamp("1/15/2024")

		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("two digit year", func(t *testing.T) {
		t.Parallel()

		got := forage.ParseTimestamp("1/15/24")

		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
	})
}

func TestParseTimestamp_Unparseable(t *testing.T) {
	t.Parallel()

	assert.Nil(t, forage.ParseTimestamp(""))
	assert.Nil(t, forage.ParseTimestamp("   "))
	assert.Nil(t, forage.ParseTimestamp("gibberish"))
	assert.Nil(t, forage.ParseTimestamp("sometime last year"))
}
