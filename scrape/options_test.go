package scrape_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/scrape"
)

func TestNormalizeGroupIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full url", "https://www.facebook.com/groups/123456789", "123456789"},
		{"url with trailing slash", "https://www.facebook.com/groups/123456789/", "123456789"},
		{"url with query params", "https://www.facebook.com/groups/123456789/?ref=share", "123456789"},
		{"url with subpath", "https://www.facebook.com/groups/mygroup/permalink/555", "mygroup"},
		{"mbasic url", "https://mbasic.facebook.com/groups/123456789", "123456789"},
		{"numeric id", "123456789", "123456789"},
		{"slug", "mygroup", "mygroup"},
		{"dotted slug", "my.group.name", "my.group.name"},
		{"surrounding whitespace", "  123456789  ", "123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.NormalizeGroupIdentifier(tt.in))
		})
	}
}

func TestOptions_DateRange(t *testing.T) {
	t.Parallel()

	t.Run("defaults to trailing seven days", func(t *testing.T) {
		t.Parallel()
		opts := scrape.DefaultOptions()

		got, err := opts.DateRange()
		require.NoError(t, err)

		assert.WithinDuration(t, time.Now(), got.Until, time.Minute)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), got.Since, time.Minute)
	})

	t.Run("custom days window", func(t *testing.T) {
		t.Parallel()
		opts := scrape.Options{Days: 30}

		got, err := opts.DateRange()
		require.NoError(t, err)

		assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), got.Since, time.Minute)
	})

	t.Run("explicit since and until", func(t *testing.T) {
		t.Parallel()
		opts := scrape.Options{Since: "2026-01-01", Until: "2026-01-31"}

		got, err := opts.DateRange()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got.Since)
		assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), got.Until)
	})

	t.Run("explicit since with default until", func(t *testing.T) {
		t.Parallel()
		opts := scrape.Options{Since: "2026-01-01"}

		got, err := opts.DateRange()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got.Since)
		assert.WithinDuration(t, time.Now(), got.Until, time.Minute)
	})

	t.Run("invalid since", func(t *testing.T) {
		t.Parallel()
		opts := scrape.Options{Since: "January 1"}

		_, err := opts.DateRange()
		require.Error(t, err)
		assert.Equal(t, forage.EINVALID, forage.ErrorCode(err))
	})

	t.Run("invalid until", func(t *testing.T) {
		t.Parallel()
		opts := scrape.Options{Until: "31/01/2026"}

		_, err := opts.DateRange()
		require.Error(t, err)
		assert.Equal(t, forage.EINVALID, forage.ErrorCode(err))
	})
}
