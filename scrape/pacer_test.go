package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foragehq/forage/scrape"
)

func TestRandomDelay(t *testing.T) {
	t.Parallel()

	t.Run("stays within bounds", func(t *testing.T) {
		t.Parallel()
		base := 2 * time.Second
		variance := 500 * time.Millisecond

		for i := 0; i < 100; i++ {
			d := scrape.RandomDelay(base, variance)
			assert.GreaterOrEqual(t, d, base-variance)
			assert.LessOrEqual(t, d, base+variance)
		}
	})

	t.Run("no variance returns base", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, time.Second, scrape.RandomDelay(time.Second, 0))
	})

	t.Run("never drops below floor", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < 100; i++ {
			d := scrape.RandomDelay(time.Millisecond, 10*time.Millisecond)
			assert.GreaterOrEqual(t, d, time.Millisecond)
		}
	})
}

func TestPacer_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()
		p := scrape.NewPacer(time.Second, 0)

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("subsequent waits are paced", func(t *testing.T) {
		t.Parallel()
		p := scrape.NewPacer(50*time.Millisecond, 0)

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		require.NoError(t, p.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("jittered waits keep the lower edge of the band", func(t *testing.T) {
		t.Parallel()
		p := scrape.NewPacer(60*time.Millisecond, 20*time.Millisecond)

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		require.NoError(t, p.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()
		p := scrape.NewPacer(time.Minute, 0)
		require.NoError(t, p.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, p.Wait(ctx))
	})
}
