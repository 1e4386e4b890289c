package santa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa-catch/internal/config"
	"github.com/vovakirdan/santa-catch/internal/core"
)

func TestTrySpawnDelay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Duration
		want bool
	}{
		{"before first delay", 999 * time.Millisecond, false},
		{"at first delay", 1000 * time.Millisecond, true},
		{"long after", 10 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newQuietRound(t, nil)
			assert.Equal(t, tt.want, r.trySpawn(tt.now))
			if tt.want {
				assert.Len(t, r.Gifts(), 1)
			} else {
				assert.Empty(t, r.Gifts())
			}
		})
	}
}

func TestTrySpawnThrottle(t *testing.T) {
	r := newQuietRound(t, nil)

	require.True(t, r.trySpawn(time.Second))
	assert.False(t, r.trySpawn(1999*time.Millisecond), "second spawn inside the delay")
	assert.True(t, r.trySpawn(2*time.Second))
	assert.Len(t, r.Gifts(), 2)
}

func TestTrySpawnPicksFreeLane(t *testing.T) {
	r := newQuietRound(t, nil)
	r.spawnInLane(0, 0)
	r.spawnInLane(1, 0)
	r.spawnInLane(3, 0)

	require.True(t, r.trySpawn(time.Second))

	gifts := r.Gifts()
	require.Len(t, gifts, 4)
	assert.Equal(t, 2, gifts[3].Lane)
	assert.Equal(t, []int{0, 1, 2, 3}, r.ActiveLanes())
}

func TestTrySpawnAllLanesBusy(t *testing.T) {
	r := newQuietRound(t, nil)
	for lane := 0; lane < 4; lane++ {
		r.spawnInLane(lane, 0)
	}

	assert.False(t, r.trySpawn(time.Minute))
	assert.Len(t, r.Gifts(), 4)
	assert.Equal(t, time.Duration(0), r.lastSpawn, "rejected spawn leaves the timer alone")
}

func TestSpawnedGiftGeometry(t *testing.T) {
	r := newQuietRound(t, nil)

	for lane, wantX := range []float64{80, 280, 480, 680} {
		r.spawnInLane(lane, 0)
		g := r.Gifts()[lane]
		assert.Equal(t, wantX, g.X, "lane %d", lane)
		assert.Equal(t, 150.0, g.Y)
		assert.Equal(t, 0.0, g.Rotation)
		assert.Equal(t, 1.0, g.Speed)
		assert.Equal(t, uint64(lane), g.ID, "ids follow creation order")
		assert.Contains(t, giftPalette, g.Color)
	}
}

func TestGiftFallsAndRotates(t *testing.T) {
	r := newQuietRound(t, nil)
	r.spawnInLane(2, 0)

	for i := 1; i <= 10; i++ {
		r.Tick(time.Duration(i) * time.Millisecond)
	}

	g := r.Gifts()[0]
	assert.InDelta(t, 160.0, g.Y, 1e-9)
	assert.InDelta(t, 15.0, g.Rotation, 1e-9)
}

func TestSpawnChanceGate(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		want   int
	}{
		{"never", 0, 0},
		{"always", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSantaConfig()
			cfg.Spawn.ChancePercent = tt.chance
			r := NewRound(cfg, nil, 3)
			r.Start()

			// Ticks span less than two delays, so at most one spawn.
			for i := 1; i <= 100; i++ {
				r.Tick(time.Duration(i) * 15 * time.Millisecond)
			}
			assert.Len(t, r.Gifts(), tt.want)
		})
	}
}

func TestGiftRectOverlap(t *testing.T) {
	r := newQuietRound(t, nil)
	catcher := r.CatcherRect()

	inLane := r.giftRect(Gift{X: r.giftX(0)})
	nextLane := r.giftRect(Gift{X: r.giftX(1)})

	assert.True(t, inLane.OverlapsX(catcher))
	assert.False(t, nextLane.OverlapsX(catcher))
	assert.Equal(t, core.NewFRect(80, 0, 40, 40), inLane)
}
