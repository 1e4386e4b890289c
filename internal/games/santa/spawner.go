package santa

import (
	"time"

	"github.com/vovakirdan/santa-catch/internal/core"
)

// Gift is a falling object. Its horizontal position is fixed by its lane.
type Gift struct {
	ID       uint64 // Creation order within the round
	Lane     int
	X        float64
	Y        float64
	Speed    float64 // Copy of the round speed, refreshed every tick
	Rotation float64 // Degrees, cosmetic
	Color    core.Color
}

// giftPalette lists the colors a new gift can get.
var giftPalette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
}

// trySpawn drops a gift into a random free lane.
// It refuses while the spawn delay has not elapsed or every lane is busy.
func (r *Round) trySpawn(now time.Duration) bool {
	delay := time.Duration(r.cfg.Spawn.DelayMS) * time.Millisecond
	if now-r.lastSpawn < delay {
		return false
	}

	free := r.freeLanes()
	if len(free) == 0 {
		return false
	}

	lane := free[r.rng.Intn(len(free))]
	r.spawnInLane(lane, now)
	return true
}

// spawnInLane creates a gift at the start height of a free lane.
func (r *Round) spawnInLane(lane int, now time.Duration) {
	r.gifts = append(r.gifts, Gift{
		ID:    r.nextGiftID,
		Lane:  lane,
		X:     r.giftX(lane),
		Y:     r.cfg.Gift.SpawnY,
		Speed: r.speed.Speed(),
		Color: giftPalette[r.rng.Intn(len(giftPalette))],
	})
	r.nextGiftID++
	r.activeLanes[lane] = true
	r.lastSpawn = now
}

// freeLanes returns lanes without a falling gift, in ascending order.
func (r *Round) freeLanes() []int {
	free := make([]int, 0, len(r.activeLanes))
	for lane, busy := range r.activeLanes {
		if !busy {
			free = append(free, lane)
		}
	}
	return free
}

// giftX returns the left edge of a gift centered in lane.
func (r *Round) giftX(lane int) float64 {
	return float64(lane*r.laneWidth + r.laneWidth/2 - r.cfg.Gift.Size/2)
}

// giftRect returns the gift's box in field coordinates.
func (r *Round) giftRect(g Gift) core.FRect {
	size := float64(r.cfg.Gift.Size)
	return core.NewFRect(g.X, g.Y, size, size)
}
