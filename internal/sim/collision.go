package sim

import (
	"github.com/tomz197/ufostrike/internal/object"
	"github.com/tomz197/ufostrike/internal/physics"
)

// Collides reports whether a and b overlap. When a is a shielded player,
// anything whose centre lies within the shield radius is absorbed and does
// not count. The shield only applies to the first argument, so callers pick
// the order: Collides(player, ufo) honours the shield, Collides(bossLaser,
// player) ignores it.
func Collides(a, b object.Collider) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !physics.Overlaps(ra, rb) {
		return false
	}
	if p, ok := a.(*object.Player); ok && p.Shield {
		return physics.CenterDistance(ra, rb) > p.ShieldRadius
	}
	return true
}
