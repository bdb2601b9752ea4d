package sim

import (
	"slices"

	"github.com/tomz197/ufostrike/internal/object"
)

const (
	ufoKillScore  = 2
	bossKillScore = 100
	killsPerEnemy = 2

	bossBlastCount       = 15
	bossBlastExtraSize   = 50
	bossCornerBlastCount = 8
)

// Step advances the game by one tick. Timers run first; while the game is
// not Playing nothing else moves.
func (s *State) Step() {
	s.tick++
	s.advanceTimers()
	if !s.Active() {
		return
	}

	s.player.Update(s.level, s.screen)

	for _, l := range s.lasers {
		l.Update()
	}
	s.lasers = slices.DeleteFunc(s.lasers, func(l *object.Laser) bool { return !l.Active })

	if !s.stepUFOs() {
		return
	}
	if !s.stepBoss() {
		return
	}
	if !s.stepBossLasers() {
		return
	}

	for _, e := range s.explosions {
		e.Update()
	}
	s.explosions = slices.DeleteFunc(s.explosions, func(e *object.Explosion) bool { return !e.Active })

	if len(s.ufos) == 0 && s.boss == nil && s.level < 3 {
		s.spawnWave()
	}

	s.publish(false)
}

// stepUFOs moves every UFO and resolves its hits. It returns false when the
// player ran out of lives.
func (s *State) stepUFOs() bool {
	for i := len(s.ufos) - 1; i >= 0; i-- {
		u := s.ufos[i]
		u.Update(s.screen, s.rng)

		destroyed := false
		for j := len(s.lasers) - 1; j >= 0; j-- {
			if !Collides(s.lasers[j], u) {
				continue
			}
			s.lasers = slices.Delete(s.lasers, j, j+1)
			if u.Hit() {
				destroyed = true
				s.killUFO(i)
			}
			break
		}
		if destroyed {
			continue
		}

		if Collides(s.player, u) {
			s.explodeAt(u)
			s.ufos = slices.Delete(s.ufos, i, i+1)
			if !s.loseLife() {
				return false
			}
		}
	}
	return true
}

func (s *State) killUFO(i int) {
	u := s.ufos[i]
	s.explodeAt(u)
	s.score += ufoKillScore
	s.kills += killsPerEnemy
	s.ufos = slices.Delete(s.ufos, i, i+1)
	s.checkThresholds()
}

func (s *State) explodeAt(u *object.UFO) {
	cx, cy := u.Center()
	s.explosions = append(s.explosions, object.NewExplosion(cx, cy, u.W, s.rng))
}

// stepBoss moves the boss, collects its burst and applies laser hits.
// It returns false once the boss is defeated.
func (s *State) stepBoss() bool {
	b := s.boss
	if b == nil {
		return true
	}
	s.bossLasers = append(s.bossLasers, b.Update(s.screen)...)

	for j := len(s.lasers) - 1; j >= 0; j-- {
		if !Collides(s.lasers[j], b) {
			continue
		}
		s.lasers = slices.Delete(s.lasers, j, j+1)
		if b.Hit() {
			s.defeatBoss()
			return false
		}
	}
	return true
}

func (s *State) defeatBoss() {
	b := s.boss
	for i := 0; i < bossBlastCount; i++ {
		s.explosions = append(s.explosions, object.NewExplosion(
			b.X+s.rng.Float64()*b.W,
			b.Y+s.rng.Float64()*b.H,
			b.W+s.rng.Float64()*bossBlastExtraSize,
			s.rng,
		))
	}
	for k := 0; k < bossCornerBlastCount; k++ {
		x, y := b.X, b.Y
		if k%2 != 0 {
			x += b.W
		}
		if k >= 4 {
			y += b.H
		}
		s.explosions = append(s.explosions, object.NewExplosion(x, y, b.W/3, s.rng))
	}

	s.score += bossKillScore
	s.kills += killsPerEnemy
	s.boss = nil
	s.enterVictory()
	s.publish(false)
}

// stepBossLasers moves boss shots and applies hits on the player. The
// player's shield does not stop them. It returns false on game over.
func (s *State) stepBossLasers() bool {
	for i := len(s.bossLasers) - 1; i >= 0; i-- {
		l := s.bossLasers[i]
		l.Update(s.screen)
		if Collides(l, s.player) {
			s.bossLasers = slices.Delete(s.bossLasers, i, i+1)
			if !s.loseLife() {
				return false
			}
			continue
		}
		if !l.Active {
			s.bossLasers = slices.Delete(s.bossLasers, i, i+1)
		}
	}
	return true
}

// loseLife takes one life and reports whether the player is still alive.
func (s *State) loseLife() bool {
	s.player.Lives--
	if s.player.Lives > 0 {
		return true
	}
	s.enterGameOver()
	s.publish(false)
	return false
}
