package runner

// inBand reports whether an obstacle is close enough to the character to
// be checked for collision.
func (e *Engine) inBand(o *Obstacle) bool {
	return o.X >= e.cfg.Collision.BandMin && o.X <= e.cfg.Collision.BandMax
}

// collides reports whether the character hits o. Ground obstacles are
// hit unless the character is at least GroundClearance up. Elevated
// obstacles are hit once the character's top rises past their bottom edge.
func (e *Engine) collides(o *Obstacle) bool {
	if !e.inBand(o) {
		return false
	}

	y := max(e.char.Y, 0)
	switch o.Tier {
	case TierGround:
		return y < e.cfg.Collision.GroundClearance
	case TierElevated:
		return y+e.cfg.Player.Height > o.Elevation
	default:
		return false
	}
}

// checkCollisions ends the session when any obstacle in the band is hit.
func (e *Engine) checkCollisions() {
	for _, o := range e.s.obstacles {
		if !e.collides(o) {
			continue
		}
		e.s.speed = 0
		e.char.Airborne = false
		e.gameOver()
		return
	}
}
