package combat

import "math"

// Movement tuning. The stop threshold is small but nonzero; a seeker settles
// instead of orbiting its destination on float error.
const (
	stopDistance = 0.08 // planar distance at which Moving becomes Idle
	gravityBias  = 2.5  // constant downward drift per second
	turnRate     = 9.0  // radians per second toward movement direction
)

// MoveState is the movement state machine: Idle or Moving(destination).
type MoveState uint8

const (
	MoveIdle MoveState = iota
	MoveSeeking
)

// MovementController seeks a destination on the XZ plane, one displacement
// per tick. There is no queueing: a new MoveTo overwrites the previous
// destination.
type MovementController struct {
	ch    *Character
	state MoveState
	dest  Vec3
}

// MoveTo sets the destination and enters Moving. Dead characters cannot move.
func (m *MovementController) MoveTo(p Vec3) {
	if m.ch.Dead {
		return
	}
	m.state = MoveSeeking
	m.dest = p
}

// Stop forces Idle unconditionally.
func (m *MovementController) Stop() {
	m.state = MoveIdle
}

func (m *MovementController) Seeking() bool     { return m.state == MoveSeeking }
func (m *MovementController) Destination() Vec3 { return m.dest }

// Tick advances the character toward its destination. Speed is re-read from
// effective stats every tick so mid-flight stat changes take effect
// immediately. A dead character is forced Idle and never displaced.
func (m *MovementController) Tick(dt, now float64) {
	c := m.ch
	c.planarSpeed = 0
	if c.Dead {
		m.state = MoveIdle
		return
	}

	applyGravity(c, dt)

	if m.state != MoveSeeking {
		return
	}

	to := m.dest.Sub(c.Pos).Planar()
	dist := to.PlanarLen()
	if dist < stopDistance {
		m.state = MoveIdle
		return
	}

	dir := to.PlanarNorm()
	speed := c.Effective(StatMoveSpeed, now)
	step := speed * dt
	if step > dist {
		step = dist
	}
	c.Pos = c.Pos.Add(dir.Scale(step))
	c.planarSpeed = speed
	c.Yaw = RotateYawToward(c.Yaw, dir.Yaw(), turnRate*dt)
}

// applyGravity drifts the character down to the arena floor. Positions never
// sink below ground level.
func applyGravity(c *Character, dt float64) {
	if c.Pos.Y > 0 {
		c.Pos.Y = math.Max(0, c.Pos.Y-gravityBias*dt)
	}
}
