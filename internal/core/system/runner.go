package system

import "time"

// Phase orders system execution within one simulation tick.
// All systems of a phase run before any system of the next phase;
// within a phase, systems run in registration order.
type Phase uint8

const (
	PhaseInput      Phase = iota // drain client intents
	PhasePreUpdate               // event bus swap + dispatch
	PhaseUpdate                  // game logic
	PhasePostUpdate              // regen, modifier expiry
	PhaseOutput                  // replication + session flush
	PhasePersist                 // batched DB writes
	PhaseCleanup                 // entity removal

	phaseCount
)

// System is one tick-driven unit of game logic.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

// Runner holds all registered systems and drives them in phase order.
// Single-threaded: Tick and TickPhase are called only from the game loop.
type Runner struct {
	systems [phaseCount][]System
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register adds a system to its declared phase. Registration order within a
// phase is execution order.
func (r *Runner) Register(s System) {
	p := s.Phase()
	r.systems[p] = append(r.systems[p], s)
}

// Tick runs one full simulation tick: all phases, in order.
func (r *Runner) Tick(dt time.Duration) {
	for p := Phase(0); p < phaseCount; p++ {
		for _, s := range r.systems[p] {
			s.Update(dt)
		}
	}
}

// TickPhase runs a single phase. Used by the high-frequency input poll to
// drain intents between full ticks without touching game logic.
func (r *Runner) TickPhase(p Phase, dt time.Duration) {
	for _, s := range r.systems[p] {
		s.Update(dt)
	}
}
