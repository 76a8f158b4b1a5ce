package combat

// EventKind names a presentation hand-off produced by the simulation.
// The core never renders or plays anything; it appends events to the tick's
// sink and the replication layer drains them afterward.
type EventKind string

const (
	EvAttackFired      EventKind = "attack_fired"
	EvProjectileSpawn  EventKind = "projectile_spawned"
	EvProjectileImpact EventKind = "projectile_impact"
	EvImpact           EventKind = "impact_effect"
	EvKnockback        EventKind = "knockback_applied"
	EvDied             EventKind = "died"
	EvRespawned        EventKind = "respawned"
	EvLevelUp          EventKind = "level_up"
	EvMarkerPlaced     EventKind = "marker_placed"
	EvNothingHit       EventKind = "nothing_hit"
	EvAbilityUsed      EventKind = "ability_used"
)

// Event is one simulation side-effect for the presentation layer:
// attack animations, death animations, impact effects, sounds, move markers.
type Event struct {
	Kind   EventKind `json:"kind"`
	CharID int64     `json:"char_id,omitempty"`
	Target int64     `json:"target_id,omitempty"`
	Pos    Vec3      `json:"pos"`
	Dir    Vec3      `json:"dir"`
	Value  float64   `json:"value,omitempty"`
}

// EventSink collects the events of the current tick.
// Accessed only from the game loop goroutine.
type EventSink struct {
	events []Event
}

func NewEventSink() *EventSink {
	return &EventSink{}
}

func (s *EventSink) Emit(ev Event) {
	s.events = append(s.events, ev)
}

// Drain returns the accumulated events and resets the sink for the next tick.
func (s *EventSink) Drain() []Event {
	out := s.events
	s.events = nil
	return out
}

// Len reports the number of pending events.
func (s *EventSink) Len() int { return len(s.events) }
