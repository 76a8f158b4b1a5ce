package protocol

import "github.com/connorfinan79/Arena/internal/combat"

// Client intent types. The gateway treats these as abstract intents, not
// device bindings: the client resolves its screen ray to a world point before
// sending.
const (
	CIntentJoin          = "join"
	CIntentPrimaryAction = "primary_action"
	CIntentAttackMove    = "attack_move"
	CIntentStop          = "stop"
	CIntentAbility       = "ability"
	CIntentQuit          = "quit"
)

// Server message types.
const (
	SMsgWelcome = "welcome"
	SMsgState   = "state"
	SMsgGoodbye = "goodbye"
)

// ClientIntent is one decoded client message. Unused fields are zero.
type ClientIntent struct {
	Type string `json:"type"`

	// join
	Name     string `json:"name,omitempty"`
	Champion string `json:"champion,omitempty"`
	Team     int16  `json:"team,omitempty"`

	// primary_action / attack_move / ability target point
	Point combat.Vec3 `json:"point,omitempty"`

	// ability
	Slot int `json:"slot,omitempty"`
}

// CharacterDiff carries the replicated fields of one character. Nil pointers
// mean "unchanged since the last update"; the first update after join is a
// full snapshot.
type CharacterDiff struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name,omitempty"`
	Team      int16        `json:"team,omitempty"`
	Champion  string       `json:"champion,omitempty"`
	Health    *float64     `json:"health,omitempty"`
	Level     *int         `json:"level,omitempty"`
	Dead      *bool        `json:"dead,omitempty"`
	MoveSpeed *float64     `json:"move_speed,omitempty"` // normalized 0..1
	Pos       *combat.Vec3 `json:"pos,omitempty"`
	Yaw       *float64     `json:"yaw,omitempty"`
}

// Welcome acknowledges a join with the character identity and a full
// snapshot of the arena.
type Welcome struct {
	Type     string          `json:"type"`
	MatchID  string          `json:"match_id"`
	CharID   int64           `json:"char_id"`
	TickMS   int64           `json:"tick_ms"`
	Snapshot []CharacterDiff `json:"snapshot"`
}

// FullDiff builds a complete snapshot entry for one character, every field
// populated. Used for the join snapshot and for first-seen characters.
func FullDiff(c *combat.Character, now float64) CharacterDiff {
	health, level, dead := c.Health, c.Level, c.Dead
	speed := c.NormalizedMoveSpeed(now)
	pos, yaw := c.Pos, c.Yaw
	return CharacterDiff{
		ID:        c.ID,
		Name:      c.Name,
		Team:      c.Team,
		Champion:  c.ChampionID,
		Health:    &health,
		Level:     &level,
		Dead:      &dead,
		MoveSpeed: &speed,
		Pos:       &pos,
		Yaw:       &yaw,
	}
}

// StateUpdate is the per-tick replication payload: coalesced character diffs
// plus the tick's presentation events.
type StateUpdate struct {
	Type    string          `json:"type"`
	Tick    uint64          `json:"tick"`
	Chars   []CharacterDiff `json:"chars,omitempty"`
	Removed []int64         `json:"removed,omitempty"`
	Events  []combat.Event  `json:"events,omitempty"`
}
