package event

// --- Session lifecycle events ---

type PlayerJoined struct {
	CharID    int64
	SessionID uint64
	Name      string
	Team      int16
}

type PlayerLeft struct {
	CharID    int64
	SessionID uint64
}

// --- Combat events (emitted during PhaseUpdate, readable next tick) ---

// CharacterKilled is emitted whenever a character dies.
// Subscribers: RespawnSystem (schedules respawn), PersistenceSystem
// (kill ledger), future ranking/achievement systems.
type CharacterKilled struct {
	VictimID   int64
	VictimTeam int16
	KillerID   int64 // 0 when the killer no longer exists
	XPAwarded  float64
}

// CharacterRespawned is emitted after a dead character re-enters play.
type CharacterRespawned struct {
	CharID int64
	Team   int16
}

// LevelReached is emitted once per level gained, including each step of a
// multi-level cascade from a single XP grant.
type LevelReached struct {
	CharID int64
	Level  int
}
