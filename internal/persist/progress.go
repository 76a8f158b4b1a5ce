package persist

// ProgressSet is the in-memory shadow of durable character records for the
// running match, keyed by live character ID. Accessed only from the game loop
// goroutine, no locks. The persistence system refreshes the records from
// live state and flushes them in batches.
type ProgressSet struct {
	byChar map[int64]*CharacterRecord
}

func NewProgressSet() *ProgressSet {
	return &ProgressSet{byChar: make(map[int64]*CharacterRecord)}
}

func (p *ProgressSet) Track(charID int64, rec *CharacterRecord) { p.byChar[charID] = rec }
func (p *ProgressSet) Get(charID int64) *CharacterRecord        { return p.byChar[charID] }
func (p *ProgressSet) Untrack(charID int64)                     { delete(p.byChar, charID) }
func (p *ProgressSet) Count() int                               { return len(p.byChar) }

// Snapshot copies all tracked records for a batch save.
func (p *ProgressSet) Snapshot() []CharacterRecord {
	out := make([]CharacterRecord, 0, len(p.byChar))
	for _, rec := range p.byChar {
		out = append(out, *rec)
	}
	return out
}
