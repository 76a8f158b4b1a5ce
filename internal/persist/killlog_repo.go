package persist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// KillRecord is one kill ledger entry, written for every character death with
// an identified killer.
type KillRecord struct {
	MatchID    uuid.UUID
	Tick       uint64
	VictimID   int64
	VictimTeam int16
	KillerID   int64
	XPAwarded  float64
}

// KillLogRepo appends kill records. Kills are buffered in memory by the
// persistence system and flushed in batches; a crash loses at most one batch
// window of ledger entries, never progression.
type KillLogRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewKillLogRepo(pool *pgxpool.Pool, log *zap.Logger) *KillLogRepo {
	return &KillLogRepo{pool: pool, log: log}
}

// InsertBatch appends records in one round trip.
func (r *KillLogRepo) InsertBatch(ctx context.Context, recs []KillRecord) error {
	if len(recs) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, rec := range recs {
		b.Queue(`INSERT INTO kill_log (match_id, tick, victim_id, victim_team, killer_id, xp_awarded)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.MatchID, rec.Tick, rec.VictimID, rec.VictimTeam, rec.KillerID, rec.XPAwarded)
	}
	br := r.pool.SendBatch(ctx, b)
	defer br.Close()
	for range recs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert kill log: %w", err)
		}
	}
	return nil
}

// MatchKillCount reports how many kills this match has logged so far. Used at
// shutdown for the final summary log line.
func (r *KillLogRepo) MatchKillCount(ctx context.Context, matchID uuid.UUID) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM kill_log WHERE match_id = $1`, matchID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count kills: %w", err)
	}
	return n, nil
}
