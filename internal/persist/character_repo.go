package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CharacterRecord is the durable slice of a character: progression and career
// counters. Keyed by player name; positions and health are match-local and
// never persisted.
type CharacterRecord struct {
	Name     string
	Champion string
	Level    int
	XP       float64
	Kills    int64
	Deaths   int64
}

// CharacterRepo persists character progression.
type CharacterRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewCharacterRepo(pool *pgxpool.Pool, log *zap.Logger) *CharacterRepo {
	return &CharacterRepo{pool: pool, log: log}
}

// Load fetches a record by name. Returns (nil, nil) when the name is unknown.
func (r *CharacterRepo) Load(ctx context.Context, name string) (*CharacterRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT name, champion, level, xp, kills, deaths FROM characters WHERE name = $1`, name)
	var rec CharacterRecord
	err := row.Scan(&rec.Name, &rec.Champion, &rec.Level, &rec.XP, &rec.Kills, &rec.Deaths)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load character %s: %w", name, err)
	}
	return &rec, nil
}

// SaveBatch upserts records in one round trip using a pgx batch.
func (r *CharacterRepo) SaveBatch(ctx context.Context, recs []CharacterRecord) error {
	if len(recs) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, rec := range recs {
		b.Queue(`INSERT INTO characters (name, champion, level, xp, kills, deaths, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (name) DO UPDATE SET
				champion = EXCLUDED.champion,
				level    = EXCLUDED.level,
				xp       = EXCLUDED.xp,
				kills    = EXCLUDED.kills,
				deaths   = EXCLUDED.deaths,
				updated_at = now()`,
			rec.Name, rec.Champion, rec.Level, rec.XP, rec.Kills, rec.Deaths)
	}
	br := r.pool.SendBatch(ctx, b)
	defer br.Close()
	for range recs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("save characters: %w", err)
		}
	}
	return nil
}
