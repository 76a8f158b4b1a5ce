package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/core/event"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/data"
	"github.com/connorfinan79/Arena/internal/handler"
	gonet "github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
	"github.com/connorfinan79/Arena/internal/persist"
	"github.com/connorfinan79/Arena/internal/system"
	"github.com/connorfinan79/Arena/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("  ┌───────────────────────────────────────────┐")
	fmt.Println("  │            Arena Server  v0.1.0           │")
	fmt.Println("  └───────────────────────────────────────────┘")
	fmt.Println()
	fmt.Printf("  server: %s (id: %d)\n\n", serverName, serverID)
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s %s %s\n", label, strings.Repeat("·", dotsLen), numStr)
}

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Connect to PostgreSQL and run migrations. An empty DSN runs the
	// match in memory only: no progression restore, no kill ledger.
	var (
		pool     *pgxpool.Pool
		charRepo *persist.CharacterRepo
		killRepo *persist.KillLogRepo
	)
	if cfg.Database.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		pool, err = persist.NewPool(ctx, cfg.Database)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		err = persist.Migrate(ctx, pool)
		cancel()
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		defer pool.Close()
		charRepo = persist.NewCharacterRepo(pool, log)
		killRepo = persist.NewKillLogRepo(pool, log)
		log.Info("database connected")
	} else {
		log.Warn("no database configured, running in memory only")
	}

	// 4. Load data tables
	champions, err := data.LoadChampionTable("data/yaml/champions.yaml")
	if err != nil {
		return fmt.Errorf("load champions: %w", err)
	}
	printStat("champion templates", champions.Count())

	attacks, err := data.LoadAttackTable("data/yaml/attacks.yaml")
	if err != nil {
		return fmt.Errorf("load attacks: %w", err)
	}
	printStat("attack profiles", attacks.Count())

	arena, err := data.LoadArenaTable("data/yaml/arena.yaml")
	if err != nil {
		return fmt.Errorf("load arena: %w", err)
	}
	printStat("spawn points", arena.Count())
	fmt.Println()

	// 5. World state, event bus, death pipeline
	obstacles := make([]world.AABB, 0, len(arena.Obstacles))
	for _, o := range arena.Obstacles {
		obstacles = append(obstacles, world.AABB(o))
	}
	w := world.NewState(world.Bounds{
		MinX: arena.MinX, MinZ: arena.MinZ, MaxX: arena.MaxX, MaxZ: arena.MaxZ,
	}, obstacles, arena.CellSize)

	bus := event.NewBus()
	progress := persist.NewProgressSet()

	w.Resolver = &combat.DamageResolver{
		Find: w.GetByID,
		Sink: w.Sink,
		OnDeath: func(victim, attacker *combat.Character) {
			killed := event.CharacterKilled{
				VictimID:   victim.ID,
				VictimTeam: victim.Team,
			}
			if rec := progress.Get(victim.ID); rec != nil {
				rec.Deaths++
			}
			if attacker != nil {
				killed.KillerID = attacker.ID
				killed.XPAwarded = victim.XPReward
				if rec := progress.Get(attacker.ID); rec != nil {
					rec.Kills++
				}
			}
			bus.Publish(killed)
			log.Info("character killed",
				zap.Int64("victim", victim.ID),
				zap.Int64("killer", killed.KillerID))
		},
	}

	event.Subscribe(bus, func(ev event.LevelReached) {
		log.Info("level reached", zap.Int64("char", ev.CharID), zap.Int("level", ev.Level))
	})

	// 6. Network gateway + intent handlers
	srv := gonet.NewServer(cfg.Network, cfg.RateLimit, log)
	store := gonet.NewSessionStore()
	reg := protocol.NewRegistry(log)
	handler.RegisterAll(reg, &handler.Deps{
		Config:    cfg,
		Log:       log,
		World:     w,
		Champions: champions,
		Attacks:   attacks,
		Arena:     arena,
		CharRepo:  charRepo,
		Progress:  progress,
		Bus:       bus,
	})

	// 7. Systems, in phase order; registration order within a phase is
	// execution order.
	runner := coresys.NewRunner()

	runner.Register(system.NewInputSystem(srv, store, reg, cfg.Network, log))
	runner.Register(system.NewEventDispatchSystem(bus))

	respawnSys := system.NewRespawnSystem(w, cfg, arena, bus, log)
	runner.Register(respawnSys)
	aiSys := system.NewAISystem(w, cfg, champions, attacks, arena, log)
	runner.Register(aiSys)
	runner.Register(system.NewTargetingSystem(w))
	runner.Register(system.NewAutoAttackSystem(w))
	runner.Register(system.NewMovementSystem(w))
	runner.Register(system.NewProjectileSystem(w))

	runner.Register(system.NewRegenSystem(w, cfg.Combat))
	runner.Register(system.NewModifierSystem(w))

	runner.Register(system.NewReplicationSystem(w, store))
	runner.Register(system.NewOutputSystem(store))

	persistSys := system.NewPersistenceSystem(w, cfg.Persistence, charRepo, killRepo, progress, bus, log)
	runner.Register(persistSys)
	runner.Register(system.NewCleanupSystem(srv, store, w, progress, persistSys, bus, log))

	aiSys.Seed()

	// 8. Listen and serve
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		if err := srv.Serve(); err != nil {
			log.Error("gateway stopped", zap.Error(err))
		}
	}()
	log.Info("server ready",
		zap.String("addr", srv.Addr().String()),
		zap.String("match", w.MatchID.String()),
		zap.Duration("tick", cfg.Network.TickRate))

	// 9. Game loop, two frequencies on one goroutine:
	//   - systemTicker: full tick, all phases
	//   - inputPoll: Phase 0 only, so intents land between ticks
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	systemTicker := time.NewTicker(cfg.Network.TickRate)
	inputPoll := time.NewTicker(2 * time.Millisecond)
	defer systemTicker.Stop()
	defer inputPoll.Stop()

	for {
		select {
		case <-systemTicker.C:
			w.Advance(cfg.Network.TickRate.Seconds())
			runner.Tick(cfg.Network.TickRate)
		case <-inputPoll.C:
			runner.TickPhase(coresys.PhaseInput, 0)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			persistSys.FlushAll()
			if killRepo != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if n, err := killRepo.MatchKillCount(ctx, w.MatchID); err == nil {
					log.Info("match summary", zap.Int64("kills", n), zap.Uint64("ticks", w.Tick()))
				}
				cancel()
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = srv.Shutdown(ctx)
			cancel()
			store.ForEach(func(s *gonet.Session) { s.Close() })
			log.Info("server stopped")
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
