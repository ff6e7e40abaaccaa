package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "snakepath/internal/adapter/http"
	metricsinmem "snakepath/internal/adapter/metrics/inmemory"
	gormrepo "snakepath/internal/adapter/repo/gorm"
	"snakepath/internal/adapter/repo/memory"
	"snakepath/internal/app/history"
	"snakepath/internal/app/plan"
	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"

	"github.com/cloudwego/hertz/pkg/app/server"
	log "github.com/sirupsen/logrus"
)

type config struct {
	Addr          string
	Board         pathfinding.Config
	DSN           string
	MigrationsDir string
	HistoryLimit  int
	LogLevel      string
	CORSOrigin    string
}

func main() {
	cfg := loadConfig()
	configureLogging(cfg.LogLevel)

	planner := pathfinding.NewPlanner(cfg.Board)
	plans, events, txManager := mustBuildRepos(cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		PlanUC: plan.UseCase{
			Planner:   planner,
			TxManager: txManager,
			Plans:     plans,
			Events:    events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		HistoryUC:  history.UseCase{Events: events, DefaultLimit: cfg.HistoryLimit},
		KPI:        kpiRecorder,
		CORSOrigin: cfg.CORSOrigin,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.WithFields(log.Fields{
		"addr":   cfg.Addr,
		"width":  planner.Width(),
		"height": planner.Height(),
	}).Info("snakepath planner listening")
	s.Spin()
}

func loadConfig() config {
	def := pathfinding.DefaultConfig()
	return config{
		Addr: stringEnv("PLANNER_ADDR", ":8080"),
		Board: pathfinding.Config{
			Width:  intEnv("PLANNER_BOARD_WIDTH", def.Width),
			Height: intEnv("PLANNER_BOARD_HEIGHT", def.Height),
		},
		DSN:           stringEnv("PLANNER_DB_DSN", ""),
		MigrationsDir: stringEnv("PLANNER_MIGRATIONS_DIR", ""),
		HistoryLimit:  intEnv("PLANNER_HISTORY_LIMIT", 20),
		LogLevel:      stringEnv("PLANNER_LOG_LEVEL", "info"),
		CORSOrigin:    stringEnv("PLANNER_CORS_ORIGIN", ""),
	}
}

func configureLogging(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func mustBuildRepos(cfg config) (ports.PlanRepository, ports.EventRepository, ports.TxManager) {
	if cfg.DSN == "" {
		log.Warn("PLANNER_DB_DSN not set, plans are kept in memory")
		store := memory.NewStore()
		return memory.NewPlanRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DSN, gormrepo.DefaultPoolConfig())
	if err != nil {
		log.WithError(err).Fatal("open postgres")
	}
	migrations, err := gormrepo.Migrations(cfg.MigrationsDir)
	if err != nil {
		log.WithError(err).Fatal("load migrations")
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrations); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}
	return gormrepo.NewPlanRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
