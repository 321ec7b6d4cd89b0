package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/C2IHub/proCURE2/internal/adapters/http"
	"github.com/C2IHub/proCURE2/internal/adapters/memory"
	pg "github.com/C2IHub/proCURE2/internal/adapters/postgres"
	"github.com/C2IHub/proCURE2/internal/config"
	"github.com/C2IHub/proCURE2/internal/logger"
	"github.com/C2IHub/proCURE2/internal/ports"
	"github.com/C2IHub/proCURE2/internal/scoring"
	"github.com/C2IHub/proCURE2/internal/services/agents"
	auditsvc "github.com/C2IHub/proCURE2/internal/services/audit"
	"github.com/C2IHub/proCURE2/internal/services/dashboard"
	reqsvc "github.com/C2IHub/proCURE2/internal/services/requirements"
	suppliersvc "github.com/C2IHub/proCURE2/internal/services/suppliers"
	"github.com/C2IHub/proCURE2/internal/workers/reassess"
)

type stores struct {
	suppliers    ports.SupplierRepository
	requirements ports.ComplianceRequirementRepository
	audit        ports.AuditRepository
	snapshots    ports.SnapshotRepository
	close        func()
}

func main() {
	cfg, cfgErr := config.Load()

	mode := "development"
	if cfg.Production() {
		mode = "production"
	}
	log, err := logger.New(mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if cfgErr != nil {
		log.Warn("config", "warning", cfgErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal("storage init failed", "error", err)
	}
	defer st.close()

	clock := clockwork.NewRealClock()
	var jitter scoring.Jitter = scoring.NoJitter{}
	if cfg.ScoringJitter {
		seed := cfg.ScoringSeed
		if seed == 0 {
			seed = clock.Now().UnixNano()
		}
		jitter = scoring.NewJitter(seed)
	}

	engine := scoring.New(st.suppliers, st.requirements, scoring.WithClock(clock), scoring.WithJitter(jitter))
	audit := auditsvc.New(st.audit, clock)
	processor := reassess.NewSnapshotProcessor(engine, st.snapshots, audit)

	srv := httpadapter.New(httpadapter.Deps{
		Suppliers:    suppliersvc.New(st.suppliers, engine, st.snapshots),
		Requirements: reqsvc.New(st.requirements, clock),
		Audit:        audit,
		Agents:       agents.NewCanned(cfg.AgentLatency, jitter, clock),
		Dashboard:    dashboard.New(engine, st.audit),
		Directory:    st.suppliers,
		Processor:    processor,
		Clock:        clock,
		Log:          log.With("component", "http"),
		BaseContext:  ctx,
	})

	// Optional background reassessment workers
	workersDone := reassess.Run(ctx, st.suppliers, processor, cfg.ReassessWorkers, cfg.ReassessInterval, clock, log.With("component", "reassess"))
	if cfg.ReassessWorkers > 0 {
		log.Info("reassess workers started", "workers", cfg.ReassessWorkers, "interval", cfg.ReassessInterval)
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("listening", "addr", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "error", err)
	}
	cancel()
	runsDone := make(chan struct{})
	go func() {
		<-workersDone
		srv.Wait()
		close(runsDone)
	}()
	select {
	case <-runsDone:
	case <-shutdownCtx.Done():
		log.Warn("reassess workers did not stop in time")
	}
}

// openStores picks Postgres when DATABASE_URL is set and the bundled
// in-memory data set otherwise.
func openStores(ctx context.Context, cfg config.Config, log *logger.Logger) (stores, error) {
	if cfg.DatabaseURL == "" {
		log.Info("using in-memory store")
		m := memory.NewSeeded()
		return stores{suppliers: m, requirements: m, audit: m, snapshots: m, close: func() {}}, nil
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return stores{}, err
	}
	seeded, err := db.Seed(ctx, memory.SeedSuppliers(), memory.SeedRequirements(), memory.SeedAuditEvents())
	if err != nil {
		db.Close()
		return stores{}, err
	}
	if seeded {
		log.Info("seeded empty database")
	}
	return stores{suppliers: db, requirements: db, audit: db, snapshots: db, close: db.Close}, nil
}
