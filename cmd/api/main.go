package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-doctor-api/infrastructure/integrator/advisor/advisorclient"
	"github.com/vfg2006/business-doctor-api/infrastructure/repository"
	"github.com/vfg2006/business-doctor-api/internal/api"
	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/scheduler"
	"github.com/vfg2006/business-doctor-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-doctor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-doctor-api/internal/usecases/consulting"
	"github.com/vfg2006/business-doctor-api/internal/usecases/intake"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	consultationRepo := repository.NewConsultationRepository(pgConn)
	bottleneckRepo := repository.NewBottleneckRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	advisorClient := advisorclient.NewClient(cfg.Gateway)
	if cfg.Gateway.Enabled() {
		logrus.Info("advisor gateway enabled")
	} else {
		logrus.Info("advisor gateway not configured, using built-in stage prompts")
	}

	consultingService := consulting.NewService(
		consultationRepo,
		bottleneckRepo,
		insightRepo,
		reportRepo,
		intake.NewExtractor(),
		intake.NewIdentifier(),
		intake.NewStageMachine(cfg.Intake),
		analyzing.NewAnalyzer(cfg.Analysis),
		advisorClient,
	)

	abandonedSweeper := scheduler.NewAbandonedConsultationService(consultingService, cfg)
	if err := abandonedSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the abandoned consultation sweeper")
	} else {
		logrus.Info("abandoned consultation sweeper started successfully")
	}

	server, err := api.New(
		cfg,
		consultingService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and makes relative paths resolve from
// the binary's source directory.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established successfully")
	return conn
}
