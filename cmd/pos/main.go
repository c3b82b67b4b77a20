package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/env"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/Beka01247/sizzlesync-pos/internal/parser"
	"github.com/Beka01247/sizzlesync-pos/internal/queue"
	"github.com/Beka01247/sizzlesync-pos/internal/service"
	"github.com/Beka01247/sizzlesync-pos/internal/session"
	"github.com/Beka01247/sizzlesync-pos/internal/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	env               string
	displayStyle      string
	autoActivate      bool
	menuFile          string
	menuSpreadsheetID string
	googleCreds       string
	reportDir         string
	logFile           string
	r2                storage.Config
	rabbitMQ          rabbitMQConfig
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func main() {
	_ = godotenv.Load()

	cfg := config{
		env:               env.GetString("ENV", "development"),
		displayStyle:      env.GetString("POS_DISPLAY_STYLE", styleCompact),
		autoActivate:      env.GetBool("POS_AUTO_ACTIVATE", true),
		menuFile:          env.GetString("MENU_FILE", ""),
		menuSpreadsheetID: env.GetString("MENU_SPREADSHEET_ID", ""),
		googleCreds:       env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
		reportDir:         env.GetString("REPORT_DIR", "."),
		logFile:           env.GetString("LOG_FILE", "sizzlesync.log"),
		r2: storage.Config{
			Endpoint:  env.GetString("R2_ENDPOINT", ""),
			AccessKey: env.GetString("R2_ACCESS_KEY", ""),
			SecretKey: env.GetString("R2_SECRET_KEY", ""),
			Bucket:    env.GetString("REPORT_BUCKET", ""),
			BaseURL:   env.GetString("R2_PUBLIC_BASE_URL", ""),
			Prefix:    "reports",
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    env.GetDuration("RABBITMQ_RETRY_DELAY", time.Second*2),
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
	}

	// logger, kept off the terminal so it does not interleave with the console
	logger, err := newLogger(cfg.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Errorw("failed to load menu", "error", err)
		fmt.Fprintf(os.Stderr, "failed to load menu: %v\n", err)
		os.Exit(1)
	}

	opts := []session.Option{
		session.WithAutoActivate(cfg.autoActivate),
		session.WithLogger(logger),
	}

	// rabbitmq broker, optional
	if cfg.rabbitMQ.URL != "" {
		broker, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Warnw("failed to connect to RabbitMQ, sales archive disabled", "error", err)
		} else {
			defer broker.Close()
			logger.Info("connected to RabbitMQ")
			opts = append(opts, session.WithSinks(service.NewArchiveService(nil, broker, logger)))
		}
	}

	ctrl := session.New(catalog, opts...)
	logger.Infow("session started", "session_id", ctrl.SessionID(), "menu_items", catalog.Count(), "env", cfg.env)

	con := &console{
		in:        bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
		ctrl:      ctrl,
		style:     cfg.displayStyle,
		reportDir: cfg.reportDir,
		logger:    logger,
		now:       time.Now,
	}

	// report upload, optional
	if cfg.r2.Bucket != "" {
		uploader, err := storage.NewR2Client(ctx, cfg.r2)
		if err != nil {
			logger.Warnw("failed to create report uploader", "bucket", cfg.r2.Bucket, "error", err)
		} else {
			con.uploader = uploader
		}
	}

	if err := con.run(ctx); err != nil {
		logger.Errorw("console stopped", "error", err)
		os.Exit(1)
	}

	logger.Infow("session ended", "session_id", ctrl.SessionID(), "orders_completed", ctrl.Summary().OrderCount)
}

func newLogger(path string) (*zap.SugaredLogger, error) {
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// loadCatalog picks the menu source: spreadsheet, then YAML file, then the
// built-in house menu.
func loadCatalog(ctx context.Context, cfg config, logger *zap.SugaredLogger) (*menu.Catalog, error) {
	switch {
	case cfg.menuSpreadsheetID != "":
		if cfg.googleCreds == "" {
			return nil, fmt.Errorf("GOOGLE_CREDENTIALS_PATH is required with MENU_SPREADSHEET_ID")
		}
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			return nil, fmt.Errorf("failed to read Google credentials: %w", err)
		}

		sheetsParser, err := parser.New(ctx, parser.Config{CredentialsJSON: credsJSON})
		if err != nil {
			return nil, err
		}

		items, err := sheetsParser.ParseMenu(ctx, cfg.menuSpreadsheetID)
		if err != nil {
			return nil, err
		}
		logger.Infow("menu loaded from spreadsheet", "spreadsheet_id", cfg.menuSpreadsheetID, "items", len(items))

		return menu.New(items)
	case cfg.menuFile != "":
		items, err := menu.LoadYAML(cfg.menuFile)
		if err != nil {
			return nil, err
		}
		logger.Infow("menu loaded from file", "path", cfg.menuFile, "items", len(items))

		return menu.New(items)
	default:
		return menu.Default(), nil
	}
}
