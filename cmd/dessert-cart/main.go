package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/dessert-cart/internal/catalog"
	"github.com/nikolayk812/dessert-cart/internal/config"
	"github.com/nikolayk812/dessert-cart/internal/logger"
	"github.com/nikolayk812/dessert-cart/internal/port"
	"github.com/nikolayk812/dessert-cart/internal/repository"
	"github.com/nikolayk812/dessert-cart/internal/session"
	"github.com/nikolayk812/dessert-cart/internal/view"
	"go.uber.org/zap"
)

const serviceName = "dessert-cart"

func main() {
	scriptPath := flag.String("script", "", "file with one command per line (default: stdin)")
	seed := flag.Bool("seed", false, "copy the CATALOG_PATH file into the postgres products table and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(logger.Options{Service: serviceName, Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log, *scriptPath, *seed); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger, scriptPath string, seed bool) error {
	var pool *pgxpool.Pool
	if cfg.Catalog.Source == config.SourcePostgres || seed {
		if cfg.Catalog.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}

		var err error
		pool, err = pgxpool.New(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "pgxpool.New")
		}
		defer pool.Close()
	}

	if seed {
		return seedCatalog(ctx, cfg, log, repository.NewCatalog(pool))
	}

	script, closeScript, err := openScript(scriptPath)
	if err != nil {
		return err
	}
	defer closeScript()

	ctrl := session.New(newSource(cfg, pool),
		session.WithLogger(log),
		session.WithCurrency(cfg.Catalog.Currency),
		session.WithRenderer(view.NewTextRenderer(os.Stdout, log)),
	)

	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
	err = ctrl.Start(loadCtx)
	cancelLoad()
	if err != nil {
		// the session keeps running with an empty catalog
		log.Warn("starting with empty catalog", zap.String("source", cfg.Catalog.Source))
	}

	return replay(ctx, ctrl, script, log)
}

func newSource(cfg config.Config, pool *pgxpool.Pool) port.CatalogSource {
	switch cfg.Catalog.Source {
	case config.SourceHTTP:
		return catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Currency, &http.Client{Timeout: cfg.Catalog.FetchTimeout})
	case config.SourcePostgres:
		return repository.NewCatalog(pool)
	default:
		return catalog.NewFileSource(cfg.Catalog.Path, cfg.Catalog.Currency)
	}
}

func seedCatalog(ctx context.Context, cfg config.Config, log *zap.Logger, repo port.CatalogRepository) error {
	products, err := catalog.NewFileSource(cfg.Catalog.Path, cfg.Catalog.Currency).Load(ctx)
	if err != nil {
		return errors.Wrap(err, "file.Load")
	}

	if err := repo.Replace(ctx, products); err != nil {
		return errors.Wrap(err, "repo.Replace")
	}

	log.Info("catalog seeded", zap.Int("products", len(products)), zap.String("path", cfg.Catalog.Path))

	return nil
}

// replay feeds commands to the session one at a time. Rejected commands are
// reported and the replay continues, as a user would simply click again.
func replay(ctx context.Context, ctrl *session.Controller, script io.Reader, log *zap.Logger) error {
	scanner := bufio.NewScanner(script)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := session.ParseCommand(line)
		if err != nil {
			log.Warn("skipping line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}

		if err := ctrl.Execute(cmd); err != nil {
			log.Info("command not applied", zap.Int("line", lineNo), zap.String("command", line), zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scanner.Err")
	}

	return nil
}

func openScript(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "os.Open")
	}

	return f, func() { _ = f.Close() }, nil
}
