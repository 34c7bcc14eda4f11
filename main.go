package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/seedtool/seed/internal/config"
	"github.com/seedtool/seed/internal/db"
	"github.com/seedtool/seed/internal/envfile"
	"github.com/seedtool/seed/internal/selection"
)

type opts struct {
	Interactive bool
	Force       bool
	SourceURL   string
	DestURL     string
	Config      string
	DumpTokens  bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	flags.BoolVarP(&op.Interactive, "interactive", "i", false, "Confirm each table before copying.")
	flags.BoolVarP(&op.Force, "force", "f", false, "Overwrite matching rows already present in the destination.")
	flags.StringVarP(&op.SourceURL, "source-url", "s", "", "Source database URL.")
	flags.StringVarP(&op.DestURL, "dest-url", "d", "", "Dest database URL.")
	flags.StringVar(&op.Config, "config", "", "Path to the sanitize config (default ~/.config/seed/config.toml).")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream before parsing.")
	_ = flags.Parse(os.Args[1:])

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, logger, op, flags.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, op *opts, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no tables selected for seeding")
	}

	if op.DumpTokens {
		fmt.Println(strings.Join(selection.Lex(args), " "))
	}

	selections, err := selection.Parse(args)
	if err != nil {
		return err
	}
	logger.Info("parsed selections", zap.Int("count", len(selections)))

	cfg, err := loadConfig(logger, op.Config)
	if err != nil {
		return err
	}

	sourceURL := resolveURL(op.SourceURL, ".env.production", "../.env.production")
	if sourceURL == "" {
		return fmt.Errorf("no source url provided or found in .env.production")
	}
	destURL := resolveURL(op.DestURL, ".env", "../.env")
	if destURL == "" {
		return fmt.Errorf("no dest url provided or found in .env")
	}

	source, err := db.Open(ctx, sourceURL)
	if err != nil {
		return fmt.Errorf("connecting to source: %w", err)
	}
	defer source.Close()
	dest, err := db.Open(ctx, destURL)
	if err != nil {
		return fmt.Errorf("connecting to dest: %w", err)
	}
	defer dest.Close()

	// The copy/sanitize engine is not implemented yet; print the plan
	// with aliases resolved.
	for i, sel := range selections {
		sel.Table = cfg.ResolveTable(sel.Table)
		fmt.Printf("%d: %s\n", i, sel)
	}
	return nil
}

func loadConfig(logger *zap.Logger, path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		logger.Info("loaded sanitize config", zap.String("path", path), zap.Int("tables", len(cfg.Tables)))
		return cfg, nil
	case os.IsNotExist(err) && !explicit:
		logger.Debug("no sanitize config found", zap.String("path", path))
		return &config.Config{}, nil
	default:
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
}

// resolveURL prefers the flag value, then falls back to DATABASE_URL in
// the given env files in order.
func resolveURL(arg string, envPaths ...string) string {
	if arg != "" {
		return arg
	}
	for _, path := range envPaths {
		env, err := envfile.Read(path)
		if err != nil {
			continue
		}
		if url, ok := env.Lookup("DATABASE_URL"); ok {
			return url
		}
	}
	return ""
}
