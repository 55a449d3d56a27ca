package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	appconfig "elastic-views/internal/config"
	hsearch "elastic-views/internal/handler/http/search"
	"elastic-views/internal/infra/elastic"
	searchUC "elastic-views/internal/usecase/search"
)

type searchOptions struct {
	ConfigPath string
	Index      string
	Page       int
	Format     string
	Pretty     bool
	Debug      bool
	Terms      []string
}

const (
	formatJSON = "json"
	formatText = "text"
)

var errNoTerm = errors.New("a search term is required")

func runSearch(ctx context.Context, opts searchOptions, stdout, stderr io.Writer) error {
	term := strings.TrimSpace(strings.Join(opts.Terms, " "))
	if term == "" {
		return errNoTerm
	}
	if opts.Format == "" {
		opts.Format = formatJSON
	}
	if opts.Format != formatJSON && opts.Format != formatText {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.Format, formatJSON, formatText)
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	// stdout は結果専用
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if opts.ConfigPath != "" {
		if err := os.Setenv("SEARCH_CONFIG_FILE", opts.ConfigPath); err != nil {
			return err
		}
	}
	if opts.Index != "" {
		if err := os.Setenv("SEARCH_DEFAULT_INDEX", opts.Index); err != nil {
			return err
		}
	}

	cfg, err := appconfig.LoadSearchConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := elastic.NewClient(cfg.ElasticConfig())
	if err != nil {
		return fmt.Errorf("creating elasticsearch client: %w", err)
	}

	svc, err := searchUC.NewService(client, cfg.ServiceConfig(), cfg.Formatter(), logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	values := url.Values{}
	values.Set(svc.TermParamName(), term)
	values.Set(cfg.PageParam, strconv.Itoa(opts.Page))

	data, err := svc.Search(ctx, values)
	if err != nil {
		return fmt.Errorf("searching %s: %w", cfg.Index, err)
	}

	if opts.Format == formatText {
		return renderText(stdout, data)
	}

	enc := json.NewEncoder(stdout)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(hsearch.Response{Data: data})
}
