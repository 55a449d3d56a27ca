package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"elastic-views/internal/common/pagination"
	"elastic-views/internal/repository"
)

// Config is the read-only configuration shared by every request.
type Config struct {
	Index        string
	TermParam    string
	DefaultField string
	Pagination   pagination.Config
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Index == "" {
		return ErrIndexNotConfigured
	}
	if err := c.Pagination.Validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Service provides keyword search use cases.
// It holds only read-only state; everything request-specific lives in Request.
type Service struct {
	Repo      repository.SearchRepository
	Config    Config
	Formatter Formatter
	// Term overrides term extraction. Defaults to reading Config.TermParam.
	Term   TermFunc
	Logger *slog.Logger
}

// NewService validates cfg and returns a Service backed by repo.
func NewService(repo repository.SearchRepository, cfg Config, formatter Formatter, logger *slog.Logger) (*Service, error) {
	if repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{Repo: repo, Config: cfg, Formatter: formatter, Logger: logger}, nil
}

// NewRequest starts the per-request search flow for the given request
// parameters. The returned Request owns the memoised backend result and
// must not be shared across HTTP requests.
func (s *Service) NewRequest(values url.Values) *Request {
	if values == nil {
		values = url.Values{}
	}
	return &Request{svc: s, values: values}
}

func (s *Service) termFunc() TermFunc {
	if s.Term != nil {
		return s.Term
	}
	return ParamTerm(s.Config.TermParam)
}

// TermParamName returns the request parameter that carries the search term.
func (s *Service) TermParamName() string {
	if s.Config.TermParam != "" {
		return s.Config.TermParam
	}
	return DefaultTermParam
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Search runs the whole flow for values and returns the data bundle.
// It is a convenience for callers that need nothing but the bundle.
func (s *Service) Search(ctx context.Context, values url.Values) (*Data, error) {
	return s.NewRequest(values).Data(ctx)
}
