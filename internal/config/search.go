// Package config loads the service configuration.
//
// Values are applied in this order, later sources winning:
//
//  1. built-in defaults
//  2. the YAML or TOML file named by SEARCH_CONFIG_FILE, if set
//  3. PAGINATION_* environment variables
//  4. ELASTICSEARCH_* and SEARCH_* environment variables
//
// A .env file in the working directory is loaded into the environment
// first and never overrides variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"elastic-views/internal/common/pagination"
	"elastic-views/internal/infra/elastic"
	searchUC "elastic-views/internal/usecase/search"
	"elastic-views/pkg/config"
)

const (
	// DefaultPageSize is the search page size when nothing is configured.
	DefaultPageSize = 50
	// MaxPageSize keeps from+size below the default index.max_result_window.
	MaxPageSize = 1000
	// DefaultTimeout bounds one backend round-trip.
	DefaultTimeout = 10 * time.Second

	minTimeout = 100 * time.Millisecond
	maxTimeout = 5 * time.Minute
)

// ElasticsearchConfig holds the backend connection settings.
type ElasticsearchConfig struct {
	URLs     []string      `yaml:"urls"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// SearchConfig is the complete, read-only configuration of the search service.
type SearchConfig struct {
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`

	Index        string `yaml:"index"`
	PageSize     int    `yaml:"page_size"`
	PageParam    string `yaml:"page_param"`
	TermParam    string `yaml:"term_param"`
	DefaultField string `yaml:"default_field"`

	// ResultNameField and ResultURLTemplate configure linked results.
	// Both must resolve for a hit to be rendered with a name and URL.
	ResultNameField   string `yaml:"result_name_field"`
	ResultURLTemplate string `yaml:"result_url_template"`

	BreakerEnabled bool `yaml:"breaker_enabled"`
}

// DefaultSearchConfig returns the built-in defaults. Index has no default.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Elasticsearch: ElasticsearchConfig{
			URLs:    []string{"http://localhost:9200"},
			Timeout: DefaultTimeout,
		},
		PageSize:     DefaultPageSize,
		PageParam:    pagination.DefaultPageParam,
		TermParam:    searchUC.DefaultTermParam,
		DefaultField: searchUC.DefaultField,
	}
}

// LoadDotEnv loads .env files into the environment. Missing files are
// ignored; variables already set are kept.
func LoadDotEnv(paths ...string) (bool, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	loaded := false
	for _, p := range paths {
		err := godotenv.Load(p)
		switch {
		case err == nil:
			loaded = true
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
	}
	return loaded, nil
}

// LoadSearchConfig builds the configuration from all sources and validates it.
func LoadSearchConfig() (*SearchConfig, error) {
	sources := []string{SourceDefaults}

	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	if dotenv {
		sources = append(sources, SourceDotEnv)
	}

	cfg := DefaultSearchConfig()

	if path := os.Getenv("SEARCH_CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			searchMetrics.RecordValidationError("config_file")
			return nil, err
		}
		sources = append(sources, SourceFile)
	}

	cfg.applyEnv()
	sources = append(sources, SourceEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	searchMetrics.SetSources(sources...)
	searchMetrics.RecordLoadTimestamp()
	slog.Info("search configuration loaded",
		slog.Any("sources", sources),
		slog.String("index", cfg.Index),
		slog.Int("page_size", cfg.PageSize),
		slog.Bool("breaker_enabled", cfg.BreakerEnabled))

	return &cfg, nil
}

// mergeFile overlays the file at path. Files ending in .toml are read as
// TOML, anything else as YAML. Keys absent from the file keep their
// current value.
func (c *SearchConfig) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if raw, err = tomlToYAML(raw); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// tomlToYAML re-encodes a TOML document as YAML so both formats share the
// yaml field tags and duration parsing ("5s").
func tomlToYAML(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func (c *SearchConfig) applyEnv() {
	// PAGINATION_* first so that SEARCH_PAGE_* wins over it.
	pag := pagination.LoadFromEnv()
	if _, ok := os.LookupEnv("PAGINATION_PAGE_PARAM"); ok {
		c.PageParam = pag.PageParam
	}
	if _, ok := os.LookupEnv("PAGINATION_PAGE_SIZE"); ok {
		c.PageSize = pag.PageSize
	}

	es := &c.Elasticsearch
	es.URLs = config.GetEnvStringList("ELASTICSEARCH_URLS", es.URLs)
	es.Username = config.GetEnvString("ELASTICSEARCH_USERNAME", es.Username)
	es.Password = config.GetEnvString("ELASTICSEARCH_PASSWORD", es.Password)
	es.APIKey = config.GetEnvString("ELASTICSEARCH_API_KEY", es.APIKey)
	es.Timeout = config.GetEnvDuration("ELASTICSEARCH_TIMEOUT", es.Timeout)

	c.Index = config.GetEnvString("SEARCH_DEFAULT_INDEX", c.Index)
	c.PageSize = config.GetEnvInt("SEARCH_PAGE_SIZE", c.PageSize)
	c.PageParam = config.GetEnvString("SEARCH_PAGE_PARAM", c.PageParam)
	c.TermParam = config.GetEnvString("SEARCH_TERM_PARAM", c.TermParam)
	c.DefaultField = config.GetEnvString("SEARCH_DEFAULT_FIELD", c.DefaultField)
	c.ResultNameField = config.GetEnvString("SEARCH_RESULT_NAME_FIELD", c.ResultNameField)
	c.ResultURLTemplate = config.GetEnvString("SEARCH_RESULT_URL_TEMPLATE", c.ResultURLTemplate)
	c.BreakerEnabled = config.GetEnvBool("SEARCH_BREAKER_ENABLED", c.BreakerEnabled)
}

// Validate checks configuration correctness. Every rejected field is
// counted in the config metrics.
func (c *SearchConfig) Validate() error {
	var errs []error
	fail := func(field string, err error) {
		searchMetrics.RecordValidationError(field)
		errs = append(errs, fmt.Errorf("%s: %w", field, err))
	}

	if len(c.Elasticsearch.URLs) == 0 {
		fail("ELASTICSEARCH_URLS", errors.New("at least one URL is required"))
	} else if err := config.ValidateURLs(c.Elasticsearch.URLs); err != nil {
		fail("ELASTICSEARCH_URLS", err)
	}
	if c.Elasticsearch.APIKey != "" && c.Elasticsearch.Username != "" {
		fail("ELASTICSEARCH_API_KEY", errors.New("cannot be combined with ELASTICSEARCH_USERNAME"))
	}
	if err := config.ValidateDurationRange(c.Elasticsearch.Timeout, minTimeout, maxTimeout); err != nil {
		fail("ELASTICSEARCH_TIMEOUT", err)
	}
	if c.Index == "" {
		fail("SEARCH_DEFAULT_INDEX", searchUC.ErrIndexNotConfigured)
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		fail("SEARCH_PAGE_SIZE", fmt.Errorf("must be between 1 and %d, got %d", MaxPageSize, c.PageSize))
	}
	if c.PageParam == "" {
		fail("SEARCH_PAGE_PARAM", errors.New("cannot be empty"))
	}
	if c.TermParam == "" {
		fail("SEARCH_TERM_PARAM", errors.New("cannot be empty"))
	}
	if c.PageParam != "" && c.PageParam == c.TermParam {
		fail("SEARCH_PAGE_PARAM", fmt.Errorf("must differ from SEARCH_TERM_PARAM (%q)", c.TermParam))
	}
	if c.DefaultField == "" {
		fail("SEARCH_DEFAULT_FIELD", errors.New("cannot be empty"))
	}
	return errors.Join(errs...)
}

// ElasticConfig returns the client settings.
func (c *SearchConfig) ElasticConfig() elastic.Config {
	return elastic.Config{
		Addresses: c.Elasticsearch.URLs,
		Username:  c.Elasticsearch.Username,
		Password:  c.Elasticsearch.Password,
		APIKey:    c.Elasticsearch.APIKey,
		Timeout:   c.Elasticsearch.Timeout,
	}
}

// ServiceConfig returns the search use case settings.
func (c *SearchConfig) ServiceConfig() searchUC.Config {
	return searchUC.Config{
		Index:        c.Index,
		TermParam:    c.TermParam,
		DefaultField: c.DefaultField,
		Pagination: pagination.Config{
			PageParam: c.PageParam,
			PageSize:  c.PageSize,
		},
	}
}

// Formatter returns the result formatter for the configured hooks.
// Unset fields leave the hook nil, so records fall back to the id.
func (c *SearchConfig) Formatter() searchUC.Formatter {
	return searchUC.Formatter{
		Name: searchUC.SourceField(c.ResultNameField),
		URL:  searchUC.URLTemplate(c.ResultURLTemplate),
	}
}
