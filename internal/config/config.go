package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/platform/logging"
	"regional-metrics-viewer/internal/viewer/core/domain"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	annotationLayout = "2006-01-02"
)

type Config struct {
	ListenAddr    string             `yaml:"listen_addr"`
	Source        SourceConfig       `yaml:"source"`
	DefaultMetric string             `yaml:"default_metric"`
	Aliases       map[string]string  `yaml:"aliases"`
	Annotations   []AnnotationConfig `yaml:"annotations"`
	Log           LogConfig          `yaml:"log"`
}

type SourceConfig struct {
	Kind          string `yaml:"kind"`
	CSVPath       string `yaml:"csv_path"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	GeoJSONPath   string `yaml:"geojson_path"`
	LabelProperty string `yaml:"label_property"`
	DateLayout    string `yaml:"date_layout"`

	// Entities limits a postgres read to these provinces. Empty reads all.
	Entities     []string      `yaml:"entities"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

type AnnotationConfig struct {
	Date  string `yaml:"date"`
	Label string `yaml:"label"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Source: SourceConfig{
			Kind:          SourceCSV,
			CSVPath:       "covid_indonesia_province_cleaned.csv",
			GeoJSONPath:   "indonesia-provinces.json",
			LabelProperty: "name",
			DateLayout:    "01/02/2006",
			QueryTimeout:  30 * time.Second,
		},
		DefaultMetric: string(dataset.MetricNewCases),
		Aliases:       dataset.DefaultAliases(),
		Annotations: []AnnotationConfig{
			{Date: "2021-07-15", Label: "Delta peak"},
			{Date: "2022-02-15", Label: "Omicron peak"},
		},
		Log: LogConfig{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path over the defaults, applies env overrides and validates.
// An empty path or a missing file yields the defaults. Aliases in the file
// are added to the default table; annotations replace the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("POSTGRES_DSN"); ok && v != "" {
		c.Source.PostgresDSN = v
	}
	if v, ok := lookup("VIEWER_LISTEN_ADDR"); ok && v != "" {
		c.ListenAddr = v
	}
}

func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV:
		if c.Source.CSVPath == "" {
			return fmt.Errorf("%w: source.csv_path is required for csv source", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.Source.PostgresDSN == "" {
			return fmt.Errorf("%w: source.postgres_dsn or POSTGRES_DSN is required for postgres source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source.kind %q", ErrInvalidConfig, c.Source.Kind)
	}

	if c.Source.QueryTimeout < 0 {
		return fmt.Errorf("%w: source.query_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Source.GeoJSONPath == "" {
		return fmt.Errorf("%w: source.geojson_path is required", ErrInvalidConfig)
	}
	if _, err := dataset.ParseMetric(c.DefaultMetric); err != nil {
		return fmt.Errorf("%w: default_metric %q: %w", ErrInvalidConfig, c.DefaultMetric, err)
	}
	if _, err := c.AnnotationList(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Metric() dataset.Metric {
	return dataset.Metric(c.DefaultMetric)
}

func (c Config) AliasTable() dataset.AliasTable {
	out := make(dataset.AliasTable, len(c.Aliases))
	for k, v := range c.Aliases {
		out[k] = v
	}
	return out
}

func (c Config) AnnotationList() ([]domain.Annotation, error) {
	out := make([]domain.Annotation, 0, len(c.Annotations))
	for _, a := range c.Annotations {
		d, err := dataset.ParseCalendarDate(annotationLayout, a.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: annotation %q: %w", ErrInvalidConfig, a.Label, err)
		}
		out = append(out, domain.Annotation{Date: d, Label: a.Label})
	}
	return out, nil
}

func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}
