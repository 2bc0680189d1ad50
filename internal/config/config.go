package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/plot"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Curve holds the sampling constants of the reduction curve.
type Curve struct {
	XMax           int    `yaml:"x_max"`
	StepsPerUnit   int    `yaml:"steps_per_unit"`
	EfficiencyUnit string `yaml:"efficiency_unit"` // ratio|percent
	ReductionUnit  string `yaml:"reduction_unit"`  // ratio|percent
}

// Chart is the outer pixel size and margins handed to the presentation surface.
type Chart struct {
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Margins plot.Margins `yaml:"margins"`
	Ticks   int          `yaml:"ticks"`
}

type Config struct {
	Mode     Mode   `yaml:"mode"`
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	DBDriver      string `yaml:"db_driver"` // sqlite|postgres; empty disables the curve store
	DBDSN         string `yaml:"db_dsn"`
	ExportOnStart bool   `yaml:"export_on_start"`

	CORSOriginsOnline  []string `yaml:"cors_origins_online"`
	CORSOriginsOffline []string `yaml:"cors_origins_offline"`

	Curve Curve `yaml:"curve"`
	Chart Chart `yaml:"chart"`
}

// Defaults is the reference configuration: X_MAX 20, ten samples per unit,
// a 600x400 chart.
func Defaults() Config {
	return Config{
		Mode:               ModeOffline,
		HTTPAddr:           ":8080",
		LogLevel:           "info",
		RequestTimeout:     30 * time.Second,
		CORSOriginsOnline:  []string{"https://reduction.mindengage.ai"},
		CORSOriginsOffline: []string{"http://localhost:3000"},
		Curve: Curve{
			XMax:           20,
			StepsPerUnit:   10,
			EfficiencyUnit: string(convert.UnitRatio),
			ReductionUnit:  string(convert.UnitPercent),
		},
		Chart: Chart{
			Width:   600,
			Height:  400,
			Margins: plot.Margins{Top: 40, Right: 40, Bottom: 60, Left: 60},
			Ticks:   10,
		},
	}
}

// Load starts from Defaults, overlays the YAML file at path (if any) and
// then the environment.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the file named by CONFIG_FILE, if set, plus the environment.
func FromEnv() (Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func (c *Config) applyEnv() {
	c.Mode = Mode(envOr("MODE", string(c.Mode)))
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	c.LogLevel = envOr("LOG_LEVEL", c.LogLevel)
	c.RequestTimeout = envDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.DBDriver = envOr("DB_DRIVER", c.DBDriver)
	c.DBDSN = envOr("DB_DSN", c.DBDSN)
	c.ExportOnStart = envBool("EXPORT_ON_START", c.ExportOnStart)
	c.CORSOriginsOnline = csvOr("CORS_ORIGINS_ONLINE", c.CORSOriginsOnline)
	c.CORSOriginsOffline = csvOr("CORS_ORIGINS_OFFLINE", c.CORSOriginsOffline)
	c.Curve.XMax = envInt("X_MAX", c.Curve.XMax)
	c.Curve.StepsPerUnit = envInt("STEPS_PER_UNIT", c.Curve.StepsPerUnit)
	c.Curve.EfficiencyUnit = envOr("EFFICIENCY_UNIT", c.Curve.EfficiencyUnit)
	c.Curve.ReductionUnit = envOr("REDUCTION_UNIT", c.Curve.ReductionUnit)
}

// Validate rejects settings the curve or chart cannot be built from.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeOffline, ModeOnline:
	default:
		errs = append(errs, fmt.Errorf("config: unknown mode %q", c.Mode))
	}
	if c.Curve.XMax <= 0 {
		errs = append(errs, fmt.Errorf("config: x_max must be positive, got %d", c.Curve.XMax))
	}
	if c.Curve.StepsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("config: steps_per_unit must be positive, got %d", c.Curve.StepsPerUnit))
	}
	if _, err := convert.ParseUnit(c.Curve.EfficiencyUnit); err != nil {
		errs = append(errs, err)
	}
	if _, err := convert.ParseUnit(c.Curve.ReductionUnit); err != nil {
		errs = append(errs, err)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: chart size %vx%v must be positive", c.Chart.Width, c.Chart.Height))
	}
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case "", "sqlite", "sqlite3", "postgres", "pg", "pgx", "pgsql":
	default:
		errs = append(errs, fmt.Errorf("config: unsupported db_driver %q", c.DBDriver))
	}
	return errors.Join(errs...)
}

// ConvertOptions maps the curve section onto controller options.
// Call after Validate.
func (c Config) ConvertOptions() convert.Options {
	eu, _ := convert.ParseUnit(c.Curve.EfficiencyUnit)
	ru, _ := convert.ParseUnit(c.Curve.ReductionUnit)
	return convert.Options{
		XMax:           c.Curve.XMax,
		StepsPerUnit:   c.Curve.StepsPerUnit,
		EfficiencyUnit: eu,
		ReductionUnit:  ru,
	}
}

// SlogLevel maps LogLevel onto slog; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CORSOrigins returns the origin list for the active mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
func envDuration(k string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
func csvOr(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
