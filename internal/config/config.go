package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and
// flags. Business constants default to the dairy's fixed values and are kept
// configurable per deployment.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	TokenSecret       string
	TokenTTL          time.Duration
	ReconcileInterval time.Duration
	ShutdownTimeout   time.Duration

	TransportFeePerLine float64
	MultipleTolerance   float64
	KgFactorHecto       float64
	KgFactorHalfKg      float64
}

const (
	defaultRunAddress        = ":8080"
	defaultTokenSecret       = "change-me-in-production"
	defaultTokenTTL          = 24 * time.Hour
	defaultReconcileInterval = 5 * time.Minute
	defaultShutdownTimeout   = 10 * time.Second

	defaultTransportFee      = 2.5
	defaultMultipleTolerance = 1e-4
	defaultKgFactorHecto     = 0.1
	defaultKgFactorHalfKg    = 0.5
)

// Load parses configuration from an optional .env file, environment
// variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		TokenSecret:         getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ReconcileInterval:   getDuration(lookup, "RECONCILE_INTERVAL", defaultReconcileInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		TransportFeePerLine: getFloat(lookup, "TRANSPORT_FEE_PER_LINE", defaultTransportFee),
		MultipleTolerance:   getFloat(lookup, "MULTIPLE_TOLERANCE", defaultMultipleTolerance),
		KgFactorHecto:       getFloat(lookup, "KG_FACTOR_100G", defaultKgFactorHecto),
		KgFactorHalfKg:      getFloat(lookup, "KG_FACTOR_500G", defaultKgFactorHalfKg),
	}

	fs := flag.NewFlagSet("happycheese", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr  = cfg.TokenTTL.String()
		reconcileStr = cfg.ReconcileInterval.String()
		shutdownStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Session token lifetime")
	fs.StringVar(&reconcileStr, "reconcile-interval", reconcileStr, "Interval between ledger reconciliations")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")
	fs.Float64Var(&cfg.TransportFeePerLine, "transport-fee", cfg.TransportFeePerLine, "Flat transport fee per order line")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ReconcileInterval, err = time.ParseDuration(reconcileStr); err != nil {
		return nil, fmt.Errorf("invalid reconcile interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TransportFeePerLine < 0 {
		cfg.TransportFeePerLine = defaultTransportFee
	}

	if cfg.MultipleTolerance <= 0 {
		cfg.MultipleTolerance = defaultMultipleTolerance
	}

	if cfg.KgFactorHecto <= 0 {
		cfg.KgFactorHecto = defaultKgFactorHecto
	}

	if cfg.KgFactorHalfKg <= 0 {
		cfg.KgFactorHalfKg = defaultKgFactorHalfKg
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
