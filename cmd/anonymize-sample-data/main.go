package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dcplibrary/polaris-sampledata/anonymize"
)

const envPrefix = "POLARIS_SAMPLE"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault("data", "sample-data")
	cfg.SetDefault("seed", int64(42))
	cfg.SetDefault("log-format", "console")

	dataDir := flag.String("data", cfg.GetString("data"), "directory of csv exports to anonymize in place")
	seed := flag.Int64("seed", cfg.GetInt64("seed"), "random seed for the substitute identities")
	logFormat := flag.String("log-format", cfg.GetString("log-format"), "log output format: console or json")
	flag.Parse()

	logger, err := buildLogger(*logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	logger.Info("anonymizing sample data",
		zap.String("data", *dataDir),
		zap.Int64("seed", *seed),
	)

	summary, err := anonymize.New(*seed, logger).ProcessDir(*dataDir)
	if err != nil {
		return err
	}

	logger.Info("anonymization complete",
		zap.Int("files_processed", summary.FilesProcessed),
		zap.Int("files_skipped", summary.FilesSkipped),
		zap.Int("files_failed", summary.FilesFailed),
		zap.Int("patrons", summary.Patrons),
		zap.Int("addresses", summary.Addresses),
		zap.Int("barcodes", summary.Barcodes),
	)

	if summary.FilesFailed > 0 {
		return fmt.Errorf("%d file(s) failed", summary.FilesFailed)
	}

	return nil
}

func buildLogger(format string) (*zap.Logger, error) {
	switch format {
	case "json":
		return zap.NewProduction()
	case "console":
		return zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", format)
	}
}
