package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dcplibrary/polaris-sampledata/generate"
	"github.com/dcplibrary/polaris-sampledata/tabular"
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
	cfg.SetDefault("out", "sample-data")
	cfg.SetDefault("seed", int64(42))
	cfg.SetDefault("reference-date", time.Now().Format("2006-01-02"))
	cfg.SetDefault("log-format", "console")

	outDir := flag.String("out", cfg.GetString("out"), "output directory for the generated tables")
	seed := flag.Int64("seed", cfg.GetInt64("seed"), "random seed; same seed and date reproduce the same files")
	refDate := flag.String("reference-date", cfg.GetString("reference-date"), "reference date (YYYY-MM-DD) standing in for today")
	logFormat := flag.String("log-format", cfg.GetString("log-format"), "log output format: console or json")
	flag.Parse()

	logger, err := buildLogger(*logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	referenceDate, err := time.Parse("2006-01-02", *refDate)
	if err != nil {
		return fmt.Errorf("parse reference date %q: %w", *refDate, err)
	}

	logger.Info("generating sample data",
		zap.String("out", *outDir),
		zap.Int64("seed", *seed),
		zap.String("reference_date", *refDate),
	)

	output, err := generate.NewGenerator(*seed, referenceDate, logger).Run()
	if err != nil {
		return err
	}

	if err := tabular.WriteAll(*outDir, output.Tables); err != nil {
		return err
	}
	if err := generate.WriteManifest(*outDir, output.Manifest); err != nil {
		return err
	}

	logger.Info("sample data written",
		zap.Int("tables", len(output.Tables)),
		zap.String("manifest", generate.ManifestFilename),
	)

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
