// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orcid-report CLI. It looks up a
// researcher in the ORCID registry, enriches each declared work with DOI or
// arXiv metadata, and prints the resulting report.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/orcid-report/internal/orcid"
	"github.com/pdiddy/orcid-report/internal/registry"
	"github.com/pdiddy/orcid-report/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "orcid-report/0.1"
	defaultRateLimit = 3.0
)

var (
	// logger is built in PersistentPreRunE.
	logger = zap.NewNop()

	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	verbose bool
)

// rootCmd is the base command for the orcid-report CLI.
var rootCmd = &cobra.Command{
	Use:   "orcid-report [orcid-id]",
	Short: "Build a publication report for an ORCID researcher",
	Long: `orcid-report resolves an ORCID identifier, lists the works attributed to
that person, and enriches each work with bibliographic metadata from the DOI
resolver or, when a work has no DOI, from the arXiv API.

Without an identifier argument the identifier is read interactively and
re-prompted until the registry knows it. Use -o report.txt to write the report
to a file instead of standard output.`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runReport,
}

// setup builds the logger and loads credentials from .secrets/.
func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	s, err := secrets.Load(".secrets/", logger)
	if err != nil {
		return err
	}
	loadedSecrets = s
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.Debug("loaded secrets", zap.Strings("keys", keys))
	}
	return nil
}

func init() {
	rootCmd.SetFlagErrorFunc(flagFallback)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orcid-report.yaml or ~/.config/orcid-report/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringP("output", "o", "", "write the report to this .txt file instead of standard output")
	rootCmd.Flags().String("format", "text", "report format: text, yaml, json, or csl")

	_ = viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))

	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("http.rate_limit", defaultRateLimit)
	viper.SetDefault("orcid.base_url", orcid.DefaultBase)
	viper.SetDefault("doi.base_url", registry.DefaultDOIBase)
	viper.SetDefault("arxiv.base_url", registry.DefaultArxivAPIBase)
}

func initConfig() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orcid-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orcid-report"))
		}
	}

	viper.SetEnvPrefix("ORCID_REPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
