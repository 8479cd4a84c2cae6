// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/orcid-report/internal/httputil"
	"github.com/pdiddy/orcid-report/internal/orcid"
	"github.com/pdiddy/orcid-report/internal/output"
	"github.com/pdiddy/orcid-report/internal/registry"
	"github.com/pdiddy/orcid-report/internal/report"
	"github.com/pdiddy/orcid-report/internal/secrets"
	"github.com/pdiddy/orcid-report/pkg/types"
)

const (
	promptText   = "Podaj id szukanej osoby: "
	notFoundText = "Nie znaleziono podanego identyfikatora. Spróbuj jeszcze raz."
)

// lookupFunc fetches and parses a person record.
type lookupFunc func(ctx context.Context, id string) (types.Person, error)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := reportConfig()
	if err != nil {
		return err
	}

	extra := 0
	if len(args) > 1 {
		extra = len(args) - 1
	}
	target, warning := output.Resolve(cfg.OutputPath, extra)
	return produce(cmd, cfg, args, target, warning)
}

// flagFallback handles a command line pflag rejected. The root command
// warns and still prints the report to standard output, taking the
// identifier from the positional arguments read before the bad flag.
// Subcommands keep cobra's strict behavior.
func flagFallback(cmd *cobra.Command, flagErr error) error {
	if cmd != rootCmd {
		return flagErr
	}

	warning := output.WarnBadArgs
	if strings.Contains(flagErr.Error(), "needs an argument") {
		warning = output.WarnArgCount
	}

	// Flag errors stop cobra before its initializers and pre-run hooks.
	initConfig()
	if err := setup(cmd, nil); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("falling back to standard output", zap.Error(flagErr))

	cfg, err := reportConfig()
	if err != nil {
		return err
	}
	args := cmd.Flags().Args()
	if len(args) > 1 {
		args = args[:1]
	}
	return produce(cmd, cfg, args, output.Target{}, warning)
}

// produce looks up the person, enriches the works and writes the report to
// target. A non-empty warning is printed first: on stdout for text reports,
// on stderr for structured formats so the document stays parseable.
func produce(cmd *cobra.Command, cfg types.ReportConfig, args []string, target output.Target, warning string) error {
	out := cmd.OutOrStdout()
	if warning != "" {
		w := out
		if cfg.Format != types.FormatText {
			w = cmd.ErrOrStderr()
		}
		fmt.Fprintf(w, "%s\n\n", warning)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := httputil.NewClient(cfg.HTTPConfig)
	people := orcid.NewClient(client, cfg.Registries, logger)

	var (
		person types.Person
		err    error
	)
	if len(args) > 0 {
		person, err = people.Lookup(ctx, args[0])
	} else {
		person, err = promptLookup(ctx, cmd.InOrStdin(), out, people.Lookup)
	}
	if err != nil {
		return err
	}

	resolver := registry.NewResolver(client, cfg.Registries, logger)
	enriched := report.NewBuilder(resolver, logger).Enrich(ctx, person)

	var buf bytes.Buffer
	if err := report.Write(&buf, enriched, cfg.Format); err != nil {
		return err
	}
	// Printed reports end with an extra newline; files get the text as is.
	if target.Stdout() && cfg.Format == types.FormatText {
		buf.WriteByte('\n')
	}
	if err := target.Write(out, buf.Bytes()); err != nil {
		return err
	}
	if !target.Stdout() {
		logger.Info("report written", zap.String("path", target.Path), zap.Int("works", len(enriched.Works)))
	}
	return nil
}

// promptLookup reads identifiers from in until one resolves to a person.
// Unknown identifiers and nameless records re-prompt; any other failure
// ends the loop.
func promptLookup(ctx context.Context, in io.Reader, out io.Writer, lookup lookupFunc) (types.Person, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptText)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return types.Person{}, fmt.Errorf("reading identifier: %w", err)
			}
			return types.Person{}, fmt.Errorf("reading identifier: %w", io.ErrUnexpectedEOF)
		}

		p, err := lookup(ctx, scanner.Text())
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, orcid.ErrPersonNotFound) && !errors.Is(err, orcid.ErrMissingName) {
			return types.Person{}, err
		}
		logger.Debug("person lookup failed", zap.Error(err))
		fmt.Fprintln(out, notFoundText)
	}
}

// reportConfig assembles the run configuration from viper and the loaded
// secrets.
func reportConfig() (types.ReportConfig, error) {
	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return types.ReportConfig{}, err
	}

	return types.ReportConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: userAgent(viper.GetString("http.user_agent"), loadedSecrets[secrets.KeyContactEmail]),
			RateLimit: viper.GetFloat64("http.rate_limit"),
		},
		Registries: types.RegistryConfig{
			ORCIDBase:    viper.GetString("orcid.base_url"),
			ORCIDToken:   loadedSecrets[secrets.KeyORCIDToken],
			DOIBase:      viper.GetString("doi.base_url"),
			ArxivAPIBase: viper.GetString("arxiv.base_url"),
		},
		Format:     format,
		OutputPath: viper.GetString("output_path"),
	}, nil
}

// userAgent appends a mailto contact to the base agent when one is known.
func userAgent(base, email string) string {
	if email == "" {
		return base
	}
	return fmt.Sprintf("%s (mailto:%s)", base, email)
}
