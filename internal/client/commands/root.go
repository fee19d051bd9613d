// Package commands provides the cobra command tree for the rlexport
// CLI. The root command performs the export itself; subcommands cover
// version metadata.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rlexport/internal/client"

	"github.com/spf13/cobra"
)

// Flag names.
const (
	flagConfig    = "config"
	flagBaseURL   = "base-url"
	flagSessionID = "session-id"
	flagOutput    = "output"
	flagLimit     = "limit"
	flagOffset    = "offset"
	flagTimeout   = "timeout"
	flagLogLevel  = "log-level"
)

// ErrReported marks failures that were already printed to stderr with
// their contract-mandated prefix; main exits 1 without a second line.
var ErrReported = errors.New("export failed")

// NewRootCmd creates and returns the root command for the rlexport CLI.
// Running it performs one bounded export fetch: build the /rl/export
// URL, issue a single GET, decode the JSON body, and write the indented
// document to --output or stdout. SilenceUsage and SilenceErrors are
// set because fetch and decode failures print their own stderr lines.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rlexport",
		Short: "Export RL experiences for offline training",
		Long: `rlexport retrieves reinforcement-learning experience records
(state, action, reward, nextState, done) from the /rl/export endpoint
and writes them as indented JSON to a file or stdout, for consumption
by Gymnasium or custom DQN/PPO training loops.

One invocation performs exactly one bounded fetch; use --limit and
--offset to page through large sessions.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExport,
	}

	cmd.Flags().String(flagConfig, "", "Config file (default: config.yaml in ./configs or .)")
	cmd.Flags().String(flagBaseURL, client.DefaultBaseURL, "API base URL")
	cmd.Flags().String(flagSessionID, "", "Session UUID scoping the export")
	cmd.Flags().StringP(flagOutput, "o", "", "Output JSON file (default: stdout)")
	cmd.Flags().Int(flagLimit, client.DefaultLimit, "Max experiences to fetch")
	cmd.Flags().Int(flagOffset, client.DefaultOffset, "Offset for pagination")
	cmd.Flags().Duration(flagTimeout, client.DefaultTimeout, "Request timeout (0 = no client timeout)")
	cmd.Flags().String(flagLogLevel, client.DefaultLogLevel, "Log level (debug, info, warn, error)")

	if err := cmd.MarkFlagRequired(flagSessionID); err != nil {
		panic(err)
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runExport implements the root command: resolve config, fetch, write.
func runExport(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := client.LoadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd, cfg.LogLevel)

	sessionID, _ := cmd.Flags().GetString(flagSessionID)
	limit, _ := cmd.Flags().GetInt(flagLimit)
	offset, _ := cmd.Flags().GetInt(flagOffset)

	params := client.ExportParams{
		SessionID: sessionID,
		Limit:     limit,
		Offset:    offset,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	c, err := client.NewClient(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("fetching export",
		"url", c.ExportURL(params),
		"timeout", cfg.Timeout)

	start := time.Now()
	doc, err := c.FetchExport(ctx, params)
	if err != nil {
		var decodeErr *client.DecodeError
		if errors.As(err, &decodeErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error parsing response: %v\n", err)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error fetching export: %v\n", err)
		}
		return ErrReported
	}
	logger.Debug("export fetched", "duration", time.Since(start))

	output, _ := cmd.Flags().GetString(flagOutput)
	if output == "" {
		return client.WriteDocument(cmd.OutOrStdout(), doc)
	}

	if err := client.WriteDocumentFile(output, doc); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), client.Summary(client.ExperienceCount(doc), output))
	return err
}

// newLogger builds the command logger: slog text handler on stderr.
// The export itself logs only at debug level, so default-level runs
// leave stdout and stderr exactly as the output contract requires.
func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: l}))
}
