package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/positiondraft/internal/adapter/apiclient"
	"github.com/iho/positiondraft/internal/adapter/repository/memory"
	"github.com/iho/positiondraft/internal/assetconfig"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/config"
	"github.com/iho/positiondraft/internal/infrastructure/logger"
	"github.com/iho/positiondraft/internal/usecase"
)

type options struct {
	baseURL     string
	timeout     time.Duration
	maxRetries  int
	saveTimeout time.Duration
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	// Flags default to the environment; a bad environment fails every command.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = &config.Config{
			PositionsAPIURL:        "http://localhost:8080",
			PositionsAPITimeout:    10 * time.Second,
			PositionsAPIMaxRetries: 3,
			SaveTimeout:            usecase.DefaultSaveTimeout,
		}
	}

	rootCmd := &cobra.Command{
		Use:           "positions-cli",
		Short:         "Manual positions CLI tool",
		Long:          `A command line interface for staging and saving manual positions against the positions API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", cfg.PositionsAPIURL, "Base URL of the positions API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.PositionsAPITimeout, "Request timeout")
	rootCmd.PersistentFlags().IntVar(&opts.maxRetries, "retries", cfg.PositionsAPIMaxRetries, "Retries for failed requests")
	rootCmd.PersistentFlags().DurationVar(&opts.saveTimeout, "save-timeout", cfg.SaveTimeout, "Deadline of one batched save")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error, disabled)")

	rootCmd.AddCommand(entitiesCmd(opts), showCmd(opts), applyCmd(opts))
	return rootCmd
}

func entitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client(cmd.ErrOrStderr())
			entities, err := client.FetchEntities(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch entities: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, e := range entities {
				fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Name)
			}
			return w.Flush()
		},
	}
}

func showCmd(opts *options) *cobra.Command {
	var (
		assetType string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the manual positions of one asset type",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseAssetType(strings.ToUpper(assetType))
			if err != nil {
				return fmt.Errorf("%w: %s", err, assetType)
			}

			ws := opts.workspace(cmd, false)
			defer ws.Close()
			if err := ws.Load(cmd.Context()); err != nil {
				return err
			}

			m := ws.Manager(t)
			items := m.MergeView()
			if asJSON {
				out := make([]map[string]any, 0, len(items))
				for _, it := range items {
					out = append(out, map[string]any{"key": it.Key, "entry": it.Entry})
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			names := entityNames(ws.Entities())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tENTITY\tNAME")
			for _, it := range items {
				entity := ""
				if it.Draft != nil {
					entity = names[it.Draft.Entity.Key()]
				}
				name := m.Config().DisplayName(domain.Draft{Entry: it.Entry})
				fmt.Fprintf(w, "%s\t%s\t%s\n", it.Key, truncate(entity, 24), truncate(name, 40))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&assetType, "type", "", "Asset type, e.g. ACCOUNT or STOCK_ETF")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func applyCmd(opts *options) *cobra.Command {
	var (
		file string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Stage the operations of a file and save them in one batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readOperations(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ws := opts.workspace(cmd, yes)
			defer ws.Close()
			if err := ws.Load(cmd.Context()); err != nil {
				return err
			}

			saved, err := applyOperations(cmd.Context(), ws, ops)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d batch(es)\n", saved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Operations file, - for stdin")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Answer yes to every confirmation")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (o *options) logger(w io.Writer) zerolog.Logger {
	return logger.New(logger.Config{Level: o.logLevel, Format: "console", Service: "positions-cli", Output: w})
}

func (o *options) client(stderr io.Writer) *apiclient.Client {
	return apiclient.New(apiclient.Config{
		BaseURL:    o.baseURL,
		Timeout:    o.timeout,
		MaxRetries: o.maxRetries,
	}, memory.NewULIDGenerator("cli-"), o.logger(stderr), nil)
}

func (o *options) workspace(cmd *cobra.Command, yes bool) *usecase.Workspace {
	log := o.logger(cmd.ErrOrStderr())
	return usecase.NewWorkspace(usecase.WorkspaceDeps{
		Store:   memory.NewDraftStore(),
		Gateway: o.client(cmd.ErrOrStderr()),
		Confirmer: &promptConfirmer{
			assumeYes: yes,
			in:        cmd.InOrStdin(),
			out:       cmd.ErrOrStderr(),
		},
		Notifier:    &writerNotifier{out: cmd.ErrOrStderr()},
		IDGen:       memory.NewULIDGenerator("local-"),
		Logger:      log,
		SaveTimeout: o.saveTimeout,
	}, assetconfig.All()...)
}

func entityNames(entities []domain.Entity) map[string]string {
	names := make(map[string]string, len(entities))
	for _, e := range entities {
		names[e.ID] = e.Name
	}
	return names
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// promptConfirmer asks on the terminal unless every answer is yes.
type promptConfirmer struct {
	assumeYes bool
	in        io.Reader
	out       io.Writer
	scanner   *bufio.Scanner
}

func (c *promptConfirmer) Confirm(ctx context.Context, message string) bool {
	if c.assumeYes {
		return true
	}
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.in)
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	if !c.scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(c.scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

type writerNotifier struct {
	out io.Writer
}

func (n *writerNotifier) Error(message string) {
	fmt.Fprintf(n.out, "error: %s\n", message)
}
