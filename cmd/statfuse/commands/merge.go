// Package commands implements CLI command handlers for statfuse.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/statfuse/statfuse/internal/config"
	"github.com/statfuse/statfuse/pkg/reportio"
	"github.com/statfuse/statfuse/pkg/vcfstats"
)

// MergeCommand holds the flags for the merge command.
type MergeCommand struct {
	output       string
	configPath   string
	strictSchema bool
}

// NewMergeCommand creates and configures the merge command.
func NewMergeCommand() *cobra.Command {
	mc := &MergeCommand{}

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Fold stats reports into one combined report",
		Long: `Merge folds any number of bcftools stats reports into a single
report, summing counts, unioning histograms and recombining derived
columns. Inputs ending in .gz or .lz4 are decompressed on the fly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: mc.run,
	}

	cmd.Flags().StringVarP(&mc.output, "output", "o", "", "Output file (default: stdout; .gz and .lz4 compress)")
	cmd.Flags().StringVar(&mc.configPath, "config", "", "Config file path (default: .statfuse.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&mc.strictSchema, "strict-schema", config.DefaultStrictSchema, "Fail when inputs define a section differently")

	return cmd
}

func (mc *MergeCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(mc.configPath)
	if err != nil {
		return err
	}

	strict := cfg.Merge.StrictSchema
	if cmd.Flags().Changed("strict-schema") {
		strict = mc.strictSchema
	}

	files, err := readReports(args)
	if err != nil {
		return err
	}

	report, err := vcfstats.Combine(files,
		vcfstats.WithLogger(slog.Default()),
		vcfstats.WithStrictSchema(strict),
	)
	if err != nil {
		return err
	}

	slog.Debug("merged stats reports", "inputs", len(files), "sections", report.Table.Len())

	return writeReport(report, mc.output, cmd.OutOrStdout())
}

// readReports parses every input, failing on the first unreadable one.
func readReports(paths []string) ([]*vcfstats.StatsFile, error) {
	files := make([]*vcfstats.StatsFile, 0, len(paths))

	for _, path := range paths {
		file, err := readReport(path)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}

func readReport(path string) (*vcfstats.StatsFile, error) {
	r, err := reportio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	file, parseErr := vcfstats.Parse(r, path)

	closeErr := r.Close()
	if parseErr != nil {
		return nil, parseErr
	}

	if closeErr != nil {
		return nil, fmt.Errorf("close %s: %w", path, closeErr)
	}

	return file, nil
}

func writeReport(report *vcfstats.CombinedReport, output string, stdout io.Writer) error {
	if output == "" {
		return vcfstats.Write(report, stdout)
	}

	w, err := reportio.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	writeErr := vcfstats.Write(report, w)

	closeErr := w.Close()
	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("close %s: %w", output, closeErr)
	}

	return nil
}
