package commands

import (
	"github.com/spf13/cobra"

	"github.com/statfuse/statfuse/internal/config"
	"github.com/statfuse/statfuse/internal/render"
	"github.com/statfuse/statfuse/pkg/vcfstats"
)

// SummaryCommand holds the flags for the summary command.
type SummaryCommand struct {
	configPath  string
	format      string
	afBinSize   float64
	percentiles []int
	top         int
	noColor     bool
}

// NewSummaryCommand creates and configures the summary command.
func NewSummaryCommand() *cobra.Command {
	sc := &SummaryCommand{}

	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Digest a stats report into headline numbers",
		Long: `Summary extracts headline counts, ts/tv ratios, depth percentiles,
top substitutions and the allele frequency spectrum from one report,
as a table, JSON or YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Config file path (default: .statfuse.yaml in CWD or $HOME)")
	cmd.Flags().StringVarP(&sc.format, "format", "f", config.DefaultFormat, "Output format: table, json or yaml")
	cmd.Flags().Float64Var(&sc.afBinSize, "af-bin-size", vcfstats.DefaultAFBinSize, "Allele frequency bin width (0 keeps source bins)")
	cmd.Flags().IntSliceVar(&sc.percentiles, "percentiles", nil, "Depth percentiles to report")
	cmd.Flags().IntVar(&sc.top, "top", vcfstats.DefaultTopSubstitutions, "Substitution types to keep (0 disables)")
	cmd.Flags().BoolVar(&sc.noColor, "no-color", config.DefaultNoColor, "Disable colored output")

	return cmd
}

func (sc *SummaryCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := sc.resolveConfig(cmd)
	if err != nil {
		return err
	}

	file, err := readReport(args[0])
	if err != nil {
		return err
	}

	summary := vcfstats.BuildSummary(file.Table, cfg.Summary.Options())

	r := render.Renderer{Format: cfg.Output.Format, NoColor: cfg.Output.NoColor}

	return r.Render(summary, cmd.OutOrStdout())
}

// resolveConfig folds explicit flags over the loaded configuration and
// validates the result.
func (sc *SummaryCommand) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(sc.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = sc.format
	}

	if cmd.Flags().Changed("af-bin-size") {
		cfg.Summary.AFBinSize = sc.afBinSize
	}

	if cmd.Flags().Changed("percentiles") {
		cfg.Summary.Percentiles = sc.percentiles
	}

	if cmd.Flags().Changed("top") {
		cfg.Summary.TopSubstitutions = sc.top
	}

	if cmd.Flags().Changed("no-color") {
		cfg.Output.NoColor = sc.noColor
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}
