package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/config"
	"github.com/cleared-dev/fecgen/internal/logger"
	"github.com/cleared-dev/fecgen/internal/runner"
)

// generateFlags mirrors the config fields that can be overridden on the
// command line. Only flags set by the user are applied.
type generateFlags struct {
	company      string
	siren        string
	start        string
	end          string
	transactions int
	anomalyRate  float64
	anomalyKinds []string
	seed         uint64
	chart        string
	format       string
	output       string
	baseName     string
	count        int
	prefix       string
	logLevel     string
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.company, "company", "", "company name")
	fs.StringVar(&f.siren, "siren", "", "company SIREN (9 digits)")
	fs.StringVar(&f.start, "start", "", "period start (YYYY-MM-DD)")
	fs.StringVar(&f.end, "end", "", "period end, inclusive (YYYY-MM-DD)")
	fs.IntVarP(&f.transactions, "transactions", "n", 0, "number of transactions")
	fs.Float64Var(&f.anomalyRate, "anomaly-rate", 0, "share of lines to corrupt, in [0,1)")
	fs.StringSliceVar(&f.anomalyKinds, "anomaly-kinds", nil, "anomaly kinds to inject (default all)")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (0 = random)")
	fs.StringVar(&f.chart, "chart", "", "chart of accounts CSV replacing the built-in one")
	fs.StringVarP(&f.format, "format", "f", "", "output format: text, spreadsheet or both")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.baseName, "base-name", "", "file name without extension (single mode)")
	fs.IntVar(&f.count, "count", 0, "number of files; more than 1 selects batch mode")
	fs.StringVar(&f.prefix, "prefix", "", "file name prefix (batch mode)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func (f *generateFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("company", func() { cfg.Company.Name = f.company })
	set("siren", func() { cfg.Company.Siren = f.siren })
	set("start", func() { cfg.Period.Start = f.start })
	set("end", func() { cfg.Period.End = f.end })
	set("transactions", func() { cfg.Generation.Transactions = f.transactions })
	set("anomaly-rate", func() { cfg.Generation.AnomalyRate = f.anomalyRate })
	set("anomaly-kinds", func() { cfg.Generation.AnomalyKinds = f.anomalyKinds })
	set("seed", func() { cfg.Generation.Seed = f.seed })
	set("chart", func() { cfg.Generation.Chart = f.chart })
	set("format", func() { cfg.Output.Format = f.format })
	set("output", func() { cfg.Output.Dir = f.output })
	set("base-name", func() { cfg.Output.BaseName = f.baseName })
	set("count", func() { cfg.Batch.Count = f.count })
	set("prefix", func() { cfg.Batch.Prefix = f.prefix })
	set("log-level", func() { cfg.Log.Level = f.logLevel })
}

func newGenerateCommand(configPath *string) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate FEC files",
		Long: `Generate balanced FEC ledgers, corrupt a share of lines with known anomaly
patterns, repair entry balance once, and write text and/or spreadsheet files.

Settings come from the config file, then .env and FECGEN_* variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration:\n%w", err)
			}
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func runGenerate(out, logOut io.Writer, cfg *config.Config) error {
	log := logger.NewWithWriter(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}, logOut)

	ref := accounts.Default()
	if cfg.Generation.Chart != "" {
		var err error
		if ref, err = accounts.LoadChart(cfg.Generation.Chart); err != nil {
			return err
		}
		log.Debug().Str("chart", cfg.Generation.Chart).Int("accounts", len(ref.All())).Msg("loaded chart of accounts")
	}

	rng := runner.NewRand(cfg.Generation.Seed)
	jobs, err := runner.Plan(cfg, rng)
	if err != nil {
		return err
	}

	r := runner.New(ref, log)
	results, runErr := r.RunAll(jobs, rng)

	failed, warned := 0, 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(out, "FAILED  %s: %v\n", res.Job.BaseName, res.Err)
		case len(res.Residual) > 0:
			warned++
			fmt.Fprintf(out, "WARN    %s (%d lines, %d anomalies, %d repaired, %d entries still imbalanced)\n",
				strings.Join(res.Files, ", "), res.Lines, res.Anomalies.Count(), len(res.Repair.Corrections), len(res.Residual))
			for _, e := range res.Residual {
				fmt.Fprintf(out, "        %s\n", e.Error())
			}
		default:
			fmt.Fprintf(out, "OK      %s (%d lines, %d anomalies, %d repaired)\n",
				strings.Join(res.Files, ", "), res.Lines, res.Anomalies.Count(), len(res.Repair.Corrections))
		}
	}
	fmt.Fprintf(out, "Generated %d of %d ledgers (%d with warnings) in %s, run %s\n",
		len(results)-failed, len(results), warned, cfg.Output.Dir, r.RunID())

	return runErr
}
