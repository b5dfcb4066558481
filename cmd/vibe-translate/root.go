package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-translate/internal/mutation"
	"github.com/inodb/vibe-translate/internal/output"
	"github.com/inodb/vibe-translate/internal/report"
)

type translateOptions struct {
	dna        string
	change     string
	deletion   string
	insertion  string
	outputFile string
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &translateOptions{}
	configureViper()

	cmd := &cobra.Command{
		Use:   "vibe-translate",
		Short: "Translate DNA to protein and report the effect of point mutations",
		Long: `Translate a DNA sequence into its amino-acid chain starting at the first
ATG, apply point mutations (change, delete, add) given as positions
numbered from --start, and compare the original and mutated proteins.`,
		Example: `  vibe-translate --dna ATGCGTTAA
  vibe-translate --dna ATGCGTTAA --mutation-change "5 A"
  vibe-translate --dna TACGCAATT --strand template --format table
  vibe-translate --dna ATGCGTTAA --mutation-del "4 5" --mutation-add "1 G" -f yaml`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.dna, "dna", "ATG", "DNA sequence to translate (whitespace ignored, U read as T)")
	flags.String(strandFlagName, defaultStrand, "strand to translate: coding or template")
	flags.Int(startFlagName, defaultStart, "position number of the first base")
	flags.StringVar(&opts.change, "mutation-change", "", `substitutions as "position base" pairs, e.g. "1 A 10 T"`)
	flags.StringVar(&opts.deletion, "mutation-del", "", `positions to delete, e.g. "1 10"`)
	flags.StringVar(&opts.insertion, "mutation-add", "", `insertions as "position base" pairs, e.g. "1 A 10 T"`)
	flags.StringP(formatFlagName, "f", defaultFormat, "output format: "+strings.Join(output.Formats(), ", "))
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output file (default: stdout)")

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&opts.configFile, "config", "", "config file (default: ~/"+configFileName+")")
	pflags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pflags.String(logFileFlagName, "", "also write logs to this file (rotated)")

	bindFlagToConfig(flags.Lookup(strandFlagName), strandKey)
	bindFlagToConfig(flags.Lookup(startFlagName), startKey)
	bindFlagToConfig(flags.Lookup(formatFlagName), formatKey)
	bindFlagToConfig(pflags.Lookup(logFileFlagName), logFilenameKey)

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unexpected argument %q (pass the sequence with --dna)", args[0])
	}
	return nil
}

func runTranslate(cmd *cobra.Command, opts *translateOptions) (err error) {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), opts.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	strand, err := report.ParseStrand(viper.GetString(strandKey))
	if err != nil {
		return usageErrorf("%v", err)
	}
	format := viper.GetString(formatKey)
	if err := output.CheckFormat(format); err != nil {
		return usageErrorf("%v", err)
	}
	start, err := startFromConfig()
	if err != nil {
		return err
	}

	muts, err := mutation.ParseSet(opts.change, opts.deletion, opts.insertion, start)
	if err != nil {
		return err
	}

	analyzer := report.NewAnalyzer()
	analyzer.SetStrand(strand)
	analyzer.SetStartIndex(start)
	analyzer.SetLogger(logger)

	rep, err := analyzer.Analyze(opts.dna, muts)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.outputFile != "" {
		f, createErr := os.Create(opts.outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		out = f
	}

	writer, err := output.NewWriter(format, out)
	if err != nil {
		return err
	}
	if err := writer.Write(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return writer.Flush()
}

// startFromConfig reads the start position from flags, env or config file.
func startFromConfig() (int, error) {
	start, err := cast.ToIntE(viper.Get(startKey))
	if err != nil {
		return 0, usageErrorf("invalid %s %q: must be an integer", startKey, viper.GetString(startKey))
	}
	return mutation.NormalizeStart(start), nil
}
