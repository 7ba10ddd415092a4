package cmd

import (
	"io"
	"os"

	"trunc/pkg/filter"
	"trunc/pkg/output"
	"trunc/pkg/trunc"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix für Umgebungsvariablen (TRUNC_FIRST, TRUNC_WIDTH, ...)
const envPrefix = "trunc"

// Gemeinsame Ziele für Flag und Alias: das zuletzt angegebene gewinnt
var (
	firstLines int
	lastLines  int
)

// shortAliases sind versteckte Flags, die nur die Kurzformen -H und -T tragen.
// Die langen Aliase --head und --tail löst normalizeAliases auf.
var shortAliases = map[string]string{
	"first": "first-alias",
	"last":  "last-alias",
}

// rootCmd repräsentiert den Basis-Befehl. Es gibt bewusst keine Unterbefehle:
// das erste Argument ist immer das Pattern.
var rootCmd = &cobra.Command{
	Use:   "trunc [pattern]",
	Short: "Smart truncation for pipe output",
	Long: `trunc shows the first N and last M lines of stdin, like head and tail combined.
Everything in between is replaced by a marker that says exactly how much was cut.

With a pattern (regular expression), matches from the middle section are shown
with surrounding context, up to a limit. The final marker reports how many
matches were not shown and the total count.

Long lines are shortened to their first and last --width characters.

Head lines and matches are written as soon as they are read, so a live
consumer sees them before the producer has finished.

Examples:
  make 2>&1 | trunc                  # first 10 + last 10 lines
  cargo test 2>&1 | trunc FAILED     # plus up to 5 matches with context
  journalctl | trunc -f 5 -l 20 -m 10 -C 1 'error|panic'
  cat data.jsonl | trunc -w 50       # shorten long lines to 50+50 chars`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute führt den Root-Befehl aus und beendet den Prozess bei Fehlern mit Code 1
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errColor := color.New(color.FgRed)
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(normalizeAliases)
	flags.IntVarP(&firstLines, "first", "f", trunc.DefaultFirst, "Number of lines to show from start (alias: --head, -H)")
	flags.IntVarP(&firstLines, shortAliases["first"], "H", trunc.DefaultFirst, "")
	flags.IntVarP(&lastLines, "last", "l", trunc.DefaultLast, "Number of lines to show from end (alias: --tail, -T)")
	flags.IntVarP(&lastLines, shortAliases["last"], "T", trunc.DefaultLast, "")
	for _, alias := range shortAliases {
		_ = flags.MarkHidden(alias)
	}
	flags.IntP("matches", "m", trunc.DefaultMaxMatches, "Max matches to show in pattern mode")
	flags.IntP("context", "C", trunc.DefaultContext, "Lines of context around each match")
	flags.IntP("width", "w", trunc.DefaultWidth, "Chars to show at start/end of long lines (0 = no limit)")
	flags.Bool("verbose", false, "Print a summary to stderr after the run")

	// Flags an Viper binden (Kurzform-Aliase nicht, die löst intOption auf)
	for _, name := range []string{"first", "last", "matches", "context", "width", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig liest Defaults aus Umgebungsvariablen. Eine Konfigurationsdatei gibt es nicht.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if completionShell != "" {
		return writeCompletion(cmd.Root(), cmd.OutOrStdout(), completionShell)
	}

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	verbose := viper.GetBool("verbose")
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if verbose && in == os.Stdin && output.StdinIsTerminal() {
		color.New(color.FgYellow).Fprintln(os.Stderr, "Reading from terminal until EOF (Ctrl-D)")
	}

	colored := out == os.Stdout && output.StdoutIsTerminal()
	stats, err := runTrunc(in, out, cfg, colored)

	if verbose {
		printStats(cmd.ErrOrStderr(), stats)
	}
	return err
}

// buildConfig baut die Konfiguration aus Flags, Umgebung und Pattern-Argument
func buildConfig(cmd *cobra.Command, args []string) (trunc.Config, error) {
	cfg := trunc.Config{
		First:      intOption(cmd, "first", firstLines),
		Last:       intOption(cmd, "last", lastLines),
		MaxMatches: viper.GetInt("matches"),
		Context:    viper.GetInt("context"),
		Width:      viper.GetInt("width"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if len(args) == 1 {
		m, err := filter.Compile(args[0])
		if err != nil {
			return cfg, err
		}
		cfg.Pattern = m
	}
	return cfg, nil
}

// intOption liest einen Wert mit Kurzform-Alias. Wurde Flag oder Alias angegeben,
// gilt value (das zuletzt angegebene), sonst Umgebung bzw. Default über Viper.
func intOption(cmd *cobra.Command, name string, value int) int {
	flags := cmd.Flags()
	if flags.Changed(name) || flags.Changed(shortAliases[name]) {
		return value
	}
	return viper.GetInt(name)
}

// normalizeAliases bildet --head auf --first und --tail auf --last ab
func normalizeAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "head":
		name = "first"
	case "tail":
		name = "last"
	}
	return pflag.NormalizedName(name)
}

// runTrunc führt einen kompletten Durchlauf von in nach out aus
func runTrunc(in io.Reader, out io.Writer, cfg trunc.Config, colored bool) (trunc.Stats, error) {
	w := output.NewWriter(out, colored)
	engine, err := trunc.New(cfg, w)
	if err != nil {
		return trunc.Stats{}, err
	}

	if err := trunc.Run(in, engine); err != nil {
		// Was schon entschieden ist, soll den Konsumenten noch erreichen
		_ = w.Flush()
		return engine.Stats(), err
	}
	return engine.Stats(), nil
}

func printStats(w io.Writer, s trunc.Stats) {
	info := color.New(color.FgCyan)
	info.Fprintf(w, "trunc: %d lines read, %d shown in %d blocks", s.Lines, s.Emitted, s.Blocks)
	if s.TotalMatches > 0 {
		info.Fprintf(w, ", %d matches (%d shown)", s.TotalMatches, s.ShownMatches)
	}
	info.Fprintln(w)
}
