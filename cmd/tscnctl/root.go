package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pkt.systems/pslog"

	"github.com/joshuapare/tscnkit/pkg/scene"
	"github.com/joshuapare/tscnkit/pkg/types"
	"github.com/joshuapare/tscnkit/scene/alloc"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tscnctl",
	Short: "Inspect and reformat text scene files",
	Long: `tscnctl loads .tscn scene files with the tscnkit loader and reports what
it sees: the classified chunks, their header and body attributes, and the
counting-pass statistics. It can also check many files at once and rewrite a
scene in canonical layout.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false, "Enable verbose output and debug logging")
	flags.BoolP("quiet", "q", false, "Suppress all output except errors")
	flags.Bool("json", false, "Output in JSON format")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("encoding", "UTF-8", "Input encoding (UTF-8, UTF-16LE, WINDOWS-1252)")
	flags.Int("arena-chunks", 0, "Load into a fixed arena of this many chunks (0 = heap)")
	flags.Int("arena-pairs", 0, "Load into a fixed arena of this many pairs (0 = heap)")
	flags.Int("max-bytes", 0, "Fail loads whose chunk and pair storage exceeds this many bytes (0 = unlimited)")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	_ = viper.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = viper.BindPFlag("encoding", flags.Lookup("encoding"))
	_ = viper.BindPFlag("arena_chunks", flags.Lookup("arena-chunks"))
	_ = viper.BindPFlag("arena_pairs", flags.Lookup("arena-pairs"))
	_ = viper.BindPFlag("max_bytes", flags.Lookup("max-bytes"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			printError("reading config %s: %v\n", cfgFile, err)
		}
	}
	viper.SetEnvPrefix("TSCNCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// settings is the resolved view of flags, env and config file.
type settings struct {
	Verbose     bool
	Quiet       bool
	JSON        bool
	NoColor     bool
	Encoding    string
	ArenaChunks int
	ArenaPairs  int
	MaxBytes    int
}

func currentSettings() settings {
	return settings{
		Verbose:     viper.GetBool("verbose"),
		Quiet:       viper.GetBool("quiet"),
		JSON:        viper.GetBool("json"),
		NoColor:     viper.GetBool("no_color"),
		Encoding:    viper.GetString("encoding"),
		ArenaChunks: viper.GetInt("arena_chunks"),
		ArenaPairs:  viper.GetInt("arena_pairs"),
		MaxBytes:    viper.GetInt("max_bytes"),
	}
}

// newLogger builds the library logger from TSCNCTL_LOG_* variables, forcing
// debug with --verbose and silence with --quiet.
func newLogger(s settings) pslog.Logger {
	log := pslog.LoggerFromEnv(
		pslog.WithEnvPrefix("TSCNCTL_LOG_"),
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{MinLevel: pslog.WarnLevel, NoColor: s.NoColor}),
	)
	switch {
	case s.Quiet:
		return log.LogLevel(pslog.Disabled)
	case s.Verbose:
		return log.LogLevel(pslog.DebugLevel)
	}
	return log
}

func loadOptions(s settings) scene.Options {
	opts := scene.DefaultOptions()
	opts.InputEncoding = s.Encoding
	opts.Logger = newLogger(s)
	if s.ArenaChunks > 0 || s.ArenaPairs > 0 {
		opts.Allocator = alloc.NewFixed(s.ArenaChunks, s.ArenaPairs)
	}
	if s.MaxBytes > 0 {
		opts.Allocator = alloc.NewLimited(opts.Allocator, s.MaxBytes)
	}
	return opts
}

// loadScene loads path with the current settings. The returned close
// function must run once the document is no longer used.
func loadScene(path string) (*types.Document, func() error, error) {
	s := currentSettings()
	printVerbose("Loading scene: %s\n", path)
	doc, closeFn, err := scene.LoadFile(path, loadOptions(s))
	if err != nil {
		return doc, closeFn, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, closeFn, nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !currentSettings().Quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	s := currentSettings()
	if s.Verbose && !s.Quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
