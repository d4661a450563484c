package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"clockface/internal/config"
	"clockface/internal/errors"
	"clockface/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "clockface",
	Short: "Analog clock face",
	Long: `clockface draws an analog clock: a round face with a shadowed bezel,
sixty tick dots, hour, minute and second hands and the numerals 1 to 12.

Run without arguments to open the clock window. The snapshot command
renders the same face to PNG without a display.`,
	Version:           Version,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

// Persistent flags
var (
	configPath string
	logLevel   string
	logFile    string
)

// loaded is the configuration resolved by setup.
var (
	loaded    *config.Config
	logCloser io.Closer
)

// Global reporter for signal handling
var globalReporter atomic.Pointer[Reporter]

// cliCommands are the first arguments that select CLI mode.
var cliCommands = map[string]bool{
	"snapshot":  true,
	"version":   true,
	"help":      true,
	"--help":    true,
	"-h":        true,
	"--version": true,
	"-v":        true,
}

// valueFlags are the persistent flags that take the next argument as
// their value.
var valueFlags = map[string]bool{
	"--config":    true,
	"-c":          true,
	"--log-level": true,
	"--log-file":  true,
}

// cliMode reports whether args, without the program name, name a CLI
// command. Persistent flags may come before the command.
func cliMode(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case cliCommands[a]:
			return true
		case valueFlags[a]:
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return false
		}
	}
	return false
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if len(os.Args) < 2 || !cliMode(os.Args[1:]) {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful cancellation
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			interrupt(os.Stderr, cancel)
		case <-ctx.Done():
		}
	}()

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
	return true
}

// interrupt cancels the running command. Frame sequences stop between
// frames; a PNG being written is discarded rather than left truncated.
func interrupt(w io.Writer, cancel context.CancelFunc) {
	if r := globalReporter.Load(); r != nil {
		r.Cancel()
	}
	fmt.Fprintln(w, "\nCancelling...")
	cancel()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.IsConfig(err) {
		fmt.Fprintln(w, "Check the style attributes in the --config file.")
	}
}

// setup loads the configuration and turns on logging when asked to.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	loaded = cfg

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level == "" && logFile == "" {
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	if logFile != "" {
		closer, err := log.EnableFileLogging(logFile, lvl)
		if err != nil {
			return err
		}
		logCloser = closer
	} else {
		log.EnableStderrLogging(lvl)
	}
	log.Debug("config loaded", log.String("path", configPath), log.String("command", cmd.Name()))
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
		log.SetLogger(nil)
	}
}

// currentConfig returns the configuration loaded by setup, or the
// defaults when setup did not run.
func currentConfig() *config.Config {
	if loaded != nil {
		return loaded
	}
	return config.Default()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML file with style attributes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}
