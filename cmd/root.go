// Package cmd provides the CLI commands for timex.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/config"
	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// findConfigFile locates the config file used when --config is empty.
var findConfigFile = config.DefaultConfigFile

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "timex",
	Short: "Parse, resolve and describe TIMEX3 time expressions",
	Long: `timex works with TIMEX3 expressions, the time annotations produced by
natural language extractors. It parses and canonicalises them, resolves them
against a reference instant, intersects them with constraint ranges and
renders them back as English.

Examples:
  timex parse 2017-09-27T19:30
  timex resolve XXXX-WXX-3 --ref 2017-09-26T15:30:00
  timex evaluate --candidate T16 --constraint '(T14,T18,PT4H)'
  timex say XXXX-WXX-3T10
  timex explore`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Completion and help never need a runtime
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return err
		}

		if flagDebug {
			logging.InitDebug()
		} else {
			logging.Init(logging.DefaultConfig())
		}

		path := flagConfig
		if path == "" {
			path = findConfigFile()
		}
		if path != "" {
			if err := config.Global.LoadFile(path); err != nil {
				return err
			}
			logging.DebugLog("loaded config", logging.KeyPath, path)
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()
		ctx.Debugf("running %s", cmd.CommandPath())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return runtime.WrapStorageError(ctx.Close(), "close")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		report(err)
		// PersistentPostRunE does not run after a failed command
		if ctx != nil {
			_ = ctx.Close()
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default: $XDG_CONFIG_HOME/timex/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.VersionResponse{Version: Version})
		}
		ctx.Formatter.Printf("timex %s\n", Version)
		ctx.Formatter.Printf("  commit: %s\n", Commit)
		ctx.Formatter.Printf("  built: %s\n", BuildTime)
		ctx.Formatter.Println("")
		ctx.Formatter.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		ctx.Formatter.Println("Licensed under SEGV License v1.0")
		return nil
	},
}

// report writes err in the active format. Errors raised before the runtime
// exists go to stderr.
func report(err error) {
	if ctx != nil {
		ctx.PrintError(err)
		return
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error: "+runtime.FormatError(err))
}
