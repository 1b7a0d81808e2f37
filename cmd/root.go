package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alexiusacademia/beamvib/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "beamvib",
	Short: "Euler-Bernoulli Beam Vibration Modes",
	Long: `beamvib - Go Beam Vibration Analyzer

A CLI tool for the free vibration analysis of slender beams
using Euler-Bernoulli finite elements.

This tool helps structural engineers compute:
  - Natural frequencies of cantilever, pinned and fixed beams
  - Normalized transverse mode shapes
  - Mesh convergence of the lowest frequencies
  - Element and global stiffness/mass matrices

Each node carries a transverse displacement and a rotation; mass is consistent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(logLevel))); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamvib v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Beam Vibration Analyzer                              ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the modal analysis of slender beams")
		fmt.Println("  using Euler-Bernoulli finite elements.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Natural frequencies and normalized mode shapes")
		fmt.Println("    • Cantilever, pinned-pinned, fixed-fixed and fixed-pinned supports")
		fmt.Println("    • Rectangular or polygonal cross-sections")
		fmt.Println("    • Mesh convergence sweeps")
		fmt.Println("    • Terminal and image plots of mode shapes")
		fmt.Println()
		fmt.Println("  Use 'beamvib --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
}
