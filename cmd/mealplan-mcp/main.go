// mealplan-mcp: meal planning MCP server.
//
// Stores dishes, meal plans, grocery lists, and PDF exports as plain
// files under a root directory, and exposes them to AI tools over the
// MCP stdio transport.
//
// Usage:
//
//	mealplan-mcp serve     # Start MCP server (stdio transport)
//	mealplan-mcp version   # Print the version
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"mealplan-mcp/internal/config"
	mpserver "mealplan-mcp/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "mealplan-mcp",
	Short: "Meal planning MCP server backed by plain files",
	Long: `mealplan-mcp stores dishes, meal plans, and grocery lists as markdown
and JSON files under a root directory and serves them to AI tools over
the Model Context Protocol (stdio transport).

The root directory comes from the MEALPLANPATH environment variable and
defaults to the current working directory.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		// MCP owns stdout; everything we say goes to stderr.
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mealplan-mcp",
		})
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		} else {
			logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		}

		logger.Info("starting", "version", mpserver.Version, "root", cfg.Root)

		s := mpserver.New(cfg, logger)
		return server.ServeStdio(s)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mealplan-mcp v%s\n", mpserver.Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
