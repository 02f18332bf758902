package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/image-select-mcp/internal/config"
	"github.com/ironsheep/image-select-mcp/internal/selection"
	"github.com/ironsheep/image-select-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-select-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-select-mcp - MCP server for magic-wand image selection")
			fmt.Println()
			fmt.Println("Usage: image-select-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_SELECT_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  IMAGE_SELECT_CONFIG=<path>      JSON file with selection defaults")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load(os.Getenv("IMAGE_SELECT_CONFIG"))

	// Log to stderr (stdout is for MCP protocol)
	level := slog.LevelInfo
	if cfg.Debug || os.Getenv("IMAGE_SELECT_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if level == slog.LevelDebug {
		selection.SetLogger(logger.With("component", "selection"))
		logger.Debug("starting image-select-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)
	}

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
