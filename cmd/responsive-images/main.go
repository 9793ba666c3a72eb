package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ironsheep/responsive-images-mcp/internal/config"
	"github.com/ironsheep/responsive-images-mcp/internal/responsive"
	"github.com/ironsheep/responsive-images-mcp/internal/server"
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
			fmt.Printf("responsive-images-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "sets":
			if err := printSets(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "--help", "-h", "help":
			fmt.Println("responsive-images-mcp - MCP server for responsive image sets")
			fmt.Println()
			fmt.Println("Usage: responsive-images-mcp [options]")
			fmt.Println("       responsive-images-mcp sets")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  sets             List the configured sets and exit")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RESPONSIVE_IMAGES_SETS_FILE=path          YAML file declaring the sets (default responsive-images.yml)")
			fmt.Println("  RESPONSIVE_IMAGES_LOG_LEVEL=debug         Enable debug logging")
			fmt.Println("  RESPONSIVE_IMAGES_DEFAULT_FORMAT=picture  Default format for flat definitions")
			fmt.Println("  RESPONSIVE_IMAGES_DEFAULT_METHOD=name     Default resample method")
			fmt.Println("  RESPONSIVE_IMAGES_DEFAULT_DIMENSIONS=w,h  Default image dimensions")
			fmt.Println("  RESPONSIVE_IMAGES_DEFAULT_CSS_CLASSES=... Default CSS classes")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Responsive Images MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	sets, defaults, err := cfg.LoadSets()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Loaded %d sets from %s (default method %s, format %s)",
			sets.Len(), cfg.SetsFile, defaults.Method, defaults.Format)
	}

	resolver, err := responsive.NewResolver(sets, defaults)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	srv := server.New(resolver, server.WithDebug(cfg.Debug()))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printSets renders the configured sets and global defaults as tables.
func printSets() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sets, defaults, err := cfg.LoadSets()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(cfg.SetsFile)
	t.AppendHeader(table.Row{"#", "Set", "Shape"})
	for i, s := range server.SummarizeSets(sets) {
		t.AppendRow(table.Row{i + 1, s.Name, s.Shape})
	}
	t.AppendFooter(table.Row{"", "Total", sets.Len()})
	t.Render()

	d := table.NewWriter()
	d.SetOutputMirror(os.Stdout)
	d.SetTitle("Defaults")
	d.AppendRows([]table.Row{
		{"format", defaults.Format},
		{"method", defaults.Method},
		{"dimensions", fmt.Sprint([]interface{}(defaults.Dimensions))},
		{"css_classes", defaults.CSSClasses},
	})
	d.Render()
	return nil
}
