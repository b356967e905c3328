package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/tscnkit/pkg/scene"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if debugMode {
		closeLog, err := openDebugLog("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		} else {
			defer closeLog()
		}
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("tscnexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	debugLog.Info("starting tscnexplorer", "path", path, "debug", debugMode)

	doc, closeFn, err := scene.LoadFile(path, scene.DefaultOptions())
	if err != nil {
		debugLog.Error("scene load failed", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	debugLog.Debug("scene loaded", "chunks", doc.ChunksLen(), "pairs", doc.AllPairsLen())

	m := NewModel(path, doc, closeFn)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		debugLog.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		_ = closeFn()
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			debugLog.Warn("error closing resources", "error", err)
		}
	}

	debugLog.Info("tscnexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: tscnexplorer [options] <scene-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'tscnexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("tscnexplorer - Interactive TUI for Godot text scene files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  tscnexplorer [options] <scene-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Lists every chunk of a .tscn file. Open a chunk to see its")
	fmt.Println("  header attributes and body pairs.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move through chunks")
	fmt.Println("    /           Filter chunks")
	fmt.Println("    Enter       Open chunk")
	fmt.Println("    Esc         Back to list")
	fmt.Println("    y           Copy chunk as scene text")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.tscnexplorer/debug.log")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'tscnctl' command instead.")
}
