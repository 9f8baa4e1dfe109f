// Command landtext is a terminal text editor with shared themes across
// windows.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/landtext/internal/app"
	"github.com/treykane/landtext/internal/config"
	"github.com/treykane/landtext/internal/logging"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type options struct {
	app         app.Options
	noWatch     bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("landtext %s (commit: %s, built: %s)\n", Version, Commit, BuildDate)
		return 0
	}
	opts.app.Watch = !opts.noWatch

	log := logging.New("main")
	log.Debug("starting", "version", Version, "files", len(opts.app.Files))

	// Stderr lines would draw over the alternate screen; set
	// LANDTEXT_LOG_FILE to keep them.
	restore := logging.RedirectStderr(io.Discard)
	p := tea.NewProgram(app.New(opts.app), tea.WithAltScreen())
	_, err := p.Run()
	restore()
	if err != nil {
		log.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.app.SettingsPath, "settings", "", "path to the settings file")
	flag.StringVar(&opts.app.SettingsPath, "s", "", "path to the settings file (shorthand)")
	flag.BoolVar(&opts.noWatch, "no-watch", false, "do not reload settings changed by other processes")
	flag.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flag.BoolVar(&opts.showVersion, "v", false, "print version information and exit (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [files...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "LandText - a terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSettings default to %s\n", config.Path())
		fmt.Fprintf(os.Stderr, "\nEach file opens in its own window.\n")
	}

	flag.Parse()
	opts.app.Files = flag.Args()
	return opts
}
