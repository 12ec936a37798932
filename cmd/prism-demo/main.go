package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/prism/logfmt"
	"github.com/five82/prism/termcolor"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override prism config path (optional)")
	file := flag.String("file", "", "render the tail of a JSON-lines log file instead of built-in samples")
	lines := flag.Int("lines", 50, "number of lines to read from -file")
	theme := flag.String("theme", "", "theme override (Nightfox or Slate)")
	capName := flag.String("capability", "", "color capability override (none, ansi16, ansi256, truecolor)")
	flag.Parse()

	cfg, err := logfmt.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prism-demo: %v\n", err)
		return 1
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *capName != "" {
		cap, err := termcolor.ParseCapability(*capName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prism-demo: %v\n", err)
			return 1
		}
		cfg.Capability = cap
	} else {
		// Never emit more color than the terminal accepts.
		detected := termcolor.FromProfile(colorprofile.Detect(os.Stdout, os.Environ()))
		if detected < cfg.Capability {
			cfg.Capability = detected
		}
	}

	records := sampleRecords()
	if *file != "" {
		records, err = readRecords(*file, *lines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prism-demo: %v\n", err)
			return 1
		}
	}

	fmt.Println(header(cfg))
	formatter := cfg.Formatter()
	for _, rec := range records {
		fmt.Println(formatter.Format(rec))
	}
	return 0
}

// header frames the run summary.
func header(cfg logfmt.Config) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#719cd6")).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return style.Render(fmt.Sprintf("prism · theme %s · %s", cfg.Theme, cfg.Capability))
}
