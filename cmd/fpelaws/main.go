// fpelaws checks the algebraic laws of the fpe combinators on a catalog of
// sample functions and prints a report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KasperOmsK/fpe/internal/config"
	"github.com/KasperOmsK/fpe/internal/logging"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var (
	configPath = flag.String("config", "", "law suite file (YAML)")
	verbose    = flag.Bool("v", false, "log every failed check, overriding the configured log level")
	list       = flag.Bool("list", false, "list the catalog functions and exit")
)

const usage = `Check the laws of curried functions, compositions, Maybe and Either.
Usage:
    fpelaws [options]
Examples:
% fpelaws -config suite.yaml
Without -config every law is checked on the whole catalog.
`

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "could not load config %s: %v\n", *configPath, err)
			return 2
		}
	}

	level := cfg.Level()
	if *verbose {
		level = logging.DebugLevel
	}
	log := logging.New(stderr, level, 0)

	fns, err := defaultCatalog().only(cfg.Functions)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}
	if *list {
		for _, e := range fns {
			fmt.Fprintf(stdout, "%-10s %-7s %v\n", e.name, e.domain, e.fn)
		}
		return 0
	}

	runID := uuid.NewString()
	log.Debugf("run %s: %d laws, %d functions", runID, len(cfg.Laws), len(fns))

	results := newSuite(cfg, log, fns).run()
	if !writeReport(stdout, runID, cfg.SourceFile(), results, terminalStyle(cfg.Color)) {
		return 1
	}
	return 0
}

// terminalStyle decides colour and width of the report from the colour mode
// and from stdout.
func terminalStyle(mode string) style {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	st := style{width: defaultWidth}
	switch mode {
	case config.ColorAlways:
		st.color = true
	case config.ColorAuto:
		st.color = tty
	}
	if tty {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			st.width = w
		}
	}
	return st
}
