package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"

	minWidth     = 40
	defaultWidth = 80
)

type style struct {
	color bool
	width int
}

func (s style) paint(code, text string) string {
	if !s.color {
		return text
	}
	return code + text + reset
}

// writeReport prints one line per law, followed by the failures of that law,
// and returns whether every law held.
func writeReport(w io.Writer, runID, source string, results []*result, st style) bool {
	width := max(st.width, minWidth)
	if source == "" {
		source = "default suite"
	}
	fmt.Fprintf(w, "fpelaws run %s (%s)\n", runID, source)
	fmt.Fprintln(w, strings.Repeat("-", width))

	ok := true
	for _, r := range results {
		status := st.paint(green, "ok")
		if !r.ok() {
			ok = false
			status = st.paint(red, "FAIL")
		}
		counts := fmt.Sprintf("%d/%d", r.checked-len(r.failures), r.checked)
		plain := len(r.law) + len(counts) + len(statusText(r))
		pad := max(width-plain-3, 1)
		fmt.Fprintf(w, "%s %s %s %s\n", r.law, strings.Repeat(".", pad), counts, status)
		for _, err := range r.failures {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
	return ok
}

func statusText(r *result) string {
	if r.ok() {
		return "ok"
	}
	return "FAIL"
}
