package demo

import (
	"fmt"
	"io"
	"strings"

	"go.lepovirta.org/boundq/internal/runner"
	"go.lepovirta.org/boundq/internal/scenario"
)

const (
	listHeader    = "scenario:"
	listSubHeader = "         "
)

func list(out io.Writer, scenarios []scenario.Scenario) error {
	if err := list_(out, scenarios); err != nil {
		return fmt.Errorf("failed to write scenario list: %w", err)
	}
	return nil
}

func list_(out io.Writer, scenarios []scenario.Scenario) (err error) {
	_, err = fmt.Fprintln(out, "!! LIST ONLY !! Remove flag -list to run the following scenarios")
	if err != nil {
		return
	}
	for i := range scenarios {
		s := &scenarios[i]
		_, err = fmt.Fprintf(
			out, "\n%s %s (%s, capacity %d)\n",
			listHeader, s.Name, s.Container, s.Capacity,
		)
		if err != nil {
			return
		}
		for j := range s.Steps {
			_, err = fmt.Fprintf(out, "%s %s\n", listSubHeader, s.Steps[j].String())
			if err != nil {
				return
			}
		}
	}
	return
}

// report writes one line per scenario followed by a summary line.
// Every failed expectation of a failed scenario is listed under it.
func report(out io.Writer, results []runner.Result) error {
	var b strings.Builder
	passed := 0
	for i := range results {
		result := &results[i]
		if result.Passed() {
			passed += 1
			fmt.Fprintf(&b, "PASS %s (%d steps)\n", result.Name, result.Steps)
			continue
		}
		fmt.Fprintf(&b, "FAIL %s\n", result.Name)
		for _, line := range strings.Split(result.Err.Error(), "\n") {
			fmt.Fprintf(&b, "     %s\n", line)
		}
	}
	fmt.Fprintf(&b, "\npassed %d/%d\n", passed, len(results))

	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
