// Command lint validates a template JSON file and prints the report.
// Exit code 1 means the template has errors or could not be parsed.
package main

import (
	"flag"
	"fmt"
	"os"

	"whatsapp-template-linter/internal/rules"
	"whatsapp-template-linter/internal/schema"
	"whatsapp-template-linter/internal/stats"
)

func main() {
	showStats := flag.Bool("stats", false, "print template statistics after the report")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lint [-stats] <template.json>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(2)
	}

	t, err := schema.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	report := rules.Validate(t)
	printDiagnostics("error", report.Errors)
	printDiagnostics("warning", report.Warnings)
	printDiagnostics("info", report.Info)

	if *showStats {
		st := stats.Compute(t)
		fmt.Printf("characters: %d, variables: %d, buttons: %d, size: %s\n",
			st.TotalCharacters, st.VariableCount, st.ButtonCount, st.SizeClass)
	}

	if !report.IsValid {
		os.Exit(1)
	}
	fmt.Printf("%s: ready for submission\n", t.Name)
}

func printDiagnostics(label string, diags []rules.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("%s: %s: %s\n", label, d.Field, d.Message)
		if d.Suggestion != "" {
			fmt.Printf("  suggestion: %s\n", d.Suggestion)
		}
	}
}
