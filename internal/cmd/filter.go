package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todosift/todosift/internal/outline"
	"github.com/todosift/todosift/internal/output"
)

// runFilter is the root command body: read the document, run the
// engine, render the result.
func runFilter(cmd *cobra.Command, args []string) error {
	// Past this point failures are about the input, not the usage.
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	source := ""
	if len(args) == 1 {
		source = args[0]
	}
	doc, err := readDocumentSource(ctx, source)
	if err != nil {
		return err
	}

	result := outline.FilterStats(splitLines(doc), outline.Options{
		DoneMarkers:  doneMarkers,
		Bullets:      bulletSymbols,
		WithChildren: withChildren,
	})

	if output.IsStructured(outputType) {
		printer := output.NewPrinter(stdoutFromContext(ctx), outputType)
		if outputType == output.FormatNDJSON && output.QueryFrom(ctx) == "" {
			// One JSON string per surviving line.
			return printer.Print(ctx, result.Lines)
		}
		return printer.Print(ctx, result)
	}

	w := stdoutFromContext(ctx)
	if len(result.Lines) > 0 {
		fmt.Fprintln(w, strings.Join(result.Lines, "\n"))
	}

	// Interactive nicety only: piped output stays clean.
	if !output.QuietFrom(ctx) && result.Removed > 0 && isTerminal(stderrFromContext(ctx)) {
		fmt.Fprintf(stderrFromContext(ctx), "todosift: removed %d completed item(s)\n", result.Removed)
	}
	return nil
}

// splitLines breaks the raw document into engine input: one string per
// line, no trailing newline characters. Only the final newline is
// stripped; leading whitespace stays significant for indented
// checkboxes.
func splitLines(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = strings.TrimSuffix(doc, "\n")
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}
