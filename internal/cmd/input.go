package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readDocumentSource reads the outline document from a file path, from
// stdin when source is "-", or from piped stdin when source is empty.
// Running interactively with no file argument is an error rather than
// a silent hang on a terminal read.
func readDocumentSource(ctx context.Context, source string) (string, error) {
	stdin := stdinFromContext(ctx)

	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		if !inputHasData(stdin) {
			return "", fmt.Errorf("no input: pass a file argument or pipe a document to stdin")
		}
		trimmed = "-"
	}

	var r io.Reader
	if trimmed == "-" {
		if stdin != nil {
			r = stdin
		} else {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(trimmed)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", trimmed, err)
		}
		defer file.Close()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// inputHasData reports whether stdin is a pipe or redirect rather than
// an interactive terminal.
func inputHasData(r io.Reader) bool {
	if r == nil {
		r = os.Stdin
	}
	if file, ok := r.(*os.File); ok {
		return !term.IsTerminal(int(file.Fd()))
	}
	return true
}
