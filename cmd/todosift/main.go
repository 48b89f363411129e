package main

import (
	"os"

	"github.com/todosift/todosift/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
