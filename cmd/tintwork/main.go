package main

import (
	"fmt"
	"os"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	setAppState(log, export.DefaultRegistry())

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
