package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wravell/logcask/core"
	"github.com/wravell/logcask/internal/config"
	"github.com/wravell/logcask/internal/session"
)

func main() {
	configPath := flag.String("config", "", "Path to an optional YAML config file")
	dbPath := flag.String("db", "", "Log file path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logcask:", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Path = *dbPath
	}

	store, err := core.Open(cfg.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logcask: cannot open store:", err)
		os.Exit(1)
	}

	runErr := session.Run(os.Stdin, os.Stdout, store)

	if err := store.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "logcask: error closing store:", err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "logcask:", runErr)
		os.Exit(1)
	}
}
