// Copyright 2025 The CodeServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the code completion server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

CodeServe suggests keywords, snippets and buffer words for the language of
the document being edited. It can operate as a MessagePack IPC server for
integration with text editors, or as a CLI application for testing and
debugging.

# Usage

Start the server with default settings:

	codeserve

Enable debug logging (written to stderr, stdout carries the IPC stream):

	codeserve -d

Run in CLI mode for interactive testing:

	codeserve -c -lang go -limit 10

Reset a broken or outdated config file to the defaults:

	codeserve -rebuild-config

# Configuration

Runtime configuration lives in a TOML file that is created with defaults
when missing:

	[completion]
	max_items = 20
	min_word_len = 3
	guard_delay_ms = 150
	default_language = "generic"

	[server]
	max_prefix = 60
	max_text_bytes = 1048576
	watch_config = true

	[cli]
	default_language = "rust"
	show_docs = true
	page_size = 8

With watch_config enabled, edits to the file are picked up by the running
server without a restart.

# IPC Protocol

Requests and responses are MessagePack maps, see package server:

	{"id": "req1", "lang": "rust", "p": "ma"}
	{"id": "req1", "s": [{"d": "main (snippet)", "i": "fn main() {...}", "k": "snippet", "r": 1}, ...], "c": 3, "t": 41}

# Command Line Flags

	-config string
	    Path to a config file (default: platform config dir)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-lang string
	    Language for CLI mode (default from config)
	-limit int
	    Number of suggestions to return (default from config)
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeserve/internal/cli"
	"github.com/bastiangx/codeserve/internal/logger"
	"github.com/bastiangx/codeserve/pkg/config"
	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/server"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

const (
	Version = "0.1.0-beta"
	AppName = "codeserve"
	gh      = "https://github.com/bastiangx/codeserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, completer and the selected front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a custom config file")
	cliLang := flag.String("lang", "", "Language for CLI mode (default from config)")
	limit := flag.Int("limit", 0, "Number of suggestions to return (default from config)")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the config file with defaults and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	if *rebuildConfig {
		path, err := config.RebuildConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		os.Exit(0)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *limit > 0 {
		appConfig.Completion.MaxItems = *limit
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	completer := suggest.NewMatcher(appConfig.MatcherOptions())
	log.Debug("Completer init done",
		"max_items", completer.Options().MaxItems,
		"min_word_len", completer.Options().MinWordLen)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		language := appConfig.CLI.DefaultLanguage
		if *cliLang != "" {
			language = *cliLang
		}
		opts := cli.Options{
			Language:     lang.Parse(language),
			ShowDocs:     appConfig.CLI.ShowDocs,
			MaxFileBytes: int64(appConfig.Server.MaxTextBytes),
			Session:      appConfig.SessionOptions(),
		}
		inputHandler := cli.NewInputHandler(completer, opts, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig, os.Stdin, os.Stdout)

	if appConfig.Server.WatchConfig && usedPath != "" {
		watcher, err := config.NewWatcher(usedPath, config.DefaultDebounce)
		if err != nil {
			log.Warnf("Config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			watcher.OnReload(func(c *config.Config) error {
				if *limit > 0 {
					c.Completion.MaxItems = *limit
				}
				return srv.UpdateConfig(c)
			})
			watcher.Start()
		}
	}

	showStartupInfo(usedPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ CodeServe ] Keyword and snippet completions for code editors")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic info about the init process to stderr in debug mode.
func showStartupInfo(configPath string) {
	if log.GetLevel() > log.DebugLevel {
		return
	}
	log.Debugf("%s %s", AppName, Version)
	log.Debugf("Process ID: [ %d ]", os.Getpid())
	log.Debugf("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Debugf("languages: %d", len(lang.All()))
	log.Debug("status: ready")
}
