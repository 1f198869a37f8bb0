// Command smartchat runs the SmartChat demo in the terminal.
//
// Usage:
//
//	smartchat chat [--locale de|en] [--model id] [--session path] [--export file.html]
//	smartchat letter [--preset id | --vacancy file] [--focus f] [--tone t] [--strength id]... [--copy]
//	smartchat sessions
//	smartchat export --session path [--thread id] [--out file.html]
//	smartchat config
//
// Settings are read from --config, $SMARTCHAT_CONFIG or the user config
// directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smartchat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	defer a.close()
	return newRootCmd(a).ExecuteContext(ctx)
}
