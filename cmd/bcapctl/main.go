// Command bcapctl is a thin demonstration client: it issues a single b-CAP
// operation against a controller and prints the result. It is an external
// collaborator of the library, not part of it, and carries no config file or
// environment-variable layer of its own (§6).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keioku/bcap-go/client"
	"github.com/keioku/bcap-go/internal/variant"
)

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "bcapctl:", err)
		flagUsageAndExit()
	}
	l := setupLogger(cfg.logFormat, cfg.logLevel)

	op, ok := client.Lookup(cfg.op)
	if !ok {
		l.Error("unknown_operation", "op", cfg.op)
		os.Exit(1)
	}
	if len(cfg.args) != op.Args {
		l.Warn("argument_count_mismatch", "op", cfg.op, "want", op.Args, "got", len(cfg.args))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		l.Info("shutdown_signal", "signal", s.String())
		cancel()
	}()

	c, err := client.New(cfg.transport, client.WithReturnHR(cfg.returnHR))
	if err != nil {
		l.Error("client_init_error", "error", err)
		os.Exit(1)
	}
	if err := c.Connect(ctx, cfg.endpoint, cfg.timeout, cfg.retry); err != nil {
		l.Error("connect_error", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := c.Disconnect(); err != nil {
			l.Warn("disconnect_error", "error", err)
		}
	}()

	if cfg.compress {
		if err := c.SetCompression(true, cfg.compressLevel); err != nil {
			l.Error("set_compression_error", "error", err)
			os.Exit(1)
		}
	}

	argv := make([]any, len(cfg.args))
	for i, a := range cfg.args {
		argv[i] = a
	}
	result, err := c.Call(op.ID, argv...)
	if err != nil {
		l.Error("call_error", "op", cfg.op, "error", err)
		os.Exit(1)
	}
	printResult(cfg.op, result)
}

func printResult(op string, result any) {
	switch r := result.(type) {
	case client.Result:
		fmt.Printf("%s -> hr=%#x value=%s\n", op, uint32(r.HR), r.Value.GoString())
	case variant.Value:
		fmt.Printf("%s -> %s\n", op, r.GoString())
	default:
		fmt.Printf("%s -> %v\n", op, result)
	}
}

func flagUsageAndExit() {
	os.Exit(2)
}
