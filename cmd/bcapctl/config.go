package main

import (
	"flag"
	"fmt"
	"time"
)

// cliConfig holds every knob bcapctl exposes. Flags only: the library itself
// takes no environment variables, CLI, or configuration files (§6), and the
// demo program mirrors that rather than layering its own override mechanism
// on top.
type cliConfig struct {
	transport      string
	endpoint       string
	timeout        time.Duration
	retry          int
	compress       bool
	compressLevel  int
	op             string
	args           stringList
	returnHR       bool
	logFormat      string
	logLevel       string
}

// stringList collects repeated -arg flags in order.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseFlags() *cliConfig {
	cfg := &cliConfig{}
	flag.StringVar(&cfg.transport, "transport", "tcp", `transport to use: "tcp" or "udp"`)
	flag.StringVar(&cfg.endpoint, "endpoint", "localhost:5007", "controller endpoint, host[:port]")
	flag.DurationVar(&cfg.timeout, "timeout", 3*time.Second, "socket timeout")
	flag.IntVar(&cfg.retry, "retry", 1, "datagram retry bound, 1-7 (ignored by tcp)")
	flag.BoolVar(&cfg.compress, "compress", false, "enable stream compression (tcp only)")
	flag.IntVar(&cfg.compressLevel, "compress-level", -1, "zlib level, -1..9")
	flag.StringVar(&cfg.op, "op", "", "operation name from the catalogue, e.g. controller_connect")
	flag.Var(&cfg.args, "arg", "argument for -op, repeatable, applied in order")
	flag.BoolVar(&cfg.returnHR, "return-hr", false, "print the HRESULT alongside the value instead of failing on error")
	flag.StringVar(&cfg.logFormat, "log-format", "text", `log format: "text" or "json"`)
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()
	return cfg
}

func (c *cliConfig) validate() error {
	if c.op == "" {
		return fmt.Errorf("-op is required")
	}
	if c.endpoint == "" {
		return fmt.Errorf("-endpoint is required")
	}
	return nil
}
