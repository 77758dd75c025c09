package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/repl"
)

var (
	// logger instance
	log = logrus.New()
)

// customized via Makefile
var (
	Version = "development"
	GitHash = "unknown"
)

// config file name kingpin.Value
// parses session configuration on value set
type sessionConfigValue struct {
	cfg *repl.Config // session configuration
	v   string       // configuration path
}

// set session's configuration file
func (f *sessionConfigValue) Set(s string) error {
	f.v = s
	return f.cfg.ParseConfig(f.v)
}

// get session's configuration file
func (f *sessionConfigValue) String() string {
	return f.v
}

// main entry point
func main() {
	cfg := repl.NewConfig()

	// parse command line arguments
	kingpin.Flag("config", "Session configuration in YML format.").SetValue(&sessionConfigValue{cfg: cfg})
	kingpin.Flag("debug", "Run in debug mode (echo postfix form, more log messages).").Short('d').BoolVar(&cfg.DebugMode)
	kingpin.Flag("logging", "Logging level: panic, fatal, error, warning, info, debug.").StringVar(&cfg.Logging)
	kingpin.Flag("format", "Result formatting verb.").StringVar(&cfg.Format)
	kingpin.Flag("prompt", "Interactive prompt.").StringVar(&cfg.Prompt)
	exprs := kingpin.Arg("expression", "Expressions to evaluate without entering the interactive loop.").Strings()
	kingpin.Version(Version)
	kingpin.Parse()

	// automatic debug mode
	if len(cfg.Logging) == 0 && cfg.DebugMode {
		cfg.Logging = "debug"
	}

	// logging levels
	if len(cfg.Logging) > 0 {
		if err := setLoggingLevel(cfg.Logging); err != nil {
			kingpin.FatalUsage("%s", err)
		}
	}

	log.WithFields(map[string]interface{}{
		"version":  Version,
		"git-hash": GitHash,
	}).Debug("starting calc")

	// no prompt for piped input
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.Prompt = ""
	}

	session := repl.NewSession(cfg, os.Stdin, os.Stdout)

	// arguments on the command line are evaluated one-shot
	if len(*exprs) > 0 {
		for _, e := range *exprs {
			session.Eval(e)
		}
		return
	}

	if err := session.Run(); err != nil {
		log.WithError(err).Fatal("session failed")
	}
}

// set logging level on all package loggers
func setLoggingLevel(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse level: %s", err)
	}

	log.Level = ll
	if err := calc.SetLogLevel(level); err != nil {
		return err
	}
	return repl.SetLogLevel(level) // OK
}
