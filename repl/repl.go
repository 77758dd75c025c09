// Package repl implements the interactive read-evaluate-print loop on
// top of the calc pipeline.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/calc"
)

// Config holds the session options.
type Config struct {
	// Prompt is printed before each line is read. An empty prompt
	// disables prompting, e.g. for piped input.
	Prompt string `yaml:"prompt,omitempty"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format,omitempty"`
	// Logging is the named logging level applied by the command driver.
	Logging string `yaml:"logging,omitempty"`
	// DebugMode echoes the postfix form of each expression before its
	// result.
	DebugMode bool `yaml:"debug-mode,omitempty"`
}

// NewConfig returns the default session configuration.
func NewConfig() *Config {
	return &Config{
		Prompt: ">> ",
		Format: "%g",
	}
}

// ParseConfig reads session configuration from a YML file.
func (cfg *Config) ParseConfig(fileName string) error {
	if len(fileName) == 0 {
		return nil // OK
	}

	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %s", fileName, err)
	}

	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %s", fileName, err)
	}

	return nil // OK
}

// Session is one interactive evaluation loop over a line-oriented input.
// It is not safe to use a Session concurrently.
type Session struct {
	cfg Config
	in  io.Reader
	out io.Writer
}

// NewSession creates a session reading expressions from in and printing
// results to out.
func NewSession(cfg *Config, in io.Reader, out io.Writer) *Session {
	s := &Session{in: in, out: out}
	if cfg != nil {
		s.cfg = *cfg
	}
	if s.cfg.Format == "" {
		s.cfg.Format = "%g"
	}
	return s
}

// Run reads lines until end of input, evaluating each one. An empty or
// all-whitespace line re-prompts without evaluating. Any evaluation
// failure prints its description and the loop continues; only a read
// error ends the session abnormally. End of input returns nil.
func (s *Session) Run() error {
	scan := bufio.NewScanner(s.in)
	for {
		if s.cfg.Prompt != "" {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.Eval(line)
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("failed to read input: %s", err)
	}
	log.Debugf("[%s]: end of input", TAG)
	return nil // OK
}

// Eval evaluates a single expression and prints the result or the
// description of the failure. In debug mode the postfix form of the
// expression is echoed before the result.
func (s *Session) Eval(line string) {
	if s.cfg.DebugMode {
		s.echo(line)
	}
	r, err := calc.Evaluate(line)
	if err != nil {
		log.WithError(err).Debugf("[%s]: failed to evaluate %q", TAG, line)
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, s.cfg.Format+"\n", r)
}

// echo prints the postfix form of a line, when it has one.
func (s *Session) echo(line string) {
	tokens, err := calc.Tokenize(line)
	if err != nil {
		return
	}
	rpn, err := calc.ToRPN(tokens)
	if err != nil {
		return
	}
	fmt.Fprintf(s.out, "%v : ", rpn)
}
