package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zostay/combo"
	"github.com/zostay/combo/internal/logutil"
	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/patterns"
)

// errNoMatch is returned by check when at least one line did not match. It
// makes the command exit with status 1 and no error message.
var errNoMatch = errors.New("some input did not match")

const maxLineSize = 1 << 20

var (
	checkPattern  string
	checkFull     bool
	checkMaxDepth int
	checkColor    string
	checkTrace    bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Check input lines against a pattern",
	Long: `Check every line of the given files, or standard input, against one of
the built-in patterns. The matched part of each line is highlighted. Use
"combo patterns" to list the available patterns.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkPattern, "pattern", "p", "", "Name of the pattern to check against")
	checkCmd.Flags().BoolVar(&checkFull, "full", false, "Require the pattern to match the whole line")
	checkCmd.Flags().IntVar(&checkMaxDepth, "max-depth", combo.DefaultMaxDepth, "Maximum matcher nesting (0 for unlimited)")
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
	checkCmd.Flags().BoolVar(&checkTrace, "trace", false, "Log every named matcher attempt")
}

// styles holds color formatters for check output
type styles struct {
	label   *color.Color
	match   *color.Color
	rest    *color.Color
	failure *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		label:   color.New(color.FgHiBlue),
		match:   color.New(color.Bold, color.FgHiGreen),
		rest:    color.New(color.Faint),
		failure: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{s.label, s.match, s.rest, s.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return !color.NoColor
	}
}

// checker holds everything needed to check one input after another.
type checker struct {
	out     io.Writer
	styles  *styles
	matcher parser.Matcher[rune, []rune]
	config  combo.Config

	lines, failed int
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Pattern == "" {
		return fmt.Errorf("no pattern given, choose one of: %s", strings.Join(patterns.Names(), ", "))
	}

	p, ok := patterns.Lookup(cfg.Pattern)
	if !ok {
		return fmt.Errorf("unknown pattern: %s", cfg.Pattern)
	}

	logger := logutil.NewLogger(cmd.ErrOrStderr(), logutil.Level(verbose, checkTrace, quiet))

	var m parser.Matcher[rune, []rune] = p.Matcher
	if cfg.Full {
		m = combo.Full(m)
	}

	ck := &checker{
		out:     cmd.OutOrStdout(),
		styles:  newStyles(colorEnabled(cfg.Color)),
		matcher: m,
		config: combo.Config{
			MaxDepth: cfg.MaxDepth,
			Trace:    logutil.Tracer(logger),
		},
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		if err := ck.checkSource(cmd, name); err != nil {
			return err
		}
		logger.Debug("checked input", "source", name, "pattern", p.Name, "lines", ck.lines, "failed", ck.failed)
	}

	if ck.failed > 0 {
		return errNoMatch
	}
	return nil
}

func (ck *checker) checkSource(cmd *cobra.Command, name string) error {
	if name == "-" {
		return ck.checkLines("-", cmd.InOrStdin())
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return ck.checkLines(name, f)
}

func (ck *checker) checkLines(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; scanner.Scan(); n++ {
		ck.checkLine(name, n, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func (ck *checker) checkLine(name string, n int, line string) {
	ck.lines++

	input := []rune(line)
	o := combo.MatchWith(ck.config, ck.matcher, input)

	label := ck.styles.label.Sprintf("%s:%d:", name, n)
	if !o.Matched {
		ck.failed++
		fmt.Fprintf(ck.out, "%s %s %s\n", label, ck.styles.failure.Sprint("no match"), o.Failure)
		return
	}

	fmt.Fprintf(ck.out, "%s %s%s\n",
		label,
		ck.styles.match.Sprint(string(input[:o.Consumed])),
		ck.styles.rest.Sprint(string(input[o.Consumed:])),
	)
}
