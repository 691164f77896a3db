// Command vex parses, canonicalizes and converts values written in the
// vex textual notation.
//
// Usage:
//
//	vex fmt [file]      Parse a value and print its canonical form
//	vex check [file]    Parse a value and report positioned errors
//	vex to-json [file]  Convert a value to JSON
//	vex version         Print version info
//
// If no file is given, input is read from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/vexlang/vex/vex"
)

const version = "0.1.0"

var cli struct {
	Debug bool `short:"d" help:"Enable debug logging."`

	Fmt     FmtCmd     `cmd:"" help:"Parse a value and print its canonical form."`
	Check   CheckCmd   `cmd:"" help:"Parse a value and report positioned errors."`
	ToJSON  ToJSONCmd  `cmd:"" name:"to-json" help:"Convert a value to JSON."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("vex"),
		kong.Description("Codec for the vex textual value notation."),
		kong.UsageOnError(),
	)
	logrus.SetOutput(os.Stderr)
	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	ctx.FatalIfErrorf(ctx.Run())
}

// FmtCmd parses one value and reprints it canonically.
type FmtCmd struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)." type:"existingfile"`
}

func (c *FmtCmd) Run() error {
	input, err := readInput(c.File)
	if err != nil {
		return err
	}
	v, err := parseInput(input)
	if err != nil {
		return err
	}
	out, err := vex.Format(v)
	if err != nil {
		return fmt.Errorf("format value: %w", err)
	}
	fmt.Println(out)
	return nil
}

// CheckCmd parses one value and reports success or a caret-annotated
// positioned error.
type CheckCmd struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	input, err := readInput(c.File)
	if err != nil {
		return err
	}
	v, err := parseInput(input)
	if err != nil {
		var perr *vex.ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(os.Stderr, annotate(input, perr))
		}
		return err
	}
	logrus.WithField("type", v.Type()).Debug("value ok")
	fmt.Println("ok")
	return nil
}

// ToJSONCmd parses one value and prints its JSON projection.
type ToJSONCmd struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)." type:"existingfile"`
}

func (c *ToJSONCmd) Run() error {
	input, err := readInput(c.File)
	if err != nil {
		return err
	}
	v, err := parseInput(input)
	if err != nil {
		return err
	}
	out, err := vex.ToJSON(v)
	if err != nil {
		return fmt.Errorf("convert to JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("vex %s\n", version)
	return nil
}

func readInput(file string) (string, error) {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func parseInput(input string) (*vex.Value, error) {
	logrus.WithField("bytes", len(input)).Debug("parsing input")
	v, err := vex.ParseComplete(input)
	if err != nil {
		return nil, fmt.Errorf("parse value: %w", err)
	}
	return v, nil
}

// annotate renders the input line containing the error with a caret run
// under the offending span.
func annotate(input string, perr *vex.ParseError) string {
	start := perr.Start
	if start > len(input) {
		start = len(input)
	}
	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += lineStart
	}
	line := input[lineStart:lineEnd]

	span := 1
	if perr.End > perr.Start {
		span = perr.End - perr.Start
	}
	if start+span > lineEnd+1 {
		span = lineEnd + 1 - start
	}
	if span < 1 {
		span = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", line)
	sb.WriteString(strings.Repeat(" ", start-lineStart))
	sb.WriteString(strings.Repeat("^", span))
	sb.WriteByte('\n')
	return sb.String()
}
