// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package terminal reads input lines and writes colored output for the interactive session.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Color is a symbolic color tag. The zero value renders plain text.
type Color int

const (
	ColorDefault Color = iota
	ColorBrightYellow
	ColorBrightBlue
	ColorDimmed
	ColorBrightCyan
	ColorRed
)

var palette = map[Color][]color.Attribute{
	ColorBrightYellow: {color.FgHiYellow},
	ColorBrightBlue:   {color.FgHiBlue},
	ColorDimmed:       {color.Faint},
	ColorBrightCyan:   {color.FgHiCyan},
	ColorRed:          {color.FgRed},
}

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorBrightYellow: "bright-yellow",
	ColorBrightBlue:   "bright-blue",
	ColorDimmed:       "dimmed",
	ColorBrightCyan:   "bright-cyan",
	ColorRed:          "red",
}

func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Terminal is a line based console on top of a reader and a writer.
type Terminal struct {
	in      *bufio.Scanner
	out     io.Writer
	noColor bool
}

// New returns a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer, noColor bool) *Terminal {
	return &Terminal{
		in:      bufio.NewScanner(in),
		out:     out,
		noColor: noColor,
	}
}

// NewStdio returns a Terminal on stdin and stdout. Colors are only used if stdout is a
// terminal and noColor is false.
func NewStdio(noColor bool) *Terminal {
	fd := os.Stdout.Fd()
	isTerm := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return New(os.Stdin, colorable.NewColorable(os.Stdout), noColor || !isTerm)
}

// Prompt writes text on its own line and reads the answer. The answer is trimmed of
// surrounding whitespace. At the end of the input io.EOF is returned.
func (t *Terminal) Prompt(ctx context.Context, text string) (string, error) {
	if err := t.Println(text, ColorDefault); err != nil {
		return "", err
	}
	return t.ReadLine(ctx)
}

// ReadLine reads a single line. It returns early with the context error when ctx is done
// before a line is available. The pending read is abandoned in that case, so the Terminal
// must not be read from again.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		line string
		err  error
	}
	lineChan := make(chan result, 1)
	go func() {
		line, err := t.readLine()
		lineChan <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-lineChan:
		return res.line, res.err
	}
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

// Println writes text followed by a newline in the given color.
func (t *Terminal) Println(text string, c Color) error {
	var err error
	if col := t.colorize(c); col != nil {
		_, err = col.Fprintln(t.out, text)
	} else {
		_, err = fmt.Fprintln(t.out, text)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// PrintError writes text as a red error line.
func (t *Terminal) PrintError(text string) error {
	return t.Println(text, ColorRed)
}

// Banner writes title framed by a box that matches its display width.
func (t *Terminal) Banner(title string, c Color) error {
	width := runewidth.StringWidth(title)
	border := "+" + strings.Repeat("-", width+2) + "+"
	box := strings.Join([]string{border, "| " + title + " |", border}, "\n")
	return t.Println(box, c)
}

func (t *Terminal) colorize(c Color) *color.Color {
	attrs, ok := palette[c]
	if !ok {
		return nil
	}
	col := color.New(attrs...)
	if t.noColor {
		col.DisableColor()
	} else {
		col.EnableColor()
	}
	return col
}
