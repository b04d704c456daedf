package loader

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minefield/core"
)

// Load opens path and parses it as a minefield.
func Load(path string, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	log := o.log.WithField("path", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrFileNotFound, "open %s", path)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	g, err := parse(f, log)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	log.WithField("mines", g.Len()).Info("minefield loaded")

	return g, nil
}

// Parse reads a minefield from r.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return parse(r, o.log)
}

// lineReader yields non-blank lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text != "" {
			return text, true
		}
	}

	return "", false
}

func parse(r io.Reader, log logrus.FieldLogger) (*core.Graph, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	// 1. Mine count
	header, ok := lr.next()
	if !ok {
		if err := lr.sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read")
		}
		return nil, errors.Wrap(ErrMalformedInput, "missing mine count")
	}
	n, err := parseCount(header)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", lr.line)
	}

	// 2. One mine per line. Lines are collected before the graph is
	// allocated so a bogus count cannot trigger an n² allocation.
	mines := make([]core.Node, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		text, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, errors.Wrap(err, "read")
			}
			return nil, errors.Wrapf(ErrMalformedInput, "expected %d mines, found %d", n, i)
		}
		x, y, rad, err := parseMine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lr.line)
		}
		mine := core.Node{X: x, Y: y, R: rad}
		if !mine.Valid() {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %v", lr.line, core.ErrInvalidGeometry)
		}
		mines = append(mines, mine)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	for i, m := range mines {
		if err := g.SetGeometry(i, m.X, m.Y, m.R); err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "mine %d: %v", i, err)
		}
	}

	// 3. Anything left is ignored
	extra := 0
	for _, ok := lr.next(); ok; _, ok = lr.next() {
		extra++
	}
	if err := lr.sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read")
	}
	if extra > 0 {
		log.WithFields(logrus.Fields{"mines": n, "ignored": extra}).Debug("trailing lines ignored")
	}

	return g, nil
}

func parseCount(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return 0, errors.Wrapf(ErrMalformedInput, "mine count: expected 1 field, got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedInput, "mine count %q", fields[0])
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedInput, "mine count %d is negative", n)
	}

	return n, nil
}

func parseMine(text string) (x, y, r float64, err error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, 0, 0, errors.Wrapf(ErrMalformedInput, "expected \"x y r\", got %d fields", len(fields))
	}
	var vals [3]float64
	for k, f := range fields {
		vals[k], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, errors.Wrapf(ErrMalformedInput, "field %d %q is not a number", k+1, f)
		}
	}

	return vals[0], vals[1], vals[2], nil
}
