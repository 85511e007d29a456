package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/slottree"
)

// palette colors keys and payloads on output.
type palette struct {
	key, payload *color.Color
}

func defaultPalette() palette {
	return palette{
		key:     color.New(color.FgBlue, color.Bold),
		payload: color.New(color.FgGreen),
	}
}

// load inserts every line of r into tree. Duplicate keys keep their first
// payload.
func load(tree *slottree.Tree[string, string], r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		key, payload, _ := strings.Cut(line, "\t")
		if inserted, it := tree.Insert(key, payload); !inserted {
			gtrace.CoreTracer.Infof("%s:%d: duplicate key %q, keeping payload %q",
				name, lineno, key, it.Payload())
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	return nil
}

// write outputs the tree in ascending key order, one "key<TAB>payload" per line.
func write(w io.Writer, tree *slottree.Tree[string, string], p palette) error {
	bw := bufio.NewWriter(w)
	for key, payload := range tree.All() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", p.key.Sprint(key), p.payload.Sprint(payload)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
