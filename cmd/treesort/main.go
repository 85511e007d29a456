/*
Treesort reads key/payload lines into a slot tree and writes them back in
ascending key order.

Input lines have the form "key<TAB>payload"; a line without a tab is a key
with an empty payload. The first occurrence of a key wins. Keys given with
--remove are deleted before output.

	treesort [--remove key]... [--color auto|always|never] [-v] [file...]

With no files, treesort reads standard input.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/slottree"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var sortConfig struct {
	remove  []string
	color   string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "treesort [file...]",
	Short: "sort key/payload lines through an arena-backed search tree",
	RunE:  runSort,
}

func init() {
	rootCmd.Flags().StringArrayVar(&sortConfig.remove,
		"remove", nil, "remove key before output (repeatable)")
	rootCmd.Flags().StringVar(&sortConfig.color,
		"color", "auto", "colorize output: auto, always or never")
	rootCmd.Flags().BoolVarP(&sortConfig.verbose,
		"verbose", "v", false, "enable debug tracing")
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	if sortConfig.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	switch sortConfig.color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return errors.Newf("invalid --color value %q", sortConfig.color)
	}
	tree := slottree.NewOrdered[string, string]()
	if len(args) == 0 {
		if err := load(tree, os.Stdin, "stdin"); err != nil {
			return err
		}
	}
	for _, name := range args {
		if err := loadFile(tree, name); err != nil {
			return err
		}
	}
	for _, key := range sortConfig.remove {
		if !tree.Remove(key) {
			gtrace.CoreTracer.Infof("key %q not present, nothing removed", key)
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}
	gtrace.CoreTracer.Debugf("tree holds %d keys, arena %s", tree.Len(), tree.Stats())
	return write(cmd.OutOrStdout(), tree, defaultPalette())
}

func loadFile(tree *slottree.Tree[string, string], name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return load(tree, f, name)
}
