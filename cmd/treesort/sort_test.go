package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slottree"
)

func TestLoadAndWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slottree")
	defer teardown()
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	color.NoColor = true
	input := "hello\tthere\nGeneral\tKenobi\n\nAnakin\tSkywalker\nRey\tTatooine\nManda\tlorian\nRey\tPalpatine\nlonely\n"
	tree := slottree.NewOrdered[string, string]()
	if err := load(tree, strings.NewReader(input), "test"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if tree.Len() != 6 {
		t.Fatalf("expected 6 keys, have %d", tree.Len())
	}
	tree.Remove("General")
	var out bytes.Buffer
	if err := write(&out, tree, defaultPalette()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "Anakin\tSkywalker\nManda\tlorian\nRey\tTatooine\nhello\tthere\nlonely\t\n"
	if out.String() != want {
		t.Errorf("unexpected output:\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRunSortCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slottree")
	defer teardown()
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("b\t2\na\t1\nb\t3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("d\t4\nc\t3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		name    string
		args    []string
		want    string // exact output, unless empty
		colored bool
		fails   bool
	}{
		{name: "plain", args: []string{"--color", "never", first},
			want: "a\t1\nb\t2\n"},
		{name: "two files", args: []string{"--color", "never", first, second},
			want: "a\t1\nb\t2\nc\t3\nd\t4\n"},
		{name: "remove", args: []string{"--color", "never", "--remove", "b", "--remove", "zz", first, second},
			want: "a\t1\nc\t3\nd\t4\n"},
		{name: "verbose", args: []string{"--color", "never", "-v", second},
			want: "c\t3\nd\t4\n"},
		{name: "always colored", args: []string{"--color", "always", first},
			colored: true},
		{name: "invalid color", args: []string{"--color", "rainbow", first},
			fails: true},
		{name: "missing file", args: []string{"--color", "never", filepath.Join(dir, "none.txt")},
			fails: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sortConfig.remove = nil
			sortConfig.verbose = false
			var out, errOut bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errOut)
			rootCmd.SetArgs(tc.args)
			err := rootCmd.Execute()
			if tc.fails {
				if err == nil {
					t.Fatalf("expected %v to fail", tc.args)
				}
				t.Logf("error: %v", err)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.colored {
				if !strings.Contains(out.String(), "\x1b[") {
					t.Errorf("expected colored output, got %q", out.String())
				}
				return
			}
			if out.String() != tc.want {
				t.Errorf("output %q, want %q", out.String(), tc.want)
			}
		})
	}
	color.NoColor = true
}
