// Package filetest implements helpers for golden-file tests: a test reads
// source files from an input directory and compares what it produced with
// the expected results stored alongside in a result directory.
package filetest

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var testUpdateAllTests = flag.Bool("test.update-all-tests", false, "If set, sets all test.update-*-tests.")

// SourceFiles returns the names of the regular files in dir with the
// specified extension, or all regular files if ext is empty.
func SourceFiles(t *testing.T, dir, ext string) []string {
	t.Helper()

	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, len(dents))
	for _, dent := range dents {
		if !dent.Type().IsRegular() {
			continue
		}
		if ext != "" && filepath.Ext(dent.Name()) != ext {
			continue
		}
		names = append(names, dent.Name())
	}
	return names
}

// Golden compares outputs with the golden files stored in Dir. A golden
// file is named after the source file with an added extension. If Update
// points to true (or -test.update-all-tests is set), the golden files are
// overwritten with the outputs instead.
type Golden struct {
	Dir    string
	Update *bool
}

// Output checks output against the ".want" golden file of the source file
// name.
func (g Golden) Output(t *testing.T, name, output string) {
	t.Helper()
	g.Diff(t, name, "output", ".want", output)
}

// Errors checks output against the ".err" golden file of the source file
// name.
func (g Golden) Errors(t *testing.T, name, output string) {
	t.Helper()
	g.Diff(t, name, "errors", ".err", output)
}

// Diff is the general form of Output and Errors. The label is used in the
// test logs, ext is the extension of the golden file (including the leading
// dot). A missing golden file is the same as an empty one.
func (g Golden) Diff(t *testing.T, name, label, ext, output string) {
	t.Helper()

	goldFile := filepath.Join(g.Dir, name+ext)
	if g.updating() {
		if err := os.WriteFile(goldFile, []byte(output), 0600); err != nil {
			t.Fatal(err)
		}
		return
	}

	want := readGolden(t, goldFile)
	patch := diff.Diff(want, output)
	if !testing.Verbose() {
		if patch != "" {
			t.Errorf("diff %s:\n%s\n", label, patch)
		}
		return
	}

	t.Logf("got %s:\n%s\n", label, output)
	if patch != "" {
		t.Logf("want %s:\n%s\n", label, want)
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}

func (g Golden) updating() bool {
	return *testUpdateAllTests || (g.Update != nil && *g.Update)
}

func readGolden(t *testing.T, file string) string {
	t.Helper()

	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
