// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomitan"
)

const testGlossary = `# word	reading	tag	definition
犬	いぬ	n	dog
猫	ねこ	n	cat	kitty
行く	いく	v5k-s	to go
`

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newYomidictApp()
	app.Name = "yomidict"
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader("")
	err := app.Run(append([]string{"yomidict"}, args...))
	return stdout.String(), stderr.String(), err
}

func writeGlossary(t *testing.T) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "glossary.tsv")
	if err := os.WriteFile(p, []byte(testGlossary), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuild(t *testing.T) {
	out := t.TempDir()
	input := writeGlossary(t)

	_, stderr, err := runApp(t, "build", "--name", "Pets", "--output-dir", out, "--author", "me", input)
	if err != nil {
		t.Fatalf("build: %v\n%s", err, stderr)
	}
	if !strings.Contains(stderr, "packaged dictionary") {
		t.Errorf("build: missing log output, got %q", stderr)
	}

	pkg, err := yomitan.Open(filepath.Join(out, "Pets.zip"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, want := pkg.Index().Author, "me"; got != want {
		t.Errorf("Author: want %q, got %q", want, got)
	}

	var words []string
	for _, r := range pkg.Rows() {
		words = append(words, r.Word)
	}
	if diff := cmp.Diff([]string{"犬", "猫", "行く"}, words); diff != "" {
		t.Errorf("rows (-want, +got):\n%s", diff)
	}
}

func TestBuild_noPackage(t *testing.T) {
	out := t.TempDir()
	input := writeGlossary(t)

	if _, stderr, err := runApp(t, "build", "-n", "Pets", "-o", out, "--no-package", input); err != nil {
		t.Fatalf("build: %v\n%s", err, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "Pets", "index.json")); err != nil {
		t.Errorf("index.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "Pets.zip")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Pets.zip: want not exist, got %v", err)
	}
}

func TestBuild_config(t *testing.T) {
	out := t.TempDir()
	input := writeGlossary(t)
	cfg := filepath.Join(t.TempDir(), "yomidict.yaml")
	if err := os.WriteFile(cfg, []byte(strings.Join([]string{
		"name: FromConfig",
		"source: glossary",
		"input: " + input,
		"output_dir: " + out,
		"batch_size: 2",
		"index:",
		"  revision: r2",
		"log:",
		"  level: error",
	}, "\n")), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runApp(t, "--config", cfg, "build")
	if err != nil {
		t.Fatalf("build: %v\n%s", err, stderr)
	}
	if stderr != "" {
		t.Errorf("build: want no log output at error level, got %q", stderr)
	}

	pkg, err := yomitan.Open(filepath.Join(out, "FromConfig"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, want := pkg.Index().Revision, "r2"; got != want {
		t.Errorf("Revision: want %q, got %q", want, got)
	}
	if got, want := len(pkg.Banks()), 2; got != want {
		t.Errorf("Banks: want %d, got %d", want, got)
	}
}

func TestBuild_errors(t *testing.T) {
	input := writeGlossary(t)

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "missing name",
			args: []string{"build", input},
			err:  ErrFlagParse,
		},
		{
			name: "missing input",
			args: []string{"build", "--name", "x"},
			err:  ErrFlagParse,
		},
		{
			name: "unknown flag",
			args: []string{"build", "--bogus"},
			err:  ErrFlagParse,
		},
		{
			name: "unknown source",
			args: []string{"build", "--name", "x", "--source", "csv", input},
			err:  ErrConfig,
		},
		{
			name: "missing config",
			args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "build"},
			err:  ErrConfig,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runApp(t, test.args...)
			if !errors.Is(err, test.err) {
				t.Fatalf("run: want %v, got %v", test.err, err)
			}
		})
	}
}

func TestInspectAndLookup(t *testing.T) {
	out := t.TempDir()
	input := writeGlossary(t)
	if _, stderr, err := runApp(t, "build", "-n", "Pets", "-o", out, input); err != nil {
		t.Fatalf("build: %v\n%s", err, stderr)
	}
	archive := filepath.Join(out, "Pets.zip")

	stdout, _, err := runApp(t, "inspect", archive)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"Title:        Pets", "Format:       3", "term_bank_1.json", "total"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("inspect: output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = runApp(t, "lookup", archive, "ネコ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if diff := cmp.Diff("猫 [ねこ] (n)\ncat\nkitty\n", stdout); diff != "" {
		t.Errorf("lookup (-want, +got):\n%s", diff)
	}

	if _, _, err := runApp(t, "lookup", archive); !errors.Is(err, ErrFlagParse) {
		t.Errorf("lookup: want %v, got %v", ErrFlagParse, err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "yomidict ") {
		t.Errorf("version: unexpected output %q", stdout)
	}
	if !strings.Contains(stdout, "Copyright (c) 2025 Ian Lewis") {
		t.Errorf("version: missing copyright in %q", stdout)
	}
}
