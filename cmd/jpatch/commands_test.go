package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

type bufCloser struct {
	bytes.Buffer
}

func (b *bufCloser) Close() error { return nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bufCloser{}, &bufCloser{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader(stdin)),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, args)
	return out.String(), err
}

func TestMainCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.json", `{"a": [1, 2], "b": "x"}`)
	grow := writeFile(t, dir, "grow.json", `[{"op": "add", "path": "/a/-", "value": 3}]`)
	check := writeFile(t, dir, "check.json", `[
		{"op": "replace", "path": "/b", "value": "y"},
		{"op": "test", "path": "/a/*", "value": 2}
	]`)
	miss := writeFile(t, dir, "miss.json", `[
		{"op": "remove", "path": "/b"},
		{"op": "test", "path": "/a/*", "value": 7}
	]`)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"apply", "", []string{"apply", grow, doc}, `{"a":[1,2,3],"b":"x"}` + "\n"},
		{"apply stdin", `{"a": []}`, []string{"apply", grow, "-"}, `{"a":[3]}` + "\n"},
		{"apply indent", "", []string{"apply", "-i", "  ", grow, doc}, "{\n  \"a\": [\n    1,\n    2,\n    3\n  ],\n  \"b\": \"x\"\n}\n"},
		{"apply result", "", []string{"apply", "-r", check, doc}, "true\n"},
		{"apply result false", "", []string{"apply", "-r", miss, doc}, "false\n"},
		{"apply exit true", "", []string{"apply", "-x", check, doc}, `{"a":[1,2],"b":"y"}` + "\n"},
		{"get", "", []string{"get", "/a/*", doc}, "1\n2\n"},
		{"get member", "", []string{"get", "/b", doc}, `"x"` + "\n"},
		{"get no match", "", []string{"get", "/a/*/c", doc}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("Run(%q) =\n%q\nwant\n%q", tt.args, got, tt.want)
			}
		})
	}
}

func TestMainCommand_ExitOnFalse(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.json", `{"a": [1, 2], "b": "x"}`)
	miss := writeFile(t, dir, "miss.json", `[
		{"op": "remove", "path": "/b"},
		{"op": "test", "path": "/a/*", "value": 7}
	]`)

	got, err := run(t, "", "apply", "-x", miss, doc)
	var code cli.ExitCodeErr
	if !errors.As(err, &code) || code != 1 {
		t.Fatalf("Run() error = %v, want exit 1", err)
	}
	if want := `{"a":[1,2]}` + "\n"; got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestMainCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.json", `{"a": [1]}`)
	broken := writeFile(t, dir, "broken.json", `[{"op": "add" "path": "/b", "value": 1}]`)
	bad := writeFile(t, dir, "bad.json", `[{"op": "add", "path": "/a/5", "value": 1}]`)

	if _, err := run(t, "", "apply", broken, doc); err == nil || !strings.Contains(err.Error(), "error decoding patch") {
		t.Errorf("broken patch error = %v", err)
	}
	if _, err := run(t, "", "apply", bad, doc); err == nil || !strings.Contains(err.Error(), "error applying") {
		t.Errorf("bad index error = %v", err)
	}
	if _, err := run(t, "", "get", "/a/x", doc); err == nil {
		t.Errorf("get on a missing member succeeded")
	}
}
