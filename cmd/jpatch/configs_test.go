package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brunoga/jpatch"
	"github.com/brunoga/jpatch/tree"
)

func TestReadArg(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(name, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readArg(nil, name)
	if err != nil || string(got) != `{"a":1}` {
		t.Errorf("readArg(file) = %q, %v", got, err)
	}
	got, err = readArg(strings.NewReader("[]"), "-")
	if err != nil || string(got) != "[]" {
		t.Errorf("readArg(-) = %q, %v", got, err)
	}
	if _, err := readArg(nil, filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readArg(missing) error = %v", err)
	}
}

func TestMainConfig_Decode(t *testing.T) {
	yamlCfg := &MainConfig{Y: true}
	v, err := yamlCfg.decode([]byte("a: [1, x]\n"))
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	want := tree.NewObject(0).Set("a", tree.NewArray(1, "x"))
	if !tree.Equal(v, want) {
		t.Errorf("decode() = %v", tree.ToGo(v))
	}

	jsonCfg := &MainConfig{}
	if _, err := jsonCfg.decode([]byte("a: 1")); err == nil {
		t.Errorf("decode() accepted yaml in json mode")
	}
}

func TestMainConfig_DecodePatch(t *testing.T) {
	cfg := &MainConfig{Y: true}
	p, err := cfg.decodePatch([]byte(`
- op: add
  path: /a
  value: {b: 1}
- op: test
  path: /list/*/k
  value: x
`))
	if err != nil {
		t.Fatalf("decodePatch() error = %v", err)
	}
	if len(p) != 2 || p[0].Op != jpatch.OperationTypeAdd || p[1].Path != "/list/*/k" {
		t.Errorf("decodePatch() = %v", p)
	}

	if _, err := cfg.decodePatch([]byte("- op: add\n")); err == nil {
		t.Errorf("decodePatch() accepted an operation without a path")
	}
}

func TestMainConfig_Options(t *testing.T) {
	root := tree.NewObject(0).Set("a/b", 1)
	var doc any = root

	ok, err := jpatch.New().Test("/a~1b", 1).Apply(&doc, (&MainConfig{Escape: true}).options()...)
	if err != nil || !ok {
		t.Errorf("Apply() with escaping = %v, %v", ok, err)
	}
	if _, err := jpatch.New().Test("/a~1b", 1).Apply(&doc, (&MainConfig{}).options()...); !errors.Is(err, jpatch.ErrNotFound) {
		t.Errorf("Apply() without escaping error = %v", err)
	}
}

func TestMainConfig_Colorize(t *testing.T) {
	var buf bytes.Buffer
	if (&MainConfig{}).colorize(&buf) {
		t.Errorf("colorize(buffer) = true")
	}
	if !(&MainConfig{Color: true}).colorize(&buf) {
		t.Errorf("colorize(buffer) with -color = false")
	}
}
