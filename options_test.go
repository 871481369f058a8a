package jpatch

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/brunoga/jpatch/tree"
)

func TestWithPointerEscaping(t *testing.T) {
	root := doc(map[string]any{"a/b": 1, "m~n": 2, "a~1b": 3})

	ok, err := New().Test("/a~1b", 1).Apply(&root, WithPointerEscaping())
	if err != nil || !ok {
		t.Errorf("escaped slash = %v, %v", ok, err)
	}
	ok, err = New().Test("/m~0n", 2).Apply(&root, WithPointerEscaping())
	if err != nil || !ok {
		t.Errorf("escaped tilde = %v, %v", ok, err)
	}

	// Verbatim by default.
	ok, err = New().Test("/a~1b", 3).Apply(&root)
	if err != nil || !ok {
		t.Errorf("verbatim = %v, %v", ok, err)
	}

	_, err = Apply(&root, Operation{Op: OperationTypeTest, Path: "/a~2b", Value: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("verbatim invalid escape error = %v", err)
	}
	_, err = Patch{{Op: OperationTypeTest, Path: "/a~2b", Value: 1}}.Apply(&root, WithPointerEscaping())
	if !errors.Is(err, ErrMalformedPath) {
		t.Errorf("invalid escape error = %v", err)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := doc(map[string]any{"a": 1})
	_, err := New().Add("/b", 2).Remove("/missing").Apply(&root, WithLogger(logger))
	if err == nil {
		t.Fatalf("Apply() succeeded")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{`msg="operation applied"`, "index=0", "op=add", "path=/b", "outcome=true"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q does not contain %q", lines[0], want)
		}
	}
	for _, want := range []string{`msg="operation failed"`, "index=1", "op=remove", "path=/missing", "error="} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("line %q does not contain %q", lines[1], want)
		}
	}
}

func TestWithLogger_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	root := doc(map[string]any{})
	if _, err := New().Add("/a", 1).Apply(&root, WithLogger(logger)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
	if !tree.Equal(root, doc(map[string]any{"a": 1})) {
		t.Errorf("root = %v", tree.ToGo(root))
	}
}
