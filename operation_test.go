package jpatch

import (
	"errors"
	"strings"
	"testing"
)

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		wantErr error
	}{
		{"add", Operation{Op: OperationTypeAdd, Path: "/a/-"}, nil},
		{"add root", Operation{Op: OperationTypeAdd, Path: ""}, nil},
		{"remove", Operation{Op: OperationTypeRemove, Path: "/a/0"}, nil},
		{"move", Operation{Op: OperationTypeMove, From: "/a", Path: "/b/-"}, nil},
		{"copy", Operation{Op: OperationTypeCopy, From: "/a/0", Path: "/b"}, nil},
		{"test wildcard", Operation{Op: OperationTypeTest, Path: "/a/*/b"}, nil},
		{"unknown", Operation{Op: "frobnicate", Path: "/a"}, ErrUnknownOperation},
		{"empty op", Operation{Path: "/a"}, ErrUnknownOperation},
		{"no slash", Operation{Op: OperationTypeAdd, Path: "a"}, ErrMalformedPath},
		{"remove append", Operation{Op: OperationTypeRemove, Path: "/a/-"}, ErrMalformedPath},
		{"replace append", Operation{Op: OperationTypeReplace, Path: "/-"}, ErrMalformedPath},
		{"append not last", Operation{Op: OperationTypeAdd, Path: "/a/-/b"}, ErrMalformedPath},
		{"add wildcard", Operation{Op: OperationTypeAdd, Path: "/a/*/b"}, ErrMalformedPath},
		{"test wildcard last", Operation{Op: OperationTypeTest, Path: "/a/*"}, ErrMalformedPath},
		{"test append", Operation{Op: OperationTypeTest, Path: "/a/-"}, ErrMalformedPath},
		{"move from append", Operation{Op: OperationTypeMove, From: "/a/-", Path: "/b"}, ErrMalformedPath},
		{"copy from wildcard", Operation{Op: OperationTypeCopy, From: "/a/*/b", Path: "/b"}, ErrMalformedPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Operation{Op: OperationTypeAdd, Path: "/a", Value: 1}, "add /a"},
		{Operation{Op: OperationTypeMove, From: "/a", Path: "/b"}, "move /a -> /b"},
		{Operation{Op: OperationTypeTest, Path: "/a/*/b"}, "test /a/*/b"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOperationType(t *testing.T) {
	for _, typ := range OperationTypes {
		if !typ.Valid() {
			t.Errorf("%s is not valid", typ)
		}
		if typ.HasValue() == typ.HasFrom() && typ != OperationTypeRemove {
			t.Errorf("%s: HasValue() = HasFrom() = %v", typ, typ.HasValue())
		}
	}
	if OperationTypeRemove.HasValue() || OperationTypeRemove.HasFrom() {
		t.Errorf("remove carries a value or a source")
	}
	if OperationType("nope").Valid() {
		t.Errorf("unknown type is valid")
	}
}

func TestPatch_BuilderPanics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
		want  string
	}{
		{"add", func() { New().Add("a", 1) }, "invalid add operation"},
		{"add wildcard", func() { New().Add("/a/*/b", 1) }, "invalid add operation"},
		{"remove append", func() { New().Remove("/a/-") }, "invalid remove operation"},
		{"replace wildcard", func() { New().Replace("/*/a", 1) }, "invalid replace operation"},
		{"move from", func() { New().Move("/a/-", "/b") }, "invalid move operation"},
		{"copy to", func() { New().Copy("/a", "b") }, "invalid copy operation"},
		{"test wildcard last", func() { New().Test("/a/*", 1) }, "invalid test operation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				msg, _ := r.(string)
				if !strings.HasPrefix(msg, tt.want) {
					t.Errorf("panic = %v, want prefix %q", r, tt.want)
				}
			}()
			tt.build()
		})
	}
}

func TestPatch_Validate(t *testing.T) {
	p := Patch{
		{Op: OperationTypeAdd, Path: "/a", Value: 1},
		{Op: OperationTypeTest, Path: "/a/*"},
	}
	err := p.Validate()
	if !errors.Is(err, ErrMalformedPath) {
		t.Fatalf("Validate() error = %v", err)
	}
	if !strings.HasPrefix(err.Error(), "operation 1 (test /a/*)") {
		t.Errorf("Validate() error = %q", err)
	}

	if err := New().Add("/a", 1).Move("/a", "/b").Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
