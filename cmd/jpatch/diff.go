package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/brunoga/jpatch/codec"
)

type diffColors struct {
	insert, delete, equal func(format string, a ...any) string
}

func newDiffColors() *diffColors {
	insert := color.RGB(8, 196, 16)
	insert.EnableColor()
	del := color.RGB(196, 64, 64)
	del.EnableColor()
	equal := color.RGB(128, 128, 128)
	equal.EnableColor()
	return &diffColors{
		insert: insert.SprintfFunc(),
		delete: del.SprintfFunc(),
		equal:  equal.SprintfFunc(),
	}
}

// diffText renders v one element per line so that line diffs are readable.
func diffText(v any, indent string) ([]byte, error) {
	if indent == "" {
		indent = "  "
	}
	data, err := codec.EncodeBytes(v, codec.Indent("", indent))
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

// formatDiff returns a line diff of before and after. Lines are prefixed with
// "+ " when inserted, "- " when deleted and two spaces otherwise. A nil
// colors leaves the output plain.
func formatDiff(before, after string, colors *diffColors) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors != nil {
				paint = colors.insert
			}
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors != nil {
				paint = colors.delete
			}
		default:
			if colors != nil {
				paint = colors.equal
			}
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(paint("%s%s", prefix, line))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writeDiff(w io.Writer, before, after string, colors *diffColors) error {
	_, err := io.WriteString(w, formatDiff(before, after, colors))
	return err
}
