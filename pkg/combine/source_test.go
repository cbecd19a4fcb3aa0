package combine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"mixed", "a\r\n\rb\nc", []string{"a", "", "b", "c"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitLines(tt.in))
		})
	}
}

func TestReadSourceLinesStripsBOM(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bom.cs")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFusing System;\nclass A {}\n"), 0o644))

	lines, err := readSourceLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"using System;", "class A {}"}, lines)
}

func TestReadSourceLinesRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.cs")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0xff, 0xfe, '\n'}, 0o644))

	_, err := readSourceLines(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestReadSourceLinesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := readSourceLines(filepath.Join(t.TempDir(), "nope.cs"))
	assert.ErrorIs(t, err, ErrNotFound)
}
