package combine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildOutput(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, time.March, 4, 15, 7, 9, 0, time.Local)
	bodies := [][]string{
		{"//*** SourceCombiner -> original file A.cs ***", "class A {}"},
		{"//*** SourceCombiner -> original file B.cs ***", "class B {}", "  // tail"},
	}

	out := BuildOutput(2, created, []string{"System", "System.Text"}, bodies)

	want := strings.Join([]string{
		"// * File generated by SourceCombiner.exe using 2 source files.",
		"// * Created On: 3/4/2026 3:07:09 PM",
		"using System;",
		"using System.Text;",
		"//*** SourceCombiner -> original file A.cs ***",
		"class A {}",
		"//*** SourceCombiner -> original file B.cs ***",
		"class B {}",
		"  // tail",
	}, lineEnding) + lineEnding
	assert.Equal(t, want, out)
}

func TestBuildOutputNoFiles(t *testing.T) {
	t.Parallel()

	out := BuildOutput(0, time.Date(2026, time.October, 14, 9, 0, 0, 0, time.Local), nil, nil)
	assert.Equal(t,
		"// * File generated by SourceCombiner.exe using 0 source files."+lineEnding+
			"// * Created On: 10/14/2026 9:00:00 AM"+lineEnding,
		out)
}

func TestPlatformLineEnding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\r\n", platformLineEnding("windows"))
	assert.Equal(t, "\n", platformLineEnding("linux"))
	assert.Equal(t, "\n", platformLineEnding("darwin"))
}
