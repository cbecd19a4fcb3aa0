package combine

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// TimestampLayout formats the "Created On" header line.
const TimestampLayout = "1/2/2006 3:04:05 PM"

// lineEnding is the host's text line terminator.
var lineEnding = platformLineEnding(runtime.GOOS)

func platformLineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// BuildOutput assembles the combined source: the generated-file header, one
// import line per name in the given order, then each rendered body. Every
// line ends with the platform line terminator.
func BuildOutput(fileCount int, created time.Time, imports []string, bodies [][]string) string {
	var sb strings.Builder
	writeLine := func(s string) {
		sb.WriteString(s)
		sb.WriteString(lineEnding)
	}

	writeLine(fmt.Sprintf("// * File generated by %s using %d source files.", GeneratorName, fileCount))
	writeLine("// * Created On: " + created.Local().Format(TimestampLayout))

	for _, name := range imports {
		writeLine(ImportKeyword + name + StatementTerminator)
	}
	for _, body := range bodies {
		for _, line := range body {
			writeLine(line)
		}
	}
	return sb.String()
}
