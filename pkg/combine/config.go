// File: pkg/combine/config.go
package combine

import (
	"strings"
	"time"
)

// Defaults and fixed markers recognised by the combiner.
const (
	DefaultExtension     = ".cs"             // Source file extension to collect.
	DefaultExcludeMarker = "AssemblyInfo.cs" // Files whose name contains this are skipped.

	ImportKeyword       = "using "     // Prefix of an import declaration.
	StatementTerminator = ";"          // Suffix of an import declaration.
	AttributePrefix     = "[assembly:" // Prefix of a module-level attribute line.

	GeneratorName = "SourceCombiner.exe"
)

// Options holds the configuration for one combine run.
type Options struct {
	SourceDir      string           // Root of the source tree to scan.
	Output         string           // Destination path for the combined file.
	OpenAfterWrite bool             // Open the output with the host's default handler once written.
	Extension      string           // File extension filter, including the dot.
	ExcludeMarker  string           // Substring of a file name that excludes it.
	Opener         Opener           // Used when OpenAfterWrite is set.
	Now            func() time.Time // Clock used for the header timestamp.
}

// withDefaults returns a copy of o with unset fields filled in.
func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.ExcludeMarker == "" {
		o.ExcludeMarker = DefaultExcludeMarker
	}
	if o.Opener == nil {
		o.Opener = SystemOpener{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ParseOpenFlag interprets the optional open-after-write argument.
// Only "true" (any case, surrounding whitespace ignored) enables it;
// every other value, parseable or not, means false.
func ParseOpenFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
