package version

import (
	"runtime"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Field is a single item of build metadata
type Field struct {
	Key   string `json:"name" writer:",width:12"`
	Value string `json:"value" writer:",width:60"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time with -ldflags "-X github.com/mutablelogic/go-scribe/pkg/version.GitTag=..."
var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Metadata returns the build metadata which was set, followed by the
// runtime version and platform
func Metadata() []Field {
	var result []Field
	for _, field := range []Field{
		{"source", GitSource},
		{"branch", GitBranch},
		{"tag", GitTag},
		{"hash", GitHash},
		{"build time", GoBuildTime},
	} {
		if field.Value != "" {
			result = append(result, field)
		}
	}
	return append(result,
		Field{"go version", runtime.Version()},
		Field{"os", runtime.GOOS + "/" + runtime.GOARCH},
	)
}
