// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the build version of the binary (e.g. v0.1.0, v1.0.0-rc1, etc..).
	Version = "dev"

	// Commit is the git commit SHA that the binary was built from.
	Commit = "none"

	// Date is the date that the binary was built.
	Date = "unknown"

	// ProjectName is the name of the project, used as the metrics namespace.
	ProjectName = "graphkb"
)

// MinimumSupportedDatastoreSchemaRevision is the lowest migration revision the
// SQL datastores can serve from.
const MinimumSupportedDatastoreSchemaRevision int64 = 1
