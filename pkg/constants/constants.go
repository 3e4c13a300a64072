// Package constants provides shared constants for the production-optimizer application.
package constants

import "time"

// Numeric constants
const (
	// Epsilon is the slack allowed when comparing resource usage against limits
	// and when deduplicating corner points.
	Epsilon = 1e-9

	// FloorSlack is added before flooring a vertex coordinate so that values such
	// as 19.999999999 land on 20.
	FloorSlack = 1e-7

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// BoundaryPadding stretches the sampled boundary past the largest x-intercept.
	BoundaryPadding = 1.1

	// DefaultBoundarySamples is the number of points sampled per boundary line.
	DefaultBoundarySamples = 400
)

// Policy constants
const (
	// PolicyGrid is the exhaustive integer search policy.
	PolicyGrid = "grid"

	// PolicyCorner is the corner-point evaluation policy.
	PolicyCorner = "corner"

	// CornerProfitVertex reports the real-valued profit at the best vertex.
	CornerProfitVertex = "vertex"

	// CornerProfitFloored reports the profit of the floored vertex.
	CornerProfitFloored = "floored"

	// DefaultMaxGridCells caps the number of grid points examined.
	DefaultMaxGridCells = 1_000_000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"

	// DefaultCurrencySymbol prefixes profit values in output.
	DefaultCurrencySymbol = "Rp"

	// DefaultMaxRows limits candidate rows in pretty output.
	DefaultMaxRows = 10
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. PRODUCTION_LIMITS_TOTALHOURS.
	EnvPrefix = "PRODUCTION"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultCacheTTL is how long optimization results stay cached.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultRateLimit is the sustained request rate per second (0 disables limiting).
	DefaultRateLimit = 20.0

	// DefaultRateBurst is the limiter burst size.
	DefaultRateBurst = 40

	// DefaultResponseCandidates caps candidates returned by the API.
	DefaultResponseCandidates = 500
)
