// Package constants provides shared constants for the lcoe-forecast application.
package constants

// Projection limits
const (
	// MaxLifetimeYears bounds the projection loop so a request always
	// completes in bounded time.
	MaxLifetimeYears = 200

	// DefaultLifetimeYears is used when neither common nor scenario
	// parameters set a lifetime.
	DefaultLifetimeYears = 25
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Environment overrides for the server
const (
	EnvServerAddress = "LCOE_SERVER_ADDRESS"
	EnvMaxUploadSize = "LCOE_MAX_UPLOAD_SIZE"
	EnvLogLevel      = "LCOE_LOG_LEVEL"
)

// Validation thresholds that produce configuration warnings
const (
	// SuspiciousDegradationPercent is the annual degradation above which a
	// warning is raised; typical panels lose well under 1% a year.
	SuspiciousDegradationPercent = 5.0

	// SuspiciousLifetimeYears is the lifetime above which a warning is raised.
	SuspiciousLifetimeYears = 50

	// SuspiciousDiscountPercent is the discount rate above which a warning is raised.
	SuspiciousDiscountPercent = 20.0
)
