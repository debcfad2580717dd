package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() on a specific problem.
var (
	// ErrNoInput is returned when no input table path is given.
	ErrNoInput = errors.New("no input specified: use --input")

	// ErrNoOutput is returned when no report path is given.
	ErrNoOutput = errors.New("no output specified: use --output")

	// ErrInvalidTopN is returned when the number of categories per column
	// is not positive.
	ErrInvalidTopN = errors.New("invalid top-n: must be positive")

	// ErrInvalidCrossTabCols is returned when the cross tabulation column
	// limit is not positive.
	ErrInvalidCrossTabCols = errors.New("invalid crosstab column limit: must be positive")

	// ErrInvalidMissingTopN is returned when the missingness list limit is
	// not positive.
	ErrInvalidMissingTopN = errors.New("invalid missingness limit: must be positive")

	// ErrInvalidFormat is returned for an unknown report format.
	ErrInvalidFormat = errors.New("invalid format: must be markdown or json")

	// ErrInvalidLogFormat is returned for an unknown log format.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
