package optimo

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v1"

	// DefaultTimeout is the HTTP timeout of the default client.
	DefaultTimeout = 10 * time.Second
)

var versionPattern = regexp.MustCompile(`^v[0-9]+$`)

// Config holds the construction parameters of a Client. BaseURL and
// AccessKey are required; everything else has a usable default.
type Config struct {
	// BaseURL is the vendor's API base URL, e.g. "https://api.optimoroute.com".
	BaseURL string

	// AccessKey is the account access key issued by the vendor. It is
	// attached to every request as a query parameter.
	AccessKey string

	// Version is the API version segment ("v1", "v2", ...).
	// Defaults to DefaultVersion.
	Version string

	// HTTPClient executes the HTTP requests. If nil, a plain
	// http.Client with DefaultTimeout is used. This is the seam for
	// substituting the transport (instrumented clients, breaker.Doer,
	// test stubs).
	HTTPClient HTTPDoer

	// Timeout applies to the default HTTP client only.
	Timeout time.Duration

	// Logger for request/response debug events. Defaults to a no-op.
	Logger zerolog.Logger
}

// validate applies defaults and fails fast on bad parameters, before any
// network call can be attempted.
func (c *Config) validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Param: "BaseURL", Message: "must be a url string"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return &ConfigError{Param: "BaseURL", Message: "must be a valid url: " + err.Error()}
	}
	if u.Scheme == "" {
		return &ConfigError{Param: "BaseURL", Message: "does not define a protocol scheme"}
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if !versionPattern.MatchString(c.Version) {
		return &ConfigError{Param: "Version", Message: "must be an API version token ('v1', 'v2', ...)"}
	}

	if c.AccessKey == "" {
		return &ConfigError{Param: "AccessKey", Message: "must be the access key provided by optimoroute"}
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
