package colormap

import (
	"strings"

	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/rs/zerolog"
)

// MalformedPolicy selects what happens when a record has a non-integer channel
type MalformedPolicy string

const (
	// PolicyAbort stops loading at the first malformed record. It is the
	// default and what the zero value means.
	PolicyAbort MalformedPolicy = "abort"
	// PolicySkip drops the malformed record and keeps loading.
	PolicySkip MalformedPolicy = "skip"
)

// String returns the policy name, mapping the zero value to "abort"
func (p MalformedPolicy) String() string {
	if p == "" {
		return string(PolicyAbort)
	}
	return string(p)
}

// ParseMalformedPolicy parses a policy name. An empty string means PolicyAbort.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort", "fail":
		return PolicyAbort, nil
	case "skip", "ignore":
		return PolicySkip, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown malformed-number policy %q (want abort or skip)", s).
			WithDetail("value", s)
	}
}

// Options configures Parse and Load
type Options struct {
	// OnMalformed decides whether a non-integer channel aborts the load
	OnMalformed MalformedPolicy

	// Logger receives per-line diagnostics. nil means no logging.
	Logger *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
