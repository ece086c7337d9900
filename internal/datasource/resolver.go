// Package datasource decides, once per process, whether entity reads are
// served from the in-memory dataset or the remote backend, and whether a
// failed remote read may fall back to the in-memory dataset.
package datasource

import "strings"

// Mode selects the backing data source.
type Mode string

const (
	// ModeMock forces the in-memory dataset
	ModeMock Mode = "mock"

	// ModeSupabase forces the remote backend; remote failures are surfaced,
	// never papered over with mock data
	ModeSupabase Mode = "supabase"

	// ModeAuto prefers the remote backend when it is configured and quietly
	// uses the in-memory dataset otherwise
	ModeAuto Mode = "auto"
)

// ParseMode maps a raw configuration value to a Mode. Unset or unrecognized
// values resolve to ModeAuto.
func ParseMode(raw string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeMock:
		return ModeMock
	case ModeSupabase:
		return ModeSupabase
	default:
		return ModeAuto
	}
}

// Resolver is the immutable outcome of data-source resolution. It is built
// once at startup and injected into every adapter; the mode never changes
// for the lifetime of the process.
type Resolver struct {
	mode       Mode
	configured bool
}

// NewResolver resolves the data source for the process. remoteConfigured
// states whether remote credentials are present.
func NewResolver(mode Mode, remoteConfigured bool) *Resolver {
	return &Resolver{mode: mode, configured: remoteConfigured}
}

// Mode returns the resolved mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// UseMock reports whether reads must be served from the in-memory dataset
// right now. In supabase mode this is false even without credentials: the
// missing configuration must surface as an error, not as mock data.
func (r *Resolver) UseMock() bool {
	if r.mode == ModeMock {
		return true
	}
	return r.mode == ModeAuto && !r.configured
}

// AllowFallback reports whether a failed remote read may be answered from
// the in-memory dataset instead.
func (r *Resolver) AllowFallback() bool {
	return r.mode == ModeAuto
}

// RemoteConfigured reports whether remote credentials are present.
func (r *Resolver) RemoteConfigured() bool {
	return r.configured
}
