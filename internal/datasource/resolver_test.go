package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeMock, ParseMode("mock"))
	assert.Equal(t, ModeSupabase, ParseMode("supabase"))
	assert.Equal(t, ModeAuto, ParseMode("auto"))
	assert.Equal(t, ModeMock, ParseMode("  MOCK "))
	assert.Equal(t, ModeAuto, ParseMode(""))
	assert.Equal(t, ModeAuto, ParseMode("postgres"))
}

func TestResolver_MockMode(t *testing.T) {
	// Mock mode wins even with credentials present
	r := NewResolver(ModeMock, true)
	assert.True(t, r.UseMock())
	assert.False(t, r.AllowFallback())
}

func TestResolver_SupabaseMode(t *testing.T) {
	r := NewResolver(ModeSupabase, true)
	assert.False(t, r.UseMock())
	assert.False(t, r.AllowFallback())

	// Missing credentials never silently downgrade to mock
	unconfigured := NewResolver(ModeSupabase, false)
	assert.False(t, unconfigured.UseMock())
	assert.False(t, unconfigured.RemoteConfigured())
}

func TestResolver_AutoMode(t *testing.T) {
	configured := NewResolver(ModeAuto, true)
	assert.False(t, configured.UseMock())
	assert.True(t, configured.AllowFallback())

	unconfigured := NewResolver(ModeAuto, false)
	assert.True(t, unconfigured.UseMock())
}
