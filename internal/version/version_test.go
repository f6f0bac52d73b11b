package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v0.3.0", CommitHash: "5d4384ee4fb2", BuildTime: "2026-10-01T12:00:00Z"}
	assert.Equal(t, "r2gen v0.3.0 (commit 5d4384e, built 2026-10-01T12:00:00Z)", info.String())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}
