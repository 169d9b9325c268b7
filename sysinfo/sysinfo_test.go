package sysinfo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sudoku/sysinfo"
)

// TestCollect returns at least the runtime-derived facts on any host.
func TestCollect(t *testing.T) {
	info := sysinfo.Collect()

	assert.Greater(t, info.LogicalCores, 0)
	assert.NotEmpty(t, info.OSName)
	assert.NotEmpty(t, info.OSArch)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

// TestFormatBytes pins the binary-unit rendering.
func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", sysinfo.FormatBytes(512))
	assert.Equal(t, "1.0 KiB", sysinfo.FormatBytes(1024))
	assert.Equal(t, "1.5 KiB", sysinfo.FormatBytes(1536))
	assert.Equal(t, "2.0 MiB", sysinfo.FormatBytes(2<<20))
	assert.Equal(t, "3.0 GiB", sysinfo.FormatBytes(3<<30))
}

// TestReport renders every banner section.
func TestReport(t *testing.T) {
	out := sysinfo.Report(sysinfo.Collect())

	assert.Contains(t, out, "=== System Information ===")
	assert.Contains(t, out, "CPU:")
	assert.Contains(t, out, "Cores:")
	assert.Contains(t, out, "Memory:")
	assert.Contains(t, out, "OS:")
	assert.Contains(t, out, "Runtime: go")
}

// TestCompactSummary fits on one line.
func TestCompactSummary(t *testing.T) {
	out := sysinfo.CompactSummary(sysinfo.Collect())
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "cores")
}
