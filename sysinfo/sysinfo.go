package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info holds the detected host facts. Zero fields mean detection
// failed for that item.
type Info struct {
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
	CPUMHz        float64

	TotalRAMBytes     uint64
	AvailableRAMBytes uint64

	OSName    string
	OSVersion string
	OSArch    string

	GoVersion string
}

// Collect detects host facts. Partial failures leave the affected
// fields zero; Collect never returns an error.
func Collect() Info {
	info := Info{
		LogicalCores: runtime.NumCPU(),
		OSName:       runtime.GOOS,
		OSArch:       runtime.GOARCH,
		GoVersion:    runtime.Version(),
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = strings.TrimSpace(cpus[0].ModelName)
		info.CPUMHz = cpus[0].Mhz
	}
	if physical, err := cpu.Counts(false); err == nil && physical > 0 {
		info.PhysicalCores = physical
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalRAMBytes = vm.Total
		info.AvailableRAMBytes = vm.Available
	}
	if h, err := host.Info(); err == nil {
		info.OSName = h.Platform
		info.OSVersion = h.PlatformVersion
	}

	return info
}

// Report renders the full multi-line banner.
func Report(info Info) string {
	var sb strings.Builder

	sb.WriteString("=== System Information ===\n")
	fmt.Fprintf(&sb, "CPU:     %s\n", orUnknown(info.CPUModel))
	fmt.Fprintf(&sb, "Cores:   %d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
	if info.CPUMHz > 0 {
		fmt.Fprintf(&sb, "Clock:   %.0f MHz\n", info.CPUMHz)
	}
	fmt.Fprintf(&sb, "Memory:  %s total, %s available\n",
		FormatBytes(info.TotalRAMBytes), FormatBytes(info.AvailableRAMBytes))
	fmt.Fprintf(&sb, "OS:      %s %s (%s)\n", orUnknown(info.OSName), info.OSVersion, info.OSArch)
	fmt.Fprintf(&sb, "Runtime: %s\n", info.GoVersion)

	return sb.String()
}

// CompactSummary renders a one-line banner for report headers.
func CompactSummary(info Info) string {
	return fmt.Sprintf("%s | %d cores | %s RAM | %s/%s %s",
		orUnknown(info.CPUModel), info.LogicalCores,
		FormatBytes(info.TotalRAMBytes), info.OSName, info.OSArch, info.GoVersion)
}

// FormatBytes renders a byte count with binary units, one decimal.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
