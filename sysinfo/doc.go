// Package sysinfo collects host facts (CPU model, core counts, memory,
// OS) for benchmark report banners. Detection is a pure query with no
// process-wide state; failures degrade to partial info, never errors —
// a banner with "unknown" fields beats no report.
package sysinfo
