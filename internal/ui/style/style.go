// Package style holds the colors and glyphs shared by the progress display,
// the log handler and the lock report.
package style

import "github.com/charmbracelet/lipgloss"

// Colors by role.
var (
	// Accent marks upgraded pins.
	Accent = lipgloss.Color("#8B5CF6")
	// Muted is used for secondary text such as unchanged pins and details.
	Muted = lipgloss.Color("#667085")
	// Success marks resolved flavors and added pins.
	Success = lipgloss.Color("#22A06B")
	// Failure marks failed flavors, errors and removed pins.
	Failure = lipgloss.Color("#D93025")
	// Pending marks running work, warnings and downgraded pins.
	Pending = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"

	// Added, Removed, Upgraded and Downgraded prefix lock report lines.
	Added      = "+"
	Removed    = "-"
	Upgraded   = "↑"
	Downgraded = "↓"
)
