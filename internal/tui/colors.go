package tui

// Color constants for the studydeck TUI theme
const (
	// Base Colors
	ColorBorder = "#344256" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, the clock)
	ColorSecondaryText = "#AEB8C9" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Blue theme, matching the web client)
	ColorAccentMain   = "#2563EB" // Accent elements, active borders
	ColorAccentBright = "#60A5FA" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Saved sessions
	ColorWarning = "#F59E0B" // Paused state, discarded time
)
