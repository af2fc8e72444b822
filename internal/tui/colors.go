package tui

// Color constants for the nudge dashboard theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7" // Subtle purple-tinted grey
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240" // Dark grey for the help bar

	// Accent colors
	ColorAccentMain   = "#7C3AED" // Headers, active borders
	ColorAccentBright = "#A78BFA" // Highlights, the running clock

	// State colors
	ColorDue        = "#F59E0B" // Hours still due
	ColorOverworked = "#22C55E" // Commitment met and exceeded
	ColorError      = "#EF4444"
)
