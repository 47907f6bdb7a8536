package cmd

// Config carries the boundary settings for the interactive registry.
type Config struct {
	// ColorEnabled toggles lipgloss styling; disable for piped output.
	ColorEnabled bool
	// Prompt is printed before each menu choice line.
	Prompt string
}
