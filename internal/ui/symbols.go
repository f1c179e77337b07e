package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Step completed successfully
	SymbolFail    = "✗" // Step failed
	SymbolWarn    = "!" // Step passed with a warning
	SymbolPending = "○" // Step not yet started
	SymbolInfo    = "→" // Informational note
)
