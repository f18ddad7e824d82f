// Package analysis annotates decoded instructions with the data they
// reference in an ELF image.
package analysis

// Constants for string recovery
const (
	// MaxStringLength is the maximum length for string extraction
	MaxStringLength = 256

	// MinStringLength is the shortest string reported
	MinStringLength = 4
)
