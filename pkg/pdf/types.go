package pdf

import (
	"fmt"
	"strings"
)

// TextBackend selects the library used for page text
type TextBackend string

const (
	BackendAuto       TextBackend = "auto"
	BackendLedongthuc TextBackend = "ledongthuc"
	BackendDslipak    TextBackend = "dslipak"
	BackendFitz       TextBackend = "fitz"
)

// ParseTextBackend parses a backend name, case-insensitively
func ParseTextBackend(name string) (TextBackend, error) {
	switch b := TextBackend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendLedongthuc, BackendDslipak, BackendFitz:
		return b, nil
	default:
		return "", fmt.Errorf("unknown text backend %q (want auto, ledongthuc, dslipak or fitz)", name)
	}
}

// TextExtractionOption is a function that modifies text extraction behavior
type TextExtractionOption func(*textExtractionConfig)

type textExtractionConfig struct {
	XTolerance float64
	YTolerance float64
}

func defaultTextConfig(opts []TextExtractionOption) *textExtractionConfig {
	config := &textExtractionConfig{
		XTolerance: 3.0,
		YTolerance: 3.0,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithXTolerance sets the horizontal gap above which a space is inserted
func WithXTolerance(tolerance float64) TextExtractionOption {
	return func(c *textExtractionConfig) {
		c.XTolerance = tolerance
	}
}

// WithYTolerance sets the baseline shift above which a new line starts
func WithYTolerance(tolerance float64) TextExtractionOption {
	return func(c *textExtractionConfig) {
		c.YTolerance = tolerance
	}
}
