package responsive

import "fmt"

// Format is the markup shape a responsive image renders as.
type Format string

const (
	// FormatImg renders a single img tag with srcset and sizes.
	FormatImg Format = "img"
	// FormatPicture renders a picture tag with one source per definition.
	FormatPicture Format = "picture"
)

// ParseFormat validates a configured format value. Matching is exact.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatImg, FormatPicture:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: invalid format %q, expected %q or %q", ErrInvalidConfig, s, FormatImg, FormatPicture)
	}
}

// Arguments is an ordered argument list passed to a resample method,
// typically dimensions such as [800, 600].
type Arguments []interface{}

// Defaults are the process-wide fallbacks used when neither the caller nor a
// set's configuration supplies a value.
type Defaults struct {
	// Dimensions are the default image arguments.
	Dimensions Arguments
	// Format is used by flat definitions that do not name a format.
	Format Format
	// Method is the resample method used when none is configured.
	Method string
	// CSSClasses are added to every image whose set names none.
	CSSClasses string
}

// DefaultDefaults returns the built-in fallbacks.
func DefaultDefaults() Defaults {
	return Defaults{
		Dimensions: Arguments{800, 600},
		Format:     FormatPicture,
		Method:     "ScaleWidth",
		CSSClasses: "",
	}
}

// Validate checks the defaults are usable for resolution.
func (d Defaults) Validate() error {
	if _, err := ParseFormat(string(d.Format)); err != nil {
		return fmt.Errorf("default format: %w", err)
	}
	if d.Method == "" {
		return fmt.Errorf("%w: default method must not be empty", ErrInvalidConfig)
	}
	if len(d.Dimensions) == 0 {
		return fmt.Errorf("%w: default image dimensions must not be empty", ErrInvalidConfig)
	}
	return nil
}
