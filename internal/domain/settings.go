package domain

import (
	"fmt"
	"math"
	"strings"
)

// Quality slider bounds
const (
	MinQuality  = 0.1
	MaxQuality  = 1.0
	QualityStep = 0.05

	stepsPerUnit = 20 // 1 / QualityStep
)

// Format is an output image encoding, identified by its MIME type
type Format string

const (
	FormatJPEG Format = "image/jpeg"
	FormatPNG  Format = "image/png"
	FormatWEBP Format = "image/webp"
)

// Formats returns the selectable formats in display order
func Formats() []Format {
	return []Format{FormatJPEG, FormatPNG, FormatWEBP}
}

// Valid reports whether f is one of the supported formats
func (f Format) Valid() bool {
	switch f {
	case FormatJPEG, FormatPNG, FormatWEBP:
		return true
	}
	return false
}

// Label returns the short button text for the format
func (f Format) Label() string {
	switch f {
	case FormatJPEG:
		return "JPG"
	case FormatPNG:
		return "PNG"
	case FormatWEBP:
		return "WebP"
	default:
		return "?"
	}
}

// DescriptionKey returns the message key describing the format
func (f Format) DescriptionKey() string {
	switch f {
	case FormatWEBP:
		return MsgFormatWebpDesc
	case FormatJPEG:
		return MsgFormatJpegDesc
	default:
		return MsgFormatPngDesc
	}
}

// ParseFormat accepts a short name (jpg, jpeg, png, webp) or a MIME type
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg", "jpeg", string(FormatJPEG):
		return FormatJPEG, nil
	case "png", string(FormatPNG):
		return FormatPNG, nil
	case "webp", string(FormatWEBP):
		return FormatWEBP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// CompressionSettings is the configuration reported to the owning application.
// Values are never mutated in place; every change produces a new value.
type CompressionSettings struct {
	Quality float64 `json:"quality"`
	Format  Format  `json:"format"`
}

// DefaultSettings returns the settings used on first launch
func DefaultSettings() CompressionSettings {
	return CompressionSettings{Quality: 0.8, Format: FormatJPEG}
}

// SetQuality returns a copy of s with the quality clamped into range.
// Out-of-range input is corrected silently.
func SetQuality(s CompressionSettings, value float64) CompressionSettings {
	s.Quality = ClampQuality(value)
	return s
}

// SetFormat returns a copy of s with the given format. Unknown formats are ignored.
func SetFormat(s CompressionSettings, format Format) CompressionSettings {
	if !format.Valid() {
		return s
	}
	s.Format = format
	return s
}

// ClampQuality constrains q to [MinQuality, MaxQuality]. NaN maps to MinQuality.
func ClampQuality(q float64) float64 {
	if math.IsNaN(q) || q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// SnapQuality rounds q to the nearest slider step and clamps it
func SnapQuality(q float64) float64 {
	return ClampQuality(math.Round(q*stepsPerUnit) / stepsPerUnit)
}

// PercentPosition maps quality onto the slider track, 0 at MinQuality and 100 at MaxQuality
func PercentPosition(q float64) float64 {
	if q <= MinQuality || math.IsNaN(q) {
		return 0
	}
	if q >= MaxQuality {
		return 100
	}
	return (q - MinQuality) / (MaxQuality - MinQuality) * 100
}

// QualityFromPercent is the inverse of PercentPosition, snapped to the slider step
func QualityFromPercent(p float64) float64 {
	if p <= 0 || math.IsNaN(p) {
		return MinQuality
	}
	if p >= 100 {
		return MaxQuality
	}
	return SnapQuality(MinQuality + p/100*(MaxQuality-MinQuality))
}

// DisplayPercent returns quality as a whole percentage for badges
func DisplayPercent(q float64) int {
	return int(math.Round(q * 100))
}

// Normalize returns s with quality clamped and an invalid format replaced by the default
func (s CompressionSettings) Normalize() CompressionSettings {
	s.Quality = ClampQuality(s.Quality)
	if !s.Format.Valid() {
		s.Format = DefaultSettings().Format
	}
	return s
}
