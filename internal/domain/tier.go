package domain

// QualityTier is a display bucket derived from a quality value
type QualityTier int

const (
	TierLow QualityTier = iota
	TierMedium
	TierHigh
)

// Tier thresholds; a value equal to a threshold belongs to the higher tier
const (
	HighTierThreshold   = 0.8
	MediumTierThreshold = 0.5
)

// TierOf buckets a quality value
func TierOf(q float64) QualityTier {
	switch {
	case q >= HighTierThreshold:
		return TierHigh
	case q >= MediumTierThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// LabelFor returns the message key for a tier's label
func LabelFor(t QualityTier) string {
	switch t {
	case TierHigh:
		return MsgQualityHigh
	case TierMedium:
		return MsgQualityMed
	default:
		return MsgQualityLow
	}
}

// String returns a stable name for logging
func (t QualityTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}
