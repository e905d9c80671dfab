package matching

// Tier is the display band a score falls into; the front end maps tiers to
// badge styles.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierWeak      Tier = "weak"
	TierPoor      Tier = "poor"
)

// TierOf classifies a score. Band lower bounds are inclusive.
func TierOf(score int) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierFair
	case score >= 20:
		return TierWeak
	default:
		return TierPoor
	}
}
