package domain

import "strings"

// Tier is a throttling tier understood by the API manager.
type Tier string

const (
	TierBronze    Tier = "Bronze"
	TierGold      Tier = "Gold"
	TierUnlimited Tier = "Unlimited"
	TierSilver    Tier = "Silver"
)

// Tiers lists the accepted tiers in the order they are reported to users.
var Tiers = []Tier{TierBronze, TierGold, TierUnlimited, TierSilver}

// ParseTier matches s case-insensitively against the known tiers and returns
// the canonical value.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", Errorf(ErrInvalidArgument, "ParseTier",
		"tier value must be one of: [Bronze, Gold, Unlimited, Silver].")
}
