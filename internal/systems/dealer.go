package systems

import "fiftytwo-server/internal/domain"

// DealerStandThreshold - сумма, с которой дилер останавливается
const DealerStandThreshold = 17

// DealerShouldHit - политика дилера: добирает до 16 включительно,
// останавливается на 17 и выше, но мягкие 17 добирает.
func DealerShouldHit(hand *domain.Hand) bool {
	total := hand.Total()
	if total < DealerStandThreshold {
		return true
	}
	if total == DealerStandThreshold && hand.IsSoft() {
		return true
	}
	return false
}
