package systems

import (
	"errors"
	"fmt"

	"fiftytwo-server/internal/domain"
)

// SanityTier - полоса рассудка, влияет на подачу текста и лимиты ставок
type SanityTier uint8

const (
	SanityLucid SanityTier = iota
	SanityUneasy
	SanityFrayed
	SanityMadness
)

var sanityTierNames = map[SanityTier]string{
	SanityLucid:   "LUCID",
	SanityUneasy:  "UNEASY",
	SanityFrayed:  "FRAYED",
	SanityMadness: "MADNESS",
}

func (t SanityTier) String() string {
	if name, ok := sanityTierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SanityTier(%d)", uint8(t))
}

// TierOf возвращает полосу рассудка по значению
func TierOf(sanity int) SanityTier {
	switch {
	case sanity >= 75:
		return SanityLucid
	case sanity >= 50:
		return SanityUneasy
	case sanity >= 25:
		return SanityFrayed
	}
	return SanityMadness
}

var (
	ErrBetTooSmall = errors.New("bet below the table minimum")
	ErrBetTooLarge = errors.New("bet exceeds chip pool")
)

// BetLimits возвращает действующие границы ставки.
// GREED удваивает минимальную ставку.
func BetLimits(p *domain.Player) (min, max int) {
	min = domain.MinBet
	if p.Statuses.Has(domain.StatusGreed) {
		min *= 2
	}
	max = p.Chips
	return min, max
}

// ValidateBet проверяет ставку против лимитов стола
func ValidateBet(p *domain.Player, bet int) error {
	min, max := BetLimits(p)
	if bet < min {
		return ErrBetTooSmall
	}
	if bet > max {
		return ErrBetTooLarge
	}
	return nil
}
