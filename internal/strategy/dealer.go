// Package strategy holds the fixed table policies: the dealer's threshold
// rule and the precomputed basic-strategy tables used by the unattended
// player.
package strategy

import "github.com/lox/blackjack/internal/game"

// dealerDrawTo is the value at which the house stands
const dealerDrawTo = 17

// Dealer is the house drawing policy: hit below 17, stand otherwise. When
// HitSoft17 is set the house also hits a soft 17, i.e. a 17 that counts an
// Ace as eleven.
type Dealer struct {
	HitSoft17 bool
}

// NewDealer creates the house policy
func NewDealer(hitSoft17 bool) *Dealer {
	return &Dealer{HitSoft17: hitSoft17}
}

// ShouldHit implements game.DealerPolicy
func (d *Dealer) ShouldHit(hand *game.DealerHand) bool {
	value := hand.Value()
	if value < dealerDrawTo {
		return true
	}
	return d.HitSoft17 && value == dealerDrawTo && hand.IsSoft()
}
