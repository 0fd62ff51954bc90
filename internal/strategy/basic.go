package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Basic is the table-driven optimal player policy. Three lookup tables are
// precomputed once at construction: pair splitting, soft totals, and hard
// totals, each keyed by the player's total (or pair value) and the dealer's
// upcard value (2-11).
type Basic struct {
	// split[pairValue][upcard] - pair values 2-11, Ace pair keyed as 11
	split [12][12]bool
	// hard[total][upcard] - totals 2-21
	hard [22][12]game.Action
	// soft[total][upcard] - totals 12-21 with an Ace counting eleven
	soft [22][12]game.Action
}

// NewBasic precomputes the basic-strategy tables
func NewBasic() *Basic {
	b := &Basic{}
	b.populateSplitTable()
	b.populateHardTable()
	b.populateSoftTable()
	return b
}

// Decide returns the optimal action for a hand against the dealer's upcard.
// Eligible pairs consult the split table first; a no-split verdict falls
// through to the soft or hard total tables. Lookups never mutate the hand.
func (b *Basic) Decide(hand *game.PlayerHand, upcard deck.Card) game.Action {
	// a freshly split hand is still waiting on its second card
	if len(hand.Cards()) < 2 {
		return game.Hit
	}

	up := upcard.Value()

	if hand.HasSplitOption() && b.split[hand.Cards()[0].Value()][up] {
		return game.Split
	}

	value := hand.Value()
	if value >= game.Blackjack {
		return game.Stand
	}

	var action game.Action
	if hand.IsSoft() {
		action = b.soft[value][up]
	} else {
		action = b.hard[value][up]
	}

	// doubling is only open on an unhit two-card hand; otherwise take the
	// fallback the chart implies
	if action == game.Double && (hand.WasHit() || len(hand.Cards()) != 2) {
		if hand.IsSoft() && value >= 18 {
			return game.Stand
		}
		return game.Hit
	}

	return action
}

// populateSplitTable encodes standard pair strategy: always split Aces and
// 8s, never 4s, 5s or 10s, and split the remaining pairs below a dealer
// upcard threshold.
func (b *Basic) populateSplitTable() {
	for up := 2; up <= 11; up++ {
		b.split[11][up] = true // A,A
		b.split[8][up] = true  // 8,8
		b.split[2][up] = up <= 7
		b.split[3][up] = up <= 7
		b.split[6][up] = up <= 6
		b.split[7][up] = up <= 7
		b.split[9][up] = up <= 9 && up != 7 // 9,9 stands against a 7
	}
}

// populateHardTable encodes standard hard-total strategy
func (b *Basic) populateHardTable() {
	for total := 2; total <= 21; total++ {
		for up := 2; up <= 11; up++ {
			switch {
			case total < 9:
				b.hard[total][up] = game.Hit
			case total == 9:
				if up >= 3 && up <= 6 {
					b.hard[total][up] = game.Double
				} else {
					b.hard[total][up] = game.Hit
				}
			case total == 10:
				if up <= 9 {
					b.hard[total][up] = game.Double
				} else {
					b.hard[total][up] = game.Hit
				}
			case total == 11:
				b.hard[total][up] = game.Double
			case total == 12:
				if up >= 4 && up <= 6 {
					b.hard[total][up] = game.Stand
				} else {
					b.hard[total][up] = game.Hit
				}
			case total < 17:
				if up <= 6 {
					b.hard[total][up] = game.Stand
				} else {
					b.hard[total][up] = game.Hit
				}
			default:
				b.hard[total][up] = game.Stand
			}
		}
	}
}

// populateSoftTable encodes standard soft-total strategy
func (b *Basic) populateSoftTable() {
	for total := 12; total <= 21; total++ {
		for up := 2; up <= 11; up++ {
			switch {
			case total <= 14:
				if up == 5 || up == 6 {
					b.soft[total][up] = game.Double
				} else {
					b.soft[total][up] = game.Hit
				}
			case total <= 16:
				if up >= 4 && up <= 6 {
					b.soft[total][up] = game.Double
				} else {
					b.soft[total][up] = game.Hit
				}
			case total == 17:
				if up >= 3 && up <= 6 {
					b.soft[total][up] = game.Double
				} else {
					b.soft[total][up] = game.Hit
				}
			case total == 18:
				switch {
				case up <= 6:
					b.soft[total][up] = game.Double
				case up <= 8:
					b.soft[total][up] = game.Stand
				default:
					b.soft[total][up] = game.Hit
				}
			default:
				b.soft[total][up] = game.Stand
			}
		}
	}
}
