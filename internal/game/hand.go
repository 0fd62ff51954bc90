package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack is the target hand value
const Blackjack = 21

// ComputeValue returns the best blackjack value for a set of cards.
// Non-Ace cards count their face value. Each Ace counts one or eleven,
// whichever assignment produces the highest total not exceeding 21. If every
// assignment busts, the result is the all-Aces-low total. The result is
// independent of card order and of how many Aces are present.
func ComputeValue(cards []deck.Card) int {
	sum, aces := 0, 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
		} else {
			sum += c.Value()
		}
	}
	if aces == 0 {
		return sum
	}

	// Start with every Ace low. At most one Ace can ever be promoted to
	// eleven without busting, since two high Aces already total 22.
	value := sum + aces
	if value+10 <= Blackjack {
		value += 10
	}
	return value
}

// Hand is an ordered sequence of cards with a derived blackjack value
type Hand struct {
	cards []deck.Card
	hit   bool
}

// Receive appends a card to the hand
func (h *Hand) Receive(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in the hand, in deal order
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Value returns the hand's Ace-optimal blackjack value
func (h *Hand) Value() int {
	return ComputeValue(h.cards)
}

// IsBust returns true if the hand value exceeds 21
func (h *Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsBlackjack returns true if the hand value is exactly 21
func (h *Hand) IsBlackjack() bool {
	return h.Value() == Blackjack
}

// HasAce returns true if the hand contains at least one Ace
func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// IsSoft returns true if an Ace is currently counting as eleven
func (h *Hand) IsSoft() bool {
	sum, aces := 0, 0
	for _, c := range h.cards {
		if c.IsAce() {
			aces++
		} else {
			sum += c.Value()
		}
	}
	return aces > 0 && sum+aces+10 <= Blackjack
}

// WasHit returns true if the hand has received a card beyond its opening deal
func (h *Hand) WasHit() bool {
	return h.hit
}

func (h *Hand) markHit() {
	h.hit = true
}

// String renders the hand's cards separated by spaces
func (h *Hand) String() string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// DealerHand is the house's hand. Only its first card is revealed before
// player actions.
type DealerHand struct {
	Hand
}

// Upcard returns the dealer's first dealt card.
// The second return value is false before the opening deal.
func (d *DealerHand) Upcard() (deck.Card, bool) {
	if len(d.cards) == 0 {
		return deck.Card{}, false
	}
	return d.cards[0], true
}

// BetEntry associates an owning player with a bet on a hand. The same player
// may appear more than once, e.g. a standard bet and a later insurance bet.
type BetEntry struct {
	Player *Player
	Bet    *Bet
}

// PlayerHand is a hand at a player position. Multiple players may hold bets
// on it through back-betting, but exactly one acting player has decision
// authority.
type PlayerHand struct {
	Hand
	position *Position
	bets     []BetEntry
	acting   *Player
}

// NewPlayerHand creates an empty hand attached to a position
func NewPlayerHand(position *Position) *PlayerHand {
	return &PlayerHand{position: position}
}

// Position returns the position the hand belongs to
func (h *PlayerHand) Position() *Position {
	return h.position
}

// Bets returns the ordered (player, bet) entries booked on the hand
func (h *PlayerHand) Bets() []BetEntry {
	return h.bets
}

// HasBet returns true if at least one bet is booked on the hand
func (h *PlayerHand) HasBet() bool {
	return len(h.bets) > 0
}

// ActingPlayer returns the player with decision authority over the hand
func (h *PlayerHand) ActingPlayer() *Player {
	return h.acting
}

// HasSplitOption returns true while the hand holds exactly its two opening
// cards and both share the same counting value
func (h *PlayerHand) HasSplitOption() bool {
	return !h.hit && len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

// HasInsuranceOption returns true if the dealer's upcard is an Ace
func (h *PlayerHand) HasInsuranceOption(dealer *DealerHand) bool {
	up, ok := dealer.Upcard()
	return ok && up.IsAce()
}

func (h *PlayerHand) addBet(player *Player, bet *Bet) {
	h.bets = append(h.bets, BetEntry{Player: player, Bet: bet})
}

func (h *PlayerHand) setActingPlayer(p *Player) {
	h.acting = p
}

// standardBetFor returns the first non-insurance bet the player holds on the
// hand, or nil
func (h *PlayerHand) standardBetFor(player *Player) *Bet {
	for _, entry := range h.bets {
		if entry.Player == player && entry.Bet.Kind != InsuranceBet {
			return entry.Bet
		}
	}
	return nil
}

// hasInsuranceBetFor returns true if the player already bought insurance on
// the hand
func (h *PlayerHand) hasInsuranceBetFor(player *Player) bool {
	for _, entry := range h.bets {
		if entry.Player == player && entry.Bet.Kind == InsuranceBet {
			return true
		}
	}
	return false
}

// hasDoubledFor returns true if the player already doubled down on the hand
func (h *PlayerHand) hasDoubledFor(player *Player) bool {
	for _, entry := range h.bets {
		if entry.Player == player && entry.Bet.Kind == DoubleBet {
			return true
		}
	}
	return false
}
