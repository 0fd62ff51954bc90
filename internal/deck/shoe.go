package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// CardsPerDeck is the number of cards in a single standard deck.
const CardsPerDeck = 52

// Shoe represents one or more standard 52-card decks dealt as a single stack.
// The shoe owns its random source so shuffles are reproducible under a fixed
// seed.
type Shoe struct {
	copies int
	cards  []Card
	rng    *rand.Rand
}

// New creates a shuffled shoe holding the given number of deck copies.
// Returns an error if copies is less than one.
func New(copies int, rng *rand.Rand) (*Shoe, error) {
	if copies < 1 {
		return nil, fmt.Errorf("shoe must use at least one deck, got %d", copies)
	}

	s := &Shoe{
		copies: copies,
		cards:  make([]Card, 0, copies*CardsPerDeck),
		rng:    rng,
	}
	s.populate()
	s.shuffle()

	return s, nil
}

// populate fills the shoe with copies of a standard deck
func (s *Shoe) populate() {
	for i := 0; i < s.copies; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// shuffle performs a Fisher-Yates shuffle over the entire shoe, producing a
// uniform permutation of all cards across deck copies
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Deal removes and returns the top card from the shoe.
// The second return value is false if the shoe is empty.
func (s *Shoe) Deal() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}

// Size returns the number of cards remaining in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Copies returns the number of deck copies the shoe was built from
func (s *Shoe) Copies() int {
	return s.copies
}

// NeedsReshuffle reports whether the remaining cards have fallen below the
// given threshold
func (s *Shoe) NeedsReshuffle(threshold int) bool {
	return len(s.cards) < threshold
}

// Reshuffle discards the remaining cards and rebuilds the shoe as a freshly
// shuffled full stack
func (s *Shoe) Reshuffle() {
	s.cards = s.cards[:0]
	s.populate()
	s.shuffle()
}
