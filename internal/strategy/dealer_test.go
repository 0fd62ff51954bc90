package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func dealerHand(ranks ...deck.Rank) *game.DealerHand {
	h := &game.DealerHand{}
	for i, r := range ranks {
		h.Receive(deck.NewCard(deck.Suit(i%4), r))
	}
	return h
}

func TestDealerShouldHit(t *testing.T) {
	tests := []struct {
		name      string
		ranks     []deck.Rank
		hitSoft17 bool
		expected  bool
	}{
		{"sixteen hits", []deck.Rank{deck.Ten, deck.Six}, false, true},
		{"hard seventeen stands", []deck.Rank{deck.Ten, deck.Seven}, false, false},
		{"soft seventeen stands when configured", []deck.Rank{deck.Ace, deck.Six}, false, false},
		{"soft seventeen hits by default", []deck.Rank{deck.Ace, deck.Six}, true, true},
		{"soft eighteen stands either way", []deck.Rank{deck.Ace, deck.Seven}, true, false},
		{"hard seventeen with a dropped ace stands", []deck.Rank{deck.Ace, deck.Six, deck.Ten}, true, false},
		{"twelve hits", []deck.Rank{deck.Ten, deck.Two}, false, true},
		{"twenty stands", []deck.Rank{deck.Ten, deck.Queen}, true, false},
		{"bust stands", []deck.Rank{deck.Ten, deck.Six, deck.King}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealer(tt.hitSoft17)
			assert.Equal(t, tt.expected, d.ShouldHit(dealerHand(tt.ranks...)))
		})
	}
}
