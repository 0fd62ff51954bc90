package game

// MaxHandsPerPosition caps the hands a position can grow through splits
const MaxHandsPerPosition = 4

// Position is a numbered seat at the table. It holds one hand per round,
// growing to at most four through splits, and records a default occupant who
// gets first claim on decision authority.
type Position struct {
	number        int
	defaultPlayer *Player
	hands         []*PlayerHand
}

// NewPosition creates an empty position with the given seat number
func NewPosition(number int) *Position {
	return &Position{number: number}
}

// Number returns the seat number (1-based, dealer excluded)
func (p *Position) Number() int {
	return p.number
}

// DefaultPlayer returns the position's default occupant, or nil if unseated
func (p *Position) DefaultPlayer() *Player {
	return p.defaultPlayer
}

// Hands returns the position's hands for the current round
func (p *Position) Hands() []*PlayerHand {
	return p.hands
}

func (p *Position) seat(player *Player) {
	p.defaultPlayer = player
}

func (p *Position) addHand(hand *PlayerHand) {
	p.hands = append(p.hands, hand)
}

func (p *Position) clearHands() {
	p.hands = p.hands[:0]
}
