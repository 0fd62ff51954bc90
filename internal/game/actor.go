package game

import "fmt"

// Player is a seated participant with a chip balance. Balances may only go
// negative in simulation mode, where the table waives solvency checks so
// expected value can be measured past zero.
type Player struct {
	name            string
	chips           float64
	defaultPosition *Position
}

// NewPlayer creates a player with a starting balance
func NewPlayer(name string, chips float64) *Player {
	return &Player{name: name, chips: chips}
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Chips returns the player's current balance
func (p *Player) Chips() float64 {
	return p.chips
}

// DefaultPosition returns the seat the player occupies by default
func (p *Player) DefaultPosition() *Position {
	return p.defaultPosition
}

func (p *Player) receiveChips(amount float64) {
	p.chips += amount
}

func (p *Player) dispenseChips(amount float64) {
	p.chips -= amount
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%.0f chips)", p.name, p.chips)
}

// Dealer is the house. Its balance is the sole counterparty for every bet.
type Dealer struct {
	chips float64
	hand  *DealerHand
}

// NewDealer creates the house actor with its chip reserve
func NewDealer(chips float64) *Dealer {
	return &Dealer{chips: chips, hand: &DealerHand{}}
}

// Chips returns the house balance
func (d *Dealer) Chips() float64 {
	return d.chips
}

// Hand returns the dealer's current hand
func (d *Dealer) Hand() *DealerHand {
	return d.hand
}

func (d *Dealer) receiveChips(amount float64) {
	d.chips += amount
}

func (d *Dealer) dispenseChips(amount float64) {
	d.chips -= amount
}

func (d *Dealer) newHand() {
	d.hand = &DealerHand{}
}
