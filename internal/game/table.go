package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// DealerPolicy decides whether the house draws another card. Implementations
// must be pure functions of the dealer's hand.
type DealerPolicy interface {
	ShouldHit(hand *DealerHand) bool
}

// Config holds the table rules. Zero fields are filled from the defaults.
type Config struct {
	Players            int     // seated players, at most Positions
	Decks              int     // deck copies in the shoe, at least 1
	Positions          int     // seats excluding the dealer
	MinBet             float64 // minimum standard bet
	StartingChips      float64 // per-player opening balance
	HouseChips         float64 // house reserve
	ReshuffleThreshold int     // reshuffle when the shoe falls below this
	BlackjackPayout    float64 // win ratio for a 21-value hand (3:2)
	StandardPayout     float64 // win ratio otherwise (1:1)
	InsuranceRatio     float64 // insurance win ratio (3:1)
	Simulation         bool    // waive solvency checks for EV measurement
	Seed               int64   // shoe RNG seed, 0 for time-based
}

// DefaultConfig returns the standard table rules
func DefaultConfig() Config {
	return Config{
		Players:            1,
		Decks:              4,
		Positions:          5,
		MinBet:             25,
		StartingChips:      500,
		HouseChips:         15000,
		ReshuffleThreshold: deck.CardsPerDeck,
		BlackjackPayout:    1.5,
		StandardPayout:     1,
		InsuranceRatio:     3,
	}
}

// applyDefaults fills unset fields from DefaultConfig
func (c Config) applyDefaults() Config {
	def := DefaultConfig()
	if c.Players == 0 {
		c.Players = def.Players
	}
	if c.Decks == 0 {
		c.Decks = def.Decks
	}
	if c.Positions == 0 {
		c.Positions = def.Positions
	}
	if c.MinBet == 0 {
		c.MinBet = def.MinBet
	}
	if c.StartingChips == 0 {
		c.StartingChips = def.StartingChips
	}
	if c.HouseChips == 0 {
		c.HouseChips = def.HouseChips
	}
	if c.ReshuffleThreshold == 0 {
		c.ReshuffleThreshold = def.ReshuffleThreshold
	}
	if c.BlackjackPayout == 0 {
		c.BlackjackPayout = def.BlackjackPayout
	}
	if c.StandardPayout == 0 {
		c.StandardPayout = def.StandardPayout
	}
	if c.InsuranceRatio == 0 {
		c.InsuranceRatio = def.InsuranceRatio
	}
	return c
}

// Table owns the shoe, the dealer, the players, and the seats, and drives the
// round lifecycle. It is constructed once per session; hands and bets are
// recreated every round while balances and the shoe persist.
type Table struct {
	cfg       Config
	shoe      *deck.Shoe
	dealer    *Dealer
	players   []*Player
	positions []*Position

	openingBalances map[*Player]float64
	openingHouse    float64

	logger *log.Logger
}

// NewTable creates a table from the given rules. It fails if the player count
// exceeds the number of positions or the deck count is below one.
func NewTable(cfg Config, logger *log.Logger) (*Table, error) {
	cfg = cfg.applyDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if cfg.Players < 1 || cfg.Players > cfg.Positions {
		return nil, fmt.Errorf("player count %d must be between 1 and %d", cfg.Players, cfg.Positions)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	shoe, err := deck.New(cfg.Decks, randutil.New(seed))
	if err != nil {
		return nil, err
	}

	t := &Table{
		cfg:             cfg,
		shoe:            shoe,
		dealer:          NewDealer(cfg.HouseChips),
		openingBalances: make(map[*Player]float64),
		logger:          logger.WithPrefix("table"),
	}

	for i := 1; i <= cfg.Positions; i++ {
		t.positions = append(t.positions, NewPosition(i))
	}
	for i := 1; i <= cfg.Players; i++ {
		t.players = append(t.players, NewPlayer(fmt.Sprintf("Player %d", i), cfg.StartingChips))
	}
	t.seatPlayers()

	return t, nil
}

// seatPlayers assigns default positions. A lone player sits across from the
// dealer; otherwise players fill seats from position one.
func (t *Table) seatPlayers() {
	if len(t.players) == 1 {
		middle := t.positions[len(t.positions)/2]
		t.players[0].defaultPosition = middle
		middle.seat(t.players[0])
		return
	}
	for i, player := range t.players {
		player.defaultPosition = t.positions[i]
		t.positions[i].seat(player)
	}
}

// StartRound resets the table for a new round: opening balances are
// snapshotted, the shoe is reshuffled if it has run low, and every seat and
// the dealer receive a fresh empty hand.
func (t *Table) StartRound() {
	for _, p := range t.players {
		t.openingBalances[p] = p.Chips()
	}
	t.openingHouse = t.dealer.Chips()

	if t.shoe.NeedsReshuffle(t.cfg.ReshuffleThreshold) {
		t.logger.Debug("shoe below threshold, reshuffling", "remaining", t.shoe.Size())
		t.shoe.Reshuffle()
	}

	for _, position := range t.positions {
		position.clearHands()
		position.addHand(NewPlayerHand(position))
	}
	t.dealer.newHand()
}

// BookStandardBet books a standard bet for a player on a position. To be
// called before the opening deal. Invalid bets leave all state untouched.
func (t *Table) BookStandardBet(player *Player, position *Position, amount float64) error {
	processor := standardBetProcessor{
		validator: standardBetValidator{betValidator: t.validatorContext(), minBet: t.cfg.MinBet},
	}
	if err := processor.process(player, position, amount); err != nil {
		t.logger.Debug("standard bet rejected", "player", player.Name(), "error", err)
		return err
	}
	t.logger.Debug("standard bet booked", "player", player.Name(), "position", position.Number(), "amount", amount)
	return nil
}

// BookInsuranceBet books an insurance bet on a position's opening hand. To be
// called after the opening deal, once per player per hand, for at most half
// the original bet.
func (t *Table) BookInsuranceBet(player *Player, position *Position, amount float64) error {
	processor := insuranceBetProcessor{
		validator: insuranceBetValidator{betValidator: t.validatorContext(), dealerHand: t.dealer.Hand()},
	}
	if err := processor.process(player, position, amount); err != nil {
		t.logger.Debug("insurance bet rejected", "player", player.Name(), "error", err)
		return err
	}
	t.logger.Debug("insurance bet booked", "player", player.Name(), "position", position.Number(), "amount", amount)
	return nil
}

// BookDoubleDownBet doubles the player's existing bet on a hand. Only valid
// before the hand has been hit and at most once per hand.
func (t *Table) BookDoubleDownBet(player *Player, position *Position, hand *PlayerHand) error {
	processor := doubleBetProcessor{
		validator: doubleBetValidator{betValidator: t.validatorContext()},
	}
	if err := processor.process(player, position, hand); err != nil {
		t.logger.Debug("double down rejected", "player", player.Name(), "error", err)
		return err
	}
	t.logger.Debug("double down booked", "player", player.Name(), "position", position.Number())
	return nil
}

// BookSplitBet splits a hand into two, duplicating the player's original bet
// onto the new hand.
func (t *Table) BookSplitBet(player *Player, position *Position, hand *PlayerHand) (*PlayerHand, error) {
	processor := splitBetProcessor{
		validator: splitBetValidator{betValidator: t.validatorContext()},
	}
	splitHand, err := processor.process(player, position, hand)
	if err != nil {
		t.logger.Debug("split rejected", "player", player.Name(), "error", err)
		return nil, err
	}
	t.logger.Debug("hand split", "player", player.Name(), "position", position.Number())
	return splitHand, nil
}

func (t *Table) validatorContext() betValidator {
	return betValidator{
		simulation: t.cfg.Simulation,
		players:    t.players,
		positions:  t.positions,
	}
}

// DealOpeningCards deals two cards to every hand holding a bet and to the
// dealer, in casino order: all active positions, dealer, all active
// positions, dealer. Acting players are resolved before the deal.
func (t *Table) DealOpeningCards() error {
	t.resolveActingPlayers()

	for pass := 0; pass < 2; pass++ {
		for _, hand := range t.ActiveHands() {
			card, ok := t.shoe.Deal()
			if !ok {
				return fmt.Errorf("shoe exhausted during opening deal")
			}
			hand.Receive(card)
		}
		card, ok := t.shoe.Deal()
		if !ok {
			return fmt.Errorf("shoe exhausted during opening deal")
		}
		t.dealer.Hand().Receive(card)
	}

	return nil
}

// resolveActingPlayers gives each active hand its acting player: the
// position's default occupant if they hold a bet on the hand, otherwise the
// earliest bettor.
func (t *Table) resolveActingPlayers() {
	for _, position := range t.positions {
		for _, hand := range position.Hands() {
			if !hand.HasBet() {
				continue
			}
			acting := hand.Bets()[0].Player
			for _, entry := range hand.Bets() {
				if entry.Player == position.DefaultPlayer() {
					acting = entry.Player
					break
				}
			}
			hand.setActingPlayer(acting)
		}
	}
}

// HandlePlayerAction applies a single action to a hand on behalf of its
// acting player. Unknown or ineligible actions are reported as errors and
// leave the hand unchanged.
func (t *Table) HandlePlayerAction(player *Player, hand *PlayerHand, action Action) error {
	if hand.ActingPlayer() != player {
		return fmt.Errorf("%s does not have decision authority over this hand", player.Name())
	}

	switch action {
	case Hit:
		if hand.IsBust() {
			return fmt.Errorf("hand is bust")
		}
		return t.hit(&hand.Hand)

	case Stand:
		return nil

	case Double:
		if err := t.BookDoubleDownBet(player, hand.Position(), hand); err != nil {
			return err
		}
		// doubling buys exactly one further card
		return t.hit(&hand.Hand)

	case Split:
		_, err := t.BookSplitBet(player, hand.Position(), hand)
		return err

	case Insurance:
		// the action form books the maximum: half the original bet
		original := hand.standardBetFor(player)
		if original == nil {
			return fmt.Errorf("no existing bet to insure on this hand")
		}
		return t.BookInsuranceBet(player, hand.Position(), original.Amount/2)

	default:
		return fmt.Errorf("unknown action %d", action)
	}
}

// hit deals one card to a hand. A hand counts as hit once it draws beyond
// two cards, so refilling a one-card split hand keeps its double and
// re-split options open.
func (t *Table) hit(hand *Hand) error {
	card, ok := t.shoe.Deal()
	if !ok {
		return fmt.Errorf("shoe exhausted")
	}
	if len(hand.cards) >= 2 {
		hand.markHit()
	}
	hand.Receive(card)
	return nil
}

// PlayDealer draws cards for the house until the policy stands
func (t *Table) PlayDealer(policy DealerPolicy) error {
	for policy.ShouldHit(t.dealer.Hand()) {
		if err := t.hit(&t.dealer.Hand().Hand); err != nil {
			return err
		}
	}
	t.logger.Debug("dealer stands", "value", t.dealer.Hand().Value(), "bust", t.dealer.Hand().IsBust())
	return nil
}

// EndRound clears every hand and bet. Balances persist across rounds.
func (t *Table) EndRound() {
	for _, position := range t.positions {
		position.clearHands()
	}
	t.dealer.newHand()
}

// ActiveHands returns every hand at the table holding at least one bet, in
// position order.
func (t *Table) ActiveHands() []*PlayerHand {
	var hands []*PlayerHand
	for _, position := range t.positions {
		for _, hand := range position.Hands() {
			if hand.HasBet() {
				hands = append(hands, hand)
			}
		}
	}
	return hands
}

// DealerHand returns the house's current hand
func (t *Table) DealerHand() *DealerHand {
	return t.dealer.Hand()
}

// Players returns the seated players
func (t *Table) Players() []*Player {
	return t.players
}

// Positions returns the table's seats, dealer excluded
func (t *Table) Positions() []*Position {
	return t.positions
}

// HouseBalance returns the house chip reserve
func (t *Table) HouseBalance() float64 {
	return t.dealer.Chips()
}

// OpeningBalance returns the player's balance as of the round start
func (t *Table) OpeningBalance(player *Player) float64 {
	return t.openingBalances[player]
}

// OpeningHouseBalance returns the house balance as of the round start
func (t *Table) OpeningHouseBalance() float64 {
	return t.openingHouse
}

// ShoeSize returns the number of cards left in the shoe
func (t *Table) ShoeSize() int {
	return t.shoe.Size()
}

// MinBet returns the table's minimum standard bet
func (t *Table) MinBet() float64 {
	return t.cfg.MinBet
}
