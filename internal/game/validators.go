package game

import "fmt"

// Bet validators are pure precondition checks. They never move chips and
// never mutate table state; a failed check is reported to the caller so the
// driver can prompt for a corrected wager.
//
// In simulation mode the solvency checks are waived so a player's balance can
// run negative and expected value remains measurable.

// betValidator carries the table context shared by every bet kind
type betValidator struct {
	simulation bool
	players    []*Player
	positions  []*Position
}

// validPlayer verifies that the player is registered at the table
func (v betValidator) validPlayer(player *Player) bool {
	for _, p := range v.players {
		if p == player {
			return true
		}
	}
	return false
}

// validPosition verifies that the position is registered at the table
func (v betValidator) validPosition(position *Position) bool {
	for _, p := range v.positions {
		if p == position {
			return true
		}
	}
	return false
}

func (v betValidator) validateRegistration(player *Player, position *Position) error {
	if !v.validPlayer(player) {
		return fmt.Errorf("player %s is not registered at the table", player.Name())
	}
	if !v.validPosition(position) {
		return fmt.Errorf("position is not registered at the table")
	}
	return nil
}

type standardBetValidator struct {
	betValidator
	minBet float64
}

func (v standardBetValidator) validate(player *Player, position *Position, amount float64) error {
	if err := v.validateRegistration(player, position); err != nil {
		return err
	}
	if amount < v.minBet {
		return fmt.Errorf("bet of %.0f is below the table minimum of %.0f", amount, v.minBet)
	}
	if !v.simulation && amount > player.Chips() {
		return fmt.Errorf("insufficient chips: bet %.0f exceeds balance %.0f", amount, player.Chips())
	}
	return nil
}

type doubleBetValidator struct {
	betValidator
}

func (v doubleBetValidator) validate(player *Player, position *Position, hand *PlayerHand) error {
	if err := v.validateRegistration(player, position); err != nil {
		return err
	}
	original := hand.standardBetFor(player)
	if original == nil {
		return fmt.Errorf("no existing bet to double on this hand")
	}
	if hand.WasHit() {
		return fmt.Errorf("cannot double down after hitting")
	}
	if hand.hasDoubledFor(player) {
		return fmt.Errorf("hand has already been doubled")
	}
	if !v.simulation && original.Amount > player.Chips() {
		return fmt.Errorf("insufficient chips to double: need %.0f, have %.0f", original.Amount, player.Chips())
	}
	return nil
}

type splitBetValidator struct {
	betValidator
}

func (v splitBetValidator) validate(player *Player, position *Position, hand *PlayerHand) error {
	if err := v.validateRegistration(player, position); err != nil {
		return err
	}
	original := hand.standardBetFor(player)
	if original == nil {
		return fmt.Errorf("no existing bet to split on this hand")
	}
	if !hand.HasSplitOption() {
		return fmt.Errorf("hand cannot be split")
	}
	if len(position.Hands()) >= MaxHandsPerPosition {
		return fmt.Errorf("position already holds the maximum of %d hands", MaxHandsPerPosition)
	}
	if !v.simulation && original.Amount > player.Chips() {
		return fmt.Errorf("insufficient chips to split: need %.0f, have %.0f", original.Amount, player.Chips())
	}
	return nil
}

type insuranceBetValidator struct {
	betValidator
	dealerHand *DealerHand
}

func (v insuranceBetValidator) validate(player *Player, position *Position, hand *PlayerHand, amount float64) error {
	if err := v.validateRegistration(player, position); err != nil {
		return err
	}
	if !hand.HasInsuranceOption(v.dealerHand) {
		return fmt.Errorf("insurance is only offered when the dealer shows an Ace")
	}
	original := hand.standardBetFor(player)
	if original == nil {
		return fmt.Errorf("no existing bet to insure on this hand")
	}
	if hand.hasInsuranceBetFor(player) {
		return fmt.Errorf("insurance has already been bought on this hand")
	}
	if amount <= 0 || amount > original.Amount/2 {
		return fmt.Errorf("insurance of %.0f exceeds half the original bet of %.0f", amount, original.Amount)
	}
	if !v.simulation && amount > player.Chips() {
		return fmt.Errorf("insufficient chips for insurance: need %.0f, have %.0f", amount, player.Chips())
	}
	return nil
}
