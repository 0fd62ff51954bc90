package game

// Bet processors apply a validated wager. Each one validates first and only
// then performs its side effects, so a rejected bet leaves chips and hands
// untouched.

type standardBetProcessor struct {
	validator standardBetValidator
}

func (p standardBetProcessor) process(player *Player, position *Position, amount float64) error {
	if err := p.validator.validate(player, position, amount); err != nil {
		return err
	}

	// standard bets are booked before the deal, on the position's opening hand
	hand := position.Hands()[0]
	hand.addBet(player, &Bet{Amount: amount, Kind: StandardBet})
	player.dispenseChips(amount)
	return nil
}

type doubleBetProcessor struct {
	validator doubleBetValidator
}

func (p doubleBetProcessor) process(player *Player, position *Position, hand *PlayerHand) error {
	if err := p.validator.validate(player, position, hand); err != nil {
		return err
	}

	amount := hand.standardBetFor(player).Amount
	hand.addBet(player, &Bet{Amount: amount, Kind: DoubleBet})
	player.dispenseChips(amount)
	return nil
}

type splitBetProcessor struct {
	validator splitBetValidator
}

// process splits a hand: the second opening card moves to a fresh hand on the
// same position, carrying a duplicate of the original bet and the splitting
// player as its acting player.
func (p splitBetProcessor) process(player *Player, position *Position, hand *PlayerHand) (*PlayerHand, error) {
	if err := p.validator.validate(player, position, hand); err != nil {
		return nil, err
	}

	amount := hand.standardBetFor(player).Amount

	splitHand := NewPlayerHand(position)
	splitHand.setActingPlayer(player)
	splitHand.addBet(player, &Bet{Amount: amount, Kind: SplitBet})
	splitHand.Receive(hand.cards[1])
	hand.cards = hand.cards[:1]
	position.addHand(splitHand)

	player.dispenseChips(amount)
	return splitHand, nil
}

type insuranceBetProcessor struct {
	validator insuranceBetValidator
}

func (p insuranceBetProcessor) process(player *Player, position *Position, amount float64) error {
	// insurance rides on the position's opening hand, like the standard bet
	// it protects
	hand := position.Hands()[0]
	if err := p.validator.validate(player, position, hand, amount); err != nil {
		return err
	}

	hand.addBet(player, &Bet{Amount: amount, Kind: InsuranceBet})
	player.dispenseChips(amount)
	return nil
}
