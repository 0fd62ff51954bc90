package game

// Settle resolves every bet on every active hand against the dealer's final
// hand. Regular bets are resolved first, then insurance. Every transfer moves
// chips between the house reserve and the owning player; players never pay
// each other.
func (t *Table) Settle() {
	dealerHand := t.dealer.Hand()

	for _, hand := range t.ActiveHands() {
		for _, entry := range hand.Bets() {
			if entry.Bet.Kind == InsuranceBet {
				continue
			}
			t.settleRegular(hand, dealerHand, entry)
		}
	}

	for _, hand := range t.ActiveHands() {
		for _, entry := range hand.Bets() {
			if entry.Bet.Kind != InsuranceBet {
				continue
			}
			t.settleInsurance(hand, dealerHand, entry)
		}
	}
}

// settleRegular resolves a single non-insurance bet. Exactly one of win,
// push, or loss applies.
func (t *Table) settleRegular(hand *PlayerHand, dealerHand *DealerHand, entry BetEntry) {
	amount := entry.Bet.Amount

	switch {
	// win: live hand beats the dealer, or the dealer busts
	case !hand.IsBust() && (dealerHand.IsBust() || hand.Value() > dealerHand.Value()):
		ratio := t.cfg.StandardPayout
		if hand.IsBlackjack() {
			ratio = t.cfg.BlackjackPayout
		}
		payout := amount * (1 + ratio)
		t.dealer.dispenseChips(payout - amount)
		entry.Player.receiveChips(payout)
		t.logger.Debug("bet won", "player", entry.Player.Name(), "kind", entry.Bet.Kind, "payout", payout)

	// push: equal values refund the wager with no net transfer
	case !hand.IsBust() && hand.Value() == dealerHand.Value():
		entry.Player.receiveChips(amount)
		t.logger.Debug("bet pushed", "player", entry.Player.Name(), "kind", entry.Bet.Kind, "amount", amount)

	// loss: bust hand, or a live dealer hand with the higher value
	default:
		t.dealer.receiveChips(amount)
		t.logger.Debug("bet lost", "player", entry.Player.Name(), "kind", entry.Bet.Kind, "amount", amount)
	}
}

// settleInsurance pays an insurance bet if the dealer finished on a
// blackjack behind an Ace upcard; otherwise the premium is forfeited to the
// house.
func (t *Table) settleInsurance(hand *PlayerHand, dealerHand *DealerHand, entry BetEntry) {
	amount := entry.Bet.Amount

	if dealerHand.IsBlackjack() && hand.HasInsuranceOption(dealerHand) {
		payout := amount * (1 + t.cfg.InsuranceRatio)
		t.dealer.dispenseChips(payout - amount)
		entry.Player.receiveChips(payout)
		t.logger.Debug("insurance paid", "player", entry.Player.Name(), "payout", payout)
	} else {
		t.dealer.receiveChips(amount)
		t.logger.Debug("insurance forfeited", "player", entry.Player.Name(), "amount", amount)
	}
}
