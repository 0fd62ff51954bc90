package game

// BetKind classifies a wager, which determines its payout treatment
type BetKind int

const (
	StandardBet BetKind = iota
	DoubleBet
	SplitBet
	InsuranceBet
)

func (k BetKind) String() string {
	switch k {
	case StandardBet:
		return "standard"
	case DoubleBet:
		return "double"
	case SplitBet:
		return "split"
	case InsuranceBet:
		return "insurance"
	default:
		return "unknown"
	}
}

// Bet is a typed wager record
type Bet struct {
	Amount float64
	Kind   BetKind
}
