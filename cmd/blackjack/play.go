package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
)

type PlayCmd struct {
	Rules string `kong:"default='blackjack.hcl',help='Table rules file (HCL, defaults apply if missing)'"`
	Seed  int64  `kong:"help='Deterministic shoe seed (0 for time-based)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dealerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	chipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	lossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func (c *PlayCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	rules, err := config.Load(c.Rules)
	if err != nil {
		return err
	}

	table, err := game.NewTable(game.Config{
		Players:            1,
		Decks:              rules.Decks,
		Positions:          rules.Positions,
		MinBet:             rules.MinBet,
		StartingChips:      rules.StartingChips,
		HouseChips:         rules.HouseChips,
		ReshuffleThreshold: rules.ReshuffleThreshold,
		BlackjackPayout:    rules.BlackjackPayout,
		StandardPayout:     rules.StandardPayout,
		InsuranceRatio:     rules.InsuranceRatio,
		Seed:               c.Seed,
	}, logger)
	if err != nil {
		return err
	}

	sess := &session{
		table:  table,
		player: table.Players()[0],
		dealer: strategy.NewDealer(!rules.StandOnSoft17),
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}
	return sess.run()
}

// session drives one human player through consecutive rounds at a table
type session struct {
	table  *game.Table
	player *game.Player
	dealer *strategy.Dealer
	in     *bufio.Scanner
	out    io.Writer
}

func (s *session) run() error {
	fmt.Fprintln(s.out, headerStyle.Render("Blackjack"))
	fmt.Fprintf(s.out, "Seated at position %d with %s chips. Minimum bet %s.\n\n",
		s.player.DefaultPosition().Number(),
		chipStyle.Render(formatChips(s.player.Chips())),
		chipStyle.Render(formatChips(s.table.MinBet())))

	for {
		if s.player.Chips() < s.table.MinBet() {
			fmt.Fprintln(s.out, lossStyle.Render("Not enough chips for the minimum bet. Session over."))
			return nil
		}

		if err := s.playRound(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		answer, err := s.prompt("Play another round? [Y/n] ")
		if err != nil {
			return nil
		}
		if strings.HasPrefix(strings.ToLower(answer), "n") {
			fmt.Fprintf(s.out, "Leaving the table with %s chips.\n", chipStyle.Render(formatChips(s.player.Chips())))
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

func (s *session) playRound() error {
	s.table.StartRound()
	defer s.table.EndRound()

	if err := s.placeBet(); err != nil {
		return err
	}
	if err := s.table.DealOpeningCards(); err != nil {
		return err
	}

	upcard, _ := s.table.DealerHand().Upcard()
	fmt.Fprintf(s.out, "%s %s %s\n", dealerStyle.Render("Dealer:"), upcard, faintStyle.Render("??"))

	if err := s.offerInsurance(); err != nil {
		return err
	}

	// splits append hands, so index rather than range
	for i := 0; i < len(s.table.ActiveHands()); i++ {
		if err := s.playHand(s.table.ActiveHands()[i], i); err != nil {
			return err
		}
	}

	if err := s.table.PlayDealer(s.dealer); err != nil {
		return err
	}
	s.showDealer()

	s.table.Settle()
	s.report()
	return nil
}

// placeBet prompts for a standard bet until the table accepts one
func (s *session) placeBet() error {
	for {
		answer, err := s.prompt(fmt.Sprintf("Bet amount [%s]: ", formatChips(s.table.MinBet())))
		if err != nil {
			return err
		}

		amount := s.table.MinBet()
		if answer != "" {
			amount, err = strconv.ParseFloat(answer, 64)
			if err != nil {
				fmt.Fprintln(s.out, lossStyle.Render("Enter a number."))
				continue
			}
		}

		if err := s.table.BookStandardBet(s.player, s.player.DefaultPosition(), amount); err != nil {
			fmt.Fprintln(s.out, lossStyle.Render(err.Error()))
			continue
		}
		return nil
	}
}

// offerInsurance asks for an insurance amount when the dealer shows an Ace
func (s *session) offerInsurance() error {
	hands := s.table.ActiveHands()
	if len(hands) == 0 || !hands[0].HasInsuranceOption(s.table.DealerHand()) {
		return nil
	}

	answer, err := s.prompt("Dealer shows an Ace. Insurance amount [0]: ")
	if err != nil {
		return err
	}
	if answer == "" || answer == "0" {
		return nil
	}

	amount, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		fmt.Fprintln(s.out, lossStyle.Render("Enter a number."))
		return nil
	}
	if err := s.table.BookInsuranceBet(s.player, s.player.DefaultPosition(), amount); err != nil {
		fmt.Fprintln(s.out, lossStyle.Render(err.Error()))
	}
	return nil
}

// playHand prompts for actions until the hand stands, busts, doubles, or
// reaches twenty-one
func (s *session) playHand(hand *game.PlayerHand, index int) error {
	label := "Your hand"
	if index > 0 {
		label = fmt.Sprintf("Split hand %d", index+1)
	}

	for {
		// a freshly split hand waits on its second card
		if len(hand.Cards()) == 1 {
			if err := s.table.HandlePlayerAction(s.player, hand, game.Hit); err != nil {
				return err
			}
		}

		fmt.Fprintf(s.out, "%s %s (%d)\n", handStyle.Render(label+":"), hand, hand.Value())

		if hand.IsBust() {
			fmt.Fprintln(s.out, lossStyle.Render("Bust."))
			return nil
		}
		if hand.IsBlackjack() {
			return nil
		}

		choices := s.eligibleActions(hand)
		answer, err := s.prompt(fmt.Sprintf("Action [%s]: ", strings.Join(choices, "/")))
		if err != nil {
			return err
		}

		action, err := game.ParseAction(answer)
		if err != nil {
			fmt.Fprintln(s.out, lossStyle.Render(err.Error()))
			continue
		}
		if err := s.table.HandlePlayerAction(s.player, hand, action); err != nil {
			fmt.Fprintln(s.out, lossStyle.Render(err.Error()))
			continue
		}

		switch action {
		case game.Stand:
			return nil
		case game.Double:
			fmt.Fprintf(s.out, "%s %s (%d)\n", handStyle.Render(label+":"), hand, hand.Value())
			if hand.IsBust() {
				fmt.Fprintln(s.out, lossStyle.Render("Bust."))
			}
			return nil
		}
	}
}

// eligibleActions lists the menu for a hand in its current state. The table
// revalidates every choice, so the menu only needs to be a good guide.
func (s *session) eligibleActions(hand *game.PlayerHand) []string {
	choices := []string{"(h)it", "(s)tand"}
	if !hand.WasHit() && len(hand.Cards()) == 2 {
		choices = append(choices, "(d)ouble")
	}
	if hand.HasSplitOption() {
		choices = append(choices, "s(p)lit")
	}
	return choices
}

func (s *session) showDealer() {
	dealer := s.table.DealerHand()
	verdict := ""
	if dealer.IsBust() {
		verdict = " " + winStyle.Render("bust")
	}
	fmt.Fprintf(s.out, "%s %s (%d)%s\n", dealerStyle.Render("Dealer:"), &dealer.Hand, dealer.Value(), verdict)
}

// report prints the player's net result against the round's opening balance
func (s *session) report() {
	opening := s.table.OpeningBalance(s.player)
	net := s.player.Chips() - opening

	var outcome string
	switch {
	case net > 0:
		outcome = winStyle.Render(fmt.Sprintf("You won %s", formatChips(net)))
	case net < 0:
		outcome = lossStyle.Render(fmt.Sprintf("You lost %s", formatChips(-net)))
	default:
		outcome = "Push"
	}
	fmt.Fprintf(s.out, "%s. Chips: %s (house %s)\n", outcome,
		chipStyle.Render(formatChips(s.player.Chips())),
		formatChips(s.table.HouseBalance()))
}

func (s *session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// formatChips renders a chip amount without trailing decimal noise
func formatChips(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
