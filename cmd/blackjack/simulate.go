package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
)

type SimulateCmd struct {
	Rounds        int           `kong:"default='15000',help='Number of rounds to simulate'"`
	Workers       int           `kong:"default='0',help='Parallel workers (0 for NumCPU)'"`
	Decks         int           `kong:"default='4',help='Deck copies in the shoe'"`
	Bet           float64       `kong:"default='25',help='Flat bet per round'"`
	Seed          int64         `kong:"default='1',help='Base RNG seed (worker i plays seed+i)'"`
	StandOnSoft17 bool          `kong:"help='Dealer stands on soft 17 instead of hitting'"`
	Progress      time.Duration `kong:"default='5s',help='Progress log interval (0 to disable)'"`
	Debug         bool          `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:        c.Rounds,
		Workers:       c.Workers,
		Decks:         c.Decks,
		BetSize:       c.Bet,
		Seed:          c.Seed,
		StandOnSoft17: c.StandOnSoft17,
		ProgressEvery: c.Progress,
		Logger:        logger,
	})

	logger.Info("starting simulation",
		"rounds", c.Rounds,
		"decks", c.Decks,
		"bet", c.Bet,
		"seed", c.Seed)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printSummary(stats, c.Bet, elapsed)
	return nil
}

// printSummary reports the estimated expected value and distribution of the
// simulated rounds
func printSummary(stats *statistics.Statistics, bet float64, elapsed time.Duration) {
	lo, hi := stats.ConfidenceInterval95()
	rounds := float64(stats.Rounds)

	fmt.Println(headerStyle.Render("Simulation results"))
	fmt.Printf("Rounds:          %d in %s (%.0f rounds/sec)\n",
		stats.Rounds, elapsed.Round(time.Millisecond), rounds/elapsed.Seconds())
	fmt.Printf("Flat bet:        %s\n", formatChips(bet))
	fmt.Printf("Total wagered:   %s\n", formatChips(stats.TotalWagered))
	fmt.Printf("Net result:      %+.2f chips\n", stats.Sum)
	fmt.Printf("EV per unit bet: %+.4f (%+.2f%% house edge)\n", stats.EVPerUnit(), -stats.EVPerUnit()*100)
	fmt.Printf("Mean per round:  %+.4f ± %.4f (95%% CI %+.4f to %+.4f)\n",
		stats.Mean(), 1.96*stats.StdError(), lo, hi)
	fmt.Printf("Std deviation:   %.4f\n", stats.StdDev())
	fmt.Printf("Win/Loss/Push:   %.1f%% / %.1f%% / %.1f%%\n",
		100*float64(stats.Wins)/rounds,
		100*float64(stats.Losses)/rounds,
		100*float64(stats.Pushes)/rounds)
	fmt.Printf("Blackjacks:      %.2f%%\n", 100*float64(stats.Blackjacks)/rounds)
	fmt.Printf("Busts:           %.2f%%\n", 100*float64(stats.Busts)/rounds)
}
