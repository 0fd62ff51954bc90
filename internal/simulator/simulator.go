// Package simulator runs unattended Monte-Carlo blackjack sessions to
// estimate the expected value of basic strategy against the house.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// Config holds configuration for a simulation run
type Config struct {
	Rounds        int           // total rounds to play
	Workers       int           // parallel tables (defaults to NumCPU)
	Decks         int           // shoe size in deck copies
	BetSize       float64       // flat standard bet per round
	Seed          int64         // base seed; worker i plays on seed+i
	StandOnSoft17 bool          // house stands on soft 17 instead of hitting
	ProgressEvery time.Duration // progress log interval, 0 to disable
	Logger        *log.Logger
	Clock         quartz.Clock
}

// Simulator plays blackjack rounds without a human driver. Each worker owns
// an independent table, so the single-threaded round engine is never shared
// across goroutines.
type Simulator struct {
	cfg Config
}

// New creates a simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Rounds == 0 {
		cfg.Rounds = 15000
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers > cfg.Rounds {
		cfg.Workers = cfg.Rounds
	}
	if cfg.Decks == 0 {
		cfg.Decks = 4
	}
	if cfg.BetSize == 0 {
		cfg.BetSize = 25
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{cfg: cfg}
}

// Run executes the simulation and returns the aggregated statistics
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var completed atomic.Int64
	if s.cfg.ProgressEvery > 0 {
		go s.reportProgress(ctx, &completed)
	}

	results := make([]*statistics.Statistics, s.cfg.Workers)
	eg, ctx := errgroup.WithContext(ctx)

	for worker := 0; worker < s.cfg.Workers; worker++ {
		worker := worker
		rounds := s.cfg.Rounds / s.cfg.Workers
		if worker < s.cfg.Rounds%s.cfg.Workers {
			rounds++
		}
		eg.Go(func() error {
			stats, err := s.runWorker(ctx, worker, rounds, &completed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", worker, err)
			}
			results[worker] = stats
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Merge(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// reportProgress logs completed round counts on the configured clock
func (s *Simulator) reportProgress(ctx context.Context, completed *atomic.Int64) {
	ticker := s.cfg.Clock.NewTicker(s.cfg.ProgressEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cfg.Logger.Info("simulation progress",
				"completed", completed.Load(),
				"total", s.cfg.Rounds)
		}
	}
}

// runWorker plays rounds on its own table seeded from the run seed
func (s *Simulator) runWorker(ctx context.Context, worker, rounds int, completed *atomic.Int64) (*statistics.Statistics, error) {
	seed := s.cfg.Seed + int64(worker)
	table, err := game.NewTable(game.Config{
		Players:    1,
		Decks:      s.cfg.Decks,
		Simulation: true,
		Seed:       seed,
	}, s.cfg.Logger)
	if err != nil {
		return nil, err
	}

	player := table.Players()[0]
	basic := strategy.NewBasic()
	dealer := strategy.NewDealer(!s.cfg.StandOnSoft17)

	stats := &statistics.Statistics{}
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.playRound(table, player, basic, dealer, seed)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.Add(result)
		completed.Add(1)
	}
	return stats, nil
}

// playRound drives one complete round: flat bet, basic-strategy actions for
// every hand the round produces, dealer play, and settlement.
func (s *Simulator) playRound(table *game.Table, player *game.Player, basic *strategy.Basic, dealer *strategy.Dealer, seed int64) (statistics.RoundResult, error) {
	before := player.Chips()

	table.StartRound()
	defer table.EndRound()

	if err := table.BookStandardBet(player, player.DefaultPosition(), s.cfg.BetSize); err != nil {
		return statistics.RoundResult{}, err
	}
	if err := table.DealOpeningCards(); err != nil {
		return statistics.RoundResult{}, err
	}
	upcard, _ := table.DealerHand().Upcard()

	// iterate by index so hands appended by splits are played too
	for i := 0; i < len(table.ActiveHands()); i++ {
		hand := table.ActiveHands()[i]
		for !hand.IsBust() && !hand.IsBlackjack() {
			action := basic.Decide(hand, upcard)
			if action == game.Stand {
				break
			}
			// the chart does not know the table's split cap
			if action == game.Split && len(hand.Position().Hands()) >= game.MaxHandsPerPosition {
				action = game.Hit
			}
			if err := table.HandlePlayerAction(player, hand, action); err != nil {
				return statistics.RoundResult{}, err
			}
			if action == game.Double {
				break
			}
		}
	}

	if err := table.PlayDealer(dealer); err != nil {
		return statistics.RoundResult{}, err
	}

	result := statistics.RoundResult{Seed: seed}
	for _, hand := range table.ActiveHands() {
		if hand.IsBlackjack() {
			result.Blackjack = true
		}
		if hand.IsBust() {
			result.Bust = true
		}
		for _, entry := range hand.Bets() {
			result.Wagered += entry.Bet.Amount
		}
	}

	table.Settle()
	result.Net = player.Chips() - before
	return result, nil
}
