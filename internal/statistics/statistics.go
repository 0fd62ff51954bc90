package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult represents the outcome of a single blackjack round for the
// tracked player
type RoundResult struct {
	Net       float64 // chips won (positive) or lost (negative)
	Wagered   float64 // total chips put at risk this round
	Seed      int64   // RNG seed of the table that played the round (for replay)
	Blackjack bool    // any hand finished on a two-card or drawn 21
	Bust      bool    // any hand busted
}

// Statistics aggregates round results into expected-value estimates
type Statistics struct {
	Rounds int
	Sum    float64   // sum of net results
	Sum2   float64   // sum of squares for variance calculation
	Values []float64 // all net results, for median/percentile calculation

	Wins   int // rounds finishing net positive
	Losses int // rounds finishing net negative
	Pushes int // rounds finishing exactly flat

	Blackjacks int
	Busts      int

	TotalWagered float64
}

// Add incorporates a round result
func (s *Statistics) Add(result RoundResult) {
	net := result.Net
	s.Rounds++
	s.Sum += net
	s.Sum2 += net * net
	s.Values = append(s.Values, net)

	switch {
	case net > 0:
		s.Wins++
	case net < 0:
		s.Losses++
	default:
		s.Pushes++
	}

	if result.Blackjack {
		s.Blackjacks++
	}
	if result.Bust {
		s.Busts++
	}
	s.TotalWagered += result.Wagered
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// EVPerUnit returns net winnings per chip wagered, the expected value the
// simulation estimates
func (s *Statistics) EVPerUnit() float64 {
	if s.TotalWagered == 0 {
		return 0
	}
	return s.Sum / s.TotalWagered
}

// Variance returns the sample variance of net results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of net results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Merge folds another statistics block into this one. Used to combine
// per-worker results after a parallel run.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.TotalWagered += other.TotalWagered
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds count (%d)", len(s.Values), s.Rounds)
	}
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcome counts (%d wins, %d losses, %d pushes) do not sum to %d rounds",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	if s.TotalWagered < 0 {
		return fmt.Errorf("negative total wagered: %f", s.TotalWagered)
	}
	return nil
}
