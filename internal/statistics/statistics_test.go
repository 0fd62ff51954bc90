package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addAll(s *Statistics, nets ...float64) {
	for _, net := range nets {
		s.Add(RoundResult{Net: net, Wagered: 25})
	}
}

func TestAddClassifiesOutcomes(t *testing.T) {
	s := &Statistics{}
	addAll(s, 25, -25, 0, 37.5, -50)

	assert.Equal(t, 5, s.Rounds)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 125.0, s.TotalWagered)
	assert.InDelta(t, -12.5, s.Sum, 1e-9)
}

func TestAddTracksFlags(t *testing.T) {
	s := &Statistics{}
	s.Add(RoundResult{Net: 37.5, Wagered: 25, Blackjack: true})
	s.Add(RoundResult{Net: -25, Wagered: 25, Bust: true})
	s.Add(RoundResult{Net: -25, Wagered: 25})

	assert.Equal(t, 1, s.Blackjacks)
	assert.Equal(t, 1, s.Busts)
}

func TestMeanAndEV(t *testing.T) {
	s := &Statistics{}
	addAll(s, 25, -25, -25, 25)

	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.EVPerUnit())

	addAll(s, -25)
	assert.InDelta(t, -5.0, s.Mean(), 1e-9)
	assert.InDelta(t, -25.0/125.0, s.EVPerUnit(), 1e-9)
}

func TestVarianceAndStdDev(t *testing.T) {
	s := &Statistics{}
	addAll(s, 2, 4, 4, 4, 5, 5, 7, 9)

	// known sample variance of this series
	assert.InDelta(t, 4.571428571, s.Variance(), 1e-6)
	assert.InDelta(t, math.Sqrt(4.571428571), s.StdDev(), 1e-6)
	assert.InDelta(t, s.StdDev()/math.Sqrt(8), s.StdError(), 1e-9)
}

func TestConfidenceInterval(t *testing.T) {
	s := &Statistics{}
	addAll(s, 2, 4, 4, 4, 5, 5, 7, 9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
	assert.InDelta(t, s.Mean(), (lo+hi)/2, 1e-9)
}

func TestMedianAndPercentile(t *testing.T) {
	s := &Statistics{}
	addAll(s, 5, 1, 3)
	assert.Equal(t, 3.0, s.Median())

	addAll(s, 7)
	assert.Equal(t, 4.0, s.Median())

	assert.Equal(t, 1.0, s.Percentile(0))
	assert.Equal(t, 7.0, s.Percentile(1))
	assert.InDelta(t, 4.0, s.Percentile(0.5), 1e-9)
}

func TestEmptyStatistics(t *testing.T) {
	s := &Statistics{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.EVPerUnit())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.Percentile(0.5))
}

func TestMerge(t *testing.T) {
	a := &Statistics{}
	addAll(a, 25, -25)
	a.Add(RoundResult{Net: 37.5, Wagered: 25, Blackjack: true})

	b := &Statistics{}
	addAll(b, 0, -25)

	a.Merge(b)
	assert.Equal(t, 5, a.Rounds)
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 2, a.Losses)
	assert.Equal(t, 1, a.Pushes)
	assert.Equal(t, 1, a.Blackjacks)
	assert.Equal(t, 125.0, a.TotalWagered)
	assert.Len(t, a.Values, 5)
	require.NoError(t, a.Validate())
}

func TestValidate(t *testing.T) {
	s := &Statistics{}
	assert.Error(t, s.Validate(), "empty statistics are invalid")

	addAll(s, 25, -25)
	assert.NoError(t, s.Validate())

	s.Wins++
	assert.Error(t, s.Validate(), "outcome counts must sum to rounds")
}
