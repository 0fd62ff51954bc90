// Package config loads table rules from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the top-level structure of a rules file
type File struct {
	Table *Rules `hcl:"table,block"`
}

// Rules defines the table rule set. Missing values fall back to the
// standard casino defaults.
type Rules struct {
	Decks              int     `hcl:"decks,optional"`
	Positions          int     `hcl:"positions,optional"`
	MinBet             float64 `hcl:"min_bet,optional"`
	StartingChips      float64 `hcl:"starting_chips,optional"`
	HouseChips         float64 `hcl:"house_chips,optional"`
	ReshuffleThreshold int     `hcl:"reshuffle_threshold,optional"`
	BlackjackPayout    float64 `hcl:"blackjack_payout,optional"`
	StandardPayout     float64 `hcl:"standard_payout,optional"`
	InsuranceRatio     float64 `hcl:"insurance_ratio,optional"`
	StandOnSoft17      bool    `hcl:"stand_on_soft17,optional"`
}

// DefaultRules returns the standard table rule set: four decks, five seats,
// a 25-chip minimum, 3:2 blackjack, 3:1 insurance, and a dealer who hits
// soft 17.
func DefaultRules() *Rules {
	return &Rules{
		Decks:              4,
		Positions:          5,
		MinBet:             25,
		StartingChips:      500,
		HouseChips:         15000,
		ReshuffleThreshold: 52,
		BlackjackPayout:    1.5,
		StandardPayout:     1,
		InsuranceRatio:     3,
		StandOnSoft17:      false,
	}
}

// Load reads table rules from an HCL file. A missing file yields the
// defaults; a present file has its unset fields defaulted.
func Load(filename string) (*Rules, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultRules(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}

	rules := f.Table
	if rules == nil {
		return DefaultRules(), nil
	}
	rules.applyDefaults()

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *Rules) applyDefaults() {
	def := DefaultRules()
	if r.Decks == 0 {
		r.Decks = def.Decks
	}
	if r.Positions == 0 {
		r.Positions = def.Positions
	}
	if r.MinBet == 0 {
		r.MinBet = def.MinBet
	}
	if r.StartingChips == 0 {
		r.StartingChips = def.StartingChips
	}
	if r.HouseChips == 0 {
		r.HouseChips = def.HouseChips
	}
	if r.ReshuffleThreshold == 0 {
		r.ReshuffleThreshold = def.ReshuffleThreshold
	}
	if r.BlackjackPayout == 0 {
		r.BlackjackPayout = def.BlackjackPayout
	}
	if r.StandardPayout == 0 {
		r.StandardPayout = def.StandardPayout
	}
	if r.InsuranceRatio == 0 {
		r.InsuranceRatio = def.InsuranceRatio
	}
}

// Validate checks the rule set for values the engine cannot honour
func (r *Rules) Validate() error {
	if r.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", r.Decks)
	}
	if r.Positions < 1 {
		return fmt.Errorf("positions must be at least 1, got %d", r.Positions)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive, got %.2f", r.MinBet)
	}
	if r.ReshuffleThreshold < 0 {
		return fmt.Errorf("reshuffle_threshold must not be negative, got %d", r.ReshuffleThreshold)
	}
	if r.BlackjackPayout <= 0 || r.StandardPayout <= 0 || r.InsuranceRatio <= 0 {
		return fmt.Errorf("payout ratios must be positive")
	}
	return nil
}
