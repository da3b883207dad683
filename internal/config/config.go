// Package config loads the tunable numeric knobs the original balancer
// hard-coded: the minimum non-volatile element count a target must have,
// the probe value used for symbolic sign evaluation, the float rounding
// precision, and the edit-distance ratio used by the precursor selector.
// coding=utf-8
// @Project : reaction-balancer
// @File    : config.go
package config

import (
	"math/big"

	"github.com/spf13/viper"
)

// Tuning holds every numeric constant the balancer needs that isn't
// derived from input data.
type Tuning struct {
	// TargetMinNV is the minimum number of non-volatile elements a target
	// must have before it is considered balanceable at all.
	TargetMinNV int
	// ProbeValue is the small positive rational every free symbol is set
	// to when deciding a parametric amount's sign (SPEC_FULL.md §4.D).
	ProbeValue *big.Rat
	// FloatRound records the number of decimal places printed coefficients
	// are rounded to. Printing uses the constant expr.FloatRound; this
	// field is not read by the balancer or the printer.
	FloatRound int
	// EditDistanceRatio bounds how much a candidate's formula may differ
	// from its own material string and still be accepted by the
	// selector's edit-distance filter (SPEC_FULL.md §4.F).
	EditDistanceRatio float64
}

// Defaults returns the tuning the original balancer shipped with, before
// any file or environment overrides are applied.
func Defaults() *Tuning {
	return &Tuning{
		TargetMinNV:       2,
		ProbeValue:        big.NewRat(1, 1000),
		FloatRound:        3,
		EditDistanceRatio: 0.5,
	}
}

// Load reads tuning overrides from path (any format viper supports --
// YAML, JSON, TOML) layered on top of Defaults. Load("") returns Defaults
// unchanged: the library never requires a config file to run.
func Load(path string) (*Tuning, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if v.IsSet("target_min_nv") {
		t.TargetMinNV = v.GetInt("target_min_nv")
	}
	if v.IsSet("probe_value") {
		r := new(big.Rat)
		if _, ok := r.SetString(v.GetString("probe_value")); ok {
			t.ProbeValue = r
		}
	}
	if v.IsSet("float_round") {
		t.FloatRound = v.GetInt("float_round")
	}
	if v.IsSet("edit_distance_ratio") {
		t.EditDistanceRatio = v.GetFloat64("edit_distance_ratio")
	}
	return t, nil
}
