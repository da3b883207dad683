// Package driver exposes the balancer's single library entry point,
// BalanceRecipe, implementing the full screen/fallback cascade over
// (target, substitution) variants.
// coding=utf-8
// @Project : reaction-balancer
// @File    : types.go
package driver

import (
	"go.uber.org/zap"

	"github.com/cx-luo/reaction-balancer/internal/config"
	"github.com/cx-luo/reaction-balancer/internal/logging"
	"github.com/cx-luo/reaction-balancer/render"
)

// ComponentInput is one composition entry of a material/target input
// record. Amount and the Elements values accept string, float64, or int.
type ComponentInput struct {
	Amount   interface{}
	Elements map[string]interface{}
}

// MaterialInput is a candidate precursor record.
type MaterialInput struct {
	MaterialFormula string
	MaterialString  string
	Composition     []ComponentInput
}

// TargetInput is a synthesis target record. ElementsVars maps an element
// placeholder to the values the substitution expander should try in turn;
// Additives is a free-text list of ion strings the renderer annotates the
// final equation with.
type TargetInput struct {
	MaterialFormula string
	MaterialString  string
	Composition     []ComponentInput
	ElementsVars    map[string][]string
	Additives       []string
}

// Result is one successfully balanced (target, substitution) variant.
type Result struct {
	TargetFormula string
	Reaction      render.Reaction
	Substitution  map[string]string
	Rendered      string
}

// options bundles every BalanceRecipe knob an Option can set.
type options struct {
	logger      *zap.SugaredLogger
	tuning      *config.Tuning
	concurrency int
}

func defaultOptions() *options {
	return &options{
		logger:      logging.Nop(),
		tuning:      config.Defaults(),
		concurrency: 1,
	}
}

// Option configures a BalanceRecipe call.
type Option func(*options)

// WithLogger injects a logger for the fallback cascade's Debug/Warn
// trail. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithTuning overrides the numeric tuning knobs (TargetMinNV, ProbeValue,
// FloatRound, EditDistanceRatio). The default is config.Defaults().
func WithTuning(t *config.Tuning) Option {
	return func(o *options) { o.tuning = t }
}

// WithConcurrency sets the worker-pool size used to evaluate (target,
// substitution) variants. n<=1 (the default) runs the sequential cascade
// unchanged; n>1 parallelizes variant evaluation but results are still
// reordered back to input order before returning (SPEC_FULL.md §5).
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}
