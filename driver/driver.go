package driver

import (
	"context"
	"errors"
	"sync"

	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/reaction"
	"github.com/cx-luo/reaction-balancer/render"
)

// BalanceRecipe runs the full fallback cascade (screen -> drop-organics ->
// sentence co-location) for every (target, substitution) variant and
// returns one Result per variant that balanced successfully. Failures are
// logged, never returned: a caller sees only the recipes that worked.
// SPEC_FULL.md §4.H.
func BalanceRecipe(ctx context.Context, precursors []MaterialInput, targets []TargetInput, sentences []string, opts ...Option) ([]Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	screened := screenPrecursors(precursors, o)

	type task struct {
		target TargetInput
		sub    map[string]string
	}
	var tasks []task
	for _, t := range targets {
		for _, sub := range reaction.ExpandSubstitutions(t.ElementsVars, toRawComponents(t.Composition)) {
			tasks = append(tasks, task{target: t, sub: sub})
		}
	}

	run := func(idx int) *Result {
		if err := ctx.Err(); err != nil {
			return nil
		}
		tk := tasks[idx]
		return balanceVariant(screened, tk.target, tk.sub, sentences, o)
	}

	results := make([]*Result, len(tasks))
	if o.concurrency <= 1 {
		for i := range tasks {
			results[i] = run(i)
		}
	} else {
		sem := make(chan struct{}, o.concurrency)
		var wg sync.WaitGroup
		for i := range tasks {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i] = run(i)
			}(i)
		}
		wg.Wait()
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func screenPrecursors(precursors []MaterialInput, o *options) []*material.MaterialInfo {
	out := make([]*material.MaterialInfo, 0, len(precursors))
	for _, p := range precursors {
		m, err := material.New(p.MaterialString, p.MaterialFormula, toRawComponents(p.Composition), nil)
		if err != nil {
			o.logger.Debugw("dropping precursor during screening", "formula", p.MaterialFormula, "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func balanceVariant(screened []*material.MaterialInfo, t TargetInput, sub map[string]string, sentences []string, o *options) *Result {
	target, err := material.New(t.MaterialString, t.MaterialFormula, toRawComponents(t.Composition), sub)
	if err != nil {
		o.logger.Debugw("skipping target variant: formula error", "target", t.MaterialFormula, "error", err)
		return nil
	}

	res, err := reaction.Balance(screened, target, o.tuning)
	if err == nil {
		return buildResult(t, res, sub, screened)
	}

	var cannotBalance *reaction.CannotBalanceError
	if !errors.As(err, &cannotBalance) {
		o.logger.Warnw("unexpected error balancing target variant", "target", t.MaterialFormula, "error", err)
		return nil
	}

	var tooFew *reaction.TooFewPrecursorsError
	if errors.As(cannotBalance.Cause, &tooFew) {
		nonOrganic := reaction.DropOrganics(screened)
		res, err := reaction.Balance(nonOrganic, target, o.tuning)
		if err == nil {
			return buildResult(t, res, sub, nonOrganic)
		}
		o.logger.Debugw("target variant unbalanceable after dropping organics", "target", t.MaterialFormula, "error", err)
		return nil
	}

	var tooMany *reaction.TooManyPrecursorsError
	if errors.As(cannotBalance.Cause, &tooMany) {
		for _, subset := range reaction.CandidateSubsets(screened, sentences, o.tuning) {
			res, err := reaction.Balance(subset, target, o.tuning)
			if err == nil {
				return buildResult(t, res, sub, subset)
			}
		}
		o.logger.Debugw("no candidate subset balanced target variant", "target", t.MaterialFormula)
		return nil
	}

	o.logger.Debugw("target variant rejected", "target", t.MaterialFormula, "error", err)
	return nil
}

func buildResult(t TargetInput, res *reaction.Result, sub map[string]string, precursors []*material.MaterialInfo) *Result {
	reactionOut := render.Reaction{LHS: res.LHS, RHS: res.RHS}
	rendered := render.Render(t.MaterialFormula, reactionOut, sub, t.Additives, precursors)
	return &Result{
		TargetFormula: t.MaterialFormula,
		Reaction:      reactionOut,
		Substitution:  sub,
		Rendered:      rendered,
	}
}

func toRawComponents(in []ComponentInput) []material.RawComponent {
	out := make([]material.RawComponent, len(in))
	for i, c := range in {
		out[i] = material.RawComponent{Amount: c.Amount, Elements: c.Elements}
	}
	return out
}
