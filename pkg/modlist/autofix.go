package modlist

import (
	"errors"
	"fmt"
)

// BaseBudget is the part of the autofix retry budget that does not depend on
// the list sizes.
const BaseBudget = 100

var (
	// ErrIncompatible is returned by [Autofix] when two active mods are
	// incompatible. Incompatibilities are never resolved automatically.
	ErrIncompatible = errors.New("incompatible mods are both active")

	// ErrMissingDependency is returned by [Autofix] when a dependency is in
	// neither list.
	ErrMissingDependency = errors.New("dependency is not installed")

	// ErrBudgetExhausted is returned by [Autofix] when the retry budget runs
	// out, usually because the ordering relations form a cycle.
	ErrBudgetExhausted = errors.New("retry budget exhausted")
)

// FixError describes why autofix stopped. It wraps one of ErrIncompatible,
// ErrMissingDependency or ErrBudgetExhausted.
type FixError struct {
	Mod    ID
	Target ID
	Err    error
}

// Error implements the error interface.
func (e *FixError) Error() string {
	return fmt.Sprintf("autofix %s -> %s: %v", e.Mod, e.Target, e.Err)
}

// Unwrap returns the sentinel cause.
func (e *FixError) Unwrap() error { return e.Err }

// StepAction is what a repair step did.
type StepAction int

const (
	// MovedTarget moved the target into the declaring mod's position.
	MovedTarget StepAction = iota
	// MovedMod moved the declaring mod into the target's position.
	MovedMod
	// Activated moved a dependency from the inactive to the active list.
	Activated
)

func (a StepAction) String() string {
	switch a {
	case MovedTarget:
		return "moved target"
	case MovedMod:
		return "moved mod"
	case Activated:
		return "activated"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Step is reported to [Fixer.Progress] after each repair.
type Step struct {
	Issue     Issue
	Action    StepAction
	Remaining int // issues left after the step
	Budget    int // retry budget left after the step
}

// Fixer runs the autofix loop. The zero value uses the default budget and
// reports nothing.
type Fixer struct {
	// Budget overrides the retry budget. Zero means
	// BaseBudget + active.Len() + inactive.Len().
	Budget int

	// Progress, if set, is called after every repair step.
	Progress func(Step)
}

// Autofix repairs active with the default [Fixer].
func Autofix(db *RuleDB, active, inactive *List, issues Issues) error {
	return Fixer{}.Fix(db, active, inactive, issues)
}

// pair is an unordered pair of mods.
type pair struct{ a, b ID }

func newPair(x, y ID) pair {
	if y < x {
		x, y = y, x
	}
	return pair{x, y}
}

// Fix walks active cyclically and repairs one issue at a time until issues
// is empty (nil error) or a repair is impossible (*FixError).
//
// issues must be current for active; it is rebuilt after every repair and
// holds the remaining issues when Fix returns. Ordering issues are repaired
// by moving one mod of the pair into the other's position; which of the two
// moves alternates each time the same pair comes up, which dampens
// oscillation between three or more mods but does not prevent it. Missing
// dependencies are appended from inactive. Failure leaves both lists as they
// are at that point.
func (f Fixer) Fix(db *RuleDB, active, inactive *List, issues Issues) error {
	budget := f.Budget
	if budget <= 0 {
		budget = BaseBudget + active.Len() + inactive.Len()
	}
	reversed := make(map[pair]bool)
	index, skipped := 0, 0

	for !issues.Empty() {
		if active.Len() == 0 || skipped > active.Len() {
			// issues was not built from active.
			issues.Rebuild(db, active)
			skipped = 0
			continue
		}
		if index >= active.Len() {
			index = 0
		}
		mod := active.At(index).ID

		issue, ok := issues.first(mod)
		if !ok {
			index++
			skipped++
			continue
		}
		skipped = 0

		budget--
		if budget <= 0 {
			return &FixError{Mod: mod, Target: issue.Target, Err: ErrBudgetExhausted}
		}

		var action StepAction
		switch issue.Relation {
		case Before, After:
			key := newPair(mod, issue.Target)
			modPos, _ := active.Index(mod)
			targetPos, ok := active.Index(issue.Target)
			if !ok {
				issues.Rebuild(db, active)
				continue
			}
			if reversed[key] {
				action = MovedMod
				_ = active.Move(modPos, targetPos)
			} else {
				action = MovedTarget
				_ = active.Move(targetPos, modPos)
			}
			reversed[key] = !reversed[key]

		case Dependency:
			info, ok := inactive.Remove(issue.Target)
			if !ok {
				return &FixError{Mod: mod, Target: issue.Target, Err: ErrMissingDependency}
			}
			action = Activated
			_ = active.Append(issue.Target, info)

		case Incompatible:
			return &FixError{Mod: mod, Target: issue.Target, Err: ErrIncompatible}
		}

		issues.Rebuild(db, active)

		if f.Progress != nil {
			f.Progress(Step{Issue: issue, Action: action, Remaining: issues.Len(), Budget: budget})
		}
	}
	return nil
}
