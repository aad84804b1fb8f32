package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/loadorder/pkg/modlist"
	"github.com/matzehuels/loadorder/pkg/observability"
)

// fixer wraps modlist.Fixer with progress logging. Every step is logged at
// debug level; at info level a heartbeat is printed every few seconds for
// long runs.
//
// The fixer is not safe for concurrent use; it keeps state for logging.
type fixer struct {
	modlist.Fixer
	ctx     context.Context
	logger  *log.Logger
	steps   int
	moved   int
	added   []modlist.ID
	lastLog time.Time
}

func newFixer(ctx context.Context) *fixer {
	f := &fixer{ctx: ctx, logger: loggerFromContext(ctx), lastLog: time.Now()}
	f.Progress = f.onStep
	return f
}

func (f *fixer) onStep(s modlist.Step) {
	f.steps++
	if s.Action == modlist.Activated {
		f.added = append(f.added, s.Issue.Target)
	} else {
		f.moved++
	}
	observability.Fix().OnFixStep(f.ctx, s.Issue.Relation.String(), s.Action.String())
	f.logger.Debugf("Step %d: %s (%s), %d issues left, budget %d",
		f.steps, describeIssue(s.Issue), s.Action, s.Remaining, s.Budget)
	if time.Since(f.lastLog) >= 5*time.Second {
		f.logger.Infof("Fixing... %d steps, %d issues left", f.steps, s.Remaining)
		f.lastLog = time.Now()
	}
}

// run optionally pins anchored mods, then repairs the session's active
// list. The session's issues are current when run returns.
func (f *fixer) run(s *session, anchors bool) error {
	prog := newProgress(f.logger)
	if anchors {
		if n := modlist.PinAnchors(s.cat.Rules, s.cat.Active); n > 0 {
			f.logger.Infof("Pinned anchored mods (%d moved)", n)
		}
		s.refresh()
	}
	err := f.Fix(s.cat.Rules, s.cat.Active, s.cat.Inactive, s.issues)
	s.refresh()
	observability.Fix().OnFixComplete(f.ctx, f.steps, s.issues.Len(), time.Since(prog.start), err)
	prog.done(fmt.Sprintf("Autofix finished after %d steps: %d moves, %d activated", f.steps, f.moved, len(f.added)))
	for _, id := range f.added {
		f.logger.Info("Activated dependency", "id", id)
	}
	return err
}
