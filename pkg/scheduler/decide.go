package scheduler

import (
	"time"

	"github.com/agentpress/agentpress/pkg/domain"
)

// Action is what the scheduler should do for a profile on this cycle
type Action int

// profile actions
const (
	ActionSkip Action = iota
	ActionGenerate
	ActionPromote
)

// String returns the action name for logging
func (a Action) String() string {
	switch a {
	case ActionGenerate:
		return "generate"
	case ActionPromote:
		return "promote"
	default:
		return "skip"
	}
}

// Decide picks the action for a profile given its current in-flight edition
// and the time. An in-flight edition always takes priority: draft and
// preview_sent are promoted through the remaining delivery steps, and a
// scheduled edition blocks everything until the sweep resolves it, so a
// generation window spanning several cycle ticks still produces exactly one
// edition. With nothing in flight a new edition is generated only on the day
// before the profile's send day.
func Decide(p *domain.Profile, open *domain.Edition, now time.Time) Action {
	if open != nil {
		if open.Open() {
			return ActionPromote
		}
		if open.Status == domain.EditionScheduled {
			return ActionSkip
		}
	}
	if domain.GenerationWindow(p.SendDay, p.UTCOffsetMinutes, now) {
		return ActionGenerate
	}
	return ActionSkip
}
