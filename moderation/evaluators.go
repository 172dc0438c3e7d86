package moderation

import (
	"solibot/contract"
	"solibot/domain"
)

// Evaluator inspects one kind of restriction against a presence change.
// It returns domain.NoAction when it has nothing to correct.
type Evaluator interface {
	Name() string
	Evaluate(change domain.PresenceChange) domain.Action
}

// DefaultEvaluators returns the evaluators in priority order:
// block, then confinement, then mute.
func DefaultEvaluators(reader contract.RestrictionReader) []Evaluator {
	return []Evaluator{
		NewBlockEvaluator(reader),
		NewConfinementEvaluator(reader),
		NewMuteEvaluator(reader),
	}
}

// BlockEvaluator disconnects a user who now sits in a channel they are blocked from.
type BlockEvaluator struct {
	reader contract.RestrictionReader
}

func NewBlockEvaluator(reader contract.RestrictionReader) BlockEvaluator {
	return BlockEvaluator{reader: reader}
}

func (BlockEvaluator) Name() string { return "block" }

func (e BlockEvaluator) Evaluate(change domain.PresenceChange) domain.Action {
	if !change.InVoice() {
		return domain.NoAction
	}
	if !e.reader.IsBlocked(domain.NewBlockKey(change.Guild, change.User, change.After)) {
		return domain.NoAction
	}
	return domain.Disconnect(change.Key(), "Blocked from this voice channel")
}

// ConfinementEvaluator moves a confined user back to their channel.
type ConfinementEvaluator struct {
	reader contract.RestrictionReader
}

func NewConfinementEvaluator(reader contract.RestrictionReader) ConfinementEvaluator {
	return ConfinementEvaluator{reader: reader}
}

func (ConfinementEvaluator) Name() string { return "confinement" }

func (e ConfinementEvaluator) Evaluate(change domain.PresenceChange) domain.Action {
	if !change.InVoice() {
		return domain.NoAction
	}
	confinement, ok := e.reader.Confinement(change.Key())
	if !ok || confinement.Channel == change.After {
		return domain.NoAction
	}
	return domain.MoveTo(change.Key(), confinement.Channel, "Solitary confinement active")
}

// MuteEvaluator re-asserts the mute flag when a muted user lands in a new channel.
// Leaving voice while muted yields an audit-only action.
type MuteEvaluator struct {
	reader contract.RestrictionReader
}

func NewMuteEvaluator(reader contract.RestrictionReader) MuteEvaluator {
	return MuteEvaluator{reader: reader}
}

func (MuteEvaluator) Name() string { return "mute" }

func (e MuteEvaluator) Evaluate(change domain.PresenceChange) domain.Action {
	if _, ok := e.reader.Mute(change.Key()); !ok {
		return domain.NoAction
	}
	switch {
	case change.ChangedChannel():
		return domain.SetMute(change.Key(), true, "Server mute still active")
	case change.LeftVoice():
		return domain.Audit(change.Key(), "Muted user left voice")
	default:
		return domain.NoAction
	}
}
