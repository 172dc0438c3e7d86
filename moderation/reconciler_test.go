package moderation

import (
	"solibot/domain"
	"solibot/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Evaluators_In_Isolation(t *testing.T) {
	key := domain.NewMemberKey(guild, target)

	tests := []struct {
		name     string
		given    func(reader *mocks.MockRestrictionReader)
		eval     func(reader *mocks.MockRestrictionReader) Evaluator
		change   domain.PresenceChange
		expected domain.Action
	}{
		{
			name: "block hit disconnects",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().IsBlocked(domain.NewBlockKey(guild, target, channelA)).Return(true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewBlockEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, After: channelA},
			expected: domain.Disconnect(key, "Blocked from this voice channel"),
		},
		{
			name:     "block ignores a user out of voice",
			given:    func(*mocks.MockRestrictionReader) {},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewBlockEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, Before: channelA},
			expected: domain.NoAction,
		},
		{
			name: "confinement moves back a user who wandered",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Confinement(key).Return(domain.Confinement{Guild: guild, User: target, Channel: channelB}, true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewConfinementEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, Before: channelB, After: channelA},
			expected: domain.MoveTo(key, channelB, "Solitary confinement active"),
		},
		{
			name: "confinement is satisfied in its own channel",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Confinement(key).Return(domain.Confinement{Guild: guild, User: target, Channel: channelB}, true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewConfinementEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, After: channelB},
			expected: domain.NoAction,
		},
		{
			name: "mute is re-asserted on a new channel",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Mute(key).Return(domain.Mute{Guild: guild, User: target}, true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewMuteEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, Before: channelA, After: channelB},
			expected: domain.SetMute(key, true, "Server mute still active"),
		},
		{
			name: "mute is not re-asserted without a channel change",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Mute(key).Return(domain.Mute{Guild: guild, User: target}, true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewMuteEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, Before: channelA, After: channelA},
			expected: domain.NoAction,
		},
		{
			name: "muted user leaving voice is audited",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Mute(key).Return(domain.Mute{Guild: guild, User: target}, true)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewMuteEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, Before: channelA},
			expected: domain.Audit(key, "Muted user left voice"),
		},
		{
			name: "unmuted user is ignored",
			given: func(reader *mocks.MockRestrictionReader) {
				reader.EXPECT().Mute(key).Return(domain.Mute{}, false)
			},
			eval:     func(r *mocks.MockRestrictionReader) Evaluator { return NewMuteEvaluator(r) },
			change:   domain.PresenceChange{Guild: guild, User: target, After: channelA},
			expected: domain.NoAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			reader := mocks.NewMockRestrictionReader(ctrl)
			tt.given(reader)

			req.Equal(tt.expected, tt.eval(reader).Evaluate(tt.change))
		})
	}
}

// A user blocked from A, confined to B and muted, who joins A, is only disconnected.
func Test_Reconcile_Priority_Block_Wins(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)
	ctx := t.Context()

	_, _, err := h.manager.Blocks.Create(ctx, guild, target, channelA, moderator)
	req.NoError(err)
	_, _, err = h.manager.Confinements.Create(ctx, guild, target, channelB, moderator, 0)
	req.NoError(err)
	_, _, err = h.manager.Mutes.Create(ctx, guild, target, moderator, 0)
	req.NoError(err)

	// Only Disconnect is expected: a Move or SetMute would fail the mock
	h.platform.EXPECT().Disconnect(gomock.Any(), guild, target, gomock.Any()).Return(nil).Times(1)

	change := domain.PresenceChange{Guild: guild, User: target, Before: channelC, After: channelA}
	action, by := h.reconciler.Resolve(change)
	req.Equal("block", by)
	req.Equal(domain.ActionDisconnect, action.Kind)

	outcome := h.reconciler.Reconcile(ctx, change)
	req.Equal(domain.StatusApplied, outcome.Status)
	req.Equal(domain.TriggerPresence, outcome.Trigger)
	req.Len(h.publisher.outcomes(), 1)
}

func Test_Reconcile_Confinement_Before_Mute(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)
	ctx := t.Context()

	_, _, err := h.manager.Confinements.Create(ctx, guild, target, channelB, moderator, 0)
	req.NoError(err)
	_, _, err = h.manager.Mutes.Create(ctx, guild, target, moderator, 0)
	req.NoError(err)

	h.platform.EXPECT().MoveToChannel(gomock.Any(), guild, target, channelB, gomock.Any()).Return(nil).Times(1)

	outcome := h.reconciler.Reconcile(ctx, domain.PresenceChange{Guild: guild, User: target, After: channelA})
	req.Equal(domain.ActionMove, outcome.Action.Kind)

	// Landing in the confinement channel then re-asserts the mute
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).Return(nil).Times(1)

	outcome = h.reconciler.Reconcile(ctx, domain.PresenceChange{Guild: guild, User: target, Before: channelA, After: channelB})
	req.Equal(domain.ActionMute, outcome.Action.Kind)
}

func Test_Reconcile_Failure_Leaves_Registries_Alone(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)
	ctx := t.Context()

	_, _, err := h.manager.Confinements.Create(ctx, guild, target, channelB, moderator, 0)
	req.NoError(err)
	h.platform.EXPECT().MoveToChannel(gomock.Any(), guild, target, channelB, gomock.Any()).
		Return(errPlatformDown).Times(1)

	outcome := h.reconciler.Reconcile(ctx, domain.PresenceChange{Guild: guild, User: target, After: channelA})

	req.True(outcome.Failed())
	req.ErrorIs(outcome.Err, errPlatformDown)
	req.True(h.manager.Confinements.IsActive(guild, target))
}

func Test_Reconcile_Nothing_To_Do(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	outcome := h.reconciler.Reconcile(t.Context(), domain.PresenceChange{Guild: guild, User: target, After: channelA})

	req.Equal(domain.StatusNoop, outcome.Status)
	req.Equal(domain.ActionNone, outcome.Action.Kind)
	req.Empty(h.publisher.outcomes())
}
