package domain

import "fmt"

// ActionKind is the corrective platform call chosen for an event.
type ActionKind int

const (
	// ActionNone means the evaluator has nothing to say about this change.
	ActionNone ActionKind = iota
	ActionDisconnect
	ActionMove
	ActionMute
	ActionUnmute
	// ActionAudit stops evaluation and is only logged: there is nothing to correct.
	ActionAudit
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionDisconnect:
		return "disconnect"
	case ActionMove:
		return "move"
	case ActionMute:
		return "mute"
	case ActionUnmute:
		return "unmute"
	case ActionAudit:
		return "audit"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one corrective call against the platform.
// Channel is only meaningful for ActionMove.
type Action struct {
	Kind    ActionKind
	Guild   GuildID
	User    UserID
	Channel ChannelID
	Reason  string
}

var NoAction = Action{Kind: ActionNone}

func Disconnect(key MemberKey, reason string) Action {
	return Action{Kind: ActionDisconnect, Guild: key.Guild, User: key.User, Reason: reason}
}

func MoveTo(key MemberKey, channel ChannelID, reason string) Action {
	return Action{Kind: ActionMove, Guild: key.Guild, User: key.User, Channel: channel, Reason: reason}
}

func SetMute(key MemberKey, muted bool, reason string) Action {
	kind := ActionUnmute
	if muted {
		kind = ActionMute
	}
	return Action{Kind: kind, Guild: key.Guild, User: key.User, Reason: reason}
}

func Audit(key MemberKey, reason string) Action {
	return Action{Kind: ActionAudit, Guild: key.Guild, User: key.User, Reason: reason}
}

// Corrective is true for actions that reach the platform.
func (a Action) Corrective() bool {
	return a.Kind != ActionNone && a.Kind != ActionAudit
}

// Trigger records which path produced an action.
type Trigger string

const (
	TriggerCreate   Trigger = "create"
	TriggerRelease  Trigger = "release"
	TriggerExpire   Trigger = "expire"
	TriggerPresence Trigger = "presence"
)

// Status is the typed result of a corrective call.
type Status int

const (
	// StatusNoop: no platform call was needed.
	StatusNoop Status = iota
	StatusApplied
	// StatusUserLeftVoice: the user disconnected before the call landed. Expected, not an error.
	StatusUserLeftVoice
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNoop:
		return "noop"
	case StatusApplied:
		return "applied"
	case StatusUserLeftVoice:
		return "user_left_voice"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome pairs an action with what happened when it was attempted.
type Outcome struct {
	Action  Action
	Trigger Trigger
	Status  Status
	Err     error
}

func Noop(trigger Trigger) Outcome {
	return Outcome{Action: NoAction, Trigger: trigger, Status: StatusNoop}
}

// Failed is true only for platform errors other than the user leaving voice.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
