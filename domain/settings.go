package domain

import "time"

// GuildSettings is the per-guild configuration set through setup.
type GuildSettings struct {
	Guild              GuildID
	ConfinementChannel ChannelID
	LogChannel         ChannelID
	SetupComplete      bool
}

// HasDefaultConfinement tells whether confinement can skip channel selection.
func (s GuildSettings) HasDefaultConfinement() bool {
	return s.ConfinementChannel != NoChannel
}

// PendingKey identifies a confinement flow in progress for a target.
type PendingKey struct {
	Guild  GuildID
	Target UserID
}

// PendingSelection bridges the channel pick and the duration pick of a confinement.
type PendingSelection struct {
	Guild     GuildID
	Target    UserID
	Issuer    UserID
	Channel   ChannelID
	CreatedAt time.Time
}

func (p PendingSelection) Key() PendingKey {
	return PendingKey{Guild: p.Guild, Target: p.Target}
}
