package discord

import (
	stderrors "errors"
	"fmt"
	"solibot/errors"

	"github.com/bwmarrin/discordgo"
)

// JSON error code returned when moving or muting a member who is not in voice.
const codeTargetNotInVoice = 40032

// translate maps REST failures onto the domain errors the enforcer understands.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if stderrors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case codeTargetNotInVoice:
			return fmt.Errorf("%w: %s", errors.ErrUserNotInVoice, restErr.Message.Message)
		case discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%w: %s", errors.ErrMissingPermissions, restErr.Message.Message)
		}
	}
	return fmt.Errorf("%w: %w", errors.ErrPlatform, err)
}
