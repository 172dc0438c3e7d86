package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrAlreadyActive   = fmt.Errorf("restriction already active")
	ErrAlreadyBlocked  = fmt.Errorf("user already blocked from this channel")
	ErrInvalidDuration = fmt.Errorf("invalid duration")
	ErrMissingChannel  = fmt.Errorf("a voice channel is required")
	ErrSelfTarget      = fmt.Errorf("cannot target yourself")
	ErrProtectedTarget = fmt.Errorf("target is a protected account")
	ErrBotTarget       = fmt.Errorf("cannot target bots")
	ErrSessionExpired  = fmt.Errorf("selection session expired")
	ErrInvalidRequest  = fmt.Errorf("invalid request")

	ErrUserNotInVoice     = fmt.Errorf("target user is not connected to voice")
	ErrMissingPermissions = fmt.Errorf("missing permissions on the platform")
	ErrPlatform           = fmt.Errorf("platform call failed")
	ErrDispatchTimeout    = fmt.Errorf("presence dispatch timed out")
)
