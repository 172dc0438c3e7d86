package sink

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"solibot/domain"
	"solibot/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogSink_Levels(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	s := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	req.NoError(s.Consume(ctx, event.RestrictionLifted{Kind: domain.KindMute, Guild: "g", User: "u", Cause: domain.LiftExpired}))
	req.Contains(buf.String(), `"msg":"Restriction lifted"`)
	req.Contains(buf.String(), `"remaining":"Permanent"`)
	req.Contains(buf.String(), `"sink":"audit"`)

	buf.Reset()
	req.NoError(s.Consume(ctx, event.CorrectiveActionExecuted{Outcome: domain.Outcome{
		Action: domain.Disconnect(domain.NewMemberKey("g", "u"), "Blocked from this voice channel"),
		Status: domain.StatusFailed,
		Err:    fmt.Errorf("missing permissions"),
	}}))
	req.Contains(buf.String(), `"level":"WARN"`)
	req.Contains(buf.String(), `"error":"missing permissions"`)
}
