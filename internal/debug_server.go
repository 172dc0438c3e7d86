package internal

import (
	"cmp"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"solibot/domain"
	"solibot/moderation"
	"solibot/projection"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"
)

//go:embed inspect.html
var templatesFS embed.FS

// StateProvider is the live view the debug server renders.
type StateProvider interface {
	Snapshot() moderation.Snapshot
	LiveTimers() int
}

// History is the audit read model: counters and the latest entries.
type History interface {
	Stats() map[string]int
	Recent() []projection.Entry
}

type InspectRow struct {
	Kind      string `json:"kind"`
	Guild     string `json:"guild"`
	User      string `json:"user"`
	Channel   string `json:"channel,omitempty"`
	IssuedBy  string `json:"issued_by"`
	Since     string `json:"since"`
	ExpiresIn string `json:"expires_in"`
}

type HistoryRow struct {
	At     string `json:"at"`
	Guild  string `json:"guild"`
	User   string `json:"user"`
	Kind   string `json:"kind"`
	Action string `json:"action"`
}

type PageData struct {
	Rows       []InspectRow   `json:"rows"`
	LiveTimers int            `json:"live_timers"`
	Stats      map[string]int `json:"stats"`
	Recent     []HistoryRow   `json:"recent"`
}

// NewDebugHandler serves /inspect as HTML and /snapshot as JSON.
func NewDebugHandler(clk clock.Clock, state StateProvider, history History) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, buildPage(clk.Now(), state, history))
	})
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(buildPage(clk.Now(), state, history))
	})
	return mux
}

// StartDebugServer listens on every interface until the process exits.
func StartDebugServer(log *slog.Logger, port int, handler http.Handler) {
	address := fmt.Sprintf("0.0.0.0:%d", port)
	go func() {
		log.Info("Debug inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", port))
		if err := http.ListenAndServe(address, handler); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}

func buildPage(now time.Time, state StateProvider, history History) PageData {
	snapshot := state.Snapshot()
	data := PageData{LiveTimers: state.LiveTimers(), Stats: map[string]int{}}
	if history != nil {
		data.Stats = history.Stats()
		// newest first
		recent := history.Recent()
		for i := len(recent) - 1; i >= 0; i-- {
			e := recent[i]
			data.Recent = append(data.Recent, HistoryRow{
				At:     humanize.RelTime(e.At, now, "ago", "from now"),
				Guild:  string(e.Guild),
				User:   string(e.User),
				Kind:   string(e.Kind),
				Action: e.Action,
			})
		}
	}

	for _, m := range snapshot.Mutes {
		data.Rows = append(data.Rows, row(now, domain.KindMute, m.Guild, m.User, domain.NoChannel, m.IssuedBy, m.CreatedAt, m.Expiry))
	}
	for _, c := range snapshot.Confinements {
		data.Rows = append(data.Rows, row(now, domain.KindConfinement, c.Guild, c.User, c.Channel, c.IssuedBy, c.CreatedAt, c.Expiry))
	}
	for _, b := range snapshot.Blocks {
		data.Rows = append(data.Rows, row(now, domain.KindBlock, b.Guild, b.User, b.Channel, b.IssuedBy, b.CreatedAt, domain.Expiry{}))
	}
	slices.SortFunc(data.Rows, func(a, b InspectRow) int {
		return cmp.Or(
			cmp.Compare(a.Guild, b.Guild),
			cmp.Compare(a.User, b.User),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Channel, b.Channel),
		)
	})
	return data
}

func row(now time.Time, kind domain.Kind, guild domain.GuildID, user domain.UserID, channel domain.ChannelID,
	issuedBy domain.UserID, createdAt time.Time, expiry domain.Expiry) InspectRow {
	r := InspectRow{
		Kind:      string(kind),
		Guild:     string(guild),
		User:      string(user),
		Channel:   string(channel),
		IssuedBy:  string(issuedBy),
		Since:     humanize.RelTime(createdAt, now, "ago", "from now"),
		ExpiresIn: "never",
	}
	if expiry.ExpiresAt != nil {
		r.ExpiresIn = humanize.RelTime(*expiry.ExpiresAt, now, "ago", "from now")
	}
	return r
}
