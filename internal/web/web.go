package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"datecal/internal/config"
	"datecal/internal/datemath"
	appLog "datecal/internal/log"
	"datecal/internal/model"
	"datecal/internal/schedule"
)

// Server exposes the calendar calculators as a JSON HTTP API.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux

	// In-memory cache for the /api/today snapshot. The cron loop in
	// cmd/datecal refreshes it; a cold cache is filled on first request.
	snapMu   sync.RWMutex
	snapshot *snapshotCache
}

// snapshotCache holds the last computed day facts and their timestamp.
type snapshotCache struct {
	facts     model.DayFacts
	updatedAt time.Time
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server, wrapped in
// basic auth when configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

// basicAuthEnabled reports whether HTTP Basic Auth is configured. Empty
// credentials count as disabled.
func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic
// Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// /health stays reachable for probes.
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="datecal", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/facts", s.handleFacts)
	s.mux.HandleFunc("/api/today", s.handleToday)
	s.mux.HandleFunc("/api/format", s.handleFormat)
	s.mux.HandleFunc("/api/week-number", s.handleWeekNumber)
	s.mux.HandleFunc("/api/next-friday", s.handleNextFriday)
	s.mux.HandleFunc("/api/period/days", s.handlePeriodDays)
	s.mux.HandleFunc("/api/period/contains", s.handlePeriodContains)
	s.mux.HandleFunc("/api/schedule", s.handleSchedule)
	s.mux.HandleFunc("/api/occurrences", s.handleOccurrences)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleFacts returns the fact sheet for a single date.
//
// GET /api/facts?date=2024-02-23
// date defaults to "now" in the configured timezone.
func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	t, ok := s.dateParam(w, r, "date")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, datemath.Facts(t))
}

// handleToday serves the cached fact sheet for the current day. The cache
// is refreshed by the cron loop; a cold or stale cache (date rolled over)
// is recomputed on demand.
func (s *Server) handleToday(w http.ResponseWriter, _ *http.Request) {
	today := s.now().UTC().Format("2006-01-02")

	s.snapMu.RLock()
	sc := s.snapshot
	s.snapMu.RUnlock()
	if sc != nil && sc.facts.Date == today {
		writeJSON(w, http.StatusOK, sc.facts)
		return
	}

	writeJSON(w, http.StatusOK, s.Refresh(s.now()))
}

// Refresh recomputes the today snapshot for the given instant and stores
// it. The cron scheduler in cmd/datecal calls this on every tick.
func (s *Server) Refresh(now time.Time) model.DayFacts {
	facts := datemath.Facts(now)

	s.snapMu.Lock()
	s.snapshot = &snapshotCache{facts: facts, updatedAt: time.Now()}
	s.snapMu.Unlock()

	appLog.Debug("today snapshot refreshed", "date", facts.Date)
	return facts
}

// handleFormat returns the formatted renditions of a date string: the
// US-style 12-hour form, the 24-hour clock and the epoch timestamp in
// milliseconds.
//
// GET /api/format?date=2024-03-05T09:05:07Z
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing date parameter")
		return
	}

	us, err := datemath.FormatUS(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ms, err := datemath.Timestamp(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, _ := datemath.ParseISO(raw)

	writeJSON(w, http.StatusOK, formatResponse{
		Date:        raw,
		US:          us,
		Clock:       datemath.Clock(t),
		TimestampMs: ms,
	})
}

// handleWeekNumber returns the ISO week number of a date.
//
// GET /api/week-number?date=2024-02-23
func (s *Server) handleWeekNumber(w http.ResponseWriter, r *http.Request) {
	t, ok := s.dateParam(w, r, "date")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, weekNumberResponse{
		Date:       t.UTC().Format("2006-01-02"),
		WeekNumber: datemath.WeekNumber(t),
	})
}

// handleNextFriday returns the next Friday after a date.
//
// GET /api/next-friday?date=2024-01-06
func (s *Server) handleNextFriday(w http.ResponseWriter, r *http.Request) {
	t, ok := s.dateParam(w, r, "date")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, nextFridayResponse{
		Date:       t.UTC().Format("2006-01-02"),
		NextFriday: datemath.NextFriday(t),
	})
}

// handlePeriodDays returns the inclusive day count of a period.
//
// GET /api/period/days?start=2024-02-01&end=2024-02-02
func (s *Server) handlePeriodDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := datemath.DaysInPeriod(q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, periodDaysResponse{
		Start: q.Get("start"),
		End:   q.Get("end"),
		Days:  days,
	})
}

// handlePeriodContains reports whether a date falls within a period,
// boundaries inclusive.
//
// GET /api/period/contains?date=2024-02-01&start=2024-02-02&end=2024-03-02
func (s *Server) handlePeriodContains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := model.Period{Start: q.Get("start"), End: q.Get("end")}
	contains, err := datemath.InPeriod(q.Get("date"), p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, periodContainsResponse{
		Date:     q.Get("date"),
		Period:   p,
		Contains: contains,
	})
}

// handleSchedule expands a work/off-day pattern over a period.
//
// GET /api/schedule?start=01-01-2024&end=15-01-2024&work=1&off=3[&format=ics]
// work and off default to the configured pattern. format=ics serves the
// schedule as an iCalendar feed instead of JSON.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p := model.Period{Start: q.Get("start"), End: q.Get("end")}
	pat := model.Pattern{
		WorkDays: parseIntDefault(q.Get("work"), s.cfg.Schedule.WorkDays),
		OffDays:  parseIntDefault(q.Get("off"), s.cfg.Schedule.OffDays),
	}

	dates, err := schedule.Generate(p, pat)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if q.Get("format") == "ics" {
		feed, err := schedule.ToICS(dates, "Work schedule")
		if err != nil {
			appLog.Error("schedule ICS export failed", err, "start", p.Start, "end", p.End)
			writeError(w, http.StatusInternalServerError, "failed to build ICS feed")
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(feed))
		return
	}

	writeJSON(w, http.StatusOK, scheduleResponse{
		Period:  p,
		Pattern: pat,
		Dates:   dates,
	})
}

// handleOccurrences expands a recurrence rule over a period. Boundaries
// use the schedule DD-MM-YYYY encoding.
//
// GET /api/occurrences?rule=FREQ=WEEKLY;BYDAY=FR&start=01-01-2024&end=15-01-2024
func (s *Server) handleOccurrences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rule := q.Get("rule")
	if rule == "" {
		writeError(w, http.StatusBadRequest, "missing rule parameter")
		return
	}

	p := model.Period{Start: q.Get("start"), End: q.Get("end")}
	occ, err := schedule.Occurrences(rule, p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, occurrencesResponse{
		Rule:        rule,
		Period:      p,
		Occurrences: occ,
	})
}

// dateParam parses the named ISO date query parameter, defaulting to "now"
// in the configured timezone. On a malformed value it writes a 400 and
// returns ok=false.
func (s *Server) dateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return s.now(), true
	}
	t, err := datemath.ParseISO(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return t, true
}

// now returns the current instant in the configured timezone, falling back
// to time.Local on an invalid zone name.
func (s *Server) now() time.Time {
	return time.Now().In(resolveLocationOrLocal(s.cfg.Timezone))
}

func resolveLocationOrLocal(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		appLog.Warn("invalid timezone, falling back to local", "timezone", name)
		return time.Local
	}
	return loc
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// Response shapes.

type formatResponse struct {
	Date        string `json:"date"`
	US          string `json:"us"`
	Clock       string `json:"clock"`
	TimestampMs int64  `json:"timestamp_ms"`
}

type weekNumberResponse struct {
	Date       string `json:"date"`
	WeekNumber int    `json:"week_number"`
}

type nextFridayResponse struct {
	Date       string    `json:"date"`
	NextFriday time.Time `json:"next_friday"`
}

type periodDaysResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type periodContainsResponse struct {
	Date     string       `json:"date"`
	Period   model.Period `json:"period"`
	Contains bool         `json:"contains"`
}

type scheduleResponse struct {
	Period  model.Period  `json:"period"`
	Pattern model.Pattern `json:"pattern"`
	Dates   []string      `json:"dates"`
}

type occurrencesResponse struct {
	Rule        string       `json:"rule"`
	Period      model.Period `json:"period"`
	Occurrences []time.Time  `json:"occurrences"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to encode JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
