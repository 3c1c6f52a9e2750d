// Package calendartest runs an in-memory stand-in for the Google Calendar
// v3 events API.
package calendartest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

type Server struct {
	*httptest.Server

	// PageSize limits list responses so callers must follow page tokens.
	PageSize int

	mu       sync.Mutex
	events   map[string]map[string]*gcal.Event
	nextID   int
	failNext int
	requests []string
}

func NewServer() *Server {
	s := &Server{
		PageSize: 250,
		events:   map[string]map[string]*gcal.Event{},
		nextID:   1,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.route))
	return s
}

// FailNext makes the next request answer with status.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
}

// Requests returns "METHOD path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) AddEvent(calendarID string, ev *gcal.Event) *gcal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(calendarID, ev)
}

func (s *Server) Event(calendarID, eventID string) *gcal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[calendarID][eventID]
}

func (s *Server) store(calendarID string, ev *gcal.Event) *gcal.Event {
	if ev.Id == "" {
		ev.Id = fmt.Sprintf("evt%d", s.nextID)
		s.nextID++
	}
	ev.HtmlLink = "https://calendar.example/event?eid=" + ev.Id
	ev.Status = "confirmed"
	if s.events[calendarID] == nil {
		s.events[calendarID] = map[string]*gcal.Event{}
	}
	s.events[calendarID][ev.Id] = ev
	return ev
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)

	if s.failNext != 0 {
		status := s.failNext
		s.failNext = 0
		http.Error(w, http.StatusText(status), status)
		return
	}

	// .../calendars/{calendarId}/events[/{eventId}]
	idx := strings.Index(r.URL.Path, "/calendars/")
	if idx < 0 {
		http.Error(w, "unsupported endpoint", http.StatusNotFound)
		return
	}
	parts := strings.Split(strings.Trim(r.URL.Path[idx+len("/calendars/"):], "/"), "/")
	if len(parts) < 2 || parts[1] != "events" {
		http.Error(w, "unsupported endpoint", http.StatusNotFound)
		return
	}
	calendarID := parts[0]

	if len(parts) == 2 {
		switch r.Method {
		case http.MethodGet:
			s.list(w, r, calendarID)
		case http.MethodPost:
			s.insert(w, r, calendarID)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	ev := s.events[calendarID][parts[2]]
	if ev == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, ev)
	case http.MethodPut, http.MethodPatch:
		s.update(w, r, calendarID, ev)
	case http.MethodDelete:
		delete(s.events[calendarID], ev.Id)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) insert(w http.ResponseWriter, r *http.Request, calendarID string) {
	var ev gcal.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev.Id = ""
	writeJSON(w, s.store(calendarID, &ev))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, calendarID string, existing *gcal.Event) {
	var ev gcal.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev.Id = existing.Id
	writeJSON(w, s.store(calendarID, &ev))
}

// list returns events intersecting [timeMin, timeMax), ordered by start.
// All-day events are included when their date falls inside the range.
func (s *Server) list(w http.ResponseWriter, r *http.Request, calendarID string) {
	q := r.URL.Query()
	timeMin, _ := time.Parse(time.RFC3339, q.Get("timeMin"))
	timeMax, _ := time.Parse(time.RFC3339, q.Get("timeMax"))

	var items []*gcal.Event
	for _, ev := range s.events[calendarID] {
		start, end, ok := bounds(ev)
		if !ok {
			continue
		}
		if !timeMax.IsZero() && !start.Before(timeMax) {
			continue
		}
		if !timeMin.IsZero() && !end.After(timeMin) {
			continue
		}
		items = append(items, ev)
	}
	sort.Slice(items, func(i, j int) bool {
		a, _, _ := bounds(items[i])
		b, _, _ := bounds(items[j])
		if a.Equal(b) {
			return items[i].Id < items[j].Id
		}
		return a.Before(b)
	})

	offset, _ := strconv.Atoi(q.Get("pageToken"))
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + s.PageSize
	if end > len(items) {
		end = len(items)
	}

	resp := &gcal.Events{Kind: "calendar#events", Items: items[offset:end]}
	if end < len(items) {
		resp.NextPageToken = strconv.Itoa(end)
	}
	writeJSON(w, resp)
}

func bounds(ev *gcal.Event) (time.Time, time.Time, bool) {
	if ev.Start == nil || ev.End == nil {
		return time.Time{}, time.Time{}, false
	}
	if ev.Start.DateTime != "" {
		start, err1 := time.Parse(time.RFC3339, ev.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, ev.End.DateTime)
		return start, end, err1 == nil && err2 == nil
	}
	start, err1 := time.Parse("2006-01-02", ev.Start.Date)
	end, err2 := time.Parse("2006-01-02", ev.End.Date)
	return start, end, err1 == nil && err2 == nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
