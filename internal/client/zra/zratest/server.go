// Package zratest provides an in-process stand-in for the integration service,
// answering with canned envelopes and counting the requests it receives.
package zratest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Response is a canned reply for one path.
type Response struct {
	Status int
	Body   string
	// Gate, when set, holds the reply until the channel is closed or receives.
	Gate <-chan struct{}
}

// Request is a recorded call.
type Request struct {
	Path          string
	Body          map[string]interface{}
	CorrelationID string
}

// Server records requests and replies from its response table.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string][]Response
	requests  []Request
}

// NewServer starts a server. Unconfigured paths answer 404 with an error envelope.
func NewServer() *Server {
	s := &Server{responses: make(map[string][]Response)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Respond queues a reply for path. Queued replies are used in order; the last one
// repeats once the queue is drained.
func (s *Server) Respond(path string, status int, body string) *Server {
	return s.RespondWith(path, Response{Status: status, Body: body})
}

// RespondWith queues a fully specified reply for path.
func (s *Server) RespondWith(path string, resp Response) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = append(s.responses[path], resp)
	return s
}

// Requests returns the calls received on path, or all calls when path is empty.
func (s *Server) Requests(path string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Request
	for _, r := range s.requests {
		if path == "" || r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:          r.URL.Path,
		Body:          body,
		CorrelationID: r.Header.Get("X-Correlation-ID"),
	})
	queue := s.responses[r.URL.Path]
	var resp Response
	found := len(queue) > 0
	if found {
		resp = queue[0]
		if len(queue) > 1 {
			s.responses[r.URL.Path] = queue[1:]
		}
	}
	s.mu.Unlock()

	if !found {
		resp = Response{Status: http.StatusNotFound, Body: `{"success":false,"error":"Not found"}`}
	}
	if resp.Gate != nil {
		select {
		case <-resp.Gate:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
