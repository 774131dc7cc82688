// Package server publishes the iCalendar feed and the JSON profile documents
// produced by the refresh worker.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
)

// resource is one rendered document with its HTTP cache validators.
type resource struct {
	data         []byte
	contentType  string
	etag         string
	lastModified string // http.TimeFormat
}

// FeedServer serves the latest calendar and profile documents. Readers
// never block: each document lives behind an atomic pointer swapped on
// update.
type FeedServer struct {
	Port string

	calendar atomic.Pointer[resource]
	profiles atomic.Pointer[resource]
	addr     atomic.Pointer[string]

	// now stamps Last-Modified. Tests may replace it.
	now func() time.Time
}

// NewFeedServer creates a server bound to localhost:port once started.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{Port: port, now: time.Now}
}

// Handler routes the feed endpoints. "/" serves the calendar so that
// subscriptions pointing at the bare host keep working.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteCalendar, s.serve(&s.calendar))
	mux.HandleFunc(config.RouteProfiles, s.serve(&s.profiles))
	mux.HandleFunc(config.RouteRoot, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != config.RouteRoot {
			http.Error(w, config.HTTPMsgNotFound, http.StatusNotFound)
			return
		}
		s.serve(&s.calendar)(w, r)
	})
	return logRequests(mux)
}

// Start listens on localhost and blocks until ctx is cancelled. Bind errors
// are returned immediately.
func (s *FeedServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil && s.Port != "0" {
		return err
	}

	ln, err := net.Listen("tcp", config.LocalhostBindAddr+config.AddrSeparator+s.Port)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
	addr := ln.Addr().String()
	s.addr.Store(&addr)

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, addr,
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Addr returns the bound address, or "" before Start has listened.
func (s *FeedServer) Addr() string {
	if p := s.addr.Load(); p != nil {
		return *p
	}
	return ""
}

// UpdateCalendar replaces the served iCalendar feed.
func (s *FeedServer) UpdateCalendar(data []byte) {
	s.store(&s.calendar, data, config.MimeTextCalendar, config.RouteCalendar)
}

// UpdateProfiles replaces the served JSON profile documents.
func (s *FeedServer) UpdateProfiles(data []byte) {
	s.store(&s.profiles, data, config.MimeJSON, config.RouteProfiles)
}

// store swaps in a new resource. Identical content keeps its previous
// Last-Modified so conditional requests stay valid across refreshes.
func (s *FeedServer) store(slot *atomic.Pointer[resource], data []byte, contentType, route string) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	if old := slot.Load(); old != nil && old.etag == etag {
		return
	}

	slot.Store(&resource{
		data:         data,
		contentType:  contentType,
		etag:         etag,
		lastModified: s.now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, route,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

func (s *FeedServer) serve(slot *atomic.Pointer[resource]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set(config.HeaderAllow, config.AllowedMethods)
			http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
			return
		}

		item := slot.Load()
		if item == nil {
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
			return
		}

		h := w.Header()
		h.Set(config.HeaderContentType, item.contentType)
		h.Set(config.HeaderXContentType, config.MimeNoSniff)
		h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
		h.Set(config.HeaderETag, item.etag)
		h.Set(config.HeaderLastModified, item.lastModified)

		if notModified(r, item) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		if r.Method == http.MethodGet {
			if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
				slog.Error(config.ErrWriteResp,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyError, err,
				)
			}
		}
	}
}

// notModified evaluates If-None-Match first and falls back to
// If-Modified-Since only when no entity tag was sent.
func notModified(r *http.Request, item *resource) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		for _, tag := range strings.Split(match, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "*" || strings.TrimPrefix(tag, "W/") == item.etag {
				return true
			}
		}
		return false
	}

	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, item.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug(config.MsgRequest,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyMethod, r.Method,
			config.LogKeyRoute, r.URL.Path,
			config.LogKeyDuration, time.Since(start).Milliseconds(),
		)
	})
}
