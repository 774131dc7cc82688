package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-numerology/internal/config"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func get(t *testing.T, h http.Handler, method, path string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHandler_ServingContent(t *testing.T) {
	srv := NewFeedServer("0")
	ics := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n")
	profiles := []byte(`[{"Nome Completo":"MARIO ROSSI"}]`)
	srv.UpdateCalendar(ics)
	srv.UpdateProfiles(profiles)
	h := srv.Handler()

	tests := []struct {
		path        string
		contentType string
		body        []byte
	}{
		{config.RouteCalendar, config.MimeTextCalendar, ics},
		{config.RouteRoot, config.MimeTextCalendar, ics},
		{config.RouteProfiles, config.MimeJSON, profiles},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, h, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get(config.HeaderContentType))
			assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
			assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
			assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
			assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	srv := NewFeedServer("0")
	srv.UpdateCalendar([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))

	resp := get(t, srv.Handler(), http.MethodHead, config.RouteCalendar, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestHandler_UnknownPath(t *testing.T) {
	srv := NewFeedServer("0")
	srv.UpdateCalendar([]byte("x"))

	resp := get(t, srv.Handler(), http.MethodGet, "/secret.txt", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ETagCaching(t *testing.T) {
	srv := NewFeedServer("0")
	srv.UpdateCalendar([]byte("DATA_VERSION_1"))
	h := srv.Handler()

	etag := get(t, h, http.MethodGet, config.RouteCalendar, nil).Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag)

	tests := []struct {
		name  string
		match string
		want  int
	}{
		{"same tag", etag, http.StatusNotModified},
		{"weak form", "W/" + etag, http.StatusNotModified},
		{"list", `"other", ` + etag, http.StatusNotModified},
		{"wildcard", "*", http.StatusNotModified},
		{"stale tag", `"stale"`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, h, http.MethodGet, config.RouteCalendar, map[string]string{config.HeaderIfNoneMatch: tt.match})
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusNotModified {
				body, _ := io.ReadAll(resp.Body)
				assert.Empty(t, body)
			}
		})
	}
}

func TestHandler_IfModifiedSince(t *testing.T) {
	stamp := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	srv := NewFeedServer("0")
	srv.now = func() time.Time { return stamp }
	srv.UpdateProfiles([]byte("[]"))
	h := srv.Handler()

	resp := get(t, h, http.MethodGet, config.RouteProfiles, map[string]string{
		config.HeaderIfModifiedSince: stamp.Format(http.TimeFormat),
	})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp = get(t, h, http.MethodGet, config.RouteProfiles, map[string]string{
		config.HeaderIfModifiedSince: stamp.Add(-time.Hour).Format(http.TimeFormat),
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, h, http.MethodGet, config.RouteProfiles, map[string]string{
		config.HeaderIfModifiedSince: stamp.Format(http.TimeFormat),
		config.HeaderIfNoneMatch:     `"stale"`,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "an entity tag takes precedence over the date")
}

func TestUpdate_SameContentKeepsLastModified(t *testing.T) {
	stamp := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	srv := NewFeedServer("0")
	srv.now = func() time.Time { return stamp }
	srv.UpdateCalendar([]byte("same"))
	first := srv.calendar.Load()

	srv.now = func() time.Time { return stamp.Add(time.Hour) }
	srv.UpdateCalendar([]byte("same"))
	assert.Same(t, first, srv.calendar.Load())

	srv.UpdateCalendar([]byte("changed"))
	assert.NotEqual(t, first.lastModified, srv.calendar.Load().lastModified)
	assert.NotEqual(t, first.etag, srv.calendar.Load().etag)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0")

	resp := get(t, srv.Handler(), http.MethodPost, config.RouteCalendar, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

func TestHandler_Initializing(t *testing.T) {
	srv := NewFeedServer("0")
	srv.UpdateCalendar([]byte("ready"))

	resp := get(t, srv.Handler(), http.MethodGet, config.RouteProfiles, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "each document has its own readiness")
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

// Run with -race.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewFeedServer("0")
	h := srv.Handler()
	var wg sync.WaitGroup
	end := time.Now().Add(300 * time.Millisecond)

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; time.Now().Before(end); i++ {
				srv.UpdateCalendar([]byte(fmt.Sprintf("VERSION:%d-%d", id, i)))
				srv.UpdateProfiles([]byte(fmt.Sprintf(`[%d]`, i)))
				time.Sleep(time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				for _, path := range []string{config.RouteCalendar, config.RouteProfiles} {
					w := httptest.NewRecorder()
					h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
					if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
						t.Errorf("unexpected status during race test: %d", w.Code)
					}
				}
			}
		}()
	}

	wg.Wait()
}

func TestServer_Lifecycle(t *testing.T) {
	srv := NewFeedServer("0")
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, 2*time.Second, 10*time.Millisecond)
	base := "http://" + srv.Addr()
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}

	resp, err := client.Get(base + config.RouteCalendar)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	srv.UpdateCalendar([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))

	resp, err = client.Get(base + config.RouteCalendar)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timed out")
	}
}

func TestServer_StartErrors(t *testing.T) {
	err := NewFeedServer("").Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRequired)

	err = NewFeedServer("70000").Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRange)
}

func TestLogRequests_UsesConstantMessage(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	resp := get(t, h, http.MethodHead, config.RouteProfiles, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, config.MsgRequest, rec[slog.MessageKey])
	assert.Equal(t, http.MethodHead, rec[config.LogKeyMethod])
	assert.Equal(t, config.RouteProfiles, rec[config.LogKeyRoute])
	assert.Equal(t, config.CompServer, rec[config.LogKeyComponent])
}
