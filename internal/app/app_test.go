package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-numerology/internal/app"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/interpret"
	"github.com/zalando/go-keyring"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const marioCard = "BEGIN:VCARD\nVERSION:3.0\nFN:Mario Rossi\nBDAY:1985-06-15\nEND:VCARD\n"

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type recorder struct {
	mu       sync.Mutex
	calendar []byte
	profiles []byte
	updates  int
}

func (r *recorder) UpdateCalendar(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendar = data
	r.updates++
}

func (r *recorder) UpdateProfiles(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = data
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

type stubFetcher struct {
	body      string
	gotUser   string
	gotPass   string
	callCount int
	mu        sync.Mutex
}

func (f *stubFetcher) Fetch(_ context.Context, _, user, pass string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotUser, f.gotPass = user, pass
	f.callCount++
	return io.NopCloser(strings.NewReader(f.body)), nil
}

func localSettings(t *testing.T) config.Settings {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.vcf")
	require.NoError(t, os.WriteFile(path, []byte(marioCard), config.FilePermUserRW))

	s := config.Defaults()
	s.Source.Mode = config.SourceModeLocal
	s.Source.LocalPath = path
	return s
}

func TestService_SyncPublishes(t *testing.T) {
	pub := &recorder{}
	svc := app.NewService(localSettings(t), pub, nil, nil)
	svc.Clock = fixedClock{time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)}

	require.NoError(t, svc.Sync(context.Background(), true))
	assert.NoError(t, svc.LastError())

	require.Len(t, svc.Entries(), 1)
	assert.Equal(t, "Mario Rossi", svc.Entries()[0].Name)

	assert.Contains(t, string(pub.calendar), "SUMMARY:Mario Rossi: Q1 11 → 11")

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(pub.profiles, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Mario Rossi", docs[0][config.KeyFullName])
	assert.EqualValues(t, 2024, docs[0][config.KeyCalendarYear])
}

func TestService_LocalizedSummaries(t *testing.T) {
	cat, err := interpret.NewCatalog("it")
	require.NoError(t, err)

	pub := &recorder{}
	svc := app.NewService(localSettings(t), pub, nil, cat)
	svc.Clock = fixedClock{time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)}

	require.NoError(t, svc.Sync(context.Background(), false))
	ics := string(pub.calendar)
	assert.Contains(t, ics, "Micro ciclo Q1: 11 → 11")
	assert.Contains(t, ics, "Micro-Pinnacolo 7 → 7")
	assert.Contains(t, ics, "DESCRIPTION:Periodo dal 01/06/2024 al 30/09/2024")
}

func TestService_FailureKeepsPreviousDocuments(t *testing.T) {
	pub := &recorder{}
	s := localSettings(t)
	svc := app.NewService(s, pub, nil, nil)
	svc.Clock = fixedClock{time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Sync(context.Background(), false))
	before := pub.count()

	s.Source.LocalPath = filepath.Join(t.TempDir(), "missing.vcf")
	svc.UpdateSettings(s)

	err := svc.Sync(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, svc.LastError(), err)
	assert.Equal(t, before, pub.count())
	assert.Len(t, svc.Entries(), 1, "entries from the last good refresh survive")
}

func TestService_InvalidReminder(t *testing.T) {
	s := localSettings(t)
	s.Reminder = config.ReminderSettings{Enabled: true, Value: 1, Unit: "w", Direction: config.DirBefore}
	svc := app.NewService(s, &recorder{}, nil, nil)

	err := svc.Sync(context.Background(), false)
	assert.ErrorContains(t, err, config.ErrReminderUnit)
}

func TestSyncConfigFrom_KeyringPassword(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, app.StorePassword("mario", "s3cret"))

	s := config.Defaults()
	s.Source = config.SourceSettings{Mode: config.SourceModeWeb, URL: "https://dav.example.com/book", User: "mario"}
	s.Reminder.Enabled = true
	s.ReferenceYear = 2023

	cfg, err := app.SyncConfigFrom(s)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.WebPass)
	assert.Equal(t, "-P1D", cfg.ReminderTrigger)
	assert.Equal(t, 2023, cfg.ReferenceYear)
	assert.Equal(t, config.DefaultMinBirthYear, cfg.MinBirthYear)

	s.Source.User = "luigi"
	cfg, err = app.SyncConfigFrom(s)
	require.NoError(t, err)
	assert.Empty(t, cfg.WebPass, "a missing password is not fatal")
}

func TestPasswordRoundTrip(t *testing.T) {
	keyring.MockInit()

	_, err := app.LoadPassword("nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrKeyringGet)
	assert.True(t, errors.Is(err, keyring.ErrNotFound))

	require.NoError(t, app.StorePassword("mario", "pw"))
	got, err := app.LoadPassword("mario")
	require.NoError(t, err)
	assert.Equal(t, "pw", got)
}

func TestService_RunWebSourceAndReload(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, app.StorePassword("mario", "pw"))

	s := config.Defaults()
	s.Source = config.SourceSettings{Mode: config.SourceModeWeb, URL: "https://dav.example.com/book", User: "mario"}

	pub := &recorder{}
	fetcher := &stubFetcher{body: marioCard}
	svc := app.NewService(s, pub, fetcher, nil)
	svc.Clock = fixedClock{time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pub.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	s.Server.RefreshMin = 5
	svc.UpdateSettings(s)
	require.Eventually(t, func() bool { return pub.count() == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 5, svc.Settings().Server.RefreshMin)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	fetcher.mu.Lock()
	defer fetcher.mu.Unlock()
	assert.Equal(t, "mario", fetcher.gotUser)
	assert.Equal(t, "pw", fetcher.gotPass)
	assert.Equal(t, 2, fetcher.callCount)
}
