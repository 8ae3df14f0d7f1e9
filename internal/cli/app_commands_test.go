package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/herbalif/herbalif/internal/accounts"
	"github.com/herbalif/herbalif/internal/classifier"
	"github.com/herbalif/herbalif/internal/history"
	"github.com/herbalif/herbalif/internal/ingest"
	"github.com/herbalif/herbalif/internal/knowledge"
	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/previews"
	"github.com/herbalif/herbalif/internal/session"
	"github.com/herbalif/herbalif/internal/workflow"
)

// newTestApp wires a full App over an in-memory substrate, with stdin
// replaced by the given script and the classifier pointed at classifierURL.
func newTestApp(t *testing.T, input, classifierURL string) *App {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	substrate := kv.NewMemoryStore()

	sessions := session.NewManager(substrate, []byte("test-secret"), logger)
	accts := accounts.NewStore(substrate, sessions, accounts.NewFixedSecretVerifier(), logger)
	records := history.NewStore(substrate, logger)

	app := &App{
		logger:   logger,
		sessions: sessions,
		accounts: accts,
		records:  records,
		reader:   bufio.NewReader(strings.NewReader(input)),
	}

	pipeline := ingest.New(sessions, knowledge.NewBase(), records, logger, app.onRecordSaved)
	app.workflow = workflow.New(
		classifier.NewHTTPClient(classifierURL, time.Second),
		previews.NewLocalStore(t.TempDir()),
		pipeline,
		logger,
	)
	return app
}

func stubOutput(t *testing.T) *[]string {
	t.Helper()

	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()

	origRead := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = origRead })
}

func TestApp_RegisterIdentifyHistoryDelete(t *testing.T) {
	stubPassword(t, accounts.DemoSecret)
	lines := stubOutput(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"prediksi": "saga"}`)
	}))
	defer srv.Close()

	image := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(image, []byte("jpegbytes"), 0o600))

	app := newTestApp(t, strings.Join([]string{
		"Alice",           // register: name
		"alice@mail.test", // register: email
		image,             // identify: file path
	}, "\n")+"\n", srv.URL)

	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "alice@mail.test", app.status())

	require.NoError(t, app.Identify(ctx))

	current := app.sessions.Current(ctx)
	records := app.records.History(ctx, current.ID)
	require.Len(t, records, 1)
	require.Equal(t, "saga", records[0].PredictedLabel)
	require.Equal(t, "leaf.jpg", records[0].ImageName)

	require.NoError(t, app.History(ctx))
	require.Contains(t, strings.Join(*lines, "\n"), "saga")
}

func TestApp_DeleteRemovesRecord(t *testing.T) {
	stubPassword(t, accounts.DemoSecret)
	stubOutput(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"prediksi": "kelor"}`)
	}))
	defer srv.Close()

	image := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(image, []byte("jpegbytes"), 0o600))

	ctx := context.Background()

	app := newTestApp(t, "Bob\nbob@mail.test\n"+image+"\n", srv.URL)
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Identify(ctx))

	current := app.sessions.Current(ctx)
	records := app.records.History(ctx, current.ID)
	require.Len(t, records, 1)

	// feed the id prompt after the fact
	app.reader = bufio.NewReader(strings.NewReader(records[0].ID + "\n"))
	require.NoError(t, app.Delete(ctx))
	require.Empty(t, app.records.History(ctx, current.ID))
}

func TestApp_IdentifyAnonymousIsNotRecorded(t *testing.T) {
	lines := stubOutput(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"prediksi": "tomat"}`)
	}))
	defer srv.Close()

	image := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(image, []byte("jpegbytes"), 0o600))

	app := newTestApp(t, image+"\n", srv.URL)

	require.NoError(t, app.Identify(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "tomat")
	require.Equal(t, workflow.StateSucceeded, app.workflow.State())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	stubPassword(t, accounts.DemoSecret)
	stubOutput(t)

	ctx := context.Background()

	app := newTestApp(t, "Carol\ncarol@mail.test\n", "http://unused")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())

	stubPassword(t, "wrong")
	app.reader = bufio.NewReader(strings.NewReader("carol@mail.test\n"))
	require.Error(t, app.Login(ctx))
	require.False(t, app.isLoggedIn())
}

func TestApp_HistoryRequiresLogin(t *testing.T) {
	lines := stubOutput(t)

	app := newTestApp(t, "", "http://unused")
	require.NoError(t, app.History(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Sign in")
}
