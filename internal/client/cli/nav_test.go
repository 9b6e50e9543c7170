package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvukovic/mailpilot/internal/client/panels"
	"github.com/pvukovic/mailpilot/internal/client/routing"
	"github.com/pvukovic/mailpilot/internal/logging"
)

func navApp(session *fakeSession) *App {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	pc := &pingClient{}
	return &App{
		session:  session,
		guard:    routing.NewGuard(session),
		settings: panels.NewSettingsPanel(pc, log),
		emails:   panels.NewEmailPanel(pc, log),
		mode:     ModeOnline,
	}
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	t.Cleanup(func() { printlnFn = old })

	out := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				*out = append(*out, s)
			}
		}
		return 0, nil
	}
	return out
}

func TestOpen_ProtectedViewRedirectsAnonymous(t *testing.T) {
	out := captureOutput(t)
	app := navApp(&fakeSession{authenticated: false})

	require.NoError(t, app.Open(context.Background(), "dashboard"))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Redirecting to home")
	assert.Contains(t, joined, "AI email assistant", "redirect must land on the home view")
}

func TestOpen_ProtectedViewAllowedWhenAuthenticated(t *testing.T) {
	out := captureOutput(t)
	app := navApp(&fakeSession{authenticated: true})

	require.NoError(t, app.Open(context.Background(), "dashboard"))

	joined := strings.Join(*out, "\n")
	assert.NotContains(t, joined, "Redirecting to home")
	assert.Contains(t, joined, "Session:  authenticated")
}

func TestOpen_LogoutThenDashboardRedirects(t *testing.T) {
	out := captureOutput(t)
	session := &fakeSession{authenticated: true}
	app := navApp(session)
	ctx := context.Background()

	require.NoError(t, app.Open(ctx, "dashboard"))
	require.NoError(t, app.Logout(ctx))

	*out = nil
	require.NoError(t, app.Open(ctx, "dashboard"))
	assert.Contains(t, strings.Join(*out, "\n"), "Redirecting to home")
}

func TestOpen_PublicViewsAlwaysAllowed(t *testing.T) {
	for _, view := range []string{"home", "pricing", "services"} {
		out := captureOutput(t)
		app := navApp(&fakeSession{authenticated: false})

		require.NoError(t, app.Open(context.Background(), view))
		assert.NotContains(t, strings.Join(*out, "\n"), "Redirecting to home", "view=%s", view)
	}
}

func TestOpen_UnknownView(t *testing.T) {
	out := captureOutput(t)
	app := navApp(&fakeSession{})

	require.NoError(t, app.Open(context.Background(), "nonsense"))
	assert.Contains(t, strings.Join(*out, "\n"), "Unknown view")
}
