package panels

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// fakeClient implements client.Client with controllable results and
// optional gates to hold a call in flight.
type fakeClient struct {
	mu sync.Mutex

	GetRet   *models.AgentSettings
	GetErr   error
	GetCalls int
	GetGate  chan struct{}

	SaveErr   error
	SaveCalls int
	LastSaved models.AgentSettings
	LastFile  *models.TrainingFile

	FetchRet   string
	FetchErr   error
	FetchCalls int
	FetchGate  chan struct{}

	SummarizeRet string
	SummarizeErr error

	SendErr   error
	SendCalls int
	LastSent  string
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	return "", nil
}
func (f *fakeClient) Register(ctx context.Context, email string, password []byte) error { return nil }

func (f *fakeClient) GetAgentSettings(ctx context.Context) (*models.AgentSettings, error) {
	f.mu.Lock()
	f.GetCalls++
	gate := f.GetGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	s := *f.GetRet
	return &s, nil
}

func (f *fakeClient) SaveAgentSettings(ctx context.Context, settings models.AgentSettings, file *models.TrainingFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	f.LastSaved = settings
	f.LastFile = file
	return f.SaveErr
}

func (f *fakeClient) FetchEmail(ctx context.Context) (string, error) {
	f.mu.Lock()
	f.FetchCalls++
	gate := f.FetchGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchRet, f.FetchErr
}

func (f *fakeClient) SummarizeEmail(ctx context.Context, content string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SummarizeRet, f.SummarizeErr
}

func (f *fakeClient) SendEmail(ctx context.Context, summary string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SendCalls++
	f.LastSent = summary
	return f.SendErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }
func (f *fakeClient) Close() error                   { return nil }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
