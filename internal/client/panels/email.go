package panels

import (
	"context"
	"sync"

	"github.com/pvukovic/mailpilot/internal/client/client"
	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// EmailPanel owns the fetch → summarize → send pipeline. Fetching loads the
// raw content of the latest email; summarizing derives the summary from the
// fetched content; sending ships the summary and resets the pipeline.
type EmailPanel struct {
	client client.Client
	log    logging.Logger

	mu      sync.Mutex
	status  Status
	email   models.EmailContent
	lastErr error
	seq     uint64
}

func NewEmailPanel(client client.Client, log logging.Logger) *EmailPanel {
	return &EmailPanel{
		client: client,
		log:    log.With("panel", "email"),
	}
}

// Fetch loads the latest email content. A fetch while one is already in
// flight is a no-op. Fresh content invalidates any previous summary; failed
// fetches keep the previously fetched content visible.
func (p *EmailPanel) Fetch(ctx context.Context) error {
	p.mu.Lock()
	if p.status == StatusLoading {
		p.mu.Unlock()
		return nil
	}
	p.status = StatusLoading
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	content, err := p.client.FetchEmail(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.Debug(ctx, "dropping stale fetch completion", "seq", seq)
		return nil
	}
	if err != nil {
		p.status = StatusError
		p.lastErr = err
		return err
	}

	p.status = StatusLoaded
	p.lastErr = nil
	p.email = models.EmailContent{Raw: content}
	return nil
}

// Summarize generates a summary of the fetched content. It fails locally
// when nothing has been fetched yet.
func (p *EmailPanel) Summarize(ctx context.Context) error {
	p.mu.Lock()
	if p.email.Raw == "" {
		p.mu.Unlock()
		return ErrNoContent
	}
	content := p.email.Raw
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	summary, err := p.client.SummarizeEmail(ctx, content)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.Debug(ctx, "dropping stale summarize completion", "seq", seq)
		return err
	}
	if err != nil {
		p.lastErr = err
		return err
	}

	p.lastErr = nil
	p.email.Summary = summary
	return nil
}

// Send ships the generated summary. On success the pipeline resets so the
// next fetch starts clean; on failure the content and summary stay for a
// retry.
func (p *EmailPanel) Send(ctx context.Context) error {
	p.mu.Lock()
	if p.email.Summary == "" {
		p.mu.Unlock()
		return ErrNoSummary
	}
	summary := p.email.Summary
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	err := p.client.SendEmail(ctx, summary)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.Debug(ctx, "dropping stale send completion", "seq", seq)
		return err
	}
	if err != nil {
		p.lastErr = err
		return err
	}

	p.status = StatusUnloaded
	p.lastErr = nil
	p.email = models.EmailContent{}
	return nil
}

// Content returns the current pipeline state.
func (p *EmailPanel) Content() models.EmailContent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.email
}

// Status returns the lifecycle state of the email resource.
func (p *EmailPanel) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Err returns the error flag from the most recent failed operation, or nil.
func (p *EmailPanel) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
