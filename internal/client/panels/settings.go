package panels

import (
	"context"
	"sync"

	"github.com/pvukovic/mailpilot/internal/client/client"
	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// SettingsPanel owns the agent-settings resource: the durable baseline as
// last loaded or saved, the locally edited copy, and an optionally staged
// training file that travels with the next save.
//
// Saves are optimistic: a patch is merged into the editable state before
// the network call, and a failed save leaves the edits and the staged file
// in place with only the error flag raised. The user retries or discards.
type SettingsPanel struct {
	client client.Client
	log    logging.Logger

	mu       sync.Mutex
	status   Status
	baseline models.AgentSettings
	edits    models.AgentSettings
	staged   *models.TrainingFile
	lastErr  error
	seq      uint64
}

func NewSettingsPanel(client client.Client, log logging.Logger) *SettingsPanel {
	return &SettingsPanel{
		client: client,
		log:    log.With("panel", "settings"),
	}
}

// Load fetches the settings from the server. A load while one is already in
// flight is a no-op. On failure the previously loaded data stays visible.
func (p *SettingsPanel) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.status == StatusLoading {
		p.mu.Unlock()
		return nil
	}
	p.status = StatusLoading
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	settings, err := p.client.GetAgentSettings(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.Debug(ctx, "dropping stale load completion", "seq", seq)
		return nil
	}
	if err != nil {
		p.status = StatusError
		p.lastErr = err
		return err
	}

	p.status = StatusLoaded
	p.lastErr = nil
	p.baseline = *settings
	p.edits = *settings
	return nil
}

// Save merges the patch into the editable state immediately, then writes the
// whole edited settings (plus any staged file) to the server. On success the
// edits become the new durable baseline and the staged file is consumed; on
// failure nothing is rolled back.
func (p *SettingsPanel) Save(ctx context.Context, patch models.AgentSettingsPatch) error {
	p.mu.Lock()
	patch.Apply(&p.edits)
	snapshot := p.edits
	staged := p.staged
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	err := p.client.SaveAgentSettings(ctx, snapshot, staged)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		p.log.Debug(ctx, "dropping stale save completion", "seq", seq)
		return err
	}
	if err != nil {
		p.lastErr = err
		return err
	}

	p.status = StatusLoaded
	p.lastErr = nil
	p.baseline = snapshot
	p.staged = nil
	return nil
}

// StageFile keeps the training file in local state until the next Save.
func (p *SettingsPanel) StageFile(file *models.TrainingFile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.staged = file
}

// DiscardEdits resets the editable state to the durable baseline and drops
// any staged file.
func (p *SettingsPanel) DiscardEdits() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.edits = p.baseline
	p.staged = nil
	p.lastErr = nil
}

// Settings returns the current editable state.
func (p *SettingsPanel) Settings() models.AgentSettings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.edits
}

// Baseline returns the last durable state.
func (p *SettingsPanel) Baseline() models.AgentSettings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.baseline
}

// StagedFile returns the staged training file, or nil.
func (p *SettingsPanel) StagedFile() *models.TrainingFile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.staged
}

// Dirty reports whether local state differs from the durable baseline.
func (p *SettingsPanel) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.edits != p.baseline || p.staged != nil
}

// Status returns the lifecycle state of the resource.
func (p *SettingsPanel) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Err returns the error flag from the most recent failed operation, or nil.
func (p *SettingsPanel) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
