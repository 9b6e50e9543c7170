// Package models defines client-side data models used by the mailpilot client.
package models

// AgentSettings describes the remote AI agent configuration owned by the
// current account. Local copies may carry unsaved edits; only a successful
// save makes them durable on the server.
type AgentSettings struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	PromptTemplate     string `json:"promptTemplate"`
	CustomInstructions string `json:"customInstructions"`
}

// AgentSettingsPatch is a partial update to AgentSettings. Nil fields are
// left untouched when the patch is applied.
type AgentSettingsPatch struct {
	Name               *string
	Description        *string
	PromptTemplate     *string
	CustomInstructions *string
}

// Apply merges the patch into s, field by field.
func (p AgentSettingsPatch) Apply(s *AgentSettings) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.PromptTemplate != nil {
		s.PromptTemplate = *p.PromptTemplate
	}
	if p.CustomInstructions != nil {
		s.CustomInstructions = *p.CustomInstructions
	}
}

// TrainingFile is a staged binary attachment. Selecting a file only keeps it
// in local state; it travels to the server with the next settings save, which
// then switches the whole request to multipart encoding.
type TrainingFile struct {
	// Name is the original file name, used as the multipart file name.
	Name string

	// Data is the raw file content.
	Data []byte
}
