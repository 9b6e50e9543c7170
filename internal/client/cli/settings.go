package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/client/panels"
)

// readFile is a test seam for loading a training file from disk.
var readFile = os.ReadFile

// ShowSettings renders the settings panel, loading it on first view.
func (a *App) ShowSettings(ctx context.Context) error {
	if a.settings.Status() == panels.StatusUnloaded {
		if err := a.settings.Load(ctx); err != nil {
			printlnFn(friendlyError(err))
			return err
		}
	}

	s := a.settings.Settings()
	printlnFn("Agent settings [" + a.settings.Status().String() + "]")
	printlnFn("  name:                " + s.Name)
	printlnFn("  description:         " + s.Description)
	printlnFn("  prompt template:     " + truncate(s.PromptTemplate, 60))
	printlnFn("  custom instructions: " + truncate(s.CustomInstructions, 60))
	if f := a.settings.StagedFile(); f != nil {
		printlnFn("  staged training file: " + f.Name)
	}
	if a.settings.Dirty() {
		printlnFn("  * unsaved changes")
	}
	if err := a.settings.Err(); err != nil {
		printlnFn("  ! " + friendlyError(err))
	}
	return nil
}

// EditSettings prompts for new field values and saves the result. Pressing
// Enter on a prompt keeps the current value.
func (a *App) EditSettings(ctx context.Context) error {
	if a.settings.Status() == panels.StatusUnloaded {
		if err := a.settings.Load(ctx); err != nil {
			printlnFn(friendlyError(err))
			return err
		}
	}

	current := a.settings.Settings()
	var patch models.AgentSettingsPatch

	name, err := getSimpleText(a.reader, "Agent name ["+current.Name+"]", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}

	description, err := getSimpleText(a.reader, "Description ["+truncate(current.Description, 40)+"]", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		patch.Description = &description
	}

	template, err := GetMultiline(a.reader, "Prompt template", os.Stdout)
	if err != nil {
		return err
	}
	if template != "" {
		patch.PromptTemplate = &template
	}

	instructions, err := GetMultiline(a.reader, "Custom instructions", os.Stdout)
	if err != nil {
		return err
	}
	if instructions != "" {
		patch.CustomInstructions = &instructions
	}

	return a.saveSettings(ctx, patch)
}

// AttachTrainingFile stages a file from disk. It is uploaded with the next
// save, which switches the request to multipart encoding.
func (a *App) AttachTrainingFile(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to training file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := readFile(path)
	if err != nil {
		printlnFn("Could not read file: " + err.Error())
		return err
	}

	a.settings.StageFile(&models.TrainingFile{Name: filepath.Base(path), Data: data})
	printlnFn("File staged. It will be uploaded with the next save.")
	return nil
}

// SaveSettings retries saving the current edits (and any staged file).
func (a *App) SaveSettings(ctx context.Context) error {
	return a.saveSettings(ctx, models.AgentSettingsPatch{})
}

func (a *App) saveSettings(ctx context.Context, patch models.AgentSettingsPatch) error {
	if err := a.settings.Save(ctx, patch); err != nil {
		printlnFn(friendlyError(err))
		printlnFn("Your edits are kept locally. Retry with 'save' or drop them with 'discard'.")
		return err
	}
	printlnFn("Settings saved.")
	return nil
}

// DiscardEdits drops unsaved edits and the staged training file.
func (a *App) DiscardEdits(ctx context.Context) error {
	a.settings.DiscardEdits()
	printlnFn("Unsaved changes discarded.")
	return nil
}
