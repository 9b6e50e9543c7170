package cli

import (
	"context"
)

// FetchEmail asks the backend for the latest email and shows its content.
func (a *App) FetchEmail(ctx context.Context) error {
	if err := a.emails.Fetch(ctx); err != nil {
		printlnFn(friendlyError(err))
		return err
	}

	printlnFn("Fetched email:")
	printlnFn(truncate(a.emails.Content().Raw, 400))
	return nil
}

// SummarizeEmail generates a summary of the fetched email.
func (a *App) SummarizeEmail(ctx context.Context) error {
	if err := a.emails.Summarize(ctx); err != nil {
		printlnFn(friendlyError(err))
		return err
	}

	printlnFn("Summary:")
	printlnFn(a.emails.Content().Summary)
	return nil
}

// SendEmail sends the generated summary out through the backend.
func (a *App) SendEmail(ctx context.Context) error {
	if err := a.emails.Send(ctx); err != nil {
		printlnFn(friendlyError(err))
		return err
	}

	printlnFn("Summary sent.")
	return nil
}

// ShowStatus renders the dashboard: session state, connectivity, and the
// lifecycle state of each panel.
func (a *App) ShowStatus(ctx context.Context) error {
	state := "anonymous"
	if a.isLoggedIn(ctx) {
		state = "authenticated"
	}

	printlnFn("Session:  " + state)
	printlnFn("Backend:  " + string(a.currentMode()))
	printlnFn("Settings: " + a.settings.Status().String())

	email := a.emails.Content()
	printlnFn("Email:    " + a.emails.Status().String())
	if email.Raw != "" {
		printlnFn("  content: " + truncate(email.Raw, 60))
	}
	if email.Summary != "" {
		printlnFn("  summary: " + truncate(email.Summary, 60))
	}
	return nil
}
