package cli

import (
	"context"

	"github.com/pvukovic/mailpilot/internal/client/routing"
)

var knownViews = map[string]routing.View{
	"home":      routing.ViewHome,
	"pricing":   routing.ViewPricing,
	"services":  routing.ViewServices,
	"dashboard": routing.ViewDashboard,
	"settings":  routing.ViewSettings,
	"emails":    routing.ViewEmails,
}

// Open navigates to a view, consulting the route guard first. Protected
// views redirect anonymous visitors back to home.
func (a *App) Open(ctx context.Context, name string) error {
	view, ok := knownViews[name]
	if !ok {
		printlnFn("Unknown view. Try: home, pricing, services, dashboard, settings, emails")
		return nil
	}

	decision := a.guard.Decide(ctx, view)
	if !decision.Allow {
		printlnFn("This view requires an account. Redirecting to home, please log in first.")
		view = decision.Redirect
	}

	switch view {
	case routing.ViewHome:
		printlnFn("mailpilot — your AI email assistant. Commands: register, login, open pricing.")
	case routing.ViewPricing:
		printlnFn("Plans: Starter (free), Pro, Team. See the website for details.")
	case routing.ViewServices:
		printlnFn("Services: email fetching, AI summarization, automated sending.")
	case routing.ViewDashboard:
		return a.ShowStatus(ctx)
	case routing.ViewSettings:
		return a.ShowSettings(ctx)
	case routing.ViewEmails:
		return a.FetchEmail(ctx)
	}
	return nil
}
