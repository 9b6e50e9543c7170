// Package routing decides which views the current client may reach.
package routing

import "context"

// View identifies a navigable view of the application.
type View string

const (
	ViewHome      View = "home"
	ViewPricing   View = "pricing"
	ViewServices  View = "services"
	ViewDashboard View = "dashboard"
	ViewSettings  View = "settings"
	ViewEmails    View = "emails"
)

// protected lists the views that require an authenticated session.
var protected = map[View]bool{
	ViewDashboard: true,
	ViewSettings:  true,
	ViewEmails:    true,
}

// Decision is the outcome of a navigation attempt. When Allow is false,
// Redirect names the view the client is sent to instead.
type Decision struct {
	Allow    bool
	Redirect View
}

// Session is the slice of the session service the guard needs.
type Session interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard evaluates the route policy against the injected session. The
// session is consulted on every call, so a logout immediately affects the
// next navigation attempt.
type Guard struct {
	session Session
}

func NewGuard(session Session) *Guard {
	return &Guard{session: session}
}

// Decide returns whether the requested view may be rendered. Anonymous
// visitors are redirected from protected views to home; everything else is
// allowed for everyone.
func (g *Guard) Decide(ctx context.Context, view View) Decision {
	if protected[view] && !g.session.IsAuthenticated(ctx) {
		return Decision{Allow: false, Redirect: ViewHome}
	}
	return Decision{Allow: true}
}
