package session

// Decision tells the navigation layer which surface to show.
type Decision int

const (
	// Wait means the initial session check is still running; show nothing yet.
	Wait Decision = iota
	// ShowAuth redirects to the authentication screen.
	ShowAuth
	// ShowCatalog permits access to the catalog-and-cart surface.
	ShowCatalog
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case ShowAuth:
		return "auth"
	case ShowCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// Decide is the route guard: a pure function of the two gate flags.
func Decide(restoring, authenticated bool) Decision {
	if restoring {
		return Wait
	}
	if !authenticated {
		return ShowAuth
	}
	return ShowCatalog
}

// Route answers the guard decision for the gate's current state.
func (g *Gate) Route() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Decide(g.restoring, g.authenticated)
}
