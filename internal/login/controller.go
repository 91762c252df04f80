package login

// Host is the rendering environment the controller runs inside.
type Host interface {
	Diagnostic(msg string)
	RequestClose()
}

// Controller owns the login state. It is not safe for concurrent use; hosts call
// Dispatch from their UI goroutine.
type Controller struct {
	state    State
	host     Host
	logoPath string
}

func NewController(host Host, logoPath string) *Controller {
	return &Controller{state: NewState(), host: host, logoPath: logoPath}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Tree() Tree {
	return Render(c.state, c.logoPath)
}

func (c *Controller) Dispatch(e Event) Tree {
	var eff Effect
	c.state, eff = Update(c.state, e)
	if c.host != nil {
		if eff.Diagnostic != "" {
			c.host.Diagnostic(eff.Diagnostic)
		}
		if eff.Close {
			c.host.RequestClose()
		}
	}
	return c.Tree()
}
