package arix

// Overlay strings.
const (
	Title       = "ARIX"
	Subtitle    = "臻选系列 · 圣诞限定"
	Tagline     = "沉浸式 3D 交互体验"
	LoadingText = "正在以此刻的灵感为您以此..."
)

// ActionLabel is the toggle button caption for the current state: it names
// the state the next toggle leads to.
func ActionLabel(state TreeState) string {
	if state == StateScattered {
		return "聚合 · 圣诞树"
	}
	return "散开 · 漫天星"
}

// OverlayText is a snapshot of everything a front end prints over the scene.
type OverlayText struct {
	Title    string
	Subtitle string
	Action   string
	// Greeting is the line shown in the center. Empty when nothing should be
	// shown; LoadingText while a request is in flight.
	Greeting string
	Loading  bool
}

// Overlay returns the overlay for the controller's current state. The
// greeting is only shown while assembled.
func (c *Controller) Overlay() OverlayText {
	o := OverlayText{
		Title:    Title,
		Subtitle: Subtitle,
		Action:   ActionLabel(c.state),
	}
	if c.state != StateTreeShape || c.greeter == nil {
		return o
	}
	if c.greeter.Loading() {
		o.Greeting = LoadingText
		o.Loading = true
		return o
	}
	if text := c.greeter.Text(); text != "" {
		o.Greeting = "“" + text + "”"
	}
	return o
}
