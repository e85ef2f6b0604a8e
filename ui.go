package canopy

// Parent is anything widgets can be attached to: a ScreenGUI root or another
// widget. Child positions are relative to the parent's absolute origin.
type Parent interface {
	origin() (x, y float64)
	adopt(child Widget)
}

// Widget is a UI element updated (and painted) once per frame.
// The set of widgets is closed: Frame, TextLabel and FPSLabel.
type Widget interface {
	Parent
	Update(dt float64, dst Surface)
	// Bounds returns the widget's absolute screen rectangle.
	Bounds() Rect
}

// --- ScreenGUI ---

// ScreenGUI is a UI root registered with a scene. Disabled roots are skipped
// entirely, children included.
type ScreenGUI struct {
	Enabled bool
	X, Y    float64

	scene    *Scene
	children []Widget
}

// NewScreenGUI creates an enabled UI root and appends it to the scene.
func NewScreenGUI(scene *Scene) *ScreenGUI {
	g := &ScreenGUI{Enabled: true, scene: scene}
	scene.addUI(g)
	return g
}

// Scene returns the scene the root belongs to.
func (g *ScreenGUI) Scene() *Scene {
	return g.scene
}

// Children returns the root's widgets. The returned slice MUST NOT be mutated.
func (g *ScreenGUI) Children() []Widget {
	return g.children
}

// Update updates every child in creation order.
func (g *ScreenGUI) Update(dt float64, dst Surface) {
	for _, child := range g.children {
		child.Update(dt, dst)
	}
}

func (g *ScreenGUI) origin() (float64, float64) { return g.X, g.Y }
func (g *ScreenGUI) adopt(child Widget)          { g.children = append(g.children, child) }

// --- shared widget state ---

// widgetBase holds the fields every widget shares.
type widgetBase struct {
	X, Y          float64
	Width, Height float64

	Visible         bool
	BackgroundColor Color
	Opacity         float64

	parent   Parent
	children []Widget
}

func newWidgetBase(parent Parent) widgetBase {
	return widgetBase{
		Visible:         true,
		BackgroundColor: ColorWhite,
		Opacity:         1,
		parent:          parent,
	}
}

func (w *widgetBase) origin() (float64, float64) {
	px, py := w.parent.origin()
	return px + w.X, py + w.Y
}

func (w *widgetBase) adopt(child Widget) { w.children = append(w.children, child) }

// Bounds returns the widget's absolute screen rectangle.
func (w *widgetBase) Bounds() Rect {
	x, y := w.origin()
	return Rect{X: x, Y: y, Width: w.Width, Height: w.Height}
}

// Children returns the widget's children. The returned slice MUST NOT be mutated.
func (w *widgetBase) Children() []Widget {
	return w.children
}

func (w *widgetBase) paintBackground(dst Surface) {
	dst.FillRect(w.Bounds(), w.BackgroundColor, w.Opacity)
}

func (w *widgetBase) updateChildren(dt float64, dst Surface) {
	for _, child := range w.children {
		child.Update(dt, dst)
	}
}

// --- Frame ---

// Frame is a filled rectangle.
type Frame struct {
	widgetBase
}

var _ Widget = (*Frame)(nil)

// NewFrame creates a visible white frame and attaches it to parent.
func NewFrame(parent Parent) *Frame {
	f := &Frame{widgetBase: newWidgetBase(parent)}
	parent.adopt(f)
	return f
}

// Update paints the frame, then its children. Hidden frames hide their
// children too.
func (f *Frame) Update(dt float64, dst Surface) {
	if !f.Visible {
		return
	}
	f.paintBackground(dst)
	f.updateChildren(dt, dst)
}

// --- TextLabel ---

// TextLabel is a frame with a single line of text. The text baseline sits
// FontSize below the label's top edge. Opacity applies to the background only.
type TextLabel struct {
	widgetBase

	Text       string
	TextColor  Color
	FontFamily string
	FontSize   float64
}

var _ Widget = (*TextLabel)(nil)

// NewTextLabel creates a visible label and attaches it to parent.
func NewTextLabel(parent Parent) *TextLabel {
	l := newTextLabel(parent)
	parent.adopt(l)
	return l
}

func newTextLabel(parent Parent) *TextLabel {
	return &TextLabel{
		widgetBase: newWidgetBase(parent),
		TextColor:  ColorBlack,
		FontFamily: DefaultFontFamily,
	}
}

// Update paints the background and text, then the children.
func (l *TextLabel) Update(dt float64, dst Surface) {
	if !l.Visible {
		return
	}
	l.paintBackground(dst)
	x, y := l.origin()
	dst.DrawText(l.Text, x, y+l.FontSize, l.FontSize, l.FontFamily, l.TextColor)
	l.updateChildren(dt, dst)
}
