package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface receives draw calls. Images are placed in world space; filled
// rectangles and text are UI draws in screen space. Each call carries its
// own opacity, so nothing one draw sets affects the next.
type Surface interface {
	DrawImage(img *ebiten.Image, dst Rect, opacity, flipX, flipY float64)
	FillRect(dst Rect, c Color, opacity float64)
	DrawText(s string, x, baseline float64, size float64, family string, c Color)
}

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandImage CommandType = iota // DrawImage, world space
	CommandRect                     // filled rectangle, screen space
	CommandText                     // text run, screen space
)

// RenderCommand is a single recorded draw.
type RenderCommand struct {
	Type    CommandType
	Image   *ebiten.Image
	Dst     Rect
	Opacity float64
	FlipX   float64
	FlipY   float64
	Color   Color

	// Text fields (CommandText).
	Text     string
	FontSize float64
	Family   string
}

const defaultCommandCap = 256

// CommandBuffer records draws during Update and replays them in Draw,
// in call order.
type CommandBuffer struct {
	commands []RenderCommand
}

var _ Surface = (*CommandBuffer)(nil)

// NewCommandBuffer creates an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{commands: make([]RenderCommand, 0, defaultCommandCap)}
}

// DrawImage records an image blit. Negative flip factors mirror the image
// around the destination's left or top edge.
func (b *CommandBuffer) DrawImage(img *ebiten.Image, dst Rect, opacity, flipX, flipY float64) {
	b.commands = append(b.commands, RenderCommand{
		Type:    CommandImage,
		Image:   img,
		Dst:     dst,
		Opacity: opacity,
		FlipX:   flipX,
		FlipY:   flipY,
	})
}

// FillRect records a filled rectangle.
func (b *CommandBuffer) FillRect(dst Rect, c Color, opacity float64) {
	b.commands = append(b.commands, RenderCommand{
		Type:    CommandRect,
		Dst:     dst,
		Color:   c,
		Opacity: opacity,
	})
}

// DrawText records a text run whose baseline sits at (x, baseline).
func (b *CommandBuffer) DrawText(s string, x, baseline float64, size float64, family string, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type:     CommandText,
		Dst:      Rect{X: x, Y: baseline},
		Color:    c,
		Opacity:  1,
		Text:     s,
		FontSize: size,
		Family:   family,
	})
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated.
func (b *CommandBuffer) Commands() []RenderCommand {
	return b.commands
}

// Len returns the number of recorded commands.
func (b *CommandBuffer) Len() int {
	return len(b.commands)
}

// Reset drops all recorded commands, keeping the backing storage.
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
}

// Submit replays the commands onto target. Image commands go through the
// camera's view matrix; a nil camera means world == screen.
func (b *CommandBuffer) Submit(target *ebiten.Image, cam *Camera) {
	view := cam.geoM()

	var op ebiten.DrawImageOptions
	for i := range b.commands {
		cmd := &b.commands[i]
		switch cmd.Type {
		case CommandImage:
			submitImage(target, cmd, view, &op)
		case CommandRect:
			submitRect(target, cmd)
		case CommandText:
			submitText(target, cmd)
		}
	}
}

func submitImage(target *ebiten.Image, cmd *RenderCommand, view ebiten.GeoM, op *ebiten.DrawImageOptions) {
	if cmd.Image == nil {
		return
	}
	bounds := cmd.Image.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(cmd.Dst.Width*cmd.FlipX/float64(w), cmd.Dst.Height*cmd.FlipY/float64(h))
	op.GeoM.Translate(cmd.Dst.X, cmd.Dst.Y)
	op.GeoM.Concat(view)
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(float32(cmd.Opacity))
	target.DrawImage(cmd.Image, op)
}

func submitRect(target *ebiten.Image, cmd *RenderCommand) {
	if cmd.Dst.empty() {
		return
	}
	c := cmd.Color
	c.A *= cmd.Opacity
	vector.DrawFilledRect(target,
		float32(cmd.Dst.X), float32(cmd.Dst.Y),
		float32(cmd.Dst.Width), float32(cmd.Dst.Height),
		c.toRGBA(), false)
}

func submitText(target *ebiten.Image, cmd *RenderCommand) {
	if cmd.Text == "" || cmd.FontSize <= 0 {
		return
	}
	face := fontFace(cmd.Family, cmd.FontSize)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Dst.X, cmd.Dst.Y-face.Metrics().HAscent)
	op.ColorScale.Scale(
		float32(cmd.Color.R*cmd.Color.A),
		float32(cmd.Color.G*cmd.Color.A),
		float32(cmd.Color.B*cmd.Color.A),
		float32(cmd.Color.A),
	)
	text.Draw(target, cmd.Text, face, op)
}
