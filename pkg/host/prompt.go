package host

import (
	"encoding/binary"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// promptValueSize is the size of the buffer PromptEdit writes into.
const promptValueSize = 256

// Prompt is what the user entered in a prompt closed with OK.
type Prompt struct {
	Value string
	// Color is set only when the prompt was built WithColor.
	Color    int32
	HasColor bool
}

// PromptBuilder configures a text prompt. X and Y default to -1 (centered).
type PromptBuilder struct {
	host      *Host
	x, y      int
	withColor bool
}

// WithX sets the horizontal position.
func (b *PromptBuilder) WithX(x int) *PromptBuilder {
	b.x = x
	return b
}

// WithY sets the vertical position.
func (b *PromptBuilder) WithY(y int) *PromptBuilder {
	b.y = y
	return b
}

// WithColor lets the user pick a color too.
func (b *PromptBuilder) WithColor() *PromptBuilder {
	b.withColor = true
	return b
}

// Show displays the prompt with caption and blocks until it is closed. ok is
// false when the user cancelled.
func (b *PromptBuilder) Show(caption string) (p Prompt, ok bool) {
	mem := b.host.mem
	c := fl.CString(mem, caption)
	defer mem.Free(c)
	value := mem.Alloc(promptValueSize)
	defer mem.Free(value)

	color := int32(-1)
	if b.withColor {
		color = 0
	}

	if !b.host.backend.PromptEdit(b.x, b.y, c, value, &color) {
		return Prompt{}, false
	}

	p.Value = fl.GoStringN(value, promptValueSize)
	if b.withColor {
		p.Color = colorFromBigEndian(color)
		p.HasColor = true
	}
	return p, true
}

// colorFromBigEndian converts the big-endian color PromptEdit writes into
// native byte order.
func colorFromBigEndian(c int32) int32 {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(c))
	return int32(binary.BigEndian.Uint32(buf[:]))
}
