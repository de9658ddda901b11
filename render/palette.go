package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
)

// RandomColor is the color name that resolves to a random palette entry when bound
const RandomColor = "random"

// ErrUnknownColor is returned by ParseColor for names outside ColorNames
var ErrUnknownColor = errors.New("invalid color name")

// colorCycle is the order used by NextColor; RandomColor is not part of it
var colorCycle = []string{"red", "green", "blue", "yellow", "magenta", "cyan", "black", "white"}

// namedColors maps each concrete name to its ANSI palette index
var namedColors = map[string]tcell.Color{
	"black":   tcell.PaletteColor(0),
	"red":     tcell.PaletteColor(1),
	"green":   tcell.PaletteColor(2),
	"yellow":  tcell.PaletteColor(3),
	"blue":    tcell.PaletteColor(4),
	"magenta": tcell.PaletteColor(5),
	"cyan":    tcell.PaletteColor(6),
	"white":   tcell.PaletteColor(7),
}

// ColorNames returns every accepted color name, cycle order first, RandomColor last
func ColorNames() []string {
	names := make([]string, 0, len(colorCycle)+1)
	names = append(names, colorCycle...)
	return append(names, RandomColor)
}

// ParseColor validates a color name case-insensitively and returns its lower-case form
func ParseColor(value string) (string, error) {
	name := strings.ToLower(value)
	if name == RandomColor {
		return name, nil
	}
	if _, ok := namedColors[name]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%s is an %w", value, ErrUnknownColor)
}

// NextColor returns the color after name in the cycle, wrapping from the last back to the first.
// RandomColor and unknown names advance to the first entry.
func NextColor(name string) string {
	for i, c := range colorCycle {
		if c == name {
			return colorCycle[(i+1)%len(colorCycle)]
		}
	}
	return colorCycle[0]
}

// Slot is one palette binding: the configured name and the color it resolved to
type Slot struct {
	Name  string
	Color tcell.Color
}

// Palette holds the two independently bound color slots used for drawing
type Palette struct {
	Body Slot
	Lead Slot

	rng    core.Rand
	colors int
}

// NewPalette creates a palette drawing random colors from [1, colors-1].
// colors is the terminal's reported color count.
func NewPalette(rng core.Rand, colors int) *Palette {
	if colors > constants.MaxPaletteColors {
		colors = constants.MaxPaletteColors
	}
	return &Palette{rng: rng, colors: colors}
}

// SetBody binds the body slot, resolving RandomColor immediately
func (p *Palette) SetBody(name string) {
	p.Body = p.resolve(name)
}

// SetLead binds the lead slot, resolving RandomColor immediately
func (p *Palette) SetLead(name string) {
	p.Lead = p.resolve(name)
}

// NextBody advances the body slot to the next color in the cycle
func (p *Palette) NextBody() {
	p.SetBody(NextColor(p.Body.Name))
}

// NextLead advances the lead slot to the next color in the cycle
func (p *Palette) NextLead() {
	p.SetLead(NextColor(p.Lead.Name))
}

func (p *Palette) resolve(name string) Slot {
	if c, ok := namedColors[name]; ok {
		return Slot{Name: name, Color: c}
	}
	// Monochrome terminals have nothing to pick from
	if p.colors < 2 {
		return Slot{Name: RandomColor, Color: namedColors["white"]}
	}
	idx := core.IntRange(p.rng, 1, p.colors-1)
	return Slot{Name: RandomColor, Color: tcell.PaletteColor(idx)}
}

// BodyStyle is the style for every cell behind the head
func (p *Palette) BodyStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Body.Color).Background(tcell.ColorBlack)
}

// LeadStyle is the style for the head cell
func (p *Palette) LeadStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Lead.Color).Background(tcell.ColorBlack).Bold(true)
}
