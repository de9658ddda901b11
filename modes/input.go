package modes

import (
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/engine"
	"github.com/lixenwraith/rsnake/render"
)

// InputHandler maps key presses to live config changes
type InputHandler struct {
	cfg    *engine.Config
	logger *slog.Logger
}

// NewInputHandler creates a new input handler; a nil logger discards
func NewInputHandler(cfg *engine.Config, logger *slog.Logger) *InputHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &InputHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// HandleEvent processes a tcell event and returns false if the saver should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	}
	// Resize is picked up from the screen size on the next frame
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	// Raw mode delivers Ctrl-C as a key, not a signal
	if isCtrlC(ev) {
		h.logger.Debug("interrupt key")
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	palette := h.cfg.Palette
	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		h.logger.Debug("quit requested")
		return false

	case r >= '0' && r <= '9':
		// Digits are always in range
		_ = h.cfg.SetSpeed(int(r - '0'))
		h.logger.Debug("speed changed", "speed", h.cfg.Speed, "delay", h.cfg.Delay())

	case r == 'c':
		palette.NextBody()
		h.logger.Debug("body color", "name", palette.Body.Name)

	case r == 'l':
		palette.NextLead()
		h.logger.Debug("lead color", "name", palette.Lead.Name)

	case r == 'C':
		palette.SetBody(render.RandomColor)
		h.logger.Debug("body color", "name", palette.Body.Name, "color", palette.Body.Color)

	case r == 'L':
		palette.SetLead(render.RandomColor)
		h.logger.Debug("lead color", "name", palette.Lead.Name, "color", palette.Lead.Color)

	case r == 'd':
		h.cfg.Randomize()
		h.logger.Debug("randomized", "speed", h.cfg.Speed,
			"body", palette.Body.Color, "lead", palette.Lead.Color)
	}
	return true
}

func isCtrlC(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}
