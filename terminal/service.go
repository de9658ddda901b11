package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

// TerminalService manages screen lifecycle and input polling
type TerminalService struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// Open creates the real terminal screen and starts the service
func Open() (*TerminalService, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return OpenScreen(screen)
}

// OpenScreen initializes the given screen and starts polling it
func OpenScreen(screen tcell.Screen) (*TerminalService, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &TerminalService{
		screen:  screen,
		eventCh: make(chan tcell.Event, constants.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	core.SetCrashRestore(s.restore)
	s.start()
	return s, nil
}

// start launches the input polling goroutine
func (s *TerminalService) start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
}

// pollLoop reads screen events until stop signal
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		// nil after Fini
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// TryEvent returns one queued event or nil without blocking
func (s *TerminalService) TryEvent() tcell.Event {
	select {
	case ev := <-s.eventCh:
		return ev
	default:
		return nil
	}
}

// Screen returns the wrapped screen
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}

// Colors reports how many palette colors the terminal supports
func (s *TerminalService) Colors() int {
	return s.screen.Colors()
}

// Stop signals the poller, waits for it and restores the terminal. Safe to call repeatedly.
func (s *TerminalService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	running := s.running
	s.running = false
	s.mu.Unlock()

	core.SetCrashRestore(nil)
	close(s.stopCh)

	if running {
		// Wake PollEvent so the poller sees stopCh
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}
	s.screen.Fini()
}

// restore finalizes the screen from the crash path without waiting on the poller
func (s *TerminalService) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.screen.Fini()
}
