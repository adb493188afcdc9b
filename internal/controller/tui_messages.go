package controller

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// deferredMsg carries a scheduler callback onto the event loop.
type deferredMsg struct {
	run func()
}

// reloadMsg asks the explorer to rebuild its session.
type reloadMsg struct{}

// teaScheduler defers callbacks with wall-clock timers and delivers them
// through the program, so they run inside Update like any other message.
type teaScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

func (s *teaScheduler) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send = send
}

// AfterFunc implements model.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, f func()) m.Timer {
	return time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()

		if send != nil {
			send(deferredMsg{run: f})
		}
	})
}

func waitForReload(reloads <-chan struct{}) tea.Cmd {
	if reloads == nil {
		return nil
	}

	return func() tea.Msg {
		if _, ok := <-reloads; !ok {
			return nil
		}

		return reloadMsg{}
	}
}

// List item types.
type addressableItem struct {
	m.Addressable
}

func (a addressableItem) FilterValue() string {
	return a.Label
}
