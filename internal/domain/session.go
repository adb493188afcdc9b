package domain

import (
	"path/filepath"

	"github.com/mouse-blink/tracecity/internal/controller"

	m "github.com/mouse-blink/tracecity/internal/model"
)

var _ controller.Session = (*exploreSession)(nil)

// exploreSession binds one city to its view manager for the explorer.
type exploreSession struct {
	source m.Path
	city   *City
	views  *ViewManager
	closed bool
}

func newExploreSession(source m.Path, city *City, views *ViewManager) *exploreSession {
	return &exploreSession{source: source, city: city, views: views}
}

func (s *exploreSession) Title() string {
	return filepath.Base(string(s.source))
}

func (s *exploreSession) Addressables() []m.Addressable {
	return s.views.Addressables()
}

func (s *exploreSession) Selected() string {
	return s.views.Selected()
}

func (s *exploreSession) Inspection() (m.Inspection, bool) {
	return s.views.Inspection()
}

func (s *exploreSession) OpenView() (m.ViewToggle, bool) {
	view, ok := s.views.Open()
	if !ok {
		return m.ViewToggle{}, false
	}

	return m.ViewToggle{
		State:  m.ViewOpened,
		Key:    view.Key,
		Kind:   view.Kind,
		Radius: view.Radius,
		Center: view.Center,
	}, true
}

func (s *exploreSession) Activate(key string) {
	s.views.Activate(key)
}

func (s *exploreSession) Navigate(dir int) string {
	return s.views.Navigate(dir)
}

func (s *exploreSession) CloseView() {
	s.views.Close()
}

func (s *exploreSession) ToggleCausality() bool {
	return s.views.ToggleCausality()
}

// Close releases the nested view and the city. Closing twice is a no-op.
func (s *exploreSession) Close() {
	if s.closed {
		return
	}

	s.closed = true
	s.views.Shutdown()
	s.city.Dispose()
}
