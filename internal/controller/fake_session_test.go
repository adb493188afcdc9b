package controller

import (
	m "github.com/mouse-blink/tracecity/internal/model"
)

// fakeSession records what the UI asks of it.
type fakeSession struct {
	title        string
	addressables []m.Addressable
	selected     string
	inspection   *m.Inspection
	view         *m.ViewToggle
	causality    bool

	activated   []string
	navigations []int
	closedViews int
	closed      int
}

func newFakeSession(title string, keys ...string) *fakeSession {
	s := &fakeSession{title: title}
	for i, k := range keys {
		s.addressables = append(s.addressables, m.Addressable{
			Key:   k,
			Label: "label " + k,
			Type:  m.EntityVariable,
			Slot:  i,
			Line:  i + 1,
		})
	}

	return s
}

func (s *fakeSession) Title() string                   { return s.title }
func (s *fakeSession) Addressables() []m.Addressable   { return s.addressables }
func (s *fakeSession) Selected() string                { return s.selected }
func (s *fakeSession) Activate(key string)             { s.activated = append(s.activated, key) }
func (s *fakeSession) CloseView()                      { s.closedViews++ }
func (s *fakeSession) Close()                          { s.closed++ }
func (s *fakeSession) Inspection() (m.Inspection, bool) {
	if s.inspection == nil {
		return m.Inspection{}, false
	}

	return *s.inspection, true
}

func (s *fakeSession) OpenView() (m.ViewToggle, bool) {
	if s.view == nil {
		return m.ViewToggle{}, false
	}

	return *s.view, true
}

func (s *fakeSession) Navigate(dir int) string {
	s.navigations = append(s.navigations, dir)

	if len(s.addressables) == 0 {
		return ""
	}

	current := -1

	for i, a := range s.addressables {
		if a.Key == s.selected {
			current = i
		}
	}

	n := len(s.addressables)
	next := ((current+dir)%n + n) % n
	s.selected = s.addressables[next].Key

	return s.selected
}

func (s *fakeSession) ToggleCausality() bool {
	s.causality = !s.causality
	return s.causality
}

func factoryOf(sessions ...*fakeSession) SessionFactory {
	i := 0

	return func(_ m.Scheduler) (Session, error) {
		s := sessions[i]
		if i < len(sessions)-1 {
			i++
		}

		return s, nil
	}
}
