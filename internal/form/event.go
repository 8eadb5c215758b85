package form

// Event is a discrete user action that moves a session to its next state.
type Event interface {
	apply(Session) (Session, error)
}

// SetContact overwrites one contact field.
type SetContact struct {
	Field string
	Value string
}

// EditEntry overwrites one field of a repeated entry.
type EditEntry struct {
	Section Section
	Index   int
	Field   string
	Value   string
}

// AppendEntry adds an empty entry to a section.
type AppendEntry struct {
	Section Section
}

// SetSkillInput replaces the pending skill text.
type SetSkillInput struct {
	Text string
}

// CommitSkill commits the pending skill text.
type CommitSkill struct{}

// Submit captures the contact snapshot.
type Submit struct{}

// Reveal shows the details view.
type Reveal struct{}

func (e SetContact) apply(s Session) (Session, error) { return s.SetContact(e.Field, e.Value) }

func (e EditEntry) apply(s Session) (Session, error) {
	return s.EditEntry(e.Section, e.Index, e.Field, e.Value)
}

func (e AppendEntry) apply(s Session) (Session, error) {
	s, _, err := s.AppendEntry(e.Section)
	return s, err
}

func (e SetSkillInput) apply(s Session) (Session, error) { return s.SetSkillInput(e.Text), nil }

func (CommitSkill) apply(s Session) (Session, error) {
	s, _ = s.CommitSkill()
	return s, nil
}

func (Submit) apply(s Session) (Session, error) { return s.Submit(), nil }

func (Reveal) apply(s Session) (Session, error) { return s.Reveal(), nil }

// Apply runs one event. On error the receiver is returned unchanged.
func (s Session) Apply(ev Event) (Session, error) {
	next, err := ev.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

// ApplyAll runs events in order and stops at the first error.
func (s Session) ApplyAll(events ...Event) (Session, error) {
	for _, ev := range events {
		next, err := s.Apply(ev)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}
