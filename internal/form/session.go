package form

import "fmt"

// Section names one of the repeated entry lists of a session.
type Section int

const (
	SectionEducation Section = iota
	SectionExperience
)

func (s Section) String() string {
	switch s {
	case SectionEducation:
		return "education"
	case SectionExperience:
		return "experience"
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Session is the complete state of one resume form.
//
// Contact info reaches the details view through the snapshot taken by
// Submit. Entry lists and skills are always shown live.
type Session struct {
	contact    Contact
	education  List[Education]
	experience List[Experience]
	skills     Tags

	snapshot  Contact
	submitted bool
	revealed  bool
}

// Details is the read-only view shown once a session is revealed.
type Details struct {
	Contact    Contact      `json:"contact" yaml:"contact"`
	Submitted  bool         `json:"submitted" yaml:"submitted"`
	Education  []Education  `json:"education" yaml:"education"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Skills     []string     `json:"skills" yaml:"skills"`
}

// NewSession returns a session with one empty entry in each list.
func NewSession() Session {
	return Session{
		education:  NewList[Education](),
		experience: NewList[Experience](),
	}
}

// Contact returns the live contact info.
func (s Session) Contact() Contact { return s.contact }

// Education returns the live education list.
func (s Session) Education() List[Education] { return s.education }

// Experience returns the live experience list.
func (s Session) Experience() List[Experience] { return s.experience }

// Skills returns the live skill tags and pending input.
func (s Session) Skills() Tags { return s.skills }

// Snapshot returns the contact info captured by the last Submit.
func (s Session) Snapshot() (Contact, bool) { return s.snapshot, s.submitted }

// Revealed reports whether the details view is shown.
func (s Session) Revealed() bool { return s.revealed }

// SetContact overwrites one contact field.
func (s Session) SetContact(name, value string) (Session, error) {
	c, err := s.contact.SetField(name, value)
	if err != nil {
		return s, err
	}
	s.contact = c
	return s, nil
}

// EditEntry overwrites one field of the entry at index in section.
func (s Session) EditEntry(sec Section, index int, name, value string) (Session, error) {
	switch sec {
	case SectionEducation:
		l, err := s.education.Update(index, name, value)
		if err != nil {
			return s, fmt.Errorf("update %s: %w", sec, err)
		}
		s.education = l
	case SectionExperience:
		l, err := s.experience.Update(index, name, value)
		if err != nil {
			return s, fmt.Errorf("update %s: %w", sec, err)
		}
		s.experience = l
	default:
		return s, fmt.Errorf("update %s: unknown section", sec)
	}
	return s, nil
}

// AppendEntry adds an empty entry to section and returns the new length.
func (s Session) AppendEntry(sec Section) (Session, int, error) {
	var n int
	switch sec {
	case SectionEducation:
		s.education, n = s.education.Append()
	case SectionExperience:
		s.experience, n = s.experience.Append()
	default:
		return s, 0, fmt.Errorf("append %s: unknown section", sec)
	}
	return s, n, nil
}

// EntryLen returns the number of entries in section, or 0 for an unknown one.
func (s Session) EntryLen(sec Section) int {
	switch sec {
	case SectionEducation:
		return s.education.Len()
	case SectionExperience:
		return s.experience.Len()
	}
	return 0
}

// Entry returns the value of one field of the entry at index in section.
func (s Session) Entry(sec Section, index int, name string) (string, error) {
	var (
		v   string
		ok  bool
		err error
	)
	switch sec {
	case SectionEducation:
		var e Education
		if e, err = s.education.At(index); err == nil {
			v, ok = e.Get(name)
		}
	case SectionExperience:
		var e Experience
		if e, err = s.experience.At(index); err == nil {
			v, ok = e.Get(name)
		}
	default:
		return "", fmt.Errorf("read %s: unknown section", sec)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", sec, err)
	}
	if !ok {
		return "", fmt.Errorf("read %s field %q: %w", sec, name, ErrInvalidFieldName)
	}
	return v, nil
}

// SectionFields returns the field layout of the entries in section.
func SectionFields(sec Section) []Field {
	switch sec {
	case SectionEducation:
		return Education{}.Fields()
	case SectionExperience:
		return Experience{}.Fields()
	}
	return nil
}

// SetSkillInput replaces the pending skill text.
func (s Session) SetSkillInput(text string) Session {
	s.skills = s.skills.SetPending(text)
	return s
}

// CommitSkill moves the pending skill text into the skill list.
// It reports false when the pending text is blank.
func (s Session) CommitSkill() (Session, bool) {
	var ok bool
	s.skills, ok = s.skills.Commit()
	return s, ok
}

// Submit captures the live contact info as the snapshot, replacing any
// earlier one. Entry lists and skills stay live.
func (s Session) Submit() Session {
	s.snapshot = s.contact
	s.submitted = true
	return s
}

// Reveal turns on the details view. There is no way back.
func (s Session) Reveal() Session {
	s.revealed = true
	return s
}

// Details returns the revealed view: the snapshot contact info and the live
// lists. It reports false until the session is revealed.
func (s Session) Details() (Details, bool) {
	if !s.revealed {
		return Details{}, false
	}
	return s.view(), true
}

// view builds the details regardless of the reveal flag.
func (s Session) view() Details {
	return Details{
		Contact:    s.snapshot,
		Submitted:  s.submitted,
		Education:  s.education.Items(),
		Experience: s.experience.Items(),
		Skills:     s.skills.Items(),
	}
}
