package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.Revealed() {
		t.Error("new session should not be revealed")
	}
	if _, ok := s.Snapshot(); ok {
		t.Error("new session should have no snapshot")
	}
	if _, ok := s.Details(); ok {
		t.Error("details should be hidden before reveal")
	}
	if s.EntryLen(SectionEducation) != 1 || s.EntryLen(SectionExperience) != 1 {
		t.Errorf("entry lens = %d/%d, want 1/1",
			s.EntryLen(SectionEducation), s.EntryLen(SectionExperience))
	}
	if s.Skills().Len() != 0 {
		t.Errorf("skills len = %d, want 0", s.Skills().Len())
	}
}

func TestSetContactMergesOneField(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "Alice")
	s, _ = s.SetContact("phone", "555")

	want := Contact{Name: "Alice", Phone: "555"}
	if diff := cmp.Diff(want, s.Contact()); diff != "" {
		t.Errorf("contact (-want +got):\n%s", diff)
	}
}

func TestSetContactInvalidField(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "Alice")

	got, err := s.SetContact("website", "x")
	if !errors.Is(err, ErrInvalidFieldName) {
		t.Fatalf("err = %v, want ErrInvalidFieldName", err)
	}
	if got.Contact().Name != "Alice" {
		t.Error("contact should be unchanged on error")
	}
}

func TestSnapshotDecoupledFromLiveContact(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "A")
	s = s.Submit()
	s, _ = s.SetContact("name", "B")

	snap, ok := s.Snapshot()
	if !ok {
		t.Fatal("expected snapshot")
	}
	if snap.Name != "A" {
		t.Errorf("snapshot name = %q, want A", snap.Name)
	}
	if s.Contact().Name != "B" {
		t.Errorf("live name = %q, want B", s.Contact().Name)
	}
}

func TestSubmitReplacesSnapshot(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("email", "a@x")
	s = s.Submit()
	s, _ = s.SetContact("email", "b@x")
	s = s.Submit()

	snap, _ := s.Snapshot()
	if snap.Email != "b@x" {
		t.Errorf("snapshot email = %q, want b@x", snap.Email)
	}
}

func TestSubmitAcceptsEmptyFields(t *testing.T) {
	s := NewSession().Submit()
	snap, ok := s.Snapshot()
	if !ok {
		t.Fatal("empty submit should still capture a snapshot")
	}
	if diff := cmp.Diff(Contact{}, snap); diff != "" {
		t.Errorf("snapshot (-want +got):\n%s", diff)
	}
}

func TestRevealIsOneWayAndIdempotent(t *testing.T) {
	s := NewSession().Reveal()
	if !s.Revealed() {
		t.Fatal("reveal should set flag")
	}
	s = s.Reveal()
	if !s.Revealed() {
		t.Error("second reveal should keep flag")
	}
}

func TestRevealBeforeSubmitShowsBlankContact(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "Alice")
	s = s.Reveal()

	d, ok := s.Details()
	if !ok {
		t.Fatal("details should be shown")
	}
	if d.Submitted {
		t.Error("details should report no submit")
	}
	if d.Contact.Name != "" {
		t.Errorf("contact name = %q, want blank before submit", d.Contact.Name)
	}
}

func TestDetailsListsAreLive(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "A")
	s = s.Submit().Reveal()

	s, _ = s.SetContact("name", "B")
	s, _ = s.EditEntry(SectionExperience, 0, "company", "Acme")
	s, _ = s.SetSkillInput("go").CommitSkill()

	d, _ := s.Details()
	if d.Contact.Name != "A" {
		t.Errorf("details name = %q, want snapshot A", d.Contact.Name)
	}
	if d.Experience[0].Company != "Acme" {
		t.Errorf("details company = %q, want live Acme", d.Experience[0].Company)
	}
	if diff := cmp.Diff([]string{"go"}, d.Skills); diff != "" {
		t.Errorf("details skills (-want +got):\n%s", diff)
	}
}

func TestEditEntryErrors(t *testing.T) {
	s := NewSession()

	tests := []struct {
		name  string
		sec   Section
		index int
		field string
		want  error
	}{
		{"education out of range", SectionEducation, 3, "institute", ErrIndexOutOfRange},
		{"experience out of range", SectionExperience, -1, "company", ErrIndexOutOfRange},
		{"education wrong field", SectionEducation, 0, "company", ErrInvalidFieldName},
		{"experience wrong field", SectionExperience, 0, "institute", ErrInvalidFieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.EditEntry(tt.sec, tt.index, tt.field, "x")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := s.EditEntry(Section(9), 0, "year", "x"); err == nil {
		t.Error("unknown section should fail")
	}
	if _, _, err := s.AppendEntry(Section(9)); err == nil {
		t.Error("append to unknown section should fail")
	}
}

func TestEntryReadsField(t *testing.T) {
	s := NewSession()
	s, _ = s.EditEntry(SectionEducation, 0, "year", "2019")

	got, err := s.Entry(SectionEducation, 0, "year")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2019" {
		t.Errorf("year = %q, want 2019", got)
	}

	if _, err := s.Entry(SectionEducation, 1, "year"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.Entry(SectionExperience, 0, "institute"); !errors.Is(err, ErrInvalidFieldName) {
		t.Errorf("err = %v, want ErrInvalidFieldName", err)
	}
}

func TestOlderSessionUnaffected(t *testing.T) {
	before := NewSession()
	after, _ := before.EditEntry(SectionEducation, 0, "institute", "MIT")
	after, _, _ = after.AppendEntry(SectionEducation)
	after, _ = after.SetSkillInput("go").CommitSkill()
	after = after.Submit().Reveal()

	if v, _ := before.Entry(SectionEducation, 0, "institute"); v != "" {
		t.Errorf("before institute = %q, want empty", v)
	}
	if before.EntryLen(SectionEducation) != 1 {
		t.Errorf("before education len = %d, want 1", before.EntryLen(SectionEducation))
	}
	if before.Skills().Len() != 0 || before.Revealed() {
		t.Error("before session should be untouched")
	}
}

func TestEndToEnd(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "Alice")

	s, n, err := s.AppendEntry(SectionEducation)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("education len = %d, want 2", n)
	}

	s, err = s.EditEntry(SectionEducation, 1, "institute", "MIT")
	if err != nil {
		t.Fatal(err)
	}
	s, _ = s.SetSkillInput("C++").CommitSkill()
	s = s.Submit().Reveal()

	got, ok := s.Details()
	if !ok {
		t.Fatal("details should be revealed")
	}

	want := Details{
		Contact:    Contact{Name: "Alice"},
		Submitted:  true,
		Education:  []Education{{}, {Institute: "MIT"}},
		Experience: []Experience{{}},
		Skills:     []string{"C++"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("details (-want +got):\n%s", diff)
	}
}

func TestApplyEvents(t *testing.T) {
	s, err := NewSession().ApplyAll(
		SetContact{Field: "name", Value: "Alice"},
		AppendEntry{Section: SectionEducation},
		EditEntry{Section: SectionEducation, Index: 1, Field: "institute", Value: "MIT"},
		SetSkillInput{Text: "C++"},
		CommitSkill{},
		Submit{},
		Reveal{},
	)
	if err != nil {
		t.Fatal(err)
	}

	d, ok := s.Details()
	if !ok {
		t.Fatal("details should be revealed")
	}
	if d.Contact.Name != "Alice" || d.Education[1].Institute != "MIT" {
		t.Errorf("unexpected details: %+v", d)
	}
	if diff := cmp.Diff([]string{"C++"}, d.Skills); diff != "" {
		t.Errorf("skills (-want +got):\n%s", diff)
	}
}

func TestApplyErrorLeavesSession(t *testing.T) {
	s := NewSession()
	s, _ = s.SetContact("name", "Alice")

	got, err := s.ApplyAll(
		SetContact{Field: "name", Value: "Bob"},
		EditEntry{Section: SectionExperience, Index: 4, Field: "company", Value: "x"},
		Reveal{},
	)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
	if got.Contact().Name != "Bob" {
		t.Errorf("name = %q, want events before the failure applied", got.Contact().Name)
	}
	if got.Revealed() {
		t.Error("events after the failure should not run")
	}
}

func TestSectionString(t *testing.T) {
	if SectionEducation.String() != "education" || SectionExperience.String() != "experience" {
		t.Error("unexpected section names")
	}
	if Section(7).String() != "section(7)" {
		t.Errorf("unknown section = %q", Section(7).String())
	}
}
