// Package sample fills resume forms with random demo data.
// All randomness comes from crypto/rand.
package sample

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/zarlcorp/zresume/internal/form"
)

const (
	maxEntries = 3
	minSkills  = 2
	maxSkills  = 5
)

// Generator produces random resume data.
type Generator struct {
	now func() time.Time
}

// New creates a generator.
func New() *Generator {
	return &Generator{now: time.Now}
}

// Contact generates a random contact record.
func (g *Generator) Contact() form.Contact {
	first, last := pick(firstNames), pick(lastNames)
	return form.Contact{
		Name:    first + " " + last,
		Email:   strings.ToLower(first+"."+last) + "@" + emailDomain,
		Address: g.address(),
		Phone:   g.phone(),
	}
}

// Education generates between one and three education entries, oldest first.
func (g *Generator) Education() []form.Education {
	n := 1 + randIntn(maxEntries)
	years := g.years(n)
	out := make([]form.Education, n)
	for i := range out {
		out[i] = form.Education{
			Institute:   pick(institutes),
			Year:        years[i],
			Designation: pick(degrees),
		}
	}
	return out
}

// Experience generates between one and three experience entries, oldest first.
func (g *Generator) Experience() []form.Experience {
	n := 1 + randIntn(maxEntries)
	years := g.years(n)
	out := make([]form.Experience, n)
	for i := range out {
		out[i] = form.Experience{
			Company:     pick(companies),
			Year:        years[i],
			Designation: pick(titles),
		}
	}
	return out
}

// Skills generates between two and five distinct skills.
func (g *Generator) Skills() []string {
	n := minSkills + randIntn(maxSkills-minSkills+1)
	pool := append([]string(nil), skills...)
	shuffle(pool)
	return pool[:n]
}

// Session builds a submitted and revealed session from random data by
// replaying the same events a user would produce.
func (g *Generator) Session() (form.Session, error) {
	var events []form.Event

	c := g.Contact()
	for _, f := range c.Fields() {
		v, _ := c.Get(f.Name)
		events = append(events, form.SetContact{Field: f.Name, Value: v})
	}

	for i, e := range g.Education() {
		if i > 0 {
			events = append(events, form.AppendEntry{Section: form.SectionEducation})
		}
		events = append(events, entryEvents(form.SectionEducation, i, e)...)
	}

	for i, e := range g.Experience() {
		if i > 0 {
			events = append(events, form.AppendEntry{Section: form.SectionExperience})
		}
		events = append(events, entryEvents(form.SectionExperience, i, e)...)
	}

	for _, s := range g.Skills() {
		events = append(events, form.SetSkillInput{Text: s}, form.CommitSkill{})
	}

	events = append(events, form.Submit{}, form.Reveal{})

	s, err := form.NewSession().ApplyAll(events...)
	if err != nil {
		return form.Session{}, fmt.Errorf("sample session: %w", err)
	}
	return s, nil
}

func entryEvents[T form.Record[T]](sec form.Section, index int, rec T) []form.Event {
	var events []form.Event
	for _, f := range rec.Fields() {
		v, _ := rec.Get(f.Name)
		events = append(events, form.EditEntry{Section: sec, Index: index, Field: f.Name, Value: v})
	}
	return events
}

// years returns n ascending years ending no later than the current year.
func (g *Generator) years(n int) []string {
	end := g.now().Year() - randIntn(3)
	out := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = fmt.Sprintf("%d", end)
		end -= 1 + randIntn(4)
	}
	return out
}

// address generates a US style address like "1234 Oak Ave, Portland, OR 97201".
func (g *Generator) address() string {
	num := 100 + randIntn(9900)
	street := fmt.Sprintf("%d %s %s", num, pick(streetNames), pick(streetSuffixes))
	return fmt.Sprintf("%s, %s, %s %05d", street, pick(cities), pick(states), randIntn(100000))
}

// phone generates a US fictional phone number: (555) XXX-XXXX.
func (g *Generator) phone() string {
	prefix := 100 + randIntn(900)
	return fmt.Sprintf("(555) %03d-%04d", prefix, randIntn(10000))
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// shuffle permutes s in place using Fisher-Yates.
func shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := randIntn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
