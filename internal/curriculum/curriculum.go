// Package curriculum holds the static teaching data the tutoring engine
// splices into prompts: per-subject tutor personas and structured course
// outlines keyed by subject and grade. Both are plain lookup tables
// injected at construction so new subjects and grades can be added
// without touching the engine.
package curriculum

import (
	"fmt"
	"strings"
)

// Unit is one thematic block of a course outline.
type Unit struct {
	Name       string   `json:"name"`
	Topics     []string `json:"topics"`
	Objectives []string `json:"objectives"`
}

// Curriculum is the structured outline of one subject+grade course.
type Curriculum struct {
	Subject        string   `json:"subject"`
	Grade          int      `json:"grade"`
	Title          string   `json:"title"`
	Units          []Unit   `json:"units"`
	KeyFormulas    []string `json:"keyFormulas"`
	PracticalWorks []string `json:"practicalWorks"`
}

// Table maps (subject, grade) to a course outline.
type Table map[Key]Curriculum

// Key identifies one subject+grade combination.
type Key struct {
	Subject string
	Grade   int
}

// Lookup returns the outline for the given subject and grade.
func (t Table) Lookup(subject string, grade int) (Curriculum, bool) {
	c, ok := t[Key{Subject: subject, Grade: grade}]
	return c, ok
}

// Format serializes the outline into the text block spliced into tutor
// prompts.
func (c Curriculum) Format() string {
	var b strings.Builder

	b.WriteString(c.Title)
	b.WriteString("\n")

	for i, u := range c.Units {
		b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, u.Name))
		b.WriteString(fmt.Sprintf("   Temos: %s\n", strings.Join(u.Topics, "; ")))
		if len(u.Objectives) > 0 {
			b.WriteString("   Mokymosi tikslai:\n")
			for _, o := range u.Objectives {
				b.WriteString(fmt.Sprintf("   - %s\n", o))
			}
		}
	}

	if len(c.KeyFormulas) > 0 {
		b.WriteString("\nPagrindinės formulės:\n")
		for _, f := range c.KeyFormulas {
			b.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}

	if len(c.PracticalWorks) > 0 {
		b.WriteString("\nPraktikos darbai:\n")
		for _, w := range c.PracticalWorks {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
