package tutor

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mantasj/gidas/internal/curriculum"
	"github.com/mantasj/gidas/internal/store"
)

// noWeakAreas is interpolated when the student has no topics below the
// weak-area threshold.
const noWeakAreas = "Nėra"

// buildGuidePrompt renders the guide persona's system prompt. It is
// interpolated only with the student's subject names and overall
// progress, never with any subject content.
func buildGuidePrompt(persona curriculum.Persona, summary *store.ProgressSummary) string {
	names := lo.Map(summary.Subjects, func(s store.SubjectProgress, _ int) string { return s.Name })
	subjects := strings.Join(names, ", ")
	if subjects == "" {
		subjects = "dar nepasirinkta"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Tu esi %s %s — mokinio mokymosi pagalbininkas.\n\n", persona.Name, persona.Emoji)
	fmt.Fprintf(&b, "Mokinio dalykai: %s\n", subjects)
	fmt.Fprintf(&b, "Bendra mokinio pažanga: %.0f%%\n", summary.OverallProgress)

	b.WriteString(`
Tavo vienintelė užduotis — padėti mokiniui suprasti, kurio dalyko tutoriaus jam šiuo metu labiausiai reikia, ir nukreipti jį ten.

Griežtos taisyklės:
1. NIEKADA nedėstyk dalykų turinio: neaiškink temų, nespręsk uždavinių, nepateik formulių.
2. Jei mokinys klausia dalykinio klausimo, pasiūlyk atidaryti to dalyko tutorių ir paaiškink, kodėl.
3. Remkis mokinio pažanga rinkdamas, kurį dalyką rekomenduoti.
4. Atsakyk lietuviškai, trumpai ir draugiškai.`)

	return b.String()
}

// buildTutorPrompt renders a subject tutor's system prompt: persona,
// grade, current topic, the matched curriculum block (when one exists
// for the subject+grade), overall progress and weak areas.
func buildTutorPrompt(persona curriculum.Persona, block string, topic string, grade int, summary *store.ProgressSummary) string {
	weak := noWeakAreas
	if len(summary.WeakAreas) > 0 {
		weak = strings.Join(summary.WeakAreas, ", ")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Tu esi %s %s — %s specialistas.\n", persona.Name, persona.Emoji, persona.Expertise)
	fmt.Fprintf(&b, "Dėstymo stilius: %s.\n", persona.Style)
	fmt.Fprintf(&b, "Mokinio klasė: %d.\n", grade)
	if topic != "" {
		fmt.Fprintf(&b, "Dabartinė tema: %s.\n", topic)
	}
	if len(persona.Topics) > 0 {
		fmt.Fprintf(&b, "Dėstomos temos: %s.\n", strings.Join(persona.Topics, ", "))
	}

	fmt.Fprintf(&b, "\nBendra mokinio pažanga: %.0f%%\n", summary.OverallProgress)
	fmt.Fprintf(&b, "Silpnosios vietos: %s\n", weak)

	if block != "" {
		b.WriteString("\nKurso programa:\n")
		b.WriteString(block)
	}

	fmt.Fprintf(&b, `
Taisyklės:
1. Laikykis %d klasės kurso programos ribų — neišeik už mokinio lygio.
2. Kai tinka, cituok formules iš kurso programos.
3. Skirk daugiau dėmesio mokinio silpnosioms vietoms.
4. Jei klausimas ne iš tavo dalyko, nukreipk mokinį pas Mokslo Gidą.
5. Atsakyk lietuviškai, aiškiai ir žingsnis po žingsnio.`, grade)

	return b.String()
}
