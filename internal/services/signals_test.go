package services

import (
	"strings"
	"testing"
)

func TestExtractSignalsCounts(t *testing.T) {
	// "intern" appears three times (intern, internship, intern award) and
	// "project" exactly twice.
	text := "Worked as a software intern. Completed an internship at a lab. " +
		"An intern award. Built a chat app project and a web project."

	signals := ExtractSignals(text)

	if signals.InternshipCount != 3 {
		t.Errorf("InternshipCount = %d, want 3", signals.InternshipCount)
	}
	if signals.ProjectCount != 2 {
		t.Errorf("ProjectCount = %d, want 2", signals.ProjectCount)
	}
}

func TestExtractSignalsEmptyInput(t *testing.T) {
	signals := ExtractSignals("")

	counts := map[string]int{
		"internships":  signals.InternshipCount,
		"projects":     signals.ProjectCount,
		"achievements": signals.AchievementCount,
		"experience":   signals.ExperienceCount,
		"extra":        signals.ExtraCount,
		"links":        signals.LinkCount,
	}
	for name, count := range counts {
		if count != 0 {
			t.Errorf("%s = %d, want 0", name, count)
		}
	}

	if signals.CGPA != 0 {
		t.Errorf("CGPA = %v, want 0", signals.CGPA)
	}
	if len(signals.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", signals.Skills)
	}
	if signals.LanguageCount != 2 {
		t.Errorf("LanguageCount = %d, want fixed 2", signals.LanguageCount)
	}
	if signals.TextPreview != "" {
		t.Errorf("TextPreview = %q, want empty", signals.TextPreview)
	}
}

func TestExtractSignalsCGPA(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "plain cgpa",
			text: "CGPA: 8.7 from NIT",
			want: 8.7,
		},
		{
			name: "two decimal places",
			text: "scored 9.25 overall",
			want: 9.25,
		},
		{
			name: "first match wins",
			text: "grade 7.1 and later 9.9",
			want: 7.1,
		},
		{
			name: "absent",
			text: "no numbers here",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSignals(tt.text).CGPA
			if got != tt.want {
				t.Errorf("CGPA = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 10 {
				t.Errorf("CGPA = %v outside [0, 10]", got)
			}
		})
	}
}

func TestExtractSignalsSkillsAndFlags(t *testing.T) {
	text := "B.Tech from IIT. Python, Docker and SQL. " +
		"github.com/me and linkedin.com/in/me. Won a hackathon award."

	signals := ExtractSignals(text)

	wantSkills := []string{"docker", "python", "sql"}
	if len(signals.Skills) != len(wantSkills) {
		t.Fatalf("Skills = %v, want %v", signals.Skills, wantSkills)
	}
	for i, skill := range wantSkills {
		if signals.Skills[i] != skill {
			t.Errorf("Skills[%d] = %q, want %q (sorted)", i, signals.Skills[i], skill)
		}
	}

	if !signals.DegreeFound {
		t.Error("DegreeFound = false, want true for b.tech")
	}
	if !signals.Tier1College {
		t.Error("Tier1College = false, want true for iit")
	}
	if signals.LinkCount != 2 {
		t.Errorf("LinkCount = %d, want 2", signals.LinkCount)
	}
	if signals.AchievementCount != 2 {
		t.Errorf("AchievementCount = %d, want 2 (won + award)", signals.AchievementCount)
	}
}

func TestExtractSignalsExperienceIncludesInternships(t *testing.T) {
	signals := ExtractSignals("intern with 2 years experience, another intern role")

	if signals.InternshipCount != 2 {
		t.Fatalf("InternshipCount = %d, want 2", signals.InternshipCount)
	}
	if signals.ExperienceCount != 3 {
		t.Errorf("ExperienceCount = %d, want internships + experience = 3", signals.ExperienceCount)
	}
}

func TestExtractSignalsPreview(t *testing.T) {
	short := "short resume"
	if got := ExtractSignals(short).TextPreview; got != short {
		t.Errorf("TextPreview = %q, want unmodified input", got)
	}

	long := strings.Repeat("x", 600)
	got := ExtractSignals(long).TextPreview
	want := strings.Repeat("x", 500) + "..."
	if got != want {
		t.Errorf("TextPreview length = %d, want 500 chars plus marker", len(got))
	}
}
