package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduhack/internal/domain"
)

func TestStudentCapabilities(t *testing.T) {
	tests := []struct {
		grade      string
		wantSkills []string
		wantLevel  string
	}{
		{
			grade:      "2do año Ingeniería de Software",
			wantSkills: []string{SkillTeamwork, SkillProblemSolving, SkillProgramming, SkillSoftwareDev},
			wantLevel:  domain.LevelBeginner,
		},
		{
			grade:      "Diseño Gráfico, 4to semestre",
			wantSkills: []string{SkillTeamwork, SkillProblemSolving, SkillDesign, SkillCreativity},
			wantLevel:  domain.LevelIntermediate,
		},
		{
			grade:      "Licenciatura en Matemáticas",
			wantSkills: []string{SkillTeamwork, SkillProblemSolving},
			wantLevel:  domain.LevelAdvanced,
		},
		{
			// any "1" wins, even inside a larger number
			grade:      "Semestre 10",
			wantSkills: []string{SkillTeamwork, SkillProblemSolving},
			wantLevel:  domain.LevelBeginner,
		},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			p := NewStudent("Ana", "ana@uni.edu", "", StudentProfile{Grade: tt.grade, Institution: "UNI", WeeklyHours: 10})
			assert.Equal(t, tt.wantSkills, p.Skills())
			assert.Equal(t, tt.wantLevel, p.ExperienceLevel())
			assert.False(t, p.IsMentor())
		})
	}
}

func TestMentorCapabilities(t *testing.T) {
	tests := []struct {
		specialty  string
		years      int
		wantSkills []string
		wantLevel  string
	}{
		{
			specialty:  "Desarrollo web",
			years:      12,
			wantSkills: []string{SkillMentoring, SkillTechLeadership, SkillProblemSolving, SkillSoftwareDev, SkillSoftwareArch},
			wantLevel:  domain.LevelSenior,
		},
		{
			specialty:  "Inteligencia artificial e IoT",
			years:      5,
			wantSkills: []string{SkillMentoring, SkillTechLeadership, SkillProblemSolving, SkillAI, SkillMachineLearning, SkillInternetOfThings, SkillEmbeddedSystems},
			wantLevel:  domain.LevelSemiSenior,
		},
		{
			specialty:  "Bases de datos",
			years:      2,
			wantSkills: []string{SkillMentoring, SkillTechLeadership, SkillProblemSolving},
			wantLevel:  domain.LevelJunior,
		},
	}
	for _, tt := range tests {
		t.Run(tt.specialty, func(t *testing.T) {
			p := NewMentor("Luis", "luis@corp.com", "", MentorProfile{Specialty: tt.specialty, YearsExperience: tt.years, Availability: "tardes"})
			assert.Equal(t, tt.wantSkills, p.Skills())
			assert.Equal(t, tt.wantLevel, p.ExperienceLevel())
			assert.True(t, p.IsMentor())
		})
	}
}

func TestParticipantValidate(t *testing.T) {
	tests := []struct {
		name string
		p    *Participant
		want []string
	}{
		{
			name: "valid student",
			p:    NewStudent("Ana", "ana@uni.edu", "", StudentProfile{Grade: "3", Institution: "UNI", WeeklyHours: 8}),
			want: []string{},
		},
		{
			name: "student missing fields",
			p:    NewStudent("", "not-an-email", "", StudentProfile{}),
			want: []string{
				"El nombre es obligatorio",
				"El email debe ser válido",
				"El grado académico es obligatorio",
				"La institución es obligatoria",
				"El tiempo disponible semanal debe ser un número válido",
			},
		},
		{
			name: "mentor with zero years",
			p:    NewMentor("Luis", "luis@corp.com", "", MentorProfile{Specialty: "IA", Availability: "noches"}),
			want: []string{},
		},
		{
			name: "mentor negative years",
			p:    NewMentor("Luis", "luis@corp.com", "", MentorProfile{Specialty: "IA", YearsExperience: -1, Availability: "noches"}),
			want: []string{"Los años de experiencia deben ser un número válido"},
		},
		{
			name: "student beyond a week of hours",
			p:    NewStudent("Ana", "ana@uni.edu", "", StudentProfile{Grade: "3", Institution: "UNI", WeeklyHours: 169}),
			want: []string{"El tiempo disponible semanal debe ser un número válido"},
		},
		{
			name: "student with a full week",
			p:    NewStudent("Ana", "ana@uni.edu", "", StudentProfile{Grade: "3", Institution: "UNI", WeeklyHours: 168}),
			want: []string{},
		},
		{
			name: "student hours overflowing int32",
			p:    NewStudent("Ana", "ana@uni.edu", "", StudentProfile{Grade: "3", Institution: "UNI", WeeklyHours: 2147483648}),
			want: []string{"El tiempo disponible semanal debe ser un número válido"},
		},
		{
			name: "mentor at the years cap",
			p:    NewMentor("Luis", "luis@corp.com", "", MentorProfile{Specialty: "IA", YearsExperience: 80, Availability: "noches"}),
			want: []string{},
		},
		{
			name: "mentor years overflowing int32",
			p:    NewMentor("Luis", "luis@corp.com", "", MentorProfile{Specialty: "IA", YearsExperience: 4294967308, Availability: "noches"}),
			want: []string{"Los años de experiencia deben ser un número válido"},
		},
		{
			name: "unknown kind",
			p:    &Participant{Name: "X", Email: "x@y.z", Kind: "invitado"},
			want: []string{"El tipo debe ser: estudiante, mentor_tecnico"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Validate())
		})
	}
}

func TestParticipantWithoutPayload(t *testing.T) {
	p := &Participant{Kind: domain.KindStudent}
	assert.Empty(t, p.Skills())
	assert.Equal(t, domain.LevelUndetermined, p.ExperienceLevel())
}
