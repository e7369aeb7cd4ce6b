package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhack/internal/domain"
)

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"Python, Django,React", []string{"Python", "Django", "React"}},
		{"python, Python ,PYTHON, go", []string{"python", "go"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTechnologies(tt.raw), "raw=%q", tt.raw)
	}
}

func TestChallengeSetState(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "publish", from: domain.ChallengeDraft, to: domain.ChallengePublished},
		{name: "unpublish", from: domain.ChallengePublished, to: domain.ChallengeDraft},
		{name: "start", from: domain.ChallengePublished, to: domain.ChallengeInProgress},
		{name: "complete", from: domain.ChallengeInProgress, to: domain.ChallengeCompleted},
		{name: "same state", from: domain.ChallengeCompleted, to: domain.ChallengeCompleted},
		{name: "skip publish", from: domain.ChallengeDraft, to: domain.ChallengeInProgress, wantErr: domain.ErrInvalidTransition},
		{name: "reopen", from: domain.ChallengeCompleted, to: domain.ChallengePublished, wantErr: domain.ErrInvalidTransition},
		{name: "unknown", from: domain.ChallengeDraft, to: "archivado", wantErr: domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRealChallenge("Reto", "Desc", domain.DifficultyBasic, "", 1, "ONG")
			c.State = tt.from
			err := c.SetState(tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, tt.from, c.State)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, c.State)
		})
	}
}

func TestChallengeAvailableAndDifficulty(t *testing.T) {
	c := NewExperimentalChallenge("Reto", "Desc", domain.DifficultyIntermediate, "", 1, "")
	assert.Equal(t, domain.ApproachSTEM, c.Experimental.Approach)
	assert.False(t, c.Available())
	assert.Equal(t, 2, c.DifficultyLevel())

	require.NoError(t, c.SetState(domain.ChallengePublished))
	assert.True(t, c.Available())

	assert.ErrorIs(t, c.SetDifficulty("extremo"), domain.ErrValidation)
	require.NoError(t, c.SetDifficulty(domain.DifficultyAdvanced))
	assert.Equal(t, 3, c.DifficultyLevel())

	c.Difficulty = "?"
	assert.Equal(t, 0, c.DifficultyLevel())
}

func TestChallengeEvaluateSolution(t *testing.T) {
	rc := NewRealChallenge("Reto", "Desc", domain.DifficultyBasic, "", 1, "Cruz Roja")
	ev := rc.EvaluateSolution(map[string]float64{
		"viabilidad_tecnica":   8,
		"impacto_social":       9,
		"innovacion":           7,
		"factibilidad_empresa": 8,
	})
	assert.InDelta(t, 8.0, ev.Total, 1e-9)
	assert.True(t, ev.Approved)
	assert.Equal(t, "Reto real propuesto por: Cruz Roja", ev.Comment)

	exp := NewExperimentalChallenge("Reto", "Desc", domain.DifficultyBasic, "", 1, domain.ApproachABP)
	ev = exp.EvaluateSolution(map[string]float64{"cumplimiento_objetivos": 10, "uso_tecnologias": 10})
	assert.InDelta(t, 5.0, ev.Total, 1e-9)
	assert.False(t, ev.Approved)
	assert.Len(t, ev.Scores, 4)
	assert.Equal(t, VariantInfo{Origin: "docente", Focus: "exploracion_tecnologica"}, exp.Info())
}

func TestChallengeValidate(t *testing.T) {
	tests := []struct {
		name string
		c    *Challenge
		want []string
	}{
		{
			name: "valid real",
			c:    NewRealChallenge("Reto", "Desc", domain.DifficultyBasic, "Go", 1, "ONG"),
			want: []string{},
		},
		{
			name: "real without sponsor",
			c:    NewRealChallenge("Reto", "Desc", domain.DifficultyBasic, "Go", 1, " "),
			want: []string{"La entidad colaboradora es obligatoria"},
		},
		{
			name: "experimental bad approach and difficulty",
			c:    NewExperimentalChallenge("Reto", "Desc", "facil", "", 0, "Montessori"),
			want: []string{
				"La dificultad debe ser: basico, intermedio o avanzado",
				"Debe especificar un hackathon válido",
				"El enfoque pedagógico debe ser uno de: STEM, STEAM, ABP, Design_Thinking, Otro",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Validate())
		})
	}
}
