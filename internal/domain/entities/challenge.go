package entities

import (
	"slices"
	"strings"
	"time"

	"eduhack/internal/domain"
)

// approvalThreshold is the minimum mean criterion score of an approved solution.
const approvalThreshold = 7.0

// Challenge is a solvable task proposed within a hackathon. Kind selects
// which of the Real and Experimental payloads is set.
type Challenge struct {
	ID           uint
	Title        string
	Description  string
	Difficulty   string
	Technologies string // comma separated, as entered
	Kind         string
	State        string
	HackathonID  uint
	Real         *RealDetails
	Experimental *ExperimentalDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RealDetails holds the attributes of a challenge proposed by a company or NGO.
type RealDetails struct {
	Sponsor string
}

// ExperimentalDetails holds the attributes of a challenge designed by teachers.
type ExperimentalDetails struct {
	Approach string
}

// NewRealChallenge builds a draft sponsor-provided challenge.
func NewRealChallenge(title, description, difficulty, technologies string, hackathonID uint, sponsor string) *Challenge {
	c := newChallenge(title, description, difficulty, technologies, hackathonID, domain.KindRealChallenge)
	c.Real = &RealDetails{Sponsor: sponsor}
	return c
}

// NewExperimentalChallenge builds a draft pedagogically authored challenge.
// An empty approach defaults to STEM.
func NewExperimentalChallenge(title, description, difficulty, technologies string, hackathonID uint, approach string) *Challenge {
	if approach == "" {
		approach = domain.ApproachSTEM
	}
	c := newChallenge(title, description, difficulty, technologies, hackathonID, domain.KindExperimentalChallenge)
	c.Experimental = &ExperimentalDetails{Approach: approach}
	return c
}

func newChallenge(title, description, difficulty, technologies string, hackathonID uint, kind string) *Challenge {
	now := nowFunc()
	return &Challenge{
		Title:        title,
		Description:  description,
		Difficulty:   difficulty,
		Technologies: technologies,
		Kind:         kind,
		State:        domain.ChallengeDraft,
		HackathonID:  hackathonID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Touch refreshes the update timestamp after a mutation.
func (c *Challenge) Touch() { c.UpdatedAt = nowFunc() }

// TechnologyList parses the required technologies into a trimmed list without
// blanks or duplicates, keeping the first spelling of each entry.
func (c *Challenge) TechnologyList() []string {
	return ParseTechnologies(c.Technologies)
}

// ParseTechnologies splits a comma separated technology list.
func ParseTechnologies(raw string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		t := strings.TrimSpace(part)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

// Available reports whether the challenge can be assigned to teams.
func (c *Challenge) Available() bool { return c.State == domain.ChallengePublished }

// DifficultyLevel maps the difficulty to 1..3, or 0 when unknown.
func (c *Challenge) DifficultyLevel() int {
	switch c.Difficulty {
	case domain.DifficultyBasic:
		return 1
	case domain.DifficultyIntermediate:
		return 2
	case domain.DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// SetDifficulty changes the difficulty; unknown values are rejected.
func (c *Challenge) SetDifficulty(difficulty string) error {
	if !slices.Contains(domain.Difficulties, difficulty) {
		return domain.NewValidationError("Dificultad no válida")
	}
	c.Difficulty = difficulty
	c.Touch()
	return nil
}

var challengeTransitions = map[string][]string{
	domain.ChallengeDraft:      {domain.ChallengePublished},
	domain.ChallengePublished:  {domain.ChallengeDraft, domain.ChallengeInProgress},
	domain.ChallengeInProgress: {domain.ChallengeCompleted},
}

// SetState moves the challenge along draft → published → in progress → completed.
// Unpublishing a published challenge is allowed; the same state is a no-op.
func (c *Challenge) SetState(state string) error {
	if !slices.Contains(domain.ChallengeStates, state) {
		return domain.NewValidationError("Estado no válido")
	}
	if state == c.State {
		return nil
	}
	if !slices.Contains(challengeTransitions[c.State], state) {
		return domain.NewTransitionError(c.State, state)
	}
	c.State = state
	c.Touch()
	return nil
}

// Criterion is one evaluation criterion of a challenge variant.
type Criterion struct {
	Key         string
	Description string
}

var (
	realCriteria = []Criterion{
		{Key: "viabilidad_tecnica", Description: "Factibilidad técnica de la solución"},
		{Key: "impacto_social", Description: "Impacto esperado en la sociedad"},
		{Key: "innovacion", Description: "Nivel de innovación propuesto"},
		{Key: "factibilidad_empresa", Description: "Viabilidad de implementación en la entidad colaboradora"},
	}
	experimentalCriteria = []Criterion{
		{Key: "cumplimiento_objetivos", Description: "Cumplimiento de objetivos de aprendizaje"},
		{Key: "uso_tecnologias", Description: "Uso apropiado de nuevas tecnologías"},
		{Key: "innovacion_pedagogica", Description: "Innovación en el enfoque pedagógico"},
		{Key: "aplicabilidad_educativa", Description: "Aplicabilidad en contextos educativos"},
	}
)

// EvaluationCriteria returns the criteria used to grade solutions of this variant.
func (c *Challenge) EvaluationCriteria() []Criterion {
	switch c.Kind {
	case domain.KindRealChallenge:
		return realCriteria
	case domain.KindExperimentalChallenge:
		return experimentalCriteria
	default:
		return nil
	}
}

// Evaluation is the outcome of grading a solution against the criteria.
type Evaluation struct {
	Scores   map[string]float64
	Total    float64
	Approved bool
	Comment  string
}

// EvaluateSolution averages the variant's criteria. A missing score counts as 0.
func (c *Challenge) EvaluateSolution(scores map[string]float64) Evaluation {
	criteria := c.EvaluationCriteria()
	ev := Evaluation{Scores: make(map[string]float64, len(criteria))}
	if len(criteria) == 0 {
		return ev
	}
	var sum float64
	for _, cr := range criteria {
		ev.Scores[cr.Key] = scores[cr.Key]
		sum += scores[cr.Key]
	}
	ev.Total = sum / float64(len(criteria))
	ev.Approved = ev.Total >= approvalThreshold
	switch {
	case c.Real != nil:
		ev.Comment = "Reto real propuesto por: " + c.Real.Sponsor
	case c.Experimental != nil:
		ev.Comment = "Reto experimental con enfoque: " + c.Experimental.Approach
	}
	return ev
}

// VariantInfo describes where a challenge comes from and what it aims at.
type VariantInfo struct {
	Origin string
	Focus  string
}

// Info returns the variant metadata.
func (c *Challenge) Info() VariantInfo {
	switch c.Kind {
	case domain.KindRealChallenge:
		return VariantInfo{Origin: "empresa_ong", Focus: "solucion_practica"}
	case domain.KindExperimentalChallenge:
		return VariantInfo{Origin: "docente", Focus: "exploracion_tecnologica"}
	default:
		return VariantInfo{}
	}
}

// Validate returns every violated invariant; an empty slice means valid.
func (c *Challenge) Validate() []string {
	errs := []string{}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "El título es obligatorio")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "La descripción es obligatoria")
	}
	if validate.Var(c.Difficulty, "oneof="+strings.Join(domain.Difficulties, " ")) != nil {
		errs = append(errs, "La dificultad debe ser: basico, intermedio o avanzado")
	}
	if c.HackathonID == 0 {
		errs = append(errs, "Debe especificar un hackathon válido")
	}
	if !slices.Contains(domain.ChallengeStates, c.State) {
		errs = append(errs, "El estado debe ser: "+strings.Join(domain.ChallengeStates, ", "))
	}
	switch c.Kind {
	case domain.KindRealChallenge:
		if c.Real == nil || strings.TrimSpace(c.Real.Sponsor) == "" {
			errs = append(errs, "La entidad colaboradora es obligatoria")
		}
	case domain.KindExperimentalChallenge:
		if c.Experimental == nil || strings.TrimSpace(c.Experimental.Approach) == "" {
			errs = append(errs, "El enfoque pedagógico es obligatorio")
		} else if !slices.Contains(domain.Approaches, c.Experimental.Approach) {
			errs = append(errs, "El enfoque pedagógico debe ser uno de: "+strings.Join(domain.Approaches, ", "))
		}
	default:
		errs = append(errs, "El tipo debe ser: "+domain.KindRealChallenge+", "+domain.KindExperimentalChallenge)
	}
	return errs
}
