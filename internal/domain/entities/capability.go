package entities

import (
	"strings"

	"eduhack/internal/domain"
)

// Keyword heuristics over free text. Callers only see StudentSkills,
// StudentLevel, MentorSkills and MentorLevel.

// Skill tags.
const (
	SkillTeamwork         = "Trabajo en equipo"
	SkillProblemSolving   = "Resolución de problemas"
	SkillProgramming      = "Programación"
	SkillSoftwareDev      = "Desarrollo de software"
	SkillDesign           = "Diseño"
	SkillCreativity       = "Creatividad"
	SkillMentoring        = "Mentoría"
	SkillTechLeadership   = "Liderazgo técnico"
	SkillSoftwareArch     = "Arquitectura de software"
	SkillAI               = "Inteligencia Artificial"
	SkillMachineLearning  = "Machine Learning"
	SkillInternetOfThings = "Internet de las Cosas"
	SkillEmbeddedSystems  = "Sistemas embebidos"
)

type keywordRule struct {
	keywords []string
	skills   []string
}

var studentRules = []keywordRule{
	{keywords: []string{"ingeniería", "software"}, skills: []string{SkillProgramming, SkillSoftwareDev}},
	{keywords: []string{"diseño"}, skills: []string{SkillDesign, SkillCreativity}},
}

var mentorRules = []keywordRule{
	{keywords: []string{"desarrollo", "software"}, skills: []string{SkillSoftwareDev, SkillSoftwareArch}},
	{keywords: []string{"ia", "inteligencia"}, skills: []string{SkillAI, SkillMachineLearning}},
	{keywords: []string{"iot"}, skills: []string{SkillInternetOfThings, SkillEmbeddedSystems}},
}

func applyRules(text string, base []string, rules []keywordRule) []string {
	lower := strings.ToLower(text)
	skills := append([]string(nil), base...)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				skills = append(skills, r.skills...)
				break
			}
		}
	}
	return skills
}

// StudentSkills derives a student's skill tags from their academic grade.
func StudentSkills(grade string) []string {
	return applyRules(grade, []string{SkillTeamwork, SkillProblemSolving}, studentRules)
}

// StudentLevel derives a student's level from digits found anywhere in the
// grade text. "1"/"2" wins over "3"/"4"; no digit means advanced.
func StudentLevel(grade string) string {
	switch {
	case strings.ContainsAny(grade, "12"):
		return domain.LevelBeginner
	case strings.ContainsAny(grade, "34"):
		return domain.LevelIntermediate
	default:
		return domain.LevelAdvanced
	}
}

// MentorSkills derives a mentor's skill tags from their specialty.
func MentorSkills(specialty string) []string {
	return applyRules(specialty, []string{SkillMentoring, SkillTechLeadership, SkillProblemSolving}, mentorRules)
}

// MentorLevel derives a mentor's seniority from years of experience.
func MentorLevel(years int) string {
	switch {
	case years >= 10:
		return domain.LevelSenior
	case years >= 5:
		return domain.LevelSemiSenior
	default:
		return domain.LevelJunior
	}
}
