package entities

import (
	"slices"
	"strings"
	"time"

	"eduhack/internal/domain"
)

const (
	DefaultTeamCapacity = 6
	MinTeamCapacity     = 2
	MaxTeamCapacity     = 10
)

// Team is a group of participants working on challenges of one hackathon.
// Members and Challenges reference other entities by id only.
type Team struct {
	ID          uint
	Name        string
	Description string
	HackathonID uint
	FormedAt    time.Time
	State       string
	MaxMembers  int
	Members     []TeamMember
	Challenges  []TeamChallenge
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember is a participant's membership row, with a snapshot of the
// skills and level the participant had when joining.
type TeamMember struct {
	ParticipantID   uint
	Name            string
	Role            string
	Skills          []string
	ExperienceLevel string
	JoinedAt        time.Time
}

// TeamChallenge is a challenge assignment row.
type TeamChallenge struct {
	ChallengeID uint
	Title       string
	State       string
	Progress    int
	AssignedAt  time.Time
}

// NewTeam builds a forming team with the default capacity.
func NewTeam(name string, hackathonID uint) *Team {
	now := nowFunc()
	return &Team{
		Name:        name,
		HackathonID: hackathonID,
		FormedAt:    now,
		State:       domain.TeamForming,
		MaxMembers:  DefaultTeamCapacity,
		Members:     []TeamMember{},
		Challenges:  []TeamChallenge{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MemberFromParticipant snapshots a participant into a membership row.
func MemberFromParticipant(p *Participant, role string) TeamMember {
	return TeamMember{
		ParticipantID:   p.ID,
		Name:            p.Name,
		Role:            role,
		Skills:          p.Skills(),
		ExperienceLevel: p.ExperienceLevel(),
		JoinedAt:        nowFunc(),
	}
}

func (t *Team) touch() { t.UpdatedAt = nowFunc() }

// SetCapacity changes the maximum member count.
func (t *Team) SetCapacity(n int) error {
	if n < MinTeamCapacity {
		return domain.NewValidationError("Un equipo debe permitir al menos 2 integrantes")
	}
	t.MaxMembers = n
	t.touch()
	return nil
}

var teamTransitions = map[string][]string{
	domain.TeamForming: {domain.TeamFull, domain.TeamActive},
	domain.TeamFull:    {domain.TeamForming, domain.TeamActive},
	domain.TeamActive:  {domain.TeamFinished},
}

// SetState moves the team along its lifecycle. The same state is a no-op.
func (t *Team) SetState(state string) error {
	if !slices.Contains(domain.TeamStates, state) {
		return domain.NewValidationError("Estado no válido")
	}
	if state == t.State {
		return nil
	}
	if !slices.Contains(teamTransitions[t.State], state) {
		return domain.NewTransitionError(t.State, state)
	}
	t.State = state
	t.touch()
	return nil
}

func (t *Team) memberIndex(participantID uint) int {
	return slices.IndexFunc(t.Members, func(m TeamMember) bool { return m.ParticipantID == participantID })
}

func (t *Team) challengeIndex(challengeID uint) int {
	return slices.IndexFunc(t.Challenges, func(c TeamChallenge) bool { return c.ChallengeID == challengeID })
}

// HasMember reports whether the participant belongs to the team.
func (t *Team) HasMember(participantID uint) bool { return t.memberIndex(participantID) >= 0 }

// AddMember appends a membership row. An empty role is kept as unassigned.
func (t *Team) AddMember(m TeamMember) error {
	if m.Role != "" && !slices.Contains(domain.Roles, m.Role) {
		return domain.NewValidationError("El rol debe ser uno de: " + strings.Join(domain.Roles, ", "))
	}
	if t.HasMember(m.ParticipantID) {
		return domain.ErrMemberExists
	}
	if !t.CanAcceptMembers() {
		return domain.ErrTeamNotAccepting
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = nowFunc()
	}
	if m.Skills == nil {
		m.Skills = []string{}
	}
	t.Members = append(t.Members, m)
	t.touch()
	return nil
}

// RemoveMember drops the participant's membership row.
func (t *Team) RemoveMember(participantID uint) error {
	i := t.memberIndex(participantID)
	if i < 0 {
		return domain.ErrMemberNotFound
	}
	t.Members = slices.Delete(t.Members, i, i+1)
	t.touch()
	return nil
}

// AssignChallenge records a new assignment in the assigned state.
func (t *Team) AssignChallenge(c *Challenge) error {
	if t.challengeIndex(c.ID) >= 0 {
		return domain.ErrChallengeAssigned
	}
	if !t.CanTakeMoreChallenges() {
		return domain.ErrTeamChallengeLimit
	}
	t.Challenges = append(t.Challenges, TeamChallenge{
		ChallengeID: c.ID,
		Title:       c.Title,
		State:       domain.ParticipationAssigned,
		AssignedAt:  nowFunc(),
	})
	t.touch()
	return nil
}

// UpdateChallengeProgress sets the participation state and progress of an
// assignment. An empty state keeps the current one.
func (t *Team) UpdateChallengeProgress(challengeID uint, state string, progress int) error {
	var msgs []string
	if progress < 0 || progress > 100 {
		msgs = append(msgs, "El progreso debe estar entre 0 y 100")
	}
	if state != "" && !slices.Contains(domain.ParticipationStates, state) {
		msgs = append(msgs, "El estado de participación debe ser: "+strings.Join(domain.ParticipationStates, ", "))
	}
	if len(msgs) > 0 {
		return domain.NewValidationError(msgs...)
	}
	i := t.challengeIndex(challengeID)
	if i < 0 {
		return domain.ErrChallengeNotAssigned
	}
	if state != "" {
		t.Challenges[i].State = state
	}
	t.Challenges[i].Progress = progress
	t.touch()
	return nil
}

// MemberCount returns the number of members.
func (t *Team) MemberCount() int { return len(t.Members) }

// IsFull reports whether the team reached its capacity.
func (t *Team) IsFull() bool { return t.MemberCount() >= t.MaxMembers }

// CanAcceptMembers reports whether a new member may join.
func (t *Team) CanAcceptMembers() bool {
	return t.MemberCount() < t.MaxMembers &&
		(t.State == domain.TeamForming || t.State == domain.TeamFull)
}

func (t *Team) hasRole(role string) bool {
	return slices.ContainsFunc(t.Members, func(m TeamMember) bool { return m.Role == role })
}

// HasMentor reports whether some member plays the mentor role.
func (t *Team) HasMentor() bool { return t.hasRole(domain.RoleMentor) }

// HasLeader reports whether some member plays the leader role.
func (t *Team) HasLeader() bool { return t.hasRole(domain.RoleLeader) }

// RoleDistribution counts members per role. Members without a role are
// counted under "sin_rol".
func (t *Team) RoleDistribution() map[string]int {
	dist := map[string]int{}
	for _, m := range t.Members {
		role := m.Role
		if role == "" {
			role = domain.RoleUnassigned
		}
		dist[role]++
	}
	return dist
}

// IsBalanced reports whether the team has a leader, at least one maker role
// and two or more distinct roles.
func (t *Team) IsBalanced() bool {
	dist := t.RoleDistribution()
	if dist[domain.RoleLeader] == 0 {
		return false
	}
	maker := dist[domain.RoleDeveloper] > 0 || dist[domain.RoleDesigner] > 0 || dist[domain.RoleAnalyst] > 0
	return maker && len(dist) >= 2
}

// SkillUnion merges the member skills, keeping first occurrence order.
func (t *Team) SkillUnion() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, m := range t.Members {
		for _, s := range m.Skills {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

var levelWeights = map[string]float64{
	domain.LevelBeginner:     1,
	domain.LevelJunior:       2,
	domain.LevelIntermediate: 3,
	domain.LevelSemiSenior:   4,
	domain.LevelSenior:       5,
	domain.LevelAdvanced:     5,
}

const defaultLevelWeight = 3

// AverageExperience buckets the mean member level weight.
func (t *Team) AverageExperience() string {
	if len(t.Members) == 0 {
		return domain.LevelUndetermined
	}
	var sum float64
	for _, m := range t.Members {
		w, ok := levelWeights[m.ExperienceLevel]
		if !ok {
			w = defaultLevelWeight
		}
		sum += w
	}
	return LevelBucket(sum / float64(len(t.Members)))
}

// LevelBucket maps a mean level weight back to a level label.
func LevelBucket(avg float64) string {
	switch {
	case avg >= 4.5:
		return domain.LevelAdvanced
	case avg >= 3.5:
		return domain.LevelIntermediate
	case avg >= 2.5:
		return domain.LevelJunior
	default:
		return domain.LevelBeginner
	}
}

// ActiveChallengeCount counts assignments that are assigned or in development.
func (t *Team) ActiveChallengeCount() int {
	n := 0
	for _, c := range t.Challenges {
		if c.State == domain.ParticipationAssigned || c.State == domain.ParticipationInProgress {
			n++
		}
	}
	return n
}

// ChallengeCap returns how many active challenges the team may hold.
func (t *Team) ChallengeCap() int {
	if t.HasMentor() {
		return 3
	}
	return 2
}

// CanTakeMoreChallenges reports whether one more challenge can be assigned.
func (t *Team) CanTakeMoreChallenges() bool {
	return t.ActiveChallengeCount() < t.ChallengeCap() &&
		(t.State == domain.TeamFull || t.State == domain.TeamActive)
}

// AverageProgress is the mean progress over every assignment, 0 with none.
func (t *Team) AverageProgress() float64 {
	if len(t.Challenges) == 0 {
		return 0
	}
	sum := 0
	for _, c := range t.Challenges {
		sum += c.Progress
	}
	return float64(sum) / float64(len(t.Challenges))
}

// Validate returns every violated invariant; an empty slice means valid.
func (t *Team) Validate() []string {
	errs := []string{}
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, "El nombre del equipo es obligatorio")
	}
	if t.HackathonID == 0 {
		errs = append(errs, "Debe especificar un hackathon válido")
	}
	if t.MaxMembers < MinTeamCapacity {
		errs = append(errs, "Un equipo debe permitir al menos 2 integrantes")
	}
	if t.MaxMembers > MaxTeamCapacity {
		errs = append(errs, "Se recomienda un máximo de 10 integrantes por equipo")
	}
	if !slices.Contains(domain.TeamStates, t.State) {
		errs = append(errs, "El estado debe ser: "+strings.Join(domain.TeamStates, ", "))
	}
	return errs
}
