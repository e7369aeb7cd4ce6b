package domain

// Hackathon states (stored, advisory) and derived phases.
const (
	HackathonPlanning = "planificacion"
	HackathonActive   = "activo"
	HackathonFinished = "finalizado"
)

// HackathonStates lists the valid stored hackathon states.
var HackathonStates = []string{HackathonPlanning, HackathonActive, HackathonFinished}

// Participant kinds.
const (
	KindStudent = "estudiante"
	KindMentor  = "mentor_tecnico"
)

// Challenge kinds.
const (
	KindRealChallenge         = "reto_real"
	KindExperimentalChallenge = "reto_experimental"
)

// Challenge lifecycle states.
const (
	ChallengeDraft      = "borrador"
	ChallengePublished  = "publicado"
	ChallengeInProgress = "en_desarrollo"
	ChallengeCompleted  = "completado"
)

// ChallengeStates lists the valid challenge states in lifecycle order.
var ChallengeStates = []string{ChallengeDraft, ChallengePublished, ChallengeInProgress, ChallengeCompleted}

// Challenge difficulties, ordered basico < intermedio < avanzado.
const (
	DifficultyBasic        = "basico"
	DifficultyIntermediate = "intermedio"
	DifficultyAdvanced     = "avanzado"
)

// Difficulties lists the valid difficulties in ascending order.
var Difficulties = []string{DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced}

// Pedagogical approaches of experimental challenges.
const (
	ApproachSTEM           = "STEM"
	ApproachSTEAM          = "STEAM"
	ApproachABP            = "ABP"
	ApproachDesignThinking = "Design_Thinking"
	ApproachOther          = "Otro"
)

// Approaches lists the valid pedagogical approaches.
var Approaches = []string{ApproachSTEM, ApproachSTEAM, ApproachABP, ApproachDesignThinking, ApproachOther}

// Team lifecycle states.
const (
	TeamForming  = "formandose"
	TeamFull     = "completo"
	TeamActive   = "activo"
	TeamFinished = "finalizado"
)

// TeamStates lists the valid team states in lifecycle order.
var TeamStates = []string{TeamForming, TeamFull, TeamActive, TeamFinished}

// In-team roles.
const (
	RoleLeader     = "lider"
	RoleDeveloper  = "desarrollador"
	RoleDesigner   = "disenador"
	RoleAnalyst    = "analista"
	RoleMentor     = "mentor"
	RoleUnassigned = "sin_rol"
)

// Roles lists the roles a member can be given; an empty role is also accepted.
var Roles = []string{RoleLeader, RoleDeveloper, RoleDesigner, RoleAnalyst, RoleMentor}

// Participation states of an assigned challenge.
const (
	ParticipationAssigned   = "asignado"
	ParticipationInProgress = "en_desarrollo"
	ParticipationCompleted  = "completado"
	ParticipationWithdrawn  = "retirado"
)

// ParticipationStates lists the valid participation states.
var ParticipationStates = []string{ParticipationAssigned, ParticipationInProgress, ParticipationCompleted, ParticipationWithdrawn}

// Experience levels, shared by students (principiante/intermedio/avanzado)
// and mentors (junior/semi-senior/senior).
const (
	LevelBeginner     = "principiante"
	LevelJunior       = "junior"
	LevelIntermediate = "intermedio"
	LevelSemiSenior   = "semi-senior"
	LevelSenior       = "senior"
	LevelAdvanced     = "avanzado"
	LevelUndetermined = "sin_determinar"
)
