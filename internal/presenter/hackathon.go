package presenter

import (
	"eduhack/internal/domain/entities"
	"eduhack/pkg/tz"
)

type HackathonRecord struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Lugar       string `json:"lugar"`
	Estado      string `json:"estado"`

	EstadoCalculado      string    `json:"estado_calculado,omitempty"`
	DuracionDias         int       `json:"duracion_dias,omitempty"`
	DuracionHoras        int       `json:"duracion_horas,omitempty"`
	TipoHackathon        string    `json:"tipo_hackathon,omitempty"`
	Modalidad            string    `json:"modalidad,omitempty"`
	DescripcionModalidad string    `json:"descripcion_modalidad,omitempty"`
	EnCurso              bool      `json:"en_curso"`
	HaTerminado          bool      `json:"ha_terminado"`
	NoHaComenzado        bool      `json:"no_ha_comenzado"`
	PermiteInscripciones bool      `json:"permite_inscripciones"`
	TiempoRestante       Remaining `json:"tiempo_restante"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type Remaining struct {
	Tipo    string `json:"tipo"`
	Dias    int    `json:"dias"`
	Horas   int    `json:"horas"`
	Mensaje string `json:"mensaje"`
}

func Hackathon(v View, h *entities.Hackathon) HackathonRecord {
	phase := h.Phase(v.Now)
	modality := h.Modality()
	cd := h.Remaining(v.Now)
	return HackathonRecord{
		ID:                   h.ID,
		Nombre:               h.Name,
		Descripcion:          h.Description,
		FechaInicio:          tz.Format(h.Start()),
		FechaFin:             tz.Format(h.End()),
		Lugar:                h.Location,
		Estado:               h.State,
		EstadoCalculado:      string(phase),
		DuracionDias:         h.DurationDays(),
		DuracionHoras:        h.DurationHours(),
		TipoHackathon:        string(h.Kind()),
		Modalidad:            string(modality),
		DescripcionModalidad: v.t("modality."+string(modality), nil),
		EnCurso:              phase == entities.PhaseInProgress,
		HaTerminado:          phase == entities.PhaseFinished,
		NoHaComenzado:        phase == entities.PhaseNotStarted,
		PermiteInscripciones: h.AllowsRegistration(v.Now),
		TiempoRestante: Remaining{
			Tipo:    cd.Kind,
			Dias:    cd.Days,
			Horas:   cd.Hours,
			Mensaje: v.t("countdown."+cd.Kind, map[string]any{"Days": cd.Days, "Hours": cd.Hours}),
		},
		CreatedAt: tz.Format(h.CreatedAt),
		UpdatedAt: tz.Format(h.UpdatedAt),
	}
}

func Hackathons(v View, list []entities.Hackathon) []HackathonRecord {
	out := make([]HackathonRecord, 0, len(list))
	for i := range list {
		out = append(out, Hackathon(v, &list[i]))
	}
	return out
}

// ToEntity rebuilds the stored fields. Derived fields are ignored.
func (r HackathonRecord) ToEntity() (*entities.Hackathon, error) {
	start, err := parseTime("fecha_inicio", r.FechaInicio)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("fecha_fin", r.FechaFin)
	if err != nil {
		return nil, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime("updated_at", r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return entities.RestoreHackathon(entities.Hackathon{
		ID:          r.ID,
		Name:        r.Nombre,
		Description: r.Descripcion,
		Location:    r.Lugar,
		State:       r.Estado,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, start, end), nil
}
