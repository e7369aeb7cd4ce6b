package httpapi

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"eduhack/internal/domain"
	"eduhack/internal/domain/entities"
	"eduhack/internal/ports/input"
)

type failingHackathons struct {
	input.HackathonUseCase
	err error
}

func (f failingHackathons) GetHackathon(context.Context, uint) (*entities.Hackathon, error) {
	return nil, f.err
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestHackathonOf(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog string
	}{
		{name: "gone", err: domain.ErrHackathonNotFound},
		{name: "store failure", err: errors.New("connection reset"), wantLog: "connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLog(t)
			h := &Handler{hackathons: failingHackathons{err: tt.err}}

			got := h.hackathonOf(context.Background(), &entities.Challenge{ID: 3, HackathonID: 7})
			assert.Nil(t, got)
			if tt.wantLog == "" {
				assert.Empty(t, logs.String())
				return
			}
			assert.Contains(t, logs.String(), "Hackathon lookup failed")
			assert.Contains(t, logs.String(), "hackathon_id=7")
			assert.Contains(t, logs.String(), tt.wantLog)
		})
	}
}
