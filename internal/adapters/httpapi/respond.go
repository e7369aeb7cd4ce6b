package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eduhack/internal/domain"
	"eduhack/internal/presenter"
)

type errorBody struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Errores []string `json:"errores"`
}

func (h *Handler) view(c *gin.Context) presenter.View {
	return presenter.View{Now: h.now(), Locale: c.GetString(localeKey), T: h.i18n}
}

func statusFor(err error) int {
	switch code := domain.Code(err); {
	case code == "":
		return http.StatusInternalServerError
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case code == "validation":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusConflict
	}
}

// fail writes the error body for a use case error.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "request_id", c.GetString(requestIDKey))
		code = "internal"
	}
	messages := domain.ValidationMessages(err)
	if messages == nil {
		messages = []string{}
	}
	c.AbortWithStatusJSON(status, errorBody{
		Error:   h.i18n.T(c.GetString(localeKey), "error."+code, nil),
		Code:    code,
		Errores: messages,
	})
}

// badRequest reports input that could not be decoded.
func (h *Handler) badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
		Error:   h.i18n.T(c.GetString(localeKey), "error.bad_request", nil),
		Code:    "bad_request",
		Errores: []string{err.Error()},
	})
}

// idParam reads a positive numeric path parameter, or answers 400.
func (h *Handler) idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		h.badRequest(c, &paramError{name: name, value: c.Param(name)})
		return 0, false
	}
	return uint(id), true
}

type paramError struct{ name, value string }

func (e *paramError) Error() string {
	return e.name + ": identificador no válido: " + strconv.Quote(e.value)
}
