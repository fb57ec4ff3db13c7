package service

import (
	"errors"

	"github.com/Cj170303/PPIA-Pro/internal/client"
)

// Messages shown to users. The quiz audience reads Spanish.
const (
	MsgLoginMissing      = "Completa correo y contraseña."
	MsgLoginFailed       = "No fue posible iniciar sesión"
	MsgRegisterMissing   = "Completa todos los campos del registro."
	MsgRegisterFailed    = "No fue posible registrar"
	MsgRegistered        = "Cuenta creada. Ahora inicia sesión."
	MsgInvalidWeek       = "Semana inválida"
	MsgWeekFailed        = "Error al guardar semana"
	MsgWeekSaved         = "Semana guardada: %d"
	MsgNoTopic           = "Selecciona al menos un tema"
	MsgInvalidDifficulty = "Selecciona una dificultad válida"
	MsgTopicsHint        = "Haz clic en uno o más temas; se enviarán separados por coma."
	MsgEmptyAnswer       = "Escribe tu respuesta (letra)."
	MsgAlreadyAnswered   = "Ya respondiste esta pregunta."
	MsgAnswerFirst       = "Responde la pregunta antes de continuar."
	MsgNoActiveQuestion  = "No hay una pregunta activa."
	MsgEmptyTopic        = "Tema vacío"
	MsgUnreachable       = "No fue posible contactar el servidor: "
	MsgUnexpected        = "Ocurrió un error inesperado."
)

// ErrNotLoggedIn is returned by gated page loads when the backend reports no
// authenticated session.
var ErrNotLoggedIn = errors.New("not logged in")

// ValidationError is raised before any backend call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RejectedError is a backend reply without success and without a reason.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// UserMessage turns any error of a user action into the text to display.
func UserMessage(err error) string {
	var ve *ValidationError
	var re *RejectedError
	var se *client.ServerError
	var te *client.TransportError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &re):
		return re.Message
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &te):
		return MsgUnreachable + te.Err.Error()
	default:
		return MsgUnexpected
	}
}

// IsUserFacing reports whether err is an expected outcome of a user action
// rather than an internal failure.
func IsUserFacing(err error) bool {
	var ve *ValidationError
	var re *RejectedError
	var se *client.ServerError
	return errors.As(err, &ve) || errors.As(err, &re) || errors.As(err, &se) || client.IsTransport(err)
}
