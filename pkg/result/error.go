package result

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorType классифицирует ожидаемые ошибки доменного слоя
type ErrorType int

const (
	TypeFailure ErrorType = iota
	TypeValidation
	TypeProblem
	TypeNotFound
	TypeConflict
	TypeNullValue
)

// String возвращает имя типа ошибки для логов и ответов API
func (t ErrorType) String() string {
	switch t {
	case TypeValidation:
		return "Validation"
	case TypeProblem:
		return "Problem"
	case TypeNotFound:
		return "NotFound"
	case TypeConflict:
		return "Conflict"
	case TypeNullValue:
		return "NullValue"
	default:
		return "Failure"
	}
}

// Error описывает ожидаемую ошибку: машинный код, описание и тип.
// Клиенты API ветвятся по Code, не по тексту Description.
type Error struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Type        ErrorType `json:"-"`

	// Errors заполняется только для ValidationError
	Errors []Error `json:"errors,omitempty"`

	// Cause хранит исходную инфраструктурную ошибку, наружу не сериализуется
	Cause error `json:"-"`
}

// ErrNullValue возвращается когда обязательный ключ корреляции отсутствует
var ErrNullValue = &Error{
	Code:        "General.Null",
	Description: "Null value was provided",
	Type:        TypeNullValue,
}

func NewError(code, description string) *Error {
	return &Error{Code: code, Description: description, Type: TypeFailure}
}

func NotFound(code, description string) *Error {
	return &Error{Code: code, Description: description, Type: TypeNotFound}
}

func Conflict(code, description string) *Error {
	return &Error{Code: code, Description: description, Type: TypeConflict}
}

func Problem(code, description string) *Error {
	return &Error{Code: code, Description: description, Type: TypeProblem}
}

func Validation(code, description string) *Error {
	return &Error{Code: code, Description: description, Type: TypeValidation}
}

// Unexpected оборачивает инфраструктурную ошибку (хранилище недоступно и т.п.).
// Транспортный слой отображает такие ошибки в 500 и логирует Cause.
func Unexpected(cause error) *Error {
	return &Error{
		Code:        "General.Unexpected",
		Description: "An unexpected error occurred",
		Type:        TypeFailure,
		Cause:       cause,
	}
}

// Unwrap отдает исходную причину для errors.Is/As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidationError агрегирует ошибки отдельных полей в одну ошибку валидации
func NewValidationError(errors []Error) *Error {
	return &Error{
		Code:        "General.Validation",
		Description: "One or more validation errors occurred",
		Type:        TypeValidation,
		Errors:      errors,
	}
}

// Error реализует error для передачи через обычные error-цепочки
func (e *Error) Error() string {
	if len(e.Errors) > 0 {
		details := make([]string, 0, len(e.Errors))
		for _, fe := range e.Errors {
			details = append(details, fe.Code)
		}
		return fmt.Sprintf("%s: %s [%s]", e.Code, e.Description, strings.Join(details, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// StatusCode возвращает HTTP статус для типа ошибки.
// Транспортный слой использует его при маппинге Result в ответ.
func (e *Error) StatusCode() int {
	switch e.Type {
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeValidation, TypeProblem, TypeNullValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
