// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Каждый ответ несёт
// человеко‑читаемое сообщение, опционально данные, идентификатор ресурса
// (для ответов 404) и список полевых ошибок валидации.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
type Response struct {
	Data    any          `json:"data,omitempty"`
	ID      int          `json:"id,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError — описание одной ошибки валидации конкретного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Message string `json:"message" example:"Invalid request body"`
}

// OK возвращает Response только с сообщением.
func OK(msg string) Response {
	return Response{
		Message: msg,
	}
}

// OKWithData возвращает Response с данными и сообщением.
func OKWithData(data any, msg string) Response {
	return Response{
		Data:    data,
		Message: msg,
	}
}

// Error возвращает Response с переданным сообщением об ошибке.
func Error(msg string) Response {
	return Response{
		Message: msg,
	}
}

// NotFound возвращает Response для отсутствующего ресурса,
// включающий идентификатор, который не удалось найти.
func NotFound(id int, msg string) Response {
	return Response{
		ID:      id,
		Message: msg,
	}
}

// ValidationError формирует Response со списком полевых ошибок валидации.
// Каждое нарушение преобразуется в человеко‑читаемый текст.
func ValidationError(errs validator.ValidationErrors, msg string) Response {
	var fieldErrs []FieldError

	for _, err := range errs {
		var text string
		switch err.ActualTag() {
		case "required":
			text = fmt.Sprintf("field %s is a required field", err.Field())
		case "email":
			text = fmt.Sprintf("field %s must be a valid email address", err.Field())
		case "min":
			text = fmt.Sprintf("field %s must be at least %s characters long", err.Field(), err.Param())
		case "oneof":
			text = fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param())
		case "gte":
			text = fmt.Sprintf("field %s must be greater than or equal to %s", err.Field(), err.Param())
		default:
			text = fmt.Sprintf("field %s is not valid", err.Field())
		}
		fieldErrs = append(fieldErrs, FieldError{
			Field:   err.Field(),
			Message: text,
		})
	}
	return Response{
		Message: msg,
		Errors:  fieldErrs,
	}
}
