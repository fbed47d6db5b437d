package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа об ошибке; Fields заполняется только при ошибках валидации.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusResponse ответ на изменение/удаление и health-check.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

var statusOK = StatusResponse{Status: "ok"}

func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, logger *zap.SugaredLogger) {
	writeJSON(w, status, ErrorResponse{Error: msg}, logger)
}

// requestError ошибка разбора запроса с HTTP-статусом.
type requestError struct {
	status int
	resp   ErrorResponse
}

func (e *requestError) Error() string { return e.resp.Error }

func writeRequestError(w http.ResponseWriter, err error, logger *zap.SugaredLogger) {
	var re *requestError
	if errors.As(err, &re) {
		writeJSON(w, re.status, re.resp, logger)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), logger)
}

// decodeJSON читает тело запроса в dst и проверяет обязательные поля.
// Неизвестные поля игнорируются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		var nullErr *nullFieldError
		switch {
		case errors.As(err, &nullErr):
			return &requestError{status: http.StatusBadRequest, resp: ErrorResponse{
				Error:  "invalid request body",
				Fields: map[string]string{nullErr.field: "must not be null"},
			}}
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &requestError{status: http.StatusBadRequest, resp: ErrorResponse{
				Error:  "invalid request body",
				Fields: map[string]string{typeErr.Field: fmt.Sprintf("must be of type %s", jsonType(typeErr.Type.String()))},
			}}
		case errors.As(err, &maxErr):
			return &requestError{status: http.StatusRequestEntityTooLarge, resp: ErrorResponse{Error: "request body too large"}}
		case errors.Is(err, io.EOF):
			return &requestError{status: http.StatusBadRequest, resp: ErrorResponse{Error: "empty request body"}}
		default:
			return &requestError{status: http.StatusBadRequest, resp: ErrorResponse{Error: "invalid JSON"}}
		}
	}
	// после объекта допускаются только пробелы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &requestError{status: http.StatusRequestEntityTooLarge, resp: ErrorResponse{Error: "request body too large"}}
		}
		return &requestError{status: http.StatusBadRequest, resp: ErrorResponse{Error: "invalid JSON"}}
	}

	if fields := validate.Struct(dst); len(fields) > 0 {
		return &requestError{status: http.StatusUnprocessableEntity, resp: ErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		}}
	}
	return nil
}

// nullFieldError явный null в поле, у которого есть значение по умолчанию.
type nullFieldError struct {
	field string
}

func (e *nullFieldError) Error() string { return e.field + " must not be null" }

// rejectNulls возвращает ошибку, если одно из полей передано как null.
// Отсутствующее поле допустимо: для него подставляется значение по умолчанию.
func rejectNulls(data []byte, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, f := range fields {
		if v, ok := raw[f]; ok && string(v) == "null" {
			return &nullFieldError{field: f}
		}
	}
	return nil
}

// pathID разбирает числовой идентификатор из URL.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &requestError{status: http.StatusBadRequest, resp: ErrorResponse{
			Error:  "invalid " + name,
			Fields: map[string]string{name: "must be an integer"},
		}}
	}
	return id, nil
}

// jsonType переводит тип из json.UnmarshalTypeError в термины JSON.
// Для полей-указателей декодер сообщает тип элемента (int, а не *int).
func jsonType(goType string) string {
	switch goType {
	case "string":
		return "string"
	case "bool":
		return "boolean"
	case "int", "float64":
		return "number"
	case "[]string":
		return "array of strings"
	default:
		return goType
	}
}

// logServiceError пишет ошибку сервиса; коллизию уникального ключа помечает отдельно.
func logServiceError(logger *zap.SugaredLogger, op string, err error, kv ...any) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Errorw(op+": uniqueness violation", append(kv, "error", err)...)
		return
	}
	logger.Errorw(op+": service error", append(kv, "error", err)...)
}
