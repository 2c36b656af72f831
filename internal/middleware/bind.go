package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cityDesk/pkg/validator"
)

const maxBodyBytes = 1 << 20

// BindJSON decodes the body into a fresh T per request, runs struct
// validation and hands the value to next.
func BindJSON[T any](next func(http.ResponseWriter, *http.Request, T)) http.HandlerFunc {
	return bind(next, true)
}

// DecodeJSON is BindJSON without struct validation, for handlers that
// report domain validation problems themselves.
func DecodeJSON[T any](next func(http.ResponseWriter, *http.Request, T)) http.HandlerFunc {
	return bind(next, false)
}

func bind[T any](next func(http.ResponseWriter, *http.Request, T), validate bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target T

		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&target); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
			return
		}

		if validate {
			if err := validator.ValidateStruct(target); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		next(w, r, target)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
