package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domainErrors.ErrInvalidPan, http.StatusUnprocessableEntity, "invalid_pan"},
	{domainErrors.ErrInvalidExpiry, http.StatusUnprocessableEntity, "invalid_expiry"},
	{domainErrors.ErrInvalidCvv, http.StatusUnprocessableEntity, "invalid_cvv"},
	{domainErrors.ErrInvalidHolderName, http.StatusUnprocessableEntity, "invalid_holder_name"},
	{domainErrors.ErrDuplicateCard, http.StatusConflict, "duplicate_card"},
	{domainErrors.ErrUnrecognizedScheme, http.StatusBadRequest, "unrecognized_scheme"},
	{domainErrors.ErrUnsupportedVersion, http.StatusBadRequest, "unsupported_version"},
	{domainErrors.ErrMalformedField, http.StatusBadRequest, "malformed_field"},
	{domainErrors.ErrVaultNotFound, http.StatusNotFound, "vault_not_found"},
	{domainErrors.ErrVaultUnavailable, http.StatusServiceUnavailable, "vault_unavailable"},
	{domainErrors.ErrVaultRejected, http.StatusUnprocessableEntity, "vault_rejected"},
	{domainErrors.ErrVaultTimeout, http.StatusGatewayTimeout, "vault_timeout"},
	{domainErrors.ErrCapabilityNotFound, http.StatusNotFound, "not_found"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		resp.Code = "validation_error"
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			resp.Code = m.code
			writeJSON(w, m.status, resp)
			return
		}
	}

	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		resp.Code = domainErr.Code
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	log.Error().Err(err).Msg("unhandled error in handler")
	resp.Code = "internal_error"
	resp.Error = "internal server error"
	writeJSON(w, http.StatusInternalServerError, resp)
}

// errorKind labels a domain error for metrics without leaking free-form
// messages into label values.
func errorKind(err error) string {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return "internal"
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domainErrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return domainErrors.NewValidationError(ve[0].Field(), ve[0].Tag()+" validation failed")
		}
		return domainErrors.NewValidationError("body", err.Error())
	}
	return nil
}
