// Package handlers contains the HTTP handlers for the MolCanvas REST API.
// Handlers translate HTTP requests into application-service calls and map
// domain errors onto the wire format defined in pkg/types/common.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// maxRequestBody caps the size of any JSON request body the API accepts.
// Molecule graphs are small; anything above this is a client mistake.
const maxRequestBody = 1 << 20 // 1 MiB

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeSuccess wraps data in the standard success envelope, stamping the
// request ID assigned by the chi RequestID middleware.
func writeSuccess(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	resp := common.NewSuccessResponse(data)
	resp.RequestID = chimw.GetReqID(r.Context())
	writeJSON(w, statusCode, resp)
}

// writePaginated wraps data in the success envelope together with pagination
// metadata.
func writePaginated(w http.ResponseWriter, r *http.Request, data interface{}, page common.Pagination) {
	resp := common.NewPaginatedResponse(data, page)
	resp.RequestID = chimw.GetReqID(r.Context())
	writeJSON(w, http.StatusOK, resp)
}

// writeAppError maps an application error onto an HTTP status via the
// code table in pkg/errors and emits the standard error envelope.
// Non-AppError failures are masked as an opaque internal error so that
// driver details never leak to clients.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	var message string
	if ae, ok := err.(*errors.AppError); ok {
		message = ae.Message
		if ae.Detail != "" {
			message = message + ": " + ae.Detail
		}
	}
	if code == errors.CodeUnknown || message == "" {
		code = errors.ErrCodeInternal
		message = errors.DefaultMessageForCode(code)
	}

	resp := common.NewErrorResponse(string(code), message)
	resp.RequestID = chimw.GetReqID(r.Context())
	writeJSON(w, errors.HTTPStatusForCode(code), resp)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields and
// oversized payloads. It returns a validation AppError suitable for
// writeAppError on failure.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New(errors.ErrCodeBadRequest, "malformed JSON request body").WithCause(err)
	}
	return nil
}

// parsePagination extracts page and page_size query parameters with sane
// defaults and an upper bound on page size.
func parsePagination(r *http.Request) common.Pagination {
	page := common.Pagination{Page: 1, PageSize: 20}

	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page.Page = p
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			page.PageSize = ps
		}
	}
	return page
}

//Personal.AI order the ending
