package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"gp_tracker/pkg/contextx"
	"gp_tracker/pkg/errcodes"
	"gp_tracker/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Fields    []string `json:"fields,omitempty"`
	SupportID string   `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

// coder is implemented by domain errors that carry a taxonomy code.
type coder interface {
	error
	ErrorCode() failure.ErrorCode
}

// fielder is implemented by validation errors that name offending fields.
type fielder interface {
	error
	FieldList() []string
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var fieldErr fielder
	if errors.As(err, &fieldErr) {
		response.Fields = fieldErr.FieldList()
	}

	var codeErr coder
	if errors.As(err, &codeErr) {
		response.Code = codeErr.ErrorCode().String()
		if response.Message == "" {
			response.Message = codeErr.Error()
		}
		JSON(ctx, w, statusForCode(codeErr.ErrorCode()), response)
		return
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func statusForCode(code failure.ErrorCode) int {
	switch code {
	case errcodes.ValidationError, errcodes.UnknownActivity:
		return http.StatusBadRequest
	case errcodes.NotFound, errcodes.MasterNotFound, errcodes.MonsterNotFound:
		return http.StatusNotFound
	case errcodes.MasterRequirementsNotMet, errcodes.MonsterNotEligible:
		return http.StatusUnprocessableEntity
	case errcodes.PriceUnavailable:
		return http.StatusServiceUnavailable
	case errcodes.ConfigLoadError:
		return http.StatusBadGateway
	case errcodes.TimeoutExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
