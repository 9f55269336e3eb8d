package api

import (
	"fmt"

	"github.com/helpdesk-community/helpdesk-api/store"
)

var (
	errorMessageMap = map[int64]string{
		998: "service temporarily unavailable",
		999: "internal server error",

		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "authentication required",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: "email is not verified by the identity provider",

		1200: store.ErrCardNotFound.Error(),
		1201: store.ErrOwnCard.Error(),
		1202: store.ErrCardNotOpen.Error(),
		1203: store.ErrDecisionConflict.Error(),
		1204: store.ErrNotCardAuthor.Error(),
		1205: "invalid card query",

		1300: store.ErrDeckNotFound.Error(),
		1301: store.ErrInviteCodeExhausted.Error(),

		1400: store.ErrPostNotFound.Error(),
		1401: store.ErrSelfFollow.Error(),
		1402: "unknown group category",
	}

	errorServiceUnavailable = errorJSON(998)
	errorInternalServer     = errorJSON(999)

	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAuthenticationRequired     = errorJSON(1004)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken        = errorJSON(1100)
	errorAccountNotFound     = errorJSON(1101)
	errorEmailNotVerified    = errorJSON(1102)
	errorCardNotFound        = errorJSON(1200)
	errorOwnCard             = errorJSON(1201)
	errorCardNotOpen         = errorJSON(1202)
	errorDecisionConflict    = errorJSON(1203)
	errorNotCardAuthor       = errorJSON(1204)
	errorInvalidCardQuery    = errorJSON(1205)
	errorDeckNotFound        = errorJSON(1300)
	errorInviteCodeExhausted = errorJSON(1301)
	errorPostNotFound        = errorJSON(1400)
	errorSelfFollow          = errorJSON(1401)
	errorUnknownCategory     = errorJSON(1402)
)

type ErrorResponse struct {
	Code      int64  `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:      code,
		Message:   message,
		Retryable: code == 998,
	}
}

// messageID is the i18n message id of an error code
func (e ErrorResponse) messageID() string {
	return fmt.Sprintf("error.%d", e.Code)
}
