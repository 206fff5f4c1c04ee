package errlog

import (
	"context"
	"errors"
	"net"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindTimeout      Kind = "timeout"
	KindNetwork      Kind = "network"
	KindUpstream     Kind = "upstream"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusCoder is implemented by errors that carry the HTTP status of a remote
// response.
type StatusCoder interface {
	HTTPStatus() int
}

// Classify maps an error onto a Kind. nil is KindUnknown.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return KindValidation
	}
	var vErr validation.Error
	if errors.As(err, &vErr) {
		return KindValidation
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		return classifyStatus(sc.HTTPStatus())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}

	return KindUnknown
}

func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return KindTimeout
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindUpstream
	}
}

// HTTPStatus is the response status a handler reports for an error of kind k.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindNetwork, KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
