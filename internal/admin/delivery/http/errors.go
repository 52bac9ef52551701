package http

import (
	"errors"
	"net/http"

	"erp-admin/pkg/apiclient"
	pkgErrors "erp-admin/pkg/errors"
)

var (
	errNoNextPage     = pkgErrors.NewHTTPError(http.StatusConflict, "no next page")
	errNoPreviousPage = pkgErrors.NewHTTPError(http.StatusConflict, "no previous page")
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "body must be a JSON object")
	errInvalidLimit   = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
	errMissingID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errNotSearchable  = pkgErrors.NewHTTPError(http.StatusNotFound, "module has no search")
)

// mapError translates action and module errors into HTTP errors.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	var authErr *apiclient.AuthenticationError
	if errors.As(err, &authErr) {
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, authErr.Error())
	}

	var reqErr *apiclient.RequestError
	if errors.As(err, &reqErr) {
		status := reqErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return pkgErrors.NewHTTPError(status, reqErr.Message)
	}

	return pkgErrors.ErrInternalServerError
}
