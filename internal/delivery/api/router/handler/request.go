package handler

import (
	"strings"

	"trucktrace/internal/delivery/api/middleware"
	"trucktrace/internal/delivery/api/validator"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput)
	}

	return c.Validate(req)
}

// principalOf returns the caller set by the auth middleware.
func principalOf(c echo.Context) (*entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNoToken)
	}

	return principal, nil
}

// viewerOf returns the caller if OptionalAuth attached one.
func viewerOf(c echo.Context) *entity.Principal {
	principal, _ := middleware.GetPrincipal(c)

	return principal
}

// pathUUID parses a path parameter. Failures are reported under field.
func pathUUID(c echo.Context, param, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, validator.Invalid(field)
	}

	return id, nil
}

// queryUUID parses a required query parameter.
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return uuid.Nil, validator.Invalid(name)
	}

	return id, nil
}

// queryFloat returns nil when the parameter is absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v float64
	if err := echo.QueryParamsBinder(c).Float64(name, &v).BindError(); err != nil {
		return nil, validator.Invalid(name)
	}

	return &v, nil
}

// queryBool returns nil when the parameter is absent.
func queryBool(c echo.Context, name string) (*bool, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v bool
	if err := echo.QueryParamsBinder(c).Bool(name, &v).BindError(); err != nil {
		return nil, validator.Invalid(name)
	}

	return &v, nil
}

// queryInt returns 0 when the parameter is absent.
func queryInt(c echo.Context, name string) (int, error) {
	if c.QueryParam(name) == "" {
		return 0, nil
	}

	var v int
	if err := echo.QueryParamsBinder(c).Int(name, &v).BindError(); err != nil || v < 0 {
		return 0, validator.Invalid(name)
	}

	return v, nil
}
