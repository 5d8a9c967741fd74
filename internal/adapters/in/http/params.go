package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindUUIDParam(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// bindDateRange reads the inclusive startDate/endDate RFC 3339 query pair.
func bindDateRange(c echo.Context) (queries.DateRange, error) {
	var start, end time.Time
	if err := runtime.BindQueryParameter("form", true, true, "startDate", c.QueryParams(), &start); err != nil {
		return queries.DateRange{}, errs.NewValueIsInvalidErrorWithCause("startDate", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "endDate", c.QueryParams(), &end); err != nil {
		return queries.DateRange{}, errs.NewValueIsInvalidErrorWithCause("endDate", err)
	}
	return queries.NewDateRange(start, end)
}
