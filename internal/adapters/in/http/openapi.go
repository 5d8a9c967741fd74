package http

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"marketplace/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// LoadOpenAPI parses and validates the embedded OpenAPI document once per
// process.
var LoadOpenAPI = sync.OnceValues(func() (*openapi3.T, error) {
	openapi3.DefineStringFormatValidator("uuid", openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
})

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// registerSwaggerDoc publishes doc under swag's default instance so that
// echo-swagger serves it as doc.json.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}

// ValidateRequest checks the routed request against its operation in doc.
// It must run as route middleware so that echo has already resolved the
// route path and its parameters.
func ValidateRequest(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, pathParams, ok := findRoute(doc, c)
			if !ok {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", errors.New(describeValidationError(err)))
			}

			return next(c)
		}
	}
}

func findRoute(doc *openapi3.T, c echo.Context) (*routers.Route, map[string]string, bool) {
	path := openAPIPath(c.Path())
	item := doc.Paths.Find(path)
	if item == nil {
		return nil, nil, false
	}

	method := c.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, nil, false
	}

	names, values := c.ParamNames(), c.ParamValues()
	pathParams := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			pathParams[name] = values[i]
		}
	}

	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, pathParams, true
}

// openAPIPath turns an echo route like /orders/:orderId into /orders/{orderId}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func describeValidationError(err error) string {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return err.Error()
	}

	reason := requestErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(requestErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			reason = strings.Join(pointer, ".") + ": " + reason
		}
	} else if reason == "" && requestErr.Err != nil {
		reason = requestErr.Err.Error()
	}

	if requestErr.Parameter != nil {
		return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, reason)
	}
	return reason
}
