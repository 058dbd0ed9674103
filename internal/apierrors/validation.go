package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report fields by their JSON names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// ValidationError sends a 400 for binding and validation failures.
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	ctx := c.Request.Context()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		logger.InfoWithError(ctx, "validation failed", err)
		respond(c, http.StatusBadRequest, ErrorResponse{Error: describeFieldErrors(fieldErrs), Code: CodeInvalidInput})
		return
	}

	logger.InfoWithError(ctx, "request binding failed", err)
	respond(c, http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request body",
		Code:    CodeInvalidInput,
		Details: bindingDetails(err),
	})
}

func describeFieldErrors(fieldErrs validator.ValidationErrors) string {
	switch len(fieldErrs) {
	case 0:
		return "Invalid request"
	case 1:
		return describeFieldError(fieldErrs[0])
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, describeFieldError(fe))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "uuid":
		return field + " must be a valid UUID"
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "len":
		return fmt.Sprintf("%s must be exactly %s%s", field, param, unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// bindingDetails names the offending field for JSON type mismatches.
func bindingDetails(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	}
	return ""
}
