package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Messages returned to the client for request-level failures.
const (
	MsgNoData      = "Dados não fornecidos"
	MsgInvalidData = "Dados inválidos"
)

// Request is implemented by every request body. Normalize trims free-text
// fields before validation runs.
type Request interface {
	Normalize()
}

// fieldMessages maps "<Struct>.<Field>.<tag>" (or "<Struct>.<Field>" for any
// tag) to the message shown to the client.
var fieldMessages = map[string]string{}

func registerMessages(msgs map[string]string) {
	for k, v := range msgs {
		fieldMessages[k] = v
	}
}

func init() {
	// amounts travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "isodate", isoDate)
	mustRegister(v, "clock", clock)
	mustRegister(v, "positive", positive)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("dto: register %q validation: %v", tag, err))
	}
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func clock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClockTime(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// positive accepts decimal text strictly greater than zero.
func positive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil && d.IsPositive()
}

// BindJSON decodes the request body into req, normalizes it and validates
// it with gin's validator. An empty body, null or {} counts as no data. Every failure is returned as a 400 AppError whose
// message is ready for the client.
func BindJSON(c *gin.Context, req Request) error {
	if c.Request.Body == nil {
		return apperrors.NewValidationError(MsgNoData)
	}
	var raw json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidationError(MsgNoData)
		}
		return apperrors.NewAppError(400, MsgInvalidData, errors.Join(apperrors.ErrValidation, err))
	}
	if isEmptyJSON(raw) {
		return apperrors.NewValidationError(MsgNoData)
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return apperrors.NewAppError(400, MsgInvalidData, errors.Join(apperrors.ErrValidation, err))
	}
	req.Normalize()
	return Validate(req)
}

func isEmptyJSON(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	// null decodes to a nil map
	return len(obj) == 0
}

// Validate runs the binding rules of req and translates the first failing
// field into its client message.
func Validate(req any) error {
	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError(messageFor(fieldErrs[0]))
	}
	return apperrors.NewAppError(400, MsgInvalidData, errors.Join(apperrors.ErrValidation, err))
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}
	return MsgInvalidData
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
