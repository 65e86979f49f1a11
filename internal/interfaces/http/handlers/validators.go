package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/castellan-host/castellan/internal/domain/subscription/valueobjects"
)

// RegisterValidations installs custom binding validations. Call once during
// router setup, before any request is served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("plantype", func(fl validator.FieldLevel) bool {
		_, err := vo.ParsePlan(fl.Field().String())
		return err == nil
	})
}
