package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators installs the custom binding tags on gin's validator and
// reports field names by their json name.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		if err := v.RegisterValidation("blogstatus", func(fl validator.FieldLevel) bool {
			return domain.PostStatus(strings.ToLower(fl.Field().String())).IsValid()
		}); err != nil {
			registerValidatorsErr = err
			return
		}
		registerValidatorsErr = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return domain.IsValidUsername(fl.Field().String())
		})
	})
	return registerValidatorsErr
}

// validateStruct runs gin's validator on obj.
func validateStruct(obj any) error {
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(obj)
}
