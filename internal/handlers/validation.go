package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators teaches gin's validator about decimal amounts and calendar-date strings.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		// Lets numeric tags such as gt=0 apply to decimal fields.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		err = v.RegisterValidation("yyyymmdd", func(fl validator.FieldLevel) bool {
			_, perr := domain.ParseDate(fl.Field().String())
			return perr == nil
		})
	})
	return err
}
