package validators

import (
	"github.com/go-playground/validator/v10"
)

// ExponentStrategyValidation validates the exponent strategy name. The fixed
// strategy additionally needs a FixedExponent greater than 1 on the parent struct.
func ExponentStrategyValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "coprime":
		return true
	case "fixed":
		exponent := fl.Parent().FieldByName("FixedExponent")
		if !exponent.IsValid() {
			return false
		}
		return exponent.Uint() > 1
	default:
		return false
	}
}
