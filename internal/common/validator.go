package common

import (
	"fmt"

	"github.com/go-playground/validator"
)

type GenericValidator struct {
	Validator *validator.Validate
}

// Validate checks the struct tags of i and reports every failing field.
func (gv *GenericValidator) Validate(i interface{}) error {
	if gv.Validator == nil {
		gv.Validator = validator.New()
	}
	if err := gv.Validator.Struct(i); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %v", msgs)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
