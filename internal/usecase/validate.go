// Package usecase orchestrates the uniform CRUD contract over the
// repositories: scalar validation, surrogate-key discipline and referential
// resolution before any write reaches storage.
package usecase

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"trading_backend/internal/domain/repository"
)

// validate is package-shared; validator caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateEntity runs the declared scalar constraints of a candidate row
// and reports the first violation as a typed ValidationError.
func validateEntity(e any) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return &repository.ValidationError{
			Field:  f.Field(),
			Reason: fmt.Sprintf("value %v violates %q", f.Value(), f.Tag()),
		}
	}
	return &repository.ValidationError{Reason: err.Error()}
}
