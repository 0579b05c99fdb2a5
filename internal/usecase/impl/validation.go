// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sort"
	"strings"

	domainerrors "payverify/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the struct's validate tags. Absent fields are reported as missing;
// when none are absent, fields over their length limit are reported as too long.
// Offending field names go in the details.
func validateInput(input any, missing *domainerrors.BaseError) error {
	if input == nil {
		return missing
	}

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Nil pointers and non-struct inputs.
		return missing
	}

	var absent, tooLong []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "max" {
			tooLong = append(tooLong, fe.Field()+" (max "+fe.Param()+")")

			continue
		}
		absent = append(absent, fe.Field())
	}

	if len(absent) > 0 {
		sort.Strings(absent)

		return missing.WithDetails("missing: " + strings.Join(absent, ", "))
	}

	sort.Strings(tooLong)

	return domainerrors.ErrFieldTooLong.WithDetails("too long: " + strings.Join(tooLong, ", "))
}
