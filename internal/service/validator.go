package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"chessrules/internal/board"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "square" accepts algebraic coordinates a1..h8
	if err := v.RegisterValidation("square", func(fl validator.FieldLevel) bool {
		_, err := board.ParseSquare(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// validateRequest runs struct validation and folds the failures into one
// error. A failed square field is reported as board.ErrInvalidSquare.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var details strings.Builder
	badSquare := false
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "square":
			badSquare = true
			details.WriteString(fmt.Sprintf("%s %q is not a square (a1-h8)", fe.Field(), fe.Value()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "max":
			if fe.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	if badSquare {
		return fmt.Errorf("%w: %s", board.ErrInvalidSquare, details.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, details.String())
}
