package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
)

var (
	registerOnce sync.Once
	registerErr  error
	translator   ut.Translator
)

// RegisterValidators configures gin's validator: JSON field names in
// messages, English translations and the custom objectid tag.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}

		v.RegisterTagNameFunc(fieldName)

		if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		}); err != nil {
			registerErr = err
			return
		}

		locale := en.New()
		translator, _ = ut.New(locale, locale).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
			registerErr = err
			return
		}

		registerErr = v.RegisterTranslation("objectid", translator,
			func(t ut.Translator) error {
				return t.Add("objectid", "{0} must be a valid id", true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T("objectid", fe.Field())
				return msg
			})
	})
	return registerErr
}

// BindingError converts a gin binding failure into an API error: 422 with a
// per-field list for validation failures, 400 for unreadable bodies.
func BindingError(err error) *apierrors.APIError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apierrors.FieldError, 0, len(verrs))
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg := fe.Error()
			if translator != nil {
				msg = fe.Translate(translator)
			}
			fields = append(fields, apierrors.FieldError{Field: fe.Field(), Message: msg})
			msgs = append(msgs, msg)
		}
		return apierrors.Validation(strings.Join(msgs, "; "), fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := typeErr.Field + " has an invalid type"
		return apierrors.Validation(msg, []apierrors.FieldError{{Field: typeErr.Field, Message: msg}})
	}

	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		return apierrors.New(apierrors.TypeValidation, "Request body too large", http.StatusRequestEntityTooLarge)
	}

	return apierrors.BadRequest("Invalid request body")
}

// ValidateObjectID parses a path id, reporting a 422 on malformed input.
func ValidateObjectID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		msg := field + " must be a valid id"
		return primitive.NilObjectID, apierrors.Validation(msg, []apierrors.FieldError{{Field: field, Message: msg}})
	}
	return id, nil
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
