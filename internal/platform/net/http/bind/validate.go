package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	// zone validation must not depend on the host's zoneinfo
	_ "time/tzdata"

	perr "meteopage/internal/platform/errors"
	"meteopage/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type validation struct {
	v     *validator.Validate
	trans ut.Translator
}

// message overrides the stock english text for a tag, {0} is the json field and {1} the tag param
type message struct {
	text      string
	withParam bool
}

var messages = map[string]message{
	"min":       {"{0} must be at least {1}", true},
	"max":       {"{0} must be at most {1}", true},
	"latitude":  {"{0} must be between -90 and 90", false},
	"longitude": {"{0} must be between -180 and 180", false},
	"timezone":  {"{0} must be an IANA time zone such as Europe/Berlin", false},
}

var shared = sync.OnceValue(func() *validation {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	for tag, m := range messages {
		override(v, trans, tag, m)
	}
	return &validation{v: v, trans: trans}
})

// jsonName reports fields by their json key, untagged or "-" fields keep the Go name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func override(v *validator.Validate, trans ut.Translator, tag string, m message) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, m.text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if m.withParam {
				params = append(params, fe.Param())
			}
			s, _ := t.T(tag, params...)
			return s
		},
	)
}

// Struct validates v by its `validate` tags
// the first failure becomes a validation error naming the json field
func Struct(v any) error {
	err := shared().v.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := firstFailure(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

func firstFailure(err error) (field, msg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(shared().trans)
	}
	return "", err.Error()
}
