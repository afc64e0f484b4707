package handlers

import (
	"training_briefing/internal/service"

	"github.com/go-playground/validator/v10"
)

const tagLunchMenu = "lunchmenu"

// newFormValidator returns a validator that knows the configured menu options.
// An empty menu is the placeholder and always passes.
func newFormValidator(forms service.Forms) *validator.Validate {
	v := validator.New()
	allowed := map[string]struct{}{}
	if forms != nil {
		for _, m := range forms.Menus() {
			allowed[m] = struct{}{}
		}
	}
	_ = v.RegisterValidation(tagLunchMenu, func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		_, ok := allowed[v]
		return ok
	})
	return v
}
