package storefront

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"tarimvitrin.com/app/internal/modules/products"
)

// draftRules is what a draft must satisfy before it is sent to the store.
type draftRules struct {
	Name     string  `label:"İsim" validate:"required,max=255"`
	Category string  `label:"Kategori" validate:"required,category"`
	Price    float64 `label:"Fiyat" validate:"finite,gte=0"`
	ImageURL string  `label:"Görsel URL" validate:"max=1024"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return products.ParseCategory(fl.Field().String()).Recognized()
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// ValidateDraft checks the draft and returns field label -> message for
// every rule it breaks. A nil map means the draft may be submitted.
func ValidateDraft(d Draft) map[string]string {
	f := d.Fields()
	err := validate.Struct(draftRules{
		Name:     f.Name,
		Category: f.Category,
		Price:    f.Price,
		ImageURL: f.ImageURL,
	})
	if err == nil {
		return nil
	}

	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = "Form verileri geçersiz."
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
	}
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "Bu alan zorunludur."
	case "category":
		return "Listeden bir kategori seçin."
	case "gte", "finite":
		return "Negatif olmayan bir sayı girin."
	case "max":
		return "En fazla " + param + " karakter olmalıdır."
	default:
		return "Geçersiz değer."
	}
}

// summarize joins field errors into one line, sorted for stable output.
func summarize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "_" {
			parts = append(parts, fields[k])
			continue
		}
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, " ")
}
