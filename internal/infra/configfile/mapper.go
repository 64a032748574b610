package configfile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bernardopiane/UnitConverter/internal/app/template"
	"github.com/bernardopiane/UnitConverter/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "envconfig"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// MapConfig applies parsed values on top of base.
func MapConfig(path string, base domain.Config, y yamlConfig) (domain.Config, error) {
	if err := validateStruct(path, y); err != nil {
		return base, err
	}

	cfg := base
	uc := y.UnitConv

	if uc.Input.OnInvalid != "" {
		cfg.Input.OnInvalid = domain.InputPolicy(uc.Input.OnInvalid)
	}
	if uc.Display.Precision != nil {
		cfg.Display.Precision = *uc.Display.Precision
	}
	if uc.Display.Template != "" {
		if err := checkTemplate(uc.Display.Template); err != nil {
			return base, invalidField(path, "unitconv.display.template", err.Error())
		}
		cfg.Display.Template = uc.Display.Template
	}
	if uc.Defaults.Domain != "" {
		cfg.Defaults.Domain = domain.Domain(uc.Defaults.Domain)
	}

	if len(uc.Rounding) > 0 {
		rounding := make(map[domain.Domain]domain.Rounding, len(base.Rounding)+len(uc.Rounding))
		for d, r := range base.Rounding {
			rounding[d] = r
		}
		for name, yr := range uc.Rounding {
			if err := validateRounding(path, name, yr); err != nil {
				return base, err
			}
			d := domain.Domain(name)
			r := rounding[d]
			if yr.Places != nil {
				r.Places = *yr.Places
				r.Enabled = true
			}
			if yr.Enabled != nil {
				r.Enabled = *yr.Enabled
			}
			rounding[d] = r
		}
		cfg.Rounding = rounding
	}

	return cfg, nil
}

// validateRounding checks one rounding entry on its own; map values are not
// reliably descended into by every validator release.
func validateRounding(path, name string, yr yamlRounding) error {
	err := validate.Struct(yr)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalidField(path, "unitconv.rounding."+name+"."+fe.Field(), describeRule(fe))
	}
	return invalidField(path, "unitconv.rounding."+name, err.Error())
}

// MapEnv applies UNITCONV_* overrides on top of cfg.
func MapEnv(cfg domain.Config, o envOverrides) (domain.Config, error) {
	if err := validateStruct("", o); err != nil {
		return cfg, err
	}

	if o.OnInvalid != "" {
		cfg.Input.OnInvalid = domain.InputPolicy(o.OnInvalid)
	}
	if o.Precision != nil {
		cfg.Display.Precision = *o.Precision
	}
	if o.Template != "" {
		if err := checkTemplate(o.Template); err != nil {
			return cfg, invalidField("", "UNITCONV_TEMPLATE", err.Error())
		}
		cfg.Display.Template = o.Template
	}
	if o.DefaultDomain != "" {
		cfg.Defaults.Domain = domain.Domain(o.DefaultDomain)
	}
	return cfg, nil
}

// checkTemplate renders tmpl against a sample conversion so unknown placeholders
// fail at load time instead of on every result.
func checkTemplate(tmpl string) error {
	sample := domain.Conversion{
		Domain: domain.Temperature,
		From:   domain.Celsius,
		To:     domain.Fahrenheit,
	}
	_, err := template.RenderConversion(tmpl, sample, 0)
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return oe.Err
	}
	return err
}

func validateStruct(path string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalidField(path, fieldPath(fe.Namespace()), describeRule(fe))
	}
	return invalidField(path, "", err.Error())
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
