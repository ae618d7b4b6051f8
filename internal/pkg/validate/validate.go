package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/go-playground/validator/v10"
)

// checkTimeRegexp HH:MM，小时允许一位
var checkTimeRegexp = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// v 自定义规则都在 init 里注册
var v = validator.New()

func init() {
	mustRegister("checktime", func(fl validator.FieldLevel) bool {
		return checkTimeRegexp.MatchString(fl.Field().String())
	})
	mustRegister("timezone_supported", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		for _, s := range domain.SupportedTimezones {
			if s == tz {
				return true
			}
		}
		return false
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct 校验失败返回包装了 errs.ErrValidation 的错误
func Struct(s any) error {
	return wrap(v.Struct(s))
}

// Var 校验单个值
func Var(field any, tag string) error {
	return wrap(v.Var(field, tag))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Field() == "" {
			msgs = append(msgs, fmt.Sprintf("值 %v 不满足 '%s'", fe.Value(), fe.Tag()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("字段 '%s' 不满足 '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(msgs, "; "))
}
