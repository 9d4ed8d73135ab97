package utils

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/shift-sim/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
	validateErr  error
)

func initValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	translator, _ = uni.GetTranslator("zh")
	validateErr = zh_translations.RegisterDefaultTranslations(validate, translator)
}

// ValidateParameters 校验带有 validate 标签的参数结构体
// 校验失败时只返回第一个错误（经过翻译），并包装为 domain.ErrInvalidParameter
func ValidateParameters(v any) error {
	validateOnce.Do(initValidator)
	if validateErr != nil {
		return validateErr
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, validationErrors[0].Translate(translator))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, err.Error())
}

// ValidateInitialInfected 检查初始感染者的编号是否都在 [0, crew) 范围内且没有重复
func ValidateInitialInfected(indices []int, crew int) error {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= crew {
			return fmt.Errorf("%w: 初始感染者编号 %d 超出范围 [0, %d)", domain.ErrShapeMismatch, i, crew)
		}
		if seen[i] {
			return fmt.Errorf("%w: 初始感染者编号 %d 重复", domain.ErrInvalidParameter, i)
		}
		seen[i] = true
	}
	return nil
}

// ValidateTeamRates 检查排班矩阵中出现的每个团队是否都有对应的传染率
// 团队 1 可以使用默认的工作传染率，其余团队必须显式配置
func ValidateTeamRates(a *domain.Assignment, rates map[int]float64) error {
	for _, team := range a.Teams() {
		if team == 1 {
			continue
		}
		if _, ok := rates[team]; !ok {
			return fmt.Errorf("%w: 团队 %d 没有配置工作传染率", domain.ErrShapeMismatch, team)
		}
	}
	return nil
}
