package validator

import (
	"context"
	v10validator "github.com/go-playground/validator/v10"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"reflect"
)

type Validator struct {
	engine Engine
}

type Engine interface {
	StructCtx(ctx context.Context, s any) error
	VarCtx(ctx context.Context, field any, tag string) error
}

func New(e Engine) *Validator {
	return &Validator{engine: e}
}

// Register добавляет в движок валидации правила account и money.
func Register(e *v10validator.Validate) error {
	if err := e.RegisterValidation("account", Account); err != nil {
		return err
	}

	return e.RegisterValidation("money", Money)
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return v.engine.StructCtx(ctx, s)
}

func (v *Validator) Var(ctx context.Context, field any, tag string) error {
	return v.engine.VarCtx(ctx, field, tag)
}

// Account проверяет, что номер счета состоит ровно из 8 цифр.
func Account(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if val.Kind() != reflect.String {
		return false
	}

	return entity.ValidAccount(val.String())
}

// Money проверяет, что строка содержит положительную сумму не больше чем с двумя знаками
// после запятой.
func Money(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if val.Kind() != reflect.String {
		return false
	}

	m, err := money.Parse(val.String())

	return err == nil && m.IsPositive()
}
