package handler

import (
	"context"
	"errors"
	"fmt"
	v10validator "github.com/go-playground/validator/v10"
	inerr "github.com/ivanpodgorny/zarledger/internal/errors"
	"github.com/ivanpodgorny/zarledger/internal/money"
)

type SubmitRequest struct {
	Account string      `validate:"required,account"`
	Amount  string      `validate:"required,money"`
	Type    string      `validate:"required"`
	Balance money.Money `validate:"-"`
}

type Validator interface {
	Struct(ctx context.Context, s any) error
}

var fieldErrors = map[string]error{
	"Account": inerr.ErrInvalidAccount,
	"Amount":  inerr.ErrInvalidAmount,
	"Type":    inerr.ErrInvalidType,
}

// validationError сопоставляет первую ошибку валидации запроса с ошибкой из пакета errors.
func validationError(err error) error {
	var verrs v10validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if kind, ok := fieldErrors[verrs[0].Field()]; ok {
			return fmt.Errorf("%w: %s", kind, verrs[0].Error())
		}
	}

	return err
}
