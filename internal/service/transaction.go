package service

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	inerr "github.com/ivanpodgorny/zarledger/internal/errors"
	"github.com/ivanpodgorny/zarledger/internal/money"
)

type Transaction struct {
	repository LedgerRepository
	queue      chan<- *entity.Transaction
}

type LedgerRepository interface {
	GetBalance(account string) money.Money
	SetBalance(account string, balance money.Money)
	Deposit(account string, amount money.Money)
}

func NewTransaction(r LedgerRepository, q chan<- *entity.Transaction) *Transaction {
	return &Transaction{
		repository: r,
		queue:      q,
	}
}

// Create создает транзакцию и ставит ее в очередь на проведение по счету.
// Ошибки валидации возвращаются из entity.NewTransaction без изменений.
func (s *Transaction) Create(ctx context.Context, account string, amount money.Money, t string) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(account, amount, t)
	if err != nil {
		return nil, err
	}

	select {
	case s.queue <- tx:
		return tx, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetBalance возвращает текущий баланс счета.
func (s *Transaction) GetBalance(_ context.Context, account string) money.Money {
	return s.repository.GetBalance(account)
}

// Deposit зачисляет положительную сумму на счет.
func (s *Transaction) Deposit(_ context.Context, account string, amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit must be positive, got %s", inerr.ErrInvalidAmount, amount)
	}

	s.repository.Deposit(account, amount)

	return nil
}

// OpenAccount устанавливает начальный баланс счета. Номер счета должен состоять
// из 8 цифр, баланс не может быть отрицательным.
func (s *Transaction) OpenAccount(_ context.Context, account string, balance money.Money) error {
	if !entity.ValidAccount(account) {
		return fmt.Errorf("%w: must be 8 digits, got %q", inerr.ErrInvalidAccount, account)
	}

	if balance.IsNegative() {
		return fmt.Errorf("%w: opening balance must not be negative, got %s", inerr.ErrInvalidAmount, balance)
	}

	s.repository.SetBalance(account, balance)

	return nil
}
