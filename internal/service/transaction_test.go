package service

import (
	"context"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	inerr "github.com/ivanpodgorny/zarledger/internal/errors"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
)

type LedgerRepositoryMock struct {
	mock.Mock
}

func (m *LedgerRepositoryMock) GetBalance(account string) money.Money {
	args := m.Called(account)

	return args.Get(0).(money.Money)
}

func (m *LedgerRepositoryMock) SetBalance(account string, balance money.Money) {
	m.Called(account, balance)
}

func (m *LedgerRepositoryMock) Deposit(account string, amount money.Money) {
	m.Called(account, amount)
}

func TestTransaction_Create(t *testing.T) {
	var (
		ctx     = context.Background()
		queue   = make(chan *entity.Transaction, 1)
		service = NewTransaction(&LedgerRepositoryMock{}, queue)
	)

	tx, err := service.Create(ctx, "87654321", money.MustParse("5000.00"), "international")
	require.NoError(t, err, "успешное создание транзакции")
	assert.Equal(t, "750.00", tx.VAT().String())
	assert.Equal(t, entity.TransactionStatusPending, tx.Status())
	assert.Same(t, tx, <-queue, "транзакция поставлена в очередь на проведение")
}

func TestTransaction_CreateErrors(t *testing.T) {
	var (
		ctx     = context.Background()
		queue   = make(chan *entity.Transaction, 1)
		service = NewTransaction(&LedgerRepositoryMock{}, queue)
	)

	_, err := service.Create(ctx, "1234567", money.MustParse("10.00"), "eft")
	assert.ErrorIs(t, err, inerr.ErrInvalidAccount, "ошибка валидации номера счета")

	_, err = service.Create(ctx, "12345678", money.Money{}, "eft")
	assert.ErrorIs(t, err, inerr.ErrInvalidAmount, "ошибка валидации суммы")
	assert.Len(t, queue, 0, "невалидная транзакция не попадает в очередь")

	queue <- nil
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = service.Create(cancelled, "12345678", money.MustParse("10.00"), "eft")
	assert.ErrorIs(t, err, context.Canceled, "очередь заполнена, контекст отменен")
}

func TestTransaction_GetBalance(t *testing.T) {
	var (
		ctx        = context.Background()
		balance    = money.MustParse("1000.00")
		repository = &LedgerRepositoryMock{}
	)
	repository.On("GetBalance", "12345678").Return(balance).Once()
	service := Transaction{repository: repository}

	assert.Equal(t, balance, service.GetBalance(ctx, "12345678"), "успешное получение баланса")
	repository.AssertExpectations(t)
}

func TestTransaction_Deposit(t *testing.T) {
	var (
		ctx        = context.Background()
		amount     = money.MustParse("250.00")
		repository = &LedgerRepositoryMock{}
	)
	repository.On("Deposit", "12345678", amount).Return().Once()
	service := Transaction{repository: repository}

	assert.NoError(t, service.Deposit(ctx, "12345678", amount), "успешное зачисление")
	assert.ErrorIs(
		t,
		service.Deposit(ctx, "12345678", money.Money{}),
		inerr.ErrInvalidAmount,
		"нулевая сумма не зачисляется",
	)
	assert.ErrorIs(
		t,
		service.Deposit(ctx, "12345678", money.MustParse("-1.00")),
		inerr.ErrInvalidAmount,
		"отрицательная сумма не зачисляется",
	)
	repository.AssertExpectations(t)
}

func TestTransaction_OpenAccount(t *testing.T) {
	var (
		ctx        = context.Background()
		balance    = money.MustParse("1000.00")
		repository = &LedgerRepositoryMock{}
	)
	repository.On("SetBalance", "12345678", balance).Return().Once()
	repository.On("SetBalance", "87654321", money.Money{}).Return().Once()
	service := Transaction{repository: repository}

	assert.NoError(t, service.OpenAccount(ctx, "12345678", balance), "успешное открытие счета")
	assert.NoError(t, service.OpenAccount(ctx, "87654321", money.Money{}), "счет с нулевым балансом")
	assert.ErrorIs(
		t,
		service.OpenAccount(ctx, "12a45678", balance),
		inerr.ErrInvalidAccount,
		"неверный номер счета",
	)
	assert.ErrorIs(
		t,
		service.OpenAccount(ctx, "12345678", money.MustParse("-0.01")),
		inerr.ErrInvalidAmount,
		"отрицательный начальный баланс",
	)
	repository.AssertExpectations(t)
}
