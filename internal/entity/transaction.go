package entity

import (
	"fmt"
	"github.com/google/uuid"
	inerr "github.com/ivanpodgorny/zarledger/internal/errors"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"regexp"
	"strings"
	"sync"
	"time"
)

type TransactionType string

const (
	TransactionTypePayShap       TransactionType = "payshap"
	TransactionTypeEFT           TransactionType = "eft"
	TransactionTypeInternational TransactionType = "international"
	TransactionTypeCardPurchase  TransactionType = "card_purchase"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Terminal сообщает, что из статуса s нельзя перейти ни в какой другой.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

func (s TransactionStatus) valid() bool {
	return s == TransactionStatusPending || s.Terminal()
}

var (
	accountPattern = regexp.MustCompile(`^[0-9]{8}$`)
	standardVAT    = money.New(15_00)
)

// Transaction денежная операция по счету. Все поля, кроме статуса, задаются при создании
// и больше не меняются. Статус меняется только через SetStatus.
type Transaction struct {
	id        string
	account   string
	amount    money.Money
	txType    TransactionType
	vat       money.Money
	timestamp time.Time

	mu     sync.RWMutex
	status TransactionStatus
}

// NewTransaction проверяет параметры операции и создает транзакцию в статусе pending
// с рассчитанной суммой НДС. Возвращает ошибку errors.ErrInvalidAmount, если сумма
// не положительна, errors.ErrInvalidAccount, если номер счета не состоит ровно из 8 цифр,
// и errors.ErrInvalidType, если тип операции не указан. Неизвестный тип операции
// ошибкой не считается: НДС для него равен нулю.
func NewTransaction(account string, amount money.Money, t string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: must be positive, got %s", inerr.ErrInvalidAmount, amount)
	}

	if strings.TrimSpace(account) == "" {
		return nil, fmt.Errorf("%w: empty", inerr.ErrInvalidAccount)
	}

	if !accountPattern.MatchString(account) {
		return nil, fmt.Errorf("%w: must be 8 digits, got %q", inerr.ErrInvalidAccount, account)
	}

	txType := TransactionType(strings.ToLower(strings.TrimSpace(t)))
	if txType == "" {
		return nil, fmt.Errorf("%w: empty", inerr.ErrInvalidType)
	}

	return &Transaction{
		id:        "TXN-" + uuid.NewString(),
		account:   account,
		amount:    amount,
		txType:    txType,
		vat:       amount.Percent(VATRate(txType)),
		timestamp: time.Now(),
		status:    TransactionStatusPending,
	}, nil
}

// ValidAccount сообщает, состоит ли номер счета ровно из 8 цифр.
func ValidAccount(account string) bool {
	return accountPattern.MatchString(account)
}

// VATRate возвращает ставку НДС в процентах для типа операции. Стандартная ставка 15%
// применяется к международным операциям и покупкам по карте, переводы PayShap и EFT
// от НДС освобождены. Для неизвестных типов ставка нулевая.
func VATRate(t TransactionType) money.Money {
	switch t {
	case TransactionTypeInternational, TransactionTypeCardPurchase:
		return standardVAT
	default:
		return money.Money{}
	}
}

func (t *Transaction) ID() string {
	return t.id
}

func (t *Transaction) Account() string {
	return t.account
}

func (t *Transaction) Amount() money.Money {
	return t.amount
}

func (t *Transaction) Type() TransactionType {
	return t.txType
}

func (t *Transaction) VAT() money.Money {
	return t.vat
}

func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

func (t *Transaction) Status() TransactionStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.status
}

// TotalAmount возвращает сумму операции вместе с НДС.
func (t *Transaction) TotalAmount() money.Money {
	return t.amount.Add(t.vat)
}

// SetStatus переводит транзакцию в статус s. Возвращает ошибку errors.ErrInvalidStatus
// для неизвестного статуса и errors.ErrIllegalTransition, если транзакция уже находится
// в конечном статусе (completed или failed), в том числе при повторной установке того же статуса.
func (t *Transaction) SetStatus(s string) error {
	status := TransactionStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.valid() {
		return fmt.Errorf("%w: %q", inerr.ErrInvalidStatus, s)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status.Terminal() {
		return fmt.Errorf("%w: transaction %s is %s", inerr.ErrIllegalTransition, t.id, t.status)
	}

	t.status = status

	return nil
}

// Settle проводит транзакцию: вызывает withdraw для списания суммы вместе с НДС и переводит
// транзакцию в статус completed, а если withdraw вернул false, в статус failed с ошибкой
// errors.ErrInsufficientFunds. Проверка статуса, списание и смена статуса выполняются под
// блокировкой транзакции, поэтому транзакция в конечном статусе не списывается повторно:
// для нее возвращается errors.ErrIllegalTransition, а withdraw не вызывается.
func (t *Transaction) Settle(withdraw func(account string, amount money.Money) bool) (TransactionStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status.Terminal() {
		return t.status, fmt.Errorf("%w: transaction %s is already %s", inerr.ErrIllegalTransition, t.id, t.status)
	}

	total := t.amount.Add(t.vat)
	if !withdraw(t.account, total) {
		t.status = TransactionStatusFailed

		return t.status, fmt.Errorf("%w: account %s, required %s", inerr.ErrInsufficientFunds, t.account, total)
	}

	t.status = TransactionStatusCompleted

	return t.status, nil
}

func (t *Transaction) String() string {
	return fmt.Sprintf(
		"Transaction[id=%s, account=%s, amount=%s, type=%s, status=%s, vat=%s]",
		t.id, t.account, t.amount, t.txType, t.Status(), t.vat,
	)
}

// SettlementResult результат проведения транзакции по счету.
type SettlementResult struct {
	ID      string
	Account string
	Status  TransactionStatus
	Total   money.Money
	Balance money.Money
	Err     error
}
