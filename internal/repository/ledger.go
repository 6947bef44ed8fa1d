package repository

import (
	"github.com/ivanpodgorny/zarledger/internal/money"
	"sync"
)

// Ledger хранит балансы счетов в памяти. Ключ отсутствует в хранилище, пока по счету
// не было ни одной записи, при этом баланс такого счета считается нулевым.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]money.Money
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]money.Money)}
}

// GetBalance возвращает баланс счета или 0.00, если счета нет.
func (r *Ledger) GetBalance(account string) money.Money {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.balances[account]
}

// SetBalance создает счет или перезаписывает его баланс.
func (r *Ledger) SetBalance(account string, balance money.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[account] = balance
}

// Deposit зачисляет amount на счет. Положительность суммы проверяет вызывающий код.
func (r *Ledger) Deposit(account string, amount money.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[account] = r.balances[account].Add(amount)
}

// Withdraw списывает amount со счета. Если на счету недостаточно средств, возвращает false
// и не меняет баланс. Проверка и списание выполняются под одной блокировкой.
func (r *Ledger) Withdraw(account string, amount money.Money) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.balances[account]
	if current.Cmp(amount) < 0 {
		return false
	}

	r.balances[account] = current.Sub(amount)

	return true
}

func (r *Ledger) AccountExists(account string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.balances[account]

	return ok
}
