package worker

import (
	"context"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"go.uber.org/zap"
	"sync"
)

// Settler проводит транзакции по счетам: списывает сумму операции вместе с НДС и переводит
// транзакцию в статус completed, а при нехватке средств в статус failed. Результат каждой
// операции отправляется в Settler.results. Для проведения создается Settler.workersCount воркеров.
type Settler struct {
	ledger       SettlementLedger
	jobs         <-chan *entity.Transaction
	results      chan<- entity.SettlementResult
	logger       *zap.Logger
	wg           *sync.WaitGroup
	workersCount int
}

type SettlementLedger interface {
	GetBalance(account string) money.Money
	Withdraw(account string, amount money.Money) bool
}

func NewSettler(
	l SettlementLedger,
	j <-chan *entity.Transaction,
	res chan<- entity.SettlementResult,
	logger *zap.Logger,
	wg *sync.WaitGroup,
	w int,
) *Settler {
	return &Settler{
		ledger:       l,
		jobs:         j,
		results:      res,
		logger:       logger,
		wg:           wg,
		workersCount: w,
	}
}

func (s *Settler) Do(ctx context.Context) {
	for i := 0; i < s.workersCount; i++ {
		s.wg.Add(1)

		go s.worker(ctx)
	}
}

func (s *Settler) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case tx, ok := <-s.jobs:
			if !ok {
				return
			}

			res := s.settle(tx)
			select {
			case s.results <- res:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// settle списывает сумму транзакции со счета через entity.Transaction.Settle. Транзакция,
// уже находящаяся в конечном статусе, повторно не проводится.
func (s *Settler) settle(tx *entity.Transaction) entity.SettlementResult {
	res := entity.SettlementResult{
		ID:      tx.ID(),
		Account: tx.Account(),
		Total:   tx.TotalAmount(),
	}

	res.Status, res.Err = tx.Settle(s.ledger.Withdraw)
	res.Balance = s.ledger.GetBalance(res.Account)

	fields := []zap.Field{
		zap.String("id", res.ID),
		zap.String("account", res.Account),
		zap.String("type", string(tx.Type())),
		zap.Stringer("total", res.Total),
		zap.Stringer("balance", res.Balance),
		zap.String("status", string(res.Status)),
	}
	if res.Err != nil {
		s.logger.Warn("transaction not settled", append(fields, zap.Error(res.Err))...)
	} else {
		s.logger.Info("transaction settled", fields...)
	}

	return res
}
