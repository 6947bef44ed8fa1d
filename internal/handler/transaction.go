package handler

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"io"
)

type Transaction struct {
	processor TransactionProcessor
	results   <-chan entity.SettlementResult
	validator Validator
}

type TransactionProcessor interface {
	OpenAccount(ctx context.Context, account string, balance money.Money) error
	Create(ctx context.Context, account string, amount money.Money, t string) (*entity.Transaction, error)
}

func NewTransaction(p TransactionProcessor, res <-chan entity.SettlementResult, v Validator) *Transaction {
	return &Transaction{
		processor: p,
		results:   res,
		validator: v,
	}
}

// Submit проверяет запрос, открывает счет с начальным балансом req.Balance, создает
// транзакцию и дожидается результата ее проведения. Квитанция записывается в w.
// Нехватка средств ошибкой не считается: транзакция в этом случае получает статус failed,
// а причина возвращается в SettlementResult.Err.
// Канал результатов читает только Submit, поэтому вызовы Submit не должны выполняться
// параллельно на одном канале: результаты чужих транзакций отбрасываются.
func (h *Transaction) Submit(ctx context.Context, req SubmitRequest, w io.Writer) (entity.SettlementResult, error) {
	if err := h.validator.Struct(ctx, &req); err != nil {
		return entity.SettlementResult{}, validationError(err)
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		return entity.SettlementResult{}, err
	}

	if err := h.processor.OpenAccount(ctx, req.Account, req.Balance); err != nil {
		return entity.SettlementResult{}, err
	}

	tx, err := h.processor.Create(ctx, req.Account, amount, req.Type)
	if err != nil {
		return entity.SettlementResult{}, err
	}

	res, err := h.await(ctx, tx.ID())
	if err != nil {
		return entity.SettlementResult{}, err
	}

	if err := writeReceipt(w, tx, res); err != nil {
		return res, fmt.Errorf("writing receipt: %w", err)
	}

	return res, nil
}

// await ждет результат транзакции id. Результаты с другим ID пропускаются.
func (h *Transaction) await(ctx context.Context, id string) (entity.SettlementResult, error) {
	for {
		select {
		case res, ok := <-h.results:
			if !ok {
				return entity.SettlementResult{}, fmt.Errorf("settlement of %s: results closed", id)
			}

			if res.ID == id {
				return res, nil
			}
		case <-ctx.Done():
			return entity.SettlementResult{}, ctx.Err()
		}
	}
}
