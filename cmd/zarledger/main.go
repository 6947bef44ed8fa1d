package main

import (
	"context"
	v10validator "github.com/go-playground/validator/v10"
	"github.com/ivanpodgorny/zarledger/internal/config"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	"github.com/ivanpodgorny/zarledger/internal/handler"
	"github.com/ivanpodgorny/zarledger/internal/logger"
	"github.com/ivanpodgorny/zarledger/internal/repository"
	"github.com/ivanpodgorny/zarledger/internal/service"
	"github.com/ivanpodgorny/zarledger/internal/validator"
	"github.com/ivanpodgorny/zarledger/internal/worker"
	"go.uber.org/zap"
	"log"
	"os"
	"sync"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.LogLevel())
	if err != nil {
		return err
	}

	defer func(l *zap.Logger) {
		_ = l.Sync()
	}(l)

	validationEngine := v10validator.New()
	if err := validator.Register(validationEngine); err != nil {
		return err
	}

	var (
		ctx, cancel = context.WithCancel(context.Background())
		wg          = &sync.WaitGroup{}
		jobs        = make(chan *entity.Transaction, 8)
		results     = make(chan entity.SettlementResult, 8)
		ledger      = repository.NewLedger()
		settler     = worker.NewSettler(ledger, jobs, results, l, wg, cfg.SettlementWorkers())
		ts          = service.NewTransaction(ledger, jobs)
		th          = handler.NewTransaction(ts, results, validator.New(validationEngine))
	)

	defer func() {
		cancel()
		wg.Wait()
		close(jobs)
		close(results)
	}()

	settler.Do(ctx)

	res, err := th.Submit(ctx, handler.SubmitRequest{
		Account: cfg.Account(),
		Amount:  cfg.Amount(),
		Type:    cfg.TransactionType(),
		Balance: cfg.OpeningBalance(),
	}, os.Stdout)
	if err != nil {
		l.Error("transaction rejected", zap.Error(err))

		return err
	}

	l.Debug(
		"transaction processed",
		zap.String("id", res.ID),
		zap.String("status", string(res.Status)),
		zap.Stringer("balance", res.Balance),
	)

	return nil
}
