package config

import (
	"errors"
	"flag"
	"github.com/caarlos0/env/v8"
	"github.com/ivanpodgorny/zarledger/internal/money"
	"os"
)

type Config interface {
	Account() string
	Amount() string
	TransactionType() string
	OpeningBalance() money.Money
	SettlementWorkers() int
	LogLevel() string
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	Account           string      `env:"LEDGER_ACCOUNT"`
	Amount            string      `env:"LEDGER_AMOUNT"`
	TransactionType   string      `env:"LEDGER_TYPE"`
	OpeningBalance    money.Money `env:"OPENING_BALANCE"`
	SettlementWorkers int         `env:"SETTLEMENT_WORKERS"`
	LogLevel          string      `env:"LOG_LEVEL"`
}

const (
	defaultTransactionType   = "payshap"
	defaultSettlementWorkers = 4
	defaultLogLevel          = "info"
)

var ErrInvalidWorkersCount = errors.New("settlement workers count must be positive")

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			TransactionType:   defaultTransactionType,
			SettlementWorkers: defaultSettlementWorkers,
			LogLevel:          defaultLogLevel,
		},
		arguments: os.Args[1:],
	}
}

func (b *Builder) LoadEnv() *Builder {
	if b.err != nil {
		return b
	}

	b.err = env.Parse(b.parameters)

	return b
}

func (b *Builder) LoadFlags() *Builder {
	if b.err != nil {
		return b
	}

	fs := flag.NewFlagSet("zarledger", flag.ContinueOnError)
	fs.StringVar(&b.parameters.Account, "account", b.parameters.Account, "номер счета из 8 цифр")
	fs.StringVar(&b.parameters.Amount, "amount", b.parameters.Amount, "сумма операции в рандах")
	fs.StringVar(&b.parameters.TransactionType, "type", b.parameters.TransactionType, "тип операции: payshap, eft, international, card_purchase")
	fs.TextVar(&b.parameters.OpeningBalance, "balance", b.parameters.OpeningBalance, "начальный баланс счета")
	fs.IntVar(&b.parameters.SettlementWorkers, "w", b.parameters.SettlementWorkers, "количество воркеров проведения операций")
	fs.StringVar(&b.parameters.LogLevel, "l", b.parameters.LogLevel, "уровень логирования")
	b.err = fs.Parse(b.arguments)

	return b
}

func (b *Builder) Build() (Config, error) {
	if b.err == nil && b.parameters.SettlementWorkers < 1 {
		b.err = ErrInvalidWorkersCount
	}

	return b, b.err
}

func (b *Builder) Account() string {
	return b.parameters.Account
}

func (b *Builder) Amount() string {
	return b.parameters.Amount
}

func (b *Builder) TransactionType() string {
	return b.parameters.TransactionType
}

func (b *Builder) OpeningBalance() money.Money {
	return b.parameters.OpeningBalance
}

func (b *Builder) SettlementWorkers() int {
	return b.parameters.SettlementWorkers
}

func (b *Builder) LogLevel() string {
	return b.parameters.LogLevel
}
