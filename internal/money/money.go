package money

import (
	"fmt"
	inerr "github.com/ivanpodgorny/zarledger/internal/errors"
	"github.com/shopspring/decimal"
	"regexp"
	"strings"
)

// Scale количество знаков после запятой, с которым хранятся суммы.
const Scale = 2

var (
	hundred      = decimal.NewFromInt(100)
	plainDecimal = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
)

// Money точная денежная сумма в рандах с двумя знаками после запятой.
// Нулевое значение соответствует сумме 0.00.
type Money struct {
	d decimal.Decimal
}

// Parse создает Money из текстового представления. Возвращает ошибку errors.ErrInvalidAmount,
// если строка не является десятичным числом или содержит больше двух значащих знаков после запятой.
// Экспоненциальная запись ("1e3") не принимается.
func Parse(s string) (Money, error) {
	text := strings.TrimSpace(s)
	if !plainDecimal.MatchString(text) {
		return Money{}, fmt.Errorf("%w: %q", inerr.ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", inerr.ErrInvalidAmount, s)
	}

	if !d.Equal(d.Truncate(Scale)) {
		return Money{}, fmt.Errorf("%w: more than %d decimal places in %q", inerr.ErrInvalidAmount, Scale, s)
	}

	return Money{d: d}, nil
}

// MustParse аналогичен Parse, но паникует при ошибке.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

// New создает Money из суммы в центах.
func New(cents int64) Money {
	return Money{d: decimal.New(cents, -Scale)}
}

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

func (m Money) Mul(n int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(n))}
}

// Percent возвращает rate процентов от суммы, округленные до двух знаков
// по правилу half-up (половина округляется от нуля).
func (m Money) Percent(rate Money) Money {
	return Money{d: m.d.Mul(rate.d).DivRound(hundred, Scale)}
}

func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) String() string {
	return m.d.StringFixed(Scale)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
