package handler

import (
	"bytes"
	"fmt"
	"github.com/ivanpodgorny/zarledger/internal/entity"
	"io"
	"strings"
)

const (
	receiptTimeLayout = "2006-01-02 15:04:05"
	receiptRule       = "─────────────────────────────────────────────"
)

// writeReceipt выводит квитанцию по проведенной транзакции.
func writeReceipt(w io.Writer, tx *entity.Transaction, res entity.SettlementResult) error {
	var b bytes.Buffer

	b.WriteString("╔════════════════════════════════════════════╗\n")
	b.WriteString("║         TRANSACTION RECEIPT                ║\n")
	b.WriteString("╠════════════════════════════════════════════╣\n")
	fmt.Fprintf(&b, "   Transaction ID: %s\n", tx.ID())
	fmt.Fprintf(&b, "   Account: %s\n", tx.Account())
	fmt.Fprintf(&b, "   Date: %s\n", tx.Timestamp().Format(receiptTimeLayout))
	fmt.Fprintf(&b, "   Type: %s\n", strings.ToUpper(string(tx.Type())))
	fmt.Fprintf(&b, "   Status: %s\n", strings.ToUpper(string(res.Status)))
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "   Amount: R %s\n", tx.Amount())
	fmt.Fprintf(&b, "   VAT (%s%%): R %s\n", entity.VATRate(tx.Type()), tx.VAT())
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "   TOTAL: R %s\n", tx.TotalAmount())
	b.WriteString("╚════════════════════════════════════════════╝\n")
	fmt.Fprintf(&b, "\n %s\n", vatNote(tx))
	if res.Err != nil {
		fmt.Fprintf(&b, " Not settled: %v\n", res.Err)
	}
	fmt.Fprintf(&b, " Balance: R %s\n", res.Balance)

	_, err := w.Write(b.Bytes())

	return err
}

func vatNote(tx *entity.Transaction) string {
	if tx.VAT().IsPositive() {
		return "VAT applied: standard rate (15%)"
	}

	if tx.Type() == entity.TransactionTypePayShap {
		return "VAT exempt: Person-to-person transfer"
	}

	return "VAT exempt: Bank transfer"
}
