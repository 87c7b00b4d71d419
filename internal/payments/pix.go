// Package payments builds the synthetic PIX "copia e cola" payload returned
// on PIX checkouts. The code mirrors the real payload layout (merchant
// account segment, static fields, transaction id, CRC slot) but never
// settles; real gateway integration is out of scope.
package payments

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	pixMerchantKey  = "visualfashionkids@pix.com.br"
	pixMerchantName = "Visual Fashion Kids LTDA"
	pixMerchantCity = "Resende"

	// Max transaction-id length accepted by the BR Code spec.
	pixTxIDLen = 25
)

// GeneratePixCode derives the payment reference as a pure function of
// (amount, orderID): the same inputs always produce the same payload. The
// transaction id is the order id with dashes stripped, truncated and
// uppercased; the amount is appended with two decimals and no separator.
func GeneratePixCode(amount float64, orderID uuid.UUID) string {

	amountStr := strings.ReplaceAll(strconv.FormatFloat(amount, 'f', 2, 64), ".", "")

	txID := strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", ""))
	if len(txID) > pixTxIDLen {
		txID = txID[:pixTxIDLen]
	}

	var b strings.Builder

	b.WriteString("00020126580014BR.GOV.BCB.PIX0136")
	b.WriteString(pixMerchantKey)
	b.WriteString("5204000053039865802BR5925")
	b.WriteString(pixMerchantName)
	b.WriteString("6009")
	b.WriteString(pixMerchantCity)
	b.WriteString("62070503")
	b.WriteString(txID)
	b.WriteString("63041234")
	b.WriteString(amountStr)

	return b.String()
}
