package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeBooking         PaymentType = "BOOKING_PAYMENT"
	PaymentTypeSecurityDeposit PaymentType = "SECURITY_DEPOSIT"
	PaymentTypeLateFee         PaymentType = "LATE_FEE"
	PaymentTypeDamageCharge    PaymentType = "DAMAGE_CHARGE"
	PaymentTypeRefund          PaymentType = "REFUND"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NET_BANKING"
	PaymentMethodWallet     PaymentMethod = "WALLET"
	PaymentMethodCash       PaymentMethod = "CASH"
)

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusSuccess       PaymentStatus = "SUCCESS"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
	PaymentStatusPartialRefund PaymentStatus = "PARTIAL_REFUND"
)

type Payment struct {
	ID               int64            `json:"id"`
	TransactionID    string           `json:"transaction_id"`
	BookingID        int64            `json:"booking_id"`
	UserID           int64            `json:"user_id"`
	Amount           decimal.Decimal  `json:"amount"`
	PaymentType      PaymentType      `json:"payment_type"`
	PaymentMethod    PaymentMethod    `json:"payment_method"`
	Status           PaymentStatus    `json:"status"`
	PaymentDate      *time.Time       `json:"payment_date,omitempty"`
	GatewayReference string           `json:"gateway_reference,omitempty"`
	GatewayResponse  string           `json:"gateway_response,omitempty"`
	RefundAmount     *decimal.Decimal `json:"refund_amount,omitempty"`
	RefundDate       *time.Time       `json:"refund_date,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
