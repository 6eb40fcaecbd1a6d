package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/repository"

	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, transaction_id, booking_id, user_id, amount, payment_type, payment_method,
	status, payment_date, gateway_reference, gateway_response, refund_amount, refund_date, notes, created_at`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (transaction_id, booking_id, user_id, amount, payment_type, payment_method,
	          status, payment_date, gateway_reference, gateway_response, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		p.TransactionID, p.BookingID, p.UserID, p.Amount, p.PaymentType, p.PaymentMethod,
		p.Status, p.PaymentDate, p.GatewayReference, p.GatewayResponse, p.Notes, now,
	).Scan(&p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = now
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE transaction_id = $1`, transactionID))
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET status=$1, payment_date=$2, gateway_reference=$3, gateway_response=$4,
	          refund_amount=$5, refund_date=$6, notes=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		p.Status, p.PaymentDate, p.GatewayReference, p.GatewayResponse,
		nullDecimal(p.RefundAmount), p.RefundDate, p.Notes, p.ID,
	)
	return err
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Payment, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, paymentColumns)
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return payments, count, nil
}

func (r *paymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *paymentRepository) collect(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := r.scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) scanPayment(row rowScanner) (*domain.Payment, error) {
	p := &domain.Payment{}
	var gatewayRef, gatewayResp, notes sql.NullString
	var refundAmount decimal.NullDecimal
	err := row.Scan(
		&p.ID, &p.TransactionID, &p.BookingID, &p.UserID, &p.Amount, &p.PaymentType,
		&p.PaymentMethod, &p.Status, &p.PaymentDate, &gatewayRef, &gatewayResp,
		&refundAmount, &p.RefundDate, &notes, &p.CreatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	p.GatewayReference = gatewayRef.String
	p.GatewayResponse = gatewayResp.String
	p.Notes = notes.String
	if refundAmount.Valid {
		p.RefundAmount = &refundAmount.Decimal
	}
	return p, nil
}
