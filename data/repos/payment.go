package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NGanna24/mi-gban-sub000/data"
)

type PaymentRepo struct {
	db *sqlx.DB
}

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db}
}

func (r *PaymentRepo) CreatePayment(payment data.Payment) (int, error) {
	query := `
		INSERT INTO payments (payer_id, listing_id, amount, method, reference, status)
		VALUES (:payer_id, :listing_id, :amount, :method, :reference, :status)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, payment)
	if err != nil {
		return 0, fmt.Errorf("create payment: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}

	return id, nil
}

func (r *PaymentRepo) GetPaymentsByPayer(payerID uuid.UUID) ([]data.Payment, error) {
	var payments []data.Payment
	query := `
		SELECT * FROM payments
		WHERE payer_id = $1
		ORDER BY created_at DESC`

	err := r.db.Select(&payments, query, payerID)
	if err != nil {
		return nil, fmt.Errorf("get payments by payer: %w", err)
	}

	return payments, nil
}
