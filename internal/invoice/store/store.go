package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

const pgForeignKeyViolation = "23503"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, comp_code, amt, paid, add_date, paid_date
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	if err := s.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
		return nil, err
	}

	return &inv, nil
}

const selectInvoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

// GetInvoice fetches the invoice and then its owning company. Both reads run
// inside one read-only transaction so a concurrent company delete cannot
// slip between them.
func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning read tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	companyQuery := `SELECT code, name, description FROM companies WHERE code = $1`

	var c invoice.Company
	if err := tx.QueryRowContext(ctx, companyQuery, inv.CompCode).
		Scan(&c.Code, &c.Name, &c.Description); err != nil {
		return nil, fmt.Errorf("getting invoice company: %w", err)
	}

	inv.Company = &c

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing read tx: %w", err)
	}

	return inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + selectInvoiceColumns

	err := s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amt).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return invoice.ErrCompanyNotFound
		}

		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING ` + selectInvoiceColumns

	err := s.db.QueryRowContext(ctx, query, inv.Amt, inv.Paid, inv.PaidDate, inv.ID).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invoice.ErrNotFound
		}

		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	return nil
}
