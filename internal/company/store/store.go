package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/biztime/internal/company"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	query := `SELECT code, name, description FROM companies`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*company.Company

	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

// GetCompany loads the company with its industry names, then its invoices.
// Both reads share one read-only transaction so they see a consistent
// snapshot.
func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning read tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT c.code, c.name, c.description, i.industry
		FROM companies AS c
		LEFT JOIN companies_industries AS ci ON c.code = ci.comp_code
		LEFT JOIN industries AS i ON ci.ind_code = i.code
		WHERE c.code = $1
	`

	rows, err := tx.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}
	defer rows.Close()

	var c *company.Company

	for rows.Next() {
		var (
			row      company.Company
			industry sql.NullString
		)

		if err := rows.Scan(&row.Code, &row.Name, &row.Description, &industry); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		if c == nil {
			c = &row
			c.Industries = []string{}
		}

		if industry.Valid {
			c.Industries = append(c.Industries, industry.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	// The tx holds a single connection; release it before the next query.
	rows.Close()

	if c == nil {
		return nil, company.ErrNotFound
	}

	invoices, err := s.companyInvoices(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	c.Invoices = invoices

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing read tx: %w", err)
	}

	return c, nil
}

func (s *Store) companyInvoices(ctx context.Context, tx *sql.Tx, code string) ([]*company.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE comp_code = $1
	`

	rows, err := tx.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing company invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*company.Invoice{}

	for rows.Next() {
		var inv company.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return company.ErrExists
		}

		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Code).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return company.ErrNotFound
		}

		return fmt.Errorf("updating company: %w", err)
	}

	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1`

	res, err := s.db.ExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	if affected == 0 {
		return company.ErrNotFound
	}

	return nil
}
