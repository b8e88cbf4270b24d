package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/biztime/internal/industry"
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

func (s *Store) ListIndustries(ctx context.Context) ([]*industry.Industry, error) {
	query := `SELECT code, industry FROM industries`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing industries: %w", err)
	}
	defer rows.Close()

	var industries []*industry.Industry

	for rows.Next() {
		var ind industry.Industry
		if err := rows.Scan(&ind.Code, &ind.Industry); err != nil {
			return nil, fmt.Errorf("scanning industry: %w", err)
		}

		industries = append(industries, &ind)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating industry rows: %w", err)
	}

	return industries, nil
}

func (s *Store) CreateIndustry(ctx context.Context, ind *industry.Industry) error {
	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry
	`

	err := s.db.QueryRowContext(ctx, query, ind.Code, ind.Industry).
		Scan(&ind.Code, &ind.Industry)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return industry.ErrExists
		}

		return fmt.Errorf("creating industry: %w", err)
	}

	return nil
}

func (s *Store) CreateAssociation(ctx context.Context, assoc *industry.CompanyIndustry) error {
	query := `
		INSERT INTO companies_industries (comp_code, ind_code)
		VALUES ($1, $2)
		RETURNING comp_code, ind_code
	`

	err := s.db.QueryRowContext(ctx, query, assoc.CompCode, assoc.IndCode).
		Scan(&assoc.CompCode, &assoc.IndCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return industry.ErrAlreadyAssociated
			case pgForeignKeyViolation:
				// The constraint name says which side of the pair is missing.
				if strings.Contains(pgErr.ConstraintName, "ind_code") {
					return industry.ErrIndustryNotFound
				}

				return industry.ErrCompanyNotFound
			}
		}

		return fmt.Errorf("creating association: %w", err)
	}

	return nil
}
