package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bmahler/estate-portal/api/internal/database"
	"github.com/bmahler/estate-portal/api/internal/metrics"
	"github.com/bmahler/estate-portal/api/internal/models"
)

// InquiryRepository is the single point of contact with the inquiry store.
// Every call is one round trip; there is no caching and no retry, so a
// transient provider failure surfaces immediately.
type InquiryRepository interface {
	// Insert appends a new inquiry. The id and submitted_at columns are
	// generated server-side and returned on the stored record.
	Insert(ctx context.Context, in models.Inquiry) (*models.Inquiry, error)

	// List returns all inquiries ordered by submitted_at descending.
	// Returns an empty (non-nil) slice when no rows exist.
	List(ctx context.Context) ([]models.Inquiry, error)

	// GetByID returns the inquiry with the given id.
	// Returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Inquiry, error)

	// DeleteByID removes the inquiry with the given id and returns the
	// deleted row. Returns ErrNotFound when no row matches.
	DeleteByID(ctx context.Context, id int64) (*models.Inquiry, error)

	// Count returns the number of stored inquiries. Used by readiness
	// checks as a cheap end-to-end query.
	Count(ctx context.Context) (int64, error)
}

// inquiryColumns is the select list shared by every query, in scan order.
const inquiryColumns = `id, name, email, contact, needs, property_type, budget_range,
	preferred_location, timeline, additional_details, industry, zipcode, submitted_at`

type inquiryRepository struct {
	db    *database.Database
	table string
}

// NewInquiryRepository creates an InquiryRepository over the given table.
// The table name must already be validated as a plain SQL identifier
// (config does this); placeholders cannot carry identifiers.
func NewInquiryRepository(db *database.Database, table string) InquiryRepository {
	return &inquiryRepository{
		db:    db,
		table: table,
	}
}

func (r *inquiryRepository) Insert(ctx context.Context, in models.Inquiry) (rec *models.Inquiry, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("insert", start, err) }(time.Now())

	query := fmt.Sprintf(`
		INSERT INTO %s (
			name, email, contact, needs, property_type, budget_range,
			preferred_location, timeline, additional_details, industry, zipcode
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, r.table, inquiryColumns)

	row := r.db.Pool.QueryRow(ctx, query,
		in.Name,
		in.Email,
		in.Contact,
		in.Needs,
		in.PropertyType,
		in.BudgetRange,
		in.PreferredLocation,
		in.Timeline,
		in.AdditionalDetails,
		in.Industry,
		in.Zipcode,
	)

	stored, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return stored, nil
}

func (r *inquiryRepository) List(ctx context.Context) (recs []models.Inquiry, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("list", start, err) }(time.Now())

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY submitted_at DESC`, inquiryColumns, r.table)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	results := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		results = append(results, *inq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return results, nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id int64) (rec *models.Inquiry, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("get_by_id", start, err) }(time.Now())

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, inquiryColumns, r.table)

	inq, err := scanInquiry(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query inquiry %d: %w", id, err)
	}
	return inq, nil
}

func (r *inquiryRepository) DeleteByID(ctx context.Context, id int64) (rec *models.Inquiry, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("delete_by_id", start, err) }(time.Now())

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING %s`, r.table, inquiryColumns)

	inq, err := scanInquiry(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete inquiry %d: %w", id, err)
	}
	return inq, nil
}

func (r *inquiryRepository) Count(ctx context.Context) (n int64, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("count", start, err) }(time.Now())

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.table)

	var count int64
	if err := r.db.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

// scanInquiry scans one row in inquiryColumns order.
func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var inq models.Inquiry
	err := row.Scan(
		&inq.ID,
		&inq.Name,
		&inq.Email,
		&inq.Contact,
		&inq.Needs,
		&inq.PropertyType,
		&inq.BudgetRange,
		&inq.PreferredLocation,
		&inq.Timeline,
		&inq.AdditionalDetails,
		&inq.Industry,
		&inq.Zipcode,
		&inq.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}
