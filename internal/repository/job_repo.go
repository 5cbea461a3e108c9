package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-job-board/internal/model"
)

const jobColumns = `id, title, company, location, description, employment_type,
	posted_date, apply_link, posted_by, created_at, updated_at`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Insert(ctx context.Context, j model.JobEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO job_entries (id, title, company, location, description, employment_type,
		                          posted_date, apply_link, posted_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.Title, j.Company, j.Location, j.Description, j.EmploymentType,
		j.PostedDate, j.ApplyLink, j.PostedBy, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert job entry: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (model.JobEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_entries WHERE id = $1`, id)

	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JobEntry{}, model.ErrJobNotFound
	}
	if err != nil {
		return model.JobEntry{}, fmt.Errorf("find job entry by id: %w", err)
	}
	return j, nil
}

// List returns all job entries, optionally restricted to one employment type.
// An empty employmentType means no filter.
func (r *JobRepository) List(ctx context.Context, employmentType string) ([]model.JobEntry, error) {
	query := `SELECT ` + jobColumns + ` FROM job_entries`
	args := []any{}
	if strings.TrimSpace(employmentType) != "" {
		query += ` WHERE employment_type = $1`
		args = append(args, employmentType)
	}
	query += ` ORDER BY posted_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list job entries: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.JobEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_entries WHERE posted_by = $1 ORDER BY posted_date DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list job entries by owner: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// Update overwrites the mutable columns and returns the updated row.
// posted_by and posted_date are never touched.
func (r *JobRepository) Update(ctx context.Context, id string, fields model.UpdateJobRequest) (model.JobEntry, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE job_entries
		 SET title = $2, company = $3, location = $4, description = $5,
		     employment_type = $6, apply_link = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, fields.Title, fields.Company, fields.Location, fields.Description,
		fields.EmploymentType, fields.ApplyLink)

	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JobEntry{}, model.ErrJobNotFound
	}
	if err != nil {
		return model.JobEntry{}, fmt.Errorf("update job entry: %w", err)
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrJobNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (model.JobEntry, error) {
	var j model.JobEntry
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.EmploymentType, &j.PostedDate, &j.ApplyLink, &j.PostedBy,
		&j.CreatedAt, &j.UpdatedAt)
	return j, err
}

func collectJobs(rows pgx.Rows) ([]model.JobEntry, error) {
	jobs := make([]model.JobEntry, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job entry: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
