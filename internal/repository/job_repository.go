package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/careerpulse/internal/domain"
)

// JobRepository encapsulates job-application persistence. Update and Delete
// are owner-scoped: the WHERE clause matches both the record id and the
// owning user id, and zero affected rows surfaces as pgx.ErrNoRows.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.JobApplication) error
	Update(ctx context.Context, job *domain.JobApplication) error
	ListByUser(ctx context.Context, userID string) ([]domain.JobApplication, error)
	Delete(ctx context.Context, id, userID string) error
	CountByStatus(ctx context.Context, userID string) (map[domain.JobStatus]int, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Insert(ctx context.Context, job *domain.JobApplication) error {
	const query = `
        INSERT INTO jobs (id, user_id, company_name, role, status, applied_date, follow_up_date, notes, location, salary)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		job.ID,
		job.UserID,
		job.CompanyName,
		job.Role,
		job.Status,
		job.AppliedDate,
		job.FollowUpDate,
		job.Notes,
		job.Location,
		job.Salary,
	).Scan(&job.CreatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.JobApplication) error {
	const query = `
        UPDATE jobs SET company_name=$1, role=$2, status=$3, applied_date=$4,
            follow_up_date=$5, notes=$6, location=$7, salary=$8
        WHERE id=$9 AND user_id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		job.CompanyName,
		job.Role,
		job.Status,
		job.AppliedDate,
		job.FollowUpDate,
		job.Notes,
		job.Location,
		job.Salary,
		job.ID,
		job.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByUser returns the user's records ordered by applied date descending.
// Ties fall back to store-default order.
func (r *jobRepository) ListByUser(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	const query = `
        SELECT id, user_id, company_name, role, status, applied_date, follow_up_date, notes, location, salary, created_at
        FROM jobs WHERE user_id=$1
        ORDER BY applied_date DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM jobs WHERE id=$1 AND user_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) CountByStatus(ctx context.Context, userID string) (map[domain.JobStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM jobs WHERE user_id=$1 GROUP BY status`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.JobStatus]int)
	for rows.Next() {
		var status domain.JobStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanJobs(rows pgx.Rows) ([]domain.JobApplication, error) {
	var result []domain.JobApplication
	for rows.Next() {
		var job domain.JobApplication
		if err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.CompanyName,
			&job.Role,
			&job.Status,
			&job.AppliedDate,
			&job.FollowUpDate,
			&job.Notes,
			&job.Location,
			&job.Salary,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
