package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

type jobModel struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Location    string    `db:"location"`
	PostedBy    string    `db:"posted_by"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m *jobModel) toEntity() *job.Job {
	return &job.Job{
		ID:          kernel.JobID(m.ID),
		Title:       kernel.JobTitle(m.Title),
		Description: kernel.JobDescription(m.Description),
		Location:    kernel.JobLocation(m.Location),
		PostedBy:    kernel.UserID(m.PostedBy),
		Status:      job.JobStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:          string(j.ID),
		Title:       string(j.Title),
		Description: string(j.Description),
		Location:    string(j.Location),
		PostedBy:    string(j.PostedBy),
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// Create creates a new job posting
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	model := fromEntity(j)

	query := `
		INSERT INTO jobs (
			id, title, description, location, posted_by, status, created_at, updated_at
		) VALUES (
			:id, :title, :description, :location, :posted_by, :status, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT id, title, description, location, posted_by, status, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// ListOpen retrieves open jobs with pagination
func (r *PostgresJobRepository) ListOpen(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE status = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(job.JobStatusOpen)); err != nil {
		return nil, fmt.Errorf("failed to count open jobs: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT id, title, description, location, posted_by, status, created_at, updated_at
		FROM jobs
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(job.JobStatusOpen), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[job.Job]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// ListByPoster retrieves jobs posted by a specific employer
func (r *PostgresJobRepository) ListByPoster(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to count jobs by poster: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT id, title, description, location, posted_by, status, created_at, updated_at
		FROM jobs
		WHERE posted_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(userID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by poster: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[job.Job]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}
