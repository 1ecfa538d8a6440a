package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hireline/hireline/pkg/kernel"
	"github.com/hireline/hireline/portal/application"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	CoverLetter     string    `db:"cover_letter"`
	Phone           string    `db:"phone"`
	Address         string    `db:"address"`
	ApplicantUserID string    `db:"applicant_user_id"`
	ApplicantRole   string    `db:"applicant_role"`
	EmployerUserID  string    `db:"employer_user_id"`
	EmployerRole    string    `db:"employer_role"`
	ResumePublicID  string    `db:"resume_public_id"`
	ResumeURL       string    `db:"resume_url"`
	CreatedAt       time.Time `db:"created_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:          kernel.ApplicationID(m.ID),
		Name:        m.Name,
		Email:       kernel.Email(m.Email),
		CoverLetter: m.CoverLetter,
		Phone:       m.Phone,
		Address:     m.Address,
		ApplicantID: kernel.ActorRef{
			User: kernel.UserID(m.ApplicantUserID),
			Role: kernel.ActorRole(m.ApplicantRole),
		},
		EmployerID: kernel.ActorRef{
			User: kernel.UserID(m.EmployerUserID),
			Role: kernel.ActorRole(m.EmployerRole),
		},
		Resume: application.Resume{
			PublicID: m.ResumePublicID,
			URL:      m.ResumeURL,
		},
		CreatedAt: m.CreatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(app *application.Application) *applicationModel {
	return &applicationModel{
		ID:              string(app.ID),
		Name:            app.Name,
		Email:           string(app.Email),
		CoverLetter:     app.CoverLetter,
		Phone:           app.Phone,
		Address:         app.Address,
		ApplicantUserID: string(app.ApplicantID.User),
		ApplicantRole:   string(app.ApplicantID.Role),
		EmployerUserID:  string(app.EmployerID.User),
		EmployerRole:    string(app.EmployerID.Role),
		ResumePublicID:  app.Resume.PublicID,
		ResumeURL:       app.Resume.URL,
		CreatedAt:       app.CreatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, name, email, cover_letter, phone, address,
			applicant_user_id, applicant_role, employer_user_id, employer_role,
			resume_public_id, resume_url, created_at
		) VALUES (
			:id, :name, :email, :cover_letter, :phone, :address,
			:applicant_user_id, :applicant_role, :employer_user_id, :employer_role,
			:resume_public_id, :resume_url, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `
		SELECT
			id, name, email, cover_letter, phone, address,
			applicant_user_id, applicant_role, employer_user_id, employer_role,
			resume_public_id, resume_url, created_at
		FROM applications
		WHERE id = $1
	`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByApplicant retrieves applications whose applicant reference matches the user
func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, userID kernel.UserID) ([]application.Application, error) {
	query := `
		SELECT
			id, name, email, cover_letter, phone, address,
			applicant_user_id, applicant_role, employer_user_id, employer_role,
			resume_public_id, resume_url, created_at
		FROM applications
		WHERE applicant_user_id = $1
		ORDER BY created_at DESC
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to list applications by applicant: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return entities, nil
}

// ListByEmployer retrieves applications whose employer reference matches the user
func (r *PostgresApplicationRepository) ListByEmployer(ctx context.Context, userID kernel.UserID) ([]application.Application, error) {
	query := `
		SELECT
			id, name, email, cover_letter, phone, address,
			applicant_user_id, applicant_role, employer_user_id, employer_role,
			resume_public_id, resume_url, created_at
		FROM applications
		WHERE employer_user_id = $1
		ORDER BY created_at DESC
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to list applications by employer: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return entities, nil
}

// Delete removes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}
