package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/db"
	"github.com/emre/studentms/internal/pkg/apperrors"
)

// StudentRepository handles database operations for student profiles
// and the lifecycle they share with their login accounts.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, student_unique_id, name, email, date_of_birth, address, contact_number, user_id, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentUniqueID,
		&student.Name,
		&student.Email,
		&student.DateOfBirth,
		&student.Address,
		&student.ContactNumber,
		&student.UserID,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateWithUser inserts a student profile and its login account in a
// single transaction so the pair is never left half-created. The two
// records reference each other once the transaction commits.
func (r *StudentRepository) CreateWithUser(ctx context.Context, student *models.Student, user *models.User) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO students (student_unique_id, name, email, date_of_birth, address, contact_number)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			student.StudentUniqueID,
			student.Name,
			student.Email,
			student.DateOfBirth,
			student.Address,
			student.ContactNumber,
		).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}

		user.StudentID = &student.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO users (username, password, role, student_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			user.Username, user.Password, user.Role, user.StudentID,
		).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("error creating student login account: %w", err)
		}

		_, err = tx.Exec(ctx, `UPDATE students SET user_id = $1 WHERE id = $2`, user.ID, student.ID)
		if err != nil {
			return fmt.Errorf("error linking student to login account: %w", err)
		}
		student.UserID = &user.ID

		return nil
	})
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUniqueID retrieves a student by its public unique ID
func (r *StudentRepository) GetByUniqueID(ctx context.Context, uniqueID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_unique_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, uniqueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students with their login account summaries
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_unique_id, s.name, s.email, s.date_of_birth, s.address,
		       s.contact_number, s.user_id, s.created_at, s.updated_at,
		       u.id, u.username, u.role
		FROM students s
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var userID *int64
		var username *string
		var role *models.RoleType
		if err := rows.Scan(
			&student.ID,
			&student.StudentUniqueID,
			&student.Name,
			&student.Email,
			&student.DateOfBirth,
			&student.Address,
			&student.ContactNumber,
			&student.UserID,
			&student.CreatedAt,
			&student.UpdatedAt,
			&userID,
			&username,
			&role,
		); err != nil {
			return nil, err
		}
		if userID != nil {
			student.User = &models.User{ID: *userID, Username: *username, Role: *role}
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByUniqueIDOrEmail checks if a student already uses the unique ID
// or the email address.
func (r *StudentRepository) ExistsByUniqueIDOrEmail(ctx context.Context, uniqueID, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_unique_id = $1 OR email = $2)`,
		uniqueID, email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// EmailExistsForOther checks if the email is used by a different student
func (r *StudentRepository) EmailExistsForOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email uniqueness: %w", err)
	}

	return exists, nil
}

// Update persists a modified student profile
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, date_of_birth = $3, address = $4,
		    contact_number = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Email,
		student.DateOfBirth,
		student.Address,
		student.ContactNumber,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteCascade removes a student together with all grades referencing
// it and its login account, in one transaction. Either every dependent
// record goes or none does; no orphan survives an interrupted delete.
func (r *StudentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM grades WHERE student_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student grades: %w", err)
		}

		// Break the mutual reference before removing the login account.
		_, err = tx.Exec(ctx, `UPDATE students SET user_id = NULL WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error unlinking login account: %w", err)
		}

		_, err = tx.Exec(ctx, `DELETE FROM users WHERE student_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting login account: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}
