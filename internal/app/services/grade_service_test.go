package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/pkg/apperrors"
)

func intPtr(v int) *int { return &v }

// knownStudentAndCourse returns stubs whose existence checks always
// succeed, for tests that only exercise the grade branch.
func knownStudentAndCourse() (*stubStudentRepo, *stubCourseRepo) {
	studentRepo := &stubStudentRepo{
		getByID: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id}, nil
		},
	}
	courseRepo := &stubCourseRepo{
		getByID: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id}, nil
		},
	}
	return studentRepo, courseRepo
}

func TestUpsertGradeCreatesNewGrade(t *testing.T) {
	studentRepo, courseRepo := knownStudentAndCourse()

	var created *models.Grade
	gradeRepo := &stubGradeRepo{
		getByStudentAndCourse: func(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
			return nil, apperrors.ErrGradeNotFound
		},
		create: func(ctx context.Context, grade *models.Grade) error {
			grade.ID = 10
			created = grade
			return nil
		},
	}

	svc := NewGradeService(gradeRepo, studentRepo, courseRepo, zerolog.Nop())

	grade, wasCreated, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1,
		CourseID:  2,
		Score:     intPtr(87),
	})

	require.NoError(t, err)
	assert.True(t, wasCreated)
	require.NotNil(t, created)
	assert.Equal(t, int64(10), grade.ID)
	assert.Equal(t, 87, grade.Score)
	assert.Equal(t, "A", grade.GradeLetter)
}

func TestUpsertGradeUpdatesExistingGrade(t *testing.T) {
	studentRepo, courseRepo := knownStudentAndCourse()

	existing := &models.Grade{ID: 7, StudentID: 1, CourseID: 2, Score: 42, GradeLetter: "D"}
	updates := 0
	gradeRepo := &stubGradeRepo{
		getByStudentAndCourse: func(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
			return existing, nil
		},
		updateScore: func(ctx context.Context, grade *models.Grade) error {
			updates++
			assert.Equal(t, int64(7), grade.ID)
			return nil
		},
	}

	svc := NewGradeService(gradeRepo, studentRepo, courseRepo, zerolog.Nop())

	grade, wasCreated, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1,
		CourseID:  2,
		Score:     intPtr(91),
	})

	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, 1, updates)
	assert.Equal(t, int64(7), grade.ID)
	assert.Equal(t, 91, grade.Score)
	assert.Equal(t, "A+", grade.GradeLetter)
}

// A second upsert for the same pair must land on the existing row with
// the re-derived letter, never produce a second grade.
func TestUpsertGradeTwiceKeepsOneRow(t *testing.T) {
	studentRepo, courseRepo := knownStudentAndCourse()

	var stored *models.Grade
	gradeRepo := &stubGradeRepo{
		getByStudentAndCourse: func(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
			if stored == nil {
				return nil, apperrors.ErrGradeNotFound
			}
			return stored, nil
		},
		create: func(ctx context.Context, grade *models.Grade) error {
			grade.ID = 1
			stored = grade
			return nil
		},
		updateScore: func(ctx context.Context, grade *models.Grade) error {
			stored = grade
			return nil
		},
	}

	svc := NewGradeService(gradeRepo, studentRepo, courseRepo, zerolog.Nop())

	_, wasCreated, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1, CourseID: 2, Score: intPtr(58),
	})
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, "C", stored.GradeLetter)

	grade, wasCreated, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1, CourseID: 2, Score: intPtr(95),
	})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, int64(1), grade.ID)
	assert.Equal(t, 95, stored.Score)
	assert.Equal(t, "A+", stored.GradeLetter)
}

// The loser of a concurrent insert race on the unique (student, course)
// index retries as an update of the winner's row.
func TestUpsertGradeRetriesAsUpdateOnUniqueViolation(t *testing.T) {
	studentRepo, courseRepo := knownStudentAndCourse()

	winner := &models.Grade{ID: 3, StudentID: 1, CourseID: 2, Score: 70, GradeLetter: "B"}
	lookups := 0
	gradeRepo := &stubGradeRepo{
		getByStudentAndCourse: func(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
			lookups++
			if lookups == 1 {
				return nil, apperrors.ErrGradeNotFound
			}
			return winner, nil
		},
		create: func(ctx context.Context, grade *models.Grade) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_grades_student_course"}
		},
		updateScore: func(ctx context.Context, grade *models.Grade) error {
			assert.Equal(t, int64(3), grade.ID)
			return nil
		},
	}

	svc := NewGradeService(gradeRepo, studentRepo, courseRepo, zerolog.Nop())

	grade, wasCreated, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1, CourseID: 2, Score: intPtr(88),
	})

	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, 2, lookups)
	assert.Equal(t, 88, grade.Score)
	assert.Equal(t, "A", grade.GradeLetter)
}

func TestUpsertGradeRejectsOutOfRangeScore(t *testing.T) {
	svc := NewGradeService(&stubGradeRepo{}, &stubStudentRepo{}, &stubCourseRepo{}, zerolog.Nop())

	for _, score := range []*int{nil, intPtr(-1), intPtr(101)} {
		_, _, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
			StudentID: 1, CourseID: 2, Score: score,
		})
		assert.ErrorIs(t, err, apperrors.ErrScoreOutOfRange)
	}
}

func TestUpsertGradeUnknownStudent(t *testing.T) {
	studentRepo := &stubStudentRepo{
		getByID: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	svc := NewGradeService(&stubGradeRepo{}, studentRepo, &stubCourseRepo{}, zerolog.Nop())

	_, _, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 99, CourseID: 2, Score: intPtr(80),
	})

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpsertGradeUnknownCourse(t *testing.T) {
	studentRepo, _ := knownStudentAndCourse()
	courseRepo := &stubCourseRepo{
		getByID: func(ctx context.Context, id int64) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}

	svc := NewGradeService(&stubGradeRepo{}, studentRepo, courseRepo, zerolog.Nop())

	_, _, err := svc.UpsertGrade(context.Background(), &dto.UpsertGradeRequest{
		StudentID: 1, CourseID: 99, Score: intPtr(80),
	})

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteGradeNotFound(t *testing.T) {
	gradeRepo := &stubGradeRepo{
		delete: func(ctx context.Context, id int64) error {
			return apperrors.ErrGradeNotFound
		},
	}

	svc := NewGradeService(gradeRepo, &stubStudentRepo{}, &stubCourseRepo{}, zerolog.Nop())

	assert.ErrorIs(t, svc.DeleteGrade(context.Background(), 404), apperrors.ErrGradeNotFound)
}
