package repositories

import (
	"context"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
)

// IUserRepository defines the login account persistence operations the
// service layer depends on.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
}

// IStudentRepository defines the student profile persistence operations
// the service layer depends on.
type IStudentRepository interface {
	CreateWithUser(ctx context.Context, student *models.Student, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	ExistsByUniqueIDOrEmail(ctx context.Context, uniqueID, email string) (bool, error)
	EmailExistsForOther(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	DeleteCascade(ctx context.Context, id int64) error
}

// ICourseRepository defines the course catalog persistence operations
// the service layer depends on.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	CodeExists(ctx context.Context, courseCode string) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	DeleteCascade(ctx context.Context, id int64) error
}

// IGradeRepository defines the grade persistence operations the service
// layer depends on.
type IGradeRepository interface {
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	UpdateScore(ctx context.Context, grade *models.Grade) error
	GetAllJoined(ctx context.Context) ([]*dto.AdminGradeView, error)
	GetByStudentJoined(ctx context.Context, studentID int64) ([]*dto.StudentGradeView, error)
	Delete(ctx context.Context, id int64) error
}
