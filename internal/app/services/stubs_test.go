package services

import (
	"context"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
)

// Function-field stubs for the repository interfaces. A nil field means
// the test does not expect that call; reaching it panics and fails the
// test loudly.

type stubUserRepo struct {
	createUser        func(ctx context.Context, user *models.User) (int64, error)
	getUserByUsername func(ctx context.Context, username string) (*models.User, error)
	getUserByID       func(ctx context.Context, id int64) (*models.User, error)
	usernameExists    func(ctx context.Context, username string) (bool, error)
	updatePassword    func(ctx context.Context, userID int64, hashedPassword string) error
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return s.createUser(ctx, user)
}

func (s *stubUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUserByUsername(ctx, username)
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUserByID(ctx, id)
}

func (s *stubUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExists(ctx, username)
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return s.updatePassword(ctx, userID, hashedPassword)
}

type stubStudentRepo struct {
	createWithUser          func(ctx context.Context, student *models.Student, user *models.User) error
	getByID                 func(ctx context.Context, id int64) (*models.Student, error)
	getByUniqueID           func(ctx context.Context, uniqueID string) (*models.Student, error)
	getAll                  func(ctx context.Context) ([]*models.Student, error)
	existsByUniqueIDOrEmail func(ctx context.Context, uniqueID, email string) (bool, error)
	emailExistsForOther     func(ctx context.Context, email string, excludeID int64) (bool, error)
	update                  func(ctx context.Context, student *models.Student) error
	deleteCascade           func(ctx context.Context, id int64) error
}

func (s *stubStudentRepo) CreateWithUser(ctx context.Context, student *models.Student, user *models.User) error {
	return s.createWithUser(ctx, student, user)
}

func (s *stubStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.getByID(ctx, id)
}

func (s *stubStudentRepo) GetByUniqueID(ctx context.Context, uniqueID string) (*models.Student, error) {
	return s.getByUniqueID(ctx, uniqueID)
}

func (s *stubStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.getAll(ctx)
}

func (s *stubStudentRepo) ExistsByUniqueIDOrEmail(ctx context.Context, uniqueID, email string) (bool, error) {
	return s.existsByUniqueIDOrEmail(ctx, uniqueID, email)
}

func (s *stubStudentRepo) EmailExistsForOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	return s.emailExistsForOther(ctx, email, excludeID)
}

func (s *stubStudentRepo) Update(ctx context.Context, student *models.Student) error {
	return s.update(ctx, student)
}

func (s *stubStudentRepo) DeleteCascade(ctx context.Context, id int64) error {
	return s.deleteCascade(ctx, id)
}

type stubCourseRepo struct {
	create        func(ctx context.Context, course *models.Course) error
	getByID       func(ctx context.Context, id int64) (*models.Course, error)
	getAll        func(ctx context.Context) ([]*models.Course, error)
	codeExists    func(ctx context.Context, courseCode string) (bool, error)
	update        func(ctx context.Context, course *models.Course) error
	deleteCascade func(ctx context.Context, id int64) error
}

func (s *stubCourseRepo) Create(ctx context.Context, course *models.Course) error {
	return s.create(ctx, course)
}

func (s *stubCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.getByID(ctx, id)
}

func (s *stubCourseRepo) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.getAll(ctx)
}

func (s *stubCourseRepo) CodeExists(ctx context.Context, courseCode string) (bool, error) {
	return s.codeExists(ctx, courseCode)
}

func (s *stubCourseRepo) Update(ctx context.Context, course *models.Course) error {
	return s.update(ctx, course)
}

func (s *stubCourseRepo) DeleteCascade(ctx context.Context, id int64) error {
	return s.deleteCascade(ctx, id)
}

type stubGradeRepo struct {
	getByStudentAndCourse func(ctx context.Context, studentID, courseID int64) (*models.Grade, error)
	create                func(ctx context.Context, grade *models.Grade) error
	updateScore           func(ctx context.Context, grade *models.Grade) error
	getAllJoined          func(ctx context.Context) ([]*dto.AdminGradeView, error)
	getByStudentJoined    func(ctx context.Context, studentID int64) ([]*dto.StudentGradeView, error)
	delete                func(ctx context.Context, id int64) error
}

func (s *stubGradeRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	return s.getByStudentAndCourse(ctx, studentID, courseID)
}

func (s *stubGradeRepo) Create(ctx context.Context, grade *models.Grade) error {
	return s.create(ctx, grade)
}

func (s *stubGradeRepo) UpdateScore(ctx context.Context, grade *models.Grade) error {
	return s.updateScore(ctx, grade)
}

func (s *stubGradeRepo) GetAllJoined(ctx context.Context) ([]*dto.AdminGradeView, error) {
	return s.getAllJoined(ctx)
}

func (s *stubGradeRepo) GetByStudentJoined(ctx context.Context, studentID int64) ([]*dto.StudentGradeView, error) {
	return s.getByStudentJoined(ctx, studentID)
}

func (s *stubGradeRepo) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}
