package repositories

import (
	"testing"

	"expense-tracker-api/internal/database"
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositorySuite defines the test suite for UserRepository
type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Email:        "test@example.com",
		UserName:     "Test User",
		PasswordHash: "hashedpassword",
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	first := &models.User{
		Email:        "taken@example.com",
		UserName:     "First User",
		PasswordHash: "hashedpassword",
	}
	s.Require().NoError(s.repo.Create(first))

	second := &models.User{
		Email:        "taken@example.com",
		UserName:     "Second User",
		PasswordHash: "hashedpassword",
	}

	err := s.repo.Create(second)
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByID() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByEmail("test@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestCountByEmail_CaseSensitive() {
	database.CreateTestUser(s.T(), s.db, "case@example.com")

	count, err := s.repo.CountByEmail("case@example.com")
	s.NoError(err)
	s.Equal(int64(1), count)

	// The uniqueness check matches exact bytes, not normalized casing
	count, err = s.repo.CountByEmail("CASE@example.com")
	s.NoError(err)
	s.Equal(int64(0), count)
}
