package userrepo_test

import (
	"context"
	"testing"
	"time"

	"msosihub/internal/adapters/out/postgres/userrepo"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for UserRepository
// using PostgreSQL containers to verify wallet mutation semantics.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) addUser(balance int64) *user.User {
	m, err := kernel.NewMoney(balance)
	suite.Require().NoError(err)

	aggregate, err := user.RestoreUser(
		kernel.NewUUID(), "Asha", kernel.NewUUID().String()+"@example.com", "+255700000001",
		user.RoleCustomer, m,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *UserRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.addUser(50000)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal("Asha", retrieved.Name())
	suite.Equal(user.RoleCustomer, retrieved.Role())
	suite.Equal(int64(50000), retrieved.WalletBalance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	aggregate := suite.addUser(0)

	retrieved, err := suite.repository.GetByEmail(ctx, aggregate.Email())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(aggregate.ID()))

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestCreditWallet_ReturnsNewBalance() {
	ctx := context.Background()
	aggregate := suite.addUser(10000)

	balance, err := suite.repository.CreditWallet(ctx, aggregate.ID(), suite.money(5000))
	suite.Require().NoError(err)
	suite.Equal(int64(15000), balance.Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDebitWallet_CoveredDebit() {
	ctx := context.Background()
	aggregate := suite.addUser(50000)

	balance, err := suite.repository.DebitWallet(ctx, aggregate.ID(), suite.money(27000))
	suite.Require().NoError(err)
	suite.Equal(int64(23000), balance.Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDebitWallet_InsufficientFundsLeavesBalance() {
	ctx := context.Background()
	aggregate := suite.addUser(10000)

	_, err := suite.repository.DebitWallet(ctx, aggregate.ID(), suite.money(27000))
	suite.Require().ErrorIs(err, user.ErrInsufficientFunds)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(10000), retrieved.WalletBalance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDebitWallet_MissingUser() {
	ctx := context.Background()

	_, err := suite.repository.DebitWallet(ctx, kernel.NewUUID(), suite.money(1000))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UserRepositoryIntegrationTestSuite) TestResetWallet_ReturnsClearedBalance() {
	ctx := context.Background()
	aggregate := suite.addUser(42000)

	cleared, err := suite.repository.ResetWallet(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(42000), cleared.Amount())

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.WalletBalance().IsZero())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchWallet() {
	ctx := context.Background()
	aggregate := suite.addUser(30000)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.ChangeRole(user.RoleDriver))

	suite.tracker.On("TrackAggregate", retrieved.ID(), retrieved).Once()
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	// a concurrent credit between read and update must not be overwritten
	_, err = suite.repository.CreditWallet(ctx, aggregate.ID(), suite.money(1000))
	suite.Require().NoError(err)

	final, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(user.RoleDriver, final.Role())
	suite.Equal(int64(31000), final.WalletBalance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	aggregate := suite.addUser(0)

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
