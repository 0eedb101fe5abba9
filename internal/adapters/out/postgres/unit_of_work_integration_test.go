package postgres_test

import (
	"context"
	"testing"
	"time"

	"fasttechfoods/internal/adapters/out/postgres"
	"fasttechfoods/internal/adapters/out/postgres/kitchenrepo"
	"fasttechfoods/internal/adapters/out/postgres/orderrepo"
	"fasttechfoods/internal/adapters/out/postgres/outboxrepo"
	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{},
		&kitchenrepo.TicketDTO{}, &kitchenrepo.TicketItemDTO{},
		&outboxrepo.MessageDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, outbox_messages, kitchen_tickets CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newOrderAndMessage() (*order.Order, *outbox.Message) {
	line, err := order.NewLine(7, "Burger", 1, 9.5)
	suite.Require().NoError(err)
	o, err := order.NewOrder(42, "Ana", order.InStore, []order.Line{line})
	suite.Require().NoError(err)

	message, err := outbox.NewMessage(kernel.NewUUID(), []byte(`{"eventType":"order.created"}`))
	suite.Require().NoError(err)
	return o, message
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	o, message := suite.newOrderAndMessage()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o, kernel.NewUUID()))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, message))
	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, messageCount int64
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(*) FROM orders").Scan(&orderCount).Error)
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(*) FROM outbox_messages").Scan(&messageCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), messageCount)
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	o, message := suite.newOrderAndMessage()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o, kernel.NewUUID()))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, message))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, messageCount int64
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(*) FROM orders").Scan(&orderCount).Error)
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(*) FROM outbox_messages").Scan(&messageCount).Error)
	suite.Zero(orderCount)
	suite.Zero(messageCount)
}

func (suite *UnitOfWorkTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestRepositoriesWorkOutsideTransaction() {
	ctx := context.Background()
	_, message := suite.newOrderAndMessage()

	uow := suite.factory.Create()
	err := uow.OutboxRepository().Add(ctx, message)
	suite.Require().NoError(err)

	var messageCount int64
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(*) FROM outbox_messages").Scan(&messageCount).Error)
	suite.Equal(int64(1), messageCount)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
