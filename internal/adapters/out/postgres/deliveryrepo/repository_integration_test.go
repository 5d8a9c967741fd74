package deliveryrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	orders     *orderrepo.GormOrderRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres.AutoMigrate(db))
	suite.repository = deliveryrepo.NewGormDeliveryRepository(db, noopTracker{})
	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "deliveries", "orders"))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_AndGetByOrderID() {
	ctx := context.Background()
	o := suite.addOrder(order.DeliveryAgentAssigned)
	d := suite.newDelivery(o.ID())

	suite.Require().NoError(suite.repository.Add(ctx, d))

	byOrder, err := suite.repository.GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(byOrder.ID().IsEqual(d.ID()))
	suite.True(byOrder.IsAssignedTo(d.DeliveryPersonID()))
	suite.Equal(order.DeliveryAgentAssigned, byOrder.Status())

	byID, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(byID.AssignedBy().IsEqual(d.AssignedBy()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForOrder_IsConflict() {
	ctx := context.Background()
	o := suite.addOrder(order.DeliveryAgentAssigned)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDelivery(o.ID())))

	err := suite.repository.Add(ctx, suite.newDelivery(o.ID()))

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertDeliveryCount(1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ConcurrentAssignments_OnlyOneWins() {
	ctx := context.Background()
	o := suite.addOrder(order.DeliveryAgentAssigned)

	const attempts = 8
	candidates := make([]*delivery.Delivery, attempts)
	for i := range candidates {
		candidates[i] = suite.newDelivery(o.ID())
	}

	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for _, d := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.Add(ctx, d)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrConflict):
			conflicted++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(attempts-1, conflicted)
	suite.assertDeliveryCount(1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_WritesStatus() {
	ctx := context.Background()
	o := suite.addOrder(order.DeliveryAgentAssigned)
	d := suite.newDelivery(o.ID())
	suite.Require().NoError(suite.repository.Add(ctx, d))

	at := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(d.SyncStatus(order.Delivered, at))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	restored, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, restored.Status())
	suite.True(at.Equal(*restored.UpdatedAt()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_MissingRow_IsInvariantViolation() {
	d := suite.newDelivery(kernel.NewUUID())

	err := suite.repository.Update(context.Background(), d)

	suite.Require().ErrorIs(err, errs.ErrInvariantViolation)
	suite.Contains(err.Error(), "failed to update status in deliveries")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllOutOfSync() {
	ctx := context.Background()

	inSync := suite.addOrder(order.DeliveryAgentAssigned)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDelivery(inSync.ID())))

	canceled := suite.addOrder(order.Canceled)
	diverged := suite.newDelivery(canceled.ID())
	suite.Require().NoError(suite.repository.Add(ctx, diverged))

	result, err := suite.repository.GetAllOutOfSync(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(diverged.ID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) addOrder(status order.Status) *order.Order {
	price, err := kernel.MoneyFromString("12")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Ramen", 1, price)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewUUID(), "001", kernel.NewUUID(), []order.Item{item}, price,
		"1 Main St", status, time.Now().UTC(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(orderID kernel.UUID) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
