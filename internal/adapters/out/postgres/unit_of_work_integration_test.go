package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "farmmarket/internal/adapters/out/postgres"
	"farmmarket/internal/adapters/out/postgres/driverrepo"
	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/adapters/out/postgres/pickuprepo"
	"farmmarket/internal/adapters/out/postgres/productrepo"
	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work against
// a real PostgreSQL instance, covering transaction boundaries and the
// cross-repository flows the fulfillment commands rely on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects, and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&pickuprepo.PickupDTO{},
		&driverrepo.DriverDTO{},
		&productrepo.ProductDTO{},
		&productrepo.ProductCategoryDTO{},
		&productrepo.ProductProductionAreaDTO{},
		&productrepo.FeedbackDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests cannot interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_line_items, pickups, drivers, products, product_categories, product_production_areas, feedback",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PickupRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.ProductRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// A second Begin on the same instance must not open a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Commit without an active transaction should fail")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Rollback without an active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Len(retrieved.Items(), 2)
	suite.InDelta(testOrder.Total(), retrieved.Total(), 0.001)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	testDriver := createTestDriver(suite.T(), 501)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Visible inside the transaction.
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.DriverRepository().Get(ctx, testDriver.UserID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PickupPerOrderUniqueness() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	orderID := testOrder.ID()
	first, err := pickup.NewPickup(kernel.NewUUID(), &orderID, "market stall 4", "", time.Time{})
	suite.Require().NoError(err)
	err = uow.PickupRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := pickup.NewPickup(kernel.NewUUID(), &orderID, "market stall 5", "", time.Time{})
	suite.Require().NoError(err)
	err = uow.PickupRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict, "Second pickup for the same order should conflict")

	// Standalone pickups carry no order reference and never conflict.
	standalone1, err := pickup.NewPickup(kernel.NewUUID(), nil, "north gate", "", time.Time{})
	suite.Require().NoError(err)
	standalone2, err := pickup.NewPickup(kernel.NewUUID(), nil, "south gate", "", time.Time{})
	suite.Require().NoError(err)

	suite.Require().NoError(uow.PickupRepository().Add(ctx, standalone1))
	suite.Require().NoError(uow.PickupRepository().Add(ctx, standalone2))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PickupAssignmentRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T(), 77)
	suite.Require().NoError(testDriver.SetAvailability(driver.Available))
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	testPickup, err := pickup.NewPickup(kernel.NewUUID(), nil, "west entrance", "ring bell", time.Time{})
	suite.Require().NoError(err)
	err = uow.PickupRepository().Add(ctx, testPickup)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.DriverRepository().GetForUpdate(ctx, testDriver.UserID())
	suite.Require().NoError(err)
	suite.True(locked.IsAvailable())

	err = testPickup.AssignDriver(locked.UserID())
	suite.Require().NoError(err)
	err = uow.PickupRepository().Update(ctx, testPickup)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().PickupRepository().Get(ctx, testPickup.ID())
	suite.Require().NoError(err)
	suite.Equal(pickup.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.AssignedTo())
	suite.True(retrieved.AssignedTo().IsEqual(testDriver.UserID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentDriverClaim() {
	ctx := context.Background()

	testDriver := createTestDriver(suite.T(), 91)
	suite.Require().NoError(testDriver.SetAvailability(driver.Available))
	suite.Require().NoError(suite.factory.Create().DriverRepository().Add(ctx, testDriver))

	pickups := make([]*pickup.Pickup, 2)
	for i := range pickups {
		p, err := pickup.NewPickup(kernel.NewUUID(), nil, "east gate", "", time.Time{})
		suite.Require().NoError(err)
		suite.Require().NoError(suite.factory.Create().PickupRepository().Add(ctx, p))
		pickups[i] = p
	}

	// Both claims lock the driver row FOR UPDATE and the winner takes the
	// driver off the market before committing. The blocked rival re-reads
	// the row after the lock is released and must see a busy driver.
	results := make(chan error, len(pickups))
	var wg sync.WaitGroup
	for _, p := range pickups {
		wg.Add(1)
		go func(p *pickup.Pickup) {
			defer wg.Done()
			results <- claimDriver(ctx, suite.factory, p, testDriver.UserID())
		}(p)
	}
	wg.Wait()
	close(results)

	var claimed, rejected int
	for err := range results {
		switch {
		case err == nil:
			claimed++
		case errors.Is(err, errs.ErrConflict):
			rejected++
		default:
			suite.Require().NoError(err)
		}
	}
	suite.Equal(1, claimed, "Exactly one claim should win the driver")
	suite.Equal(1, rejected, "The losing claim should see a conflict")

	newUow := suite.factory.Create()

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.UserID())
	suite.Require().NoError(err)
	suite.Equal(driver.Busy, retrievedDriver.Availability())

	var assignedCount int
	for _, p := range pickups {
		retrieved, err := newUow.PickupRepository().Get(ctx, p.ID())
		suite.Require().NoError(err)
		if retrieved.AssignedTo() != nil {
			suite.Equal(pickup.Assigned, retrieved.Status())
			suite.True(retrieved.AssignedTo().IsEqual(testDriver.UserID()))
			assignedCount++
		} else {
			suite.Equal(pickup.Pending, retrieved.Status())
		}
	}
	suite.Equal(1, assignedCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StockDecrementGuard() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(suite.T(), 3)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.ProductRepository().DecrementStock(ctx, testProduct.ID(), 2)
	suite.Require().NoError(err)

	// Only one unit left; asking for two must fail and leave stock untouched.
	err = uow.ProductRepository().DecrementStock(ctx, testProduct.ID(), 2)
	suite.Require().ErrorIs(err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(2, stockErr.Requested)
	suite.Equal(1, stockErr.Available)

	retrieved, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.Stock())

	err = uow.ProductRepository().RestoreStock(ctx, testProduct.ID(), 2)
	suite.Require().NoError(err)

	retrieved, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(3, retrieved.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentLastUnitDecrement() {
	ctx := context.Background()

	testProduct := createTestProduct(suite.T(), 1)
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(ctx, testProduct))

	// Two buyers race for the last unit. The guarded UPDATE serializes them
	// on the product row; the second sees zero rows affected and fails.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- decrementInTransaction(ctx, suite.factory, testProduct.ID())
		}()
	}
	wg.Wait()
	close(results)

	var sold, exhausted int
	for err := range results {
		switch {
		case err == nil:
			sold++
		case errors.Is(err, errs.ErrInsufficientStock):
			exhausted++
		default:
			suite.Require().NoError(err)
		}
	}
	suite.Equal(1, sold, "Exactly one buyer should get the last unit")
	suite.Equal(1, exhausted, "The other buyer should run out of stock")

	retrieved, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ProductDeletionFlow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct(suite.T(), 10)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder := createTestOrderForProduct(suite.T(), testProduct)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	productID := testProduct.ID().Bytes()
	feedback := productrepo.FeedbackDTO{
		ID:         kernel.NewUUID().Bytes(),
		ProductID:  &productID,
		ConsumerID: 9,
		Rating:     5,
		Comment:    "fresh",
		CreatedAt:  time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&feedback).Error)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	nullified, err := uow.OrderRepository().NullifyProductReferences(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), nullified)

	err = uow.ProductRepository().Delete(ctx, testProduct.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The order survives with its total intact; only the reference is gone.
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.InDelta(testOrder.Total(), retrievedOrder.Total(), 0.001)
	for _, item := range retrievedOrder.Items() {
		suite.Nil(item.ProductID())
	}

	// Feedback stays behind with a nullified reference.
	var storedFeedback productrepo.FeedbackDTO
	suite.Require().NoError(suite.db.First(&storedFeedback, "id = ?", feedback.ID).Error)
	suite.Nil(storedFeedback.ProductID)

	var mappingCount int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductCategoryDTO{}).
		Where("product_id = ?", productID).Count(&mappingCount).Error)
	suite.Zero(mappingCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DriverCompletionPersistence() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T(), 88)
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	rating := 4.0
	suite.Require().NoError(testDriver.RecordCompletion(&rating))
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().DriverRepository().Get(ctx, testDriver.UserID())
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.CompletedPickups())
	suite.InDelta(4.0, retrieved.Rating(), 0.001)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(suite.T())
	order2 := createTestOrder(suite.T())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// claimDriver runs one competing claim in its own transaction: lock the
// driver row, verify availability, mark the driver busy and attach the pickup.
func claimDriver(ctx context.Context, factory ports.UnitOfWorkFactory, p *pickup.Pickup, driverID kernel.UserID) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locked, err := uow.DriverRepository().GetForUpdate(ctx, driverID)
	if err != nil {
		return err
	}

	if !locked.IsAvailable() {
		return errs.NewConflictError("driver is no longer available")
	}

	if err = locked.SetAvailability(driver.Busy); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, locked); err != nil {
		return err
	}

	if err = p.AssignDriver(locked.UserID()); err != nil {
		return err
	}
	if err = uow.PickupRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// decrementInTransaction buys one unit within its own transaction.
func decrementInTransaction(ctx context.Context, factory ports.UnitOfWorkFactory, productID kernel.UUID) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().DecrementStock(ctx, productID, 1); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// createTestOrder builds a pending two-line order.
func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	consumerID, err := kernel.NewUserID(42)
	if err != nil {
		t.Fatal(err)
	}

	price1, err := kernel.NewMoney(3.50)
	if err != nil {
		t.Fatal(err)
	}
	price2, err := kernel.NewMoney(12.00)
	if err != nil {
		t.Fatal(err)
	}

	item1, err := order.NewLineItem(kernel.NewUUID(), 2, price1)
	if err != nil {
		t.Fatal(err)
	}
	item2, err := order.NewLineItem(kernel.NewUUID(), 1, price2)
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), consumerID, "stall 12, ask for Maren", []order.LineItem{item1, item2})
	if err != nil {
		t.Fatal(err)
	}
	return testOrder
}

// createTestOrderForProduct builds an order whose single line references the
// given product.
func createTestOrderForProduct(t *testing.T, p *product.Product) *order.Order {
	t.Helper()

	consumerID, err := kernel.NewUserID(42)
	if err != nil {
		t.Fatal(err)
	}

	item, err := order.NewLineItem(p.ID(), 2, p.Price())
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), consumerID, "", []order.LineItem{item})
	if err != nil {
		t.Fatal(err)
	}
	return testOrder
}

// createTestDriver registers a driver for the given user identity.
func createTestDriver(t *testing.T, userID int64) *driver.Driver {
	t.Helper()

	id, err := kernel.NewUserID(userID)
	if err != nil {
		t.Fatal(err)
	}

	testDriver, err := driver.NewDriver(id, "van", 200)
	if err != nil {
		t.Fatal(err)
	}
	return testDriver
}

// createTestProduct builds an approved product with the given stock.
func createTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()

	farmerID, err := kernel.NewUserID(7)
	if err != nil {
		t.Fatal(err)
	}

	price, err := kernel.NewMoney(4.25)
	if err != nil {
		t.Fatal(err)
	}

	testProduct, err := product.NewProduct(
		kernel.NewUUID(), farmerID, price, stock, "kg", "",
		[]kernel.UUID{kernel.NewUUID()},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := testProduct.SetStatus(product.StatusApproved); err != nil {
		t.Fatal(err)
	}
	return testProduct
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
