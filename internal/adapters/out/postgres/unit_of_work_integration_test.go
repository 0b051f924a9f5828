package postgres_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/attachmentrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/refrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/refs"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that repositories obtained from
// one unit of work share a transaction: the status write and the history
// append commit together or not at all.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&historyrepo.HistoryDTO{},
		&attachmentrepo.AttachmentDTO{},
		&refrepo.ClientDTO{},
		&refrepo.RecipientDTO{},
		&refrepo.CourierDTO{},
		&refrepo.ZoneDTO{},
		&refrepo.ProductDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE parcels, parcel_history, parcel_products, clients, recipients, couriers, zones, products",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"books", 2.5, parcel.PriorityNormal, "Paris", nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsParcelAndHistoryTogether() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), testParcel.ID(), parcel.StatusCreated,
		time.Now().UTC(), "parcel created", "system",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	loaded, err := verifyUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), loaded.ID())

	entries, err := verifyUow.HistoryRepository().GetByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(parcel.StatusCreated, entries[0].Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	testParcel := suite.createTestParcel()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), testParcel.ID(), parcel.StatusCreated,
		time.Now().UTC(), "parcel created", "system",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err = verifyUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	entries, err := verifyUow.HistoryRepository().GetByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReferenceRepository_DuplicateEmail() {
	ctx := context.Background()

	first, err := refs.NewClient(
		kernel.NewUUID(), "Alice Martin", "alice@example.com", "+33100000001", "1 rue de la Paix",
	)
	suite.Require().NoError(err)
	second, err := refs.NewClient(
		kernel.NewUUID(), "Alice Clone", "alice@example.com", "+33100000009", "9 rue des Clones",
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ReferenceRepository().AddClient(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.ReferenceRepository().AddClient(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrDuplicateValue)
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
