package queries_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetParcelHistoryQueryHandler
	parcelRepo  *parcelrepo.GormParcelRepository
	historyRepo *historyrepo.GormHistoryRepository
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &historyrepo.HistoryDTO{}))

	suite.handler = queries.NewGetParcelHistoryQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
	suite.historyRepo = historyrepo.NewGormHistoryRepository(db)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, parcel_history").Error)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) addParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"trail parcel", 1.0, parcel.PriorityNormal, "Paris", nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) addEntry(
	parcelID kernel.UUID, status parcel.Status, changedAt time.Time, comment string,
) *parcel.HistoryEntry {
	entry, err := parcel.NewHistoryEntry(
		kernel.NewUUID(), parcelID, status, changedAt, comment, "system",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.historyRepo.Add(context.Background(), entry))
	return entry
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_NewestFirst() {
	p := suite.addParcel()
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.addEntry(p.ID(), parcel.StatusCreated, base, "parcel created")
	suite.addEntry(p.ID(), parcel.StatusCollected, base.Add(time.Hour), "picked up")
	suite.addEntry(p.ID(), parcel.StatusInTransit, base.Add(2*time.Hour), "on the road")

	query, err := queries.NewGetParcelHistoryQuery(p.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(parcel.StatusInTransit.String(), result[0].Status)
	suite.Equal(parcel.StatusCollected.String(), result[1].Status)
	suite.Equal(parcel.StatusCreated.String(), result[2].Status)
	suite.Equal("on the road", result[0].Comment)
	suite.Equal("system", result[0].ChangedBy)
	suite.Equal(p.ID(), result[0].ParcelID)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_ParcelWithoutHistory_ReturnsEmptySlice() {
	p := suite.addParcel()

	query, err := queries.NewGetParcelHistoryQuery(p.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_UnknownParcel_ReturnsNotFound() {
	query, err := queries.NewGetParcelHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_OnlyRequestedParcelEntries() {
	p := suite.addParcel()
	other := suite.addParcel()
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.addEntry(p.ID(), parcel.StatusCreated, base, "parcel created")
	suite.addEntry(other.ID(), parcel.StatusCreated, base, "parcel created")

	query, err := queries.NewGetParcelHistoryQuery(p.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(p.ID(), result[0].ParcelID)
}

func (suite *GetParcelHistoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetParcelHistoryQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetParcelHistoryQueryIsNotConstructed)
}

func TestGetParcelHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelHistoryQueryHandlerTestSuite))
}
