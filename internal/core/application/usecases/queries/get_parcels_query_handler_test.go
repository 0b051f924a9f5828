package queries_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository tracker without recording
// anything. Query tests only need repositories for seeding.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

type GetParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))

	suite.handler = queries.NewGetParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *GetParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
}

func (suite *GetParcelsQueryHandlerTestSuite) addParcel(description string, createdAt time.Time) *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		description, 1.0, parcel.PriorityNormal, "Paris", nil, createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetParcelsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_OrdersByCreationTime() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	third := suite.addParcel("third", base.Add(2*time.Minute))
	first := suite.addParcel("first", base)
	second := suite.addParcel("second", base.Add(time.Minute))

	query, err := queries.NewGetParcelsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(third.ID(), result[2].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_Paging() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 5; i++ {
		suite.addParcel("parcel", base.Add(time.Duration(i)*time.Minute))
	}

	firstPage, err := queries.NewGetParcelsQuery(0, 2)
	suite.Require().NoError(err)
	secondPage, err := queries.NewGetParcelsQuery(1, 2)
	suite.Require().NoError(err)
	lastPage, err := queries.NewGetParcelsQuery(2, 2)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	suite.Len(first, 2)

	second, err := suite.handler.Handle(context.Background(), secondPage)
	suite.Require().NoError(err)
	suite.Len(second, 2)

	last, err := suite.handler.Handle(context.Background(), lastPage)
	suite.Require().NoError(err)
	suite.Len(last, 1)

	suite.NotEqual(first[0].ID, second[0].ID)
	suite.NotEqual(second[0].ID, last[0].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_MapsAllColumns() {
	deadline := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Microsecond)
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"glassware", 3.75, parcel.PriorityExpress, "Marseille", &deadline,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))

	query, err := queries.NewGetParcelsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	resp := result[0]
	suite.Equal(p.ID(), resp.ID)
	suite.Equal("glassware", resp.Description)
	suite.InEpsilon(3.75, resp.Weight, 1e-9)
	suite.Equal(parcel.PriorityExpress.String(), resp.Priority)
	suite.Equal(parcel.StatusCreated.String(), resp.Status)
	suite.Equal("Marseille", resp.DestinationCity)
	suite.Require().NotNil(resp.DeliveryDeadline)
	suite.True(deadline.Equal(*resp.DeliveryDeadline))
	suite.Equal(p.Client(), resp.ClientID)
	suite.Equal(p.Recipient(), resp.RecipientID)
	suite.Nil(resp.CourierID)
	suite.Nil(resp.ZoneID)
	suite.Nil(resp.CollectedAt)
	suite.Nil(resp.DeliveredAt)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetParcelsQueryIsNotConstructed)
}

func TestGetParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelsQueryHandlerTestSuite))
}
