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

type SearchParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.SearchParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
}

func (suite *SearchParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewSearchParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *SearchParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SearchParcelsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
}

func (suite *SearchParcelsQueryHandlerTestSuite) addParcel(description, city string) *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		description, 1.0, parcel.PriorityNormal, city, nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *SearchParcelsQueryHandlerTestSuite) search(keyword string) []queries.ParcelResponse {
	query, err := queries.NewSearchParcelsQuery(keyword, 0, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *SearchParcelsQueryHandlerTestSuite) TestHandle_MatchesDescription() {
	match := suite.addParcel("Fragile glassware", "Paris")
	suite.addParcel("Steel pipes", "Paris")

	result := suite.search("glass")

	suite.Require().Len(result, 1)
	suite.Equal(match.ID(), result[0].ID)
}

func (suite *SearchParcelsQueryHandlerTestSuite) TestHandle_MatchesDestinationCity() {
	match := suite.addParcel("Steel pipes", "Strasbourg")
	suite.addParcel("Steel pipes", "Paris")

	result := suite.search("strasb")

	suite.Require().Len(result, 1)
	suite.Equal(match.ID(), result[0].ID)
}

func (suite *SearchParcelsQueryHandlerTestSuite) TestHandle_CaseInsensitive() {
	match := suite.addParcel("FRAGILE glassware", "Paris")

	result := suite.search("fragile")

	suite.Require().Len(result, 1)
	suite.Equal(match.ID(), result[0].ID)
}

func (suite *SearchParcelsQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.addParcel("Steel pipes", "Paris")

	result := suite.search("unicorn")

	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.SearchParcelsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrSearchParcelsQueryIsNotConstructed)
}

func TestSearchParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchParcelsQueryHandlerTestSuite))
}
