package catalogrepo_test

import (
	"context"
	"testing"

	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = catalogrepo.NewGormCatalogRepository(db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetRestaurant() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&catalogrepo.RestaurantDTO{ID: 1, OwnerID: 100, Name: "Bab"}).Error)

	restaurant, err := suite.repository.GetRestaurant(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(kernel.ID(100), restaurant.OwnerID())
	suite.Equal("Bab", restaurant.Name())
	suite.True(restaurant.IsOwnedBy(100))

	_, err = suite.repository.GetRestaurant(ctx, 2)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetDish_RoundTripsOptions() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&catalogrepo.RestaurantDTO{ID: 1, OwnerID: 100, Name: "Bab"}).Error)

	large, err := catalog.NewDishOptionChoice("L", kernel.Some(kernel.Price(200)))
	suite.Require().NoError(err)
	small, err := catalog.NewDishOptionChoice("S", kernel.None[kernel.Price]())
	suite.Require().NoError(err)
	size, err := catalog.NewDishOption("Size", kernel.None[kernel.Price](), []catalog.DishOptionChoice{large, small})
	suite.Require().NoError(err)
	cheese, err := catalog.NewDishOption("Extra cheese", kernel.Some(kernel.Price(150)), nil)
	suite.Require().NoError(err)
	dish, err := catalog.NewDish(3, 1, "Pizza", 1000, []catalog.DishOption{size, cheese})
	suite.Require().NoError(err)

	dto := catalogrepo.DishFromDomain(dish)
	suite.Require().NoError(suite.db.Create(&dto).Error)

	got, err := suite.repository.GetDish(ctx, 3)
	suite.Require().NoError(err)
	suite.Equal(kernel.Price(1000), got.Price())
	suite.Equal(kernel.ID(1), got.RestaurantID())

	options := got.Options()
	suite.Require().Len(options, 2)
	suite.Equal("Size", options[0].Name())
	_, hasExtra := options[0].Extra()
	suite.False(hasExtra)

	choice, ok := options[0].FindChoice("L")
	suite.Require().True(ok)
	extra, ok := choice.Extra()
	suite.True(ok)
	suite.Equal(kernel.Price(200), extra)

	choice, ok = options[0].FindChoice("S")
	suite.Require().True(ok)
	_, ok = choice.Extra()
	suite.False(ok)

	extra, ok = options[1].Extra()
	suite.True(ok)
	suite.Equal(kernel.Price(150), extra)

	_, err = suite.repository.GetDish(ctx, 4)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestInvalidIDIsRejected() {
	_, err := suite.repository.GetDish(context.Background(), 0)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
