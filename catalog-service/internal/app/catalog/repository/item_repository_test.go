package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ItemRepositoryTestSuite тестовый suite для gorm-репозитория товаров
type ItemRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  ItemRepository
	sqlDB *sql.DB
}

func TestItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}

func (s *ItemRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewItemRepository(s.db)
}

func (s *ItemRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *ItemRepositoryTestSuite) TestExistsBySlug_ExcludesSelf() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "items" WHERE slug = \$1 AND id <> \$2`).
		WithArgs("gaming-laptop", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := s.repo.ExistsBySlug(ctx, "gaming-laptop", 5)

	s.NoError(err)
	s.False(exists)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ItemRepositoryTestSuite) TestGetBySlug_NotFound() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT \* FROM "items" WHERE slug = \$1`).
		WithArgs("missing-slug", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	item, err := s.repo.GetBySlug(ctx, "missing-slug")

	s.ErrorIs(err, ErrNotFound)
	s.Nil(item)
}

func (s *ItemRepositoryTestSuite) TestListBelowRestock_FiltersOnReorder() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT \* FROM "items" WHERE restock_threshold > 0 AND available_stock < restock_threshold AND on_reorder = \$1`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "available_stock", "restock_threshold"}).
			AddRow(5, "gaming-laptop", 1, 3))

	items, err := s.repo.ListBelowRestock(ctx)

	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal(5, items[0].ID)
	s.Equal(1, items[0].AvailableStock)
}

func (s *ItemRepositoryTestSuite) TestSetOnReorder_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(`UPDATE "items" SET "on_reorder"=\$1 WHERE id = \$2`).
		WithArgs(true, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repo.SetOnReorder(ctx, 99, true)

	s.ErrorIs(err, ErrNotFound)
}

func (s *ItemRepositoryTestSuite) TestDelete_RemovesCategoryLinksFirst() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(`DELETE FROM item_categories WHERE item_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	s.mock.ExpectExec(`DELETE FROM "items" WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repo.Delete(ctx, 5)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}
