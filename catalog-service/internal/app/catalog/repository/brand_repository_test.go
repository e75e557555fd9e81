package repository

import (
	"context"
	"database/sql"
	"testing"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/paging"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BrandRepositoryTestSuite тестовый suite для gorm-репозитория брендов
type BrandRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  BrandRepository
	sqlDB *sql.DB
}

func TestBrandRepositorySuite(t *testing.T) {
	suite.Run(t, new(BrandRepositoryTestSuite))
}

func (s *BrandRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewBrandRepository(s.db)
}

func (s *BrandRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *BrandRepositoryTestSuite) TestGetByID_Success() {
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Acme")
	s.mock.ExpectQuery(`SELECT \* FROM "brands" WHERE id = \$1`).
		WithArgs(7, 1).
		WillReturnRows(rows)

	brand, err := s.repo.GetByID(ctx, 7)

	s.NoError(err)
	s.NotNil(brand)
	s.Equal(7, brand.ID)
	s.Equal("Acme", brand.Name)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BrandRepositoryTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT \* FROM "brands" WHERE id = \$1`).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	brand, err := s.repo.GetByID(ctx, 99)

	s.ErrorIs(err, ErrNotFound)
	s.Nil(brand)
}

func (s *BrandRepositoryTestSuite) TestCreate_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO "brands"`).
		WithArgs("Acme").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	s.mock.ExpectCommit()

	brand := entity.Brand{Name: "Acme"}
	err := s.repo.Create(ctx, &brand)

	s.NoError(err)
	s.Equal(7, brand.ID)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BrandRepositoryTestSuite) TestCreate_UniqueViolation_ReturnsErrDuplicate() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO "brands"`).
		WithArgs("Acme").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	s.mock.ExpectRollback()

	brand := entity.Brand{Name: "Acme"}
	err := s.repo.Create(ctx, &brand)

	s.ErrorIs(err, ErrDuplicate)
}

func (s *BrandRepositoryTestSuite) TestExistsByName() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "brands" WHERE name = \$1 AND id <> \$2`).
		WithArgs("Acme", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := s.repo.ExistsByName(ctx, "Acme", 0)

	s.NoError(err)
	s.True(exists)
}

func (s *BrandRepositoryTestSuite) TestDelete_NoRows_ReturnsErrNotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(`DELETE FROM "brands" WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repo.Delete(ctx, 99)

	s.ErrorIs(err, ErrNotFound)
}

func (s *BrandRepositoryTestSuite) TestDelete_ForeignKeyViolation_ReturnsErrReferenced() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(`DELETE FROM "brands" WHERE id = \$1`).
		WithArgs(7).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	s.mock.ExpectRollback()

	err := s.repo.Delete(ctx, 7)

	s.ErrorIs(err, ErrReferenced)
}

func (s *BrandRepositoryTestSuite) TestList_CountsBeforePaging() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "brands"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	s.mock.ExpectQuery(`SELECT \* FROM "brands" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Acme").AddRow(2, "Borealis"))

	brands, total, err := s.repo.List(ctx, BrandFilter{}, paging.Options{Page: 1, PageSize: 2, SortBy: "name"})

	s.NoError(err)
	s.Equal(int64(42), total)
	s.Len(brands, 2)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BrandRepositoryTestSuite) TestListAll_OrdersByID() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT \* FROM "brands" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Acme").AddRow(2, "Zenith"))

	brands, err := s.repo.ListAll(ctx)

	s.NoError(err)
	s.Len(brands, 2)
}

func (s *BrandRepositoryTestSuite) TestCountItems() {
	ctx := context.Background()

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "items" WHERE brand_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.repo.CountItems(ctx, 7)

	s.NoError(err)
	s.Equal(int64(3), count)
}
