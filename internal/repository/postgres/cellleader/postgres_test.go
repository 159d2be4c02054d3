package cellleader

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	cellleaderdomain "church-office-go/internal/domain/cellleader"
)

const leaderID = "88888888-8888-8888-8888-888888888888"

func setupMockRepo(t *testing.T) (sqlmock.Sqlmock, *PostgresRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return mock, NewPostgres(db)
}

func TestListCellLeadersOrdersNullsLast(t *testing.T) {
	mock, repo := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "district", "cell_name", "created_at", "updated_at"}).
		AddRow(leaderID, "박순장", "1교구", "사랑셀", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "cell_leaders" ORDER BY district asc NULLS LAST, cell_name asc NULLS LAST`).
		WillReturnRows(rows)

	leaders, err := repo.ListCellLeaders(context.Background())

	require.NoError(t, err)
	require.Len(t, leaders, 1)
	assert.Equal(t, "박순장", leaders[0].Name)
	require.NotNil(t, leaders[0].CellName)
	assert.Equal(t, "사랑셀", *leaders[0].CellName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCellLeaderByIDMalformedID(t *testing.T) {
	mock, repo := setupMockRepo(t)

	_, err := repo.GetCellLeaderByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, cellleaderdomain.ErrCellLeaderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCellLeaderByIDNotFound(t *testing.T) {
	mock, repo := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "cell_leaders" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCellLeaderByID(context.Background(), leaderID)

	assert.ErrorIs(t, err, cellleaderdomain.ErrCellLeaderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCellLeaderReportsMissingRow(t *testing.T) {
	mock, repo := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cell_leaders" WHERE id = \$1`).
		WithArgs(leaderID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.DeleteCellLeader(context.Background(), leaderID)

	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
