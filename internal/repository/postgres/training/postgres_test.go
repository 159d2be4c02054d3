package training

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

	trainingdomain "church-office-go/internal/domain/training"
)

const programID = "99999999-9999-9999-9999-999999999999"

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

func TestListProgramsDecodesCurriculum(t *testing.T) {
	mock, repo := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "term", "curriculum", "created_at"}).
		AddRow(programID, "제5기", `[{"week":1,"content":"구원의 확신"},{"week":2,"content":"기도","note":"과제"}]`, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "training_programs" ORDER BY term desc, created_at desc`).
		WillReturnRows(rows)

	result, err := repo.ListPrograms(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "제5기", result[0].Term)
	require.Len(t, result[0].Curriculum, 2)
	assert.Equal(t, "과제", result[0].Curriculum[1].Note)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProgramInsertsRow(t *testing.T) {
	mock, repo := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "training_programs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateProgram(context.Background(), &trainingdomain.Program{
		ID:         programID,
		Term:       "제5기",
		Curriculum: []trainingdomain.CurriculumWeek{{Week: 1, Content: "말씀"}},
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProgramByIDNotFound(t *testing.T) {
	mock, repo := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "training_programs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetProgramByID(context.Background(), programID)
	assert.ErrorIs(t, err, trainingdomain.ErrProgramNotFound)

	_, err = repo.GetProgramByID(context.Background(), "bogus")
	assert.ErrorIs(t, err, trainingdomain.ErrProgramNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProgram(t *testing.T) {
	mock, repo := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "training_programs" WHERE id = \$1`).
		WithArgs(programID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.DeleteProgram(context.Background(), programID)

	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
