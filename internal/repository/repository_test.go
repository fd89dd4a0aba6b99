package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flowboard/flowboard-api/internal/database"
	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/repository"
	"github.com/flowboard/flowboard-api/internal/sorting"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	task, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, task)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List_PropagatesError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "tasks"`).
		WillReturnError(errors.New("connection reset"))

	tasks, err := repo.List(context.Background(), nil)

	assert.Nil(t, tasks)
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_QuotesReservedColumn(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUserRepository(gormDB)

	order, err := sorting.Parse("-rank", repository.UserSortFields)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY "rank" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "rank"}).
			AddRow(uuid.NewString(), "gold@example.com", "gold"))

	users, err := repo.List(context.Background(), order)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "gold", users[0].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List_RankExpressionIsRaw(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTaskRepository(gormDB)

	order, err := sorting.Parse("priority", repository.TaskSortFields)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "tasks" ORDER BY CASE priority WHEN 'LOW' THEN 0 .* END$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err = repo.List(context.Background(), order)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_MissingRowIsNotAnError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProjectRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List_Ordered(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewProjectRepository(gormDB)

	order, err := sorting.Parse("-name", repository.ProjectSortFields)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "projects" ORDER BY "name" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.NewString(), "Zeta").
			AddRow(uuid.NewString(), "Alpha"))

	projects, err := repo.List(context.Background(), order)

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Zeta", projects[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "alice@example.com", PasswordHash: "hash", Role: models.RoleUser}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

type filterFixture struct {
	repo     repository.TaskRepository
	alice    uuid.UUID
	bob      uuid.UUID
	projectA uuid.UUID
	projectB uuid.UUID
}

func seedTasks(t *testing.T) filterFixture {
	t.Helper()

	db := setupSQLiteDB(t)
	repo := repository.NewTaskRepository(db)
	f := filterFixture{
		repo:     repo,
		alice:    uuid.New(),
		bob:      uuid.New(),
		projectA: uuid.New(),
		projectB: uuid.New(),
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Task{
		{Title: "a1", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, AssigneeID: &f.alice, ProjectID: &f.projectA},
		{Title: "a2", Status: models.TaskStatusDone, Priority: models.TaskPriorityCritical, AssigneeID: &f.alice, ProjectID: &f.projectB},
		{Title: "a3", Status: models.TaskStatusTodo, Priority: models.TaskPriorityHigh, AssigneeID: &f.alice},
		{Title: "b1", Status: models.TaskStatusTodo, Priority: models.TaskPriorityMedium, AssigneeID: &f.bob, ProjectID: &f.projectA},
		{Title: "p1", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityMedium, ProjectID: &f.projectA},
	}
	for i := range seed {
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	return f
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestTaskRepository_Filter_AssigneeWinsOverProject(t *testing.T) {
	f := seedTasks(t)
	order, _ := sorting.Parse("created_at", repository.TaskSortFields)

	tasks, err := f.repo.Filter(context.Background(), repository.TaskFilter{
		AssigneeID: &f.alice,
		ProjectID:  &f.projectA,
		Order:      order,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, titles(tasks))
}

func TestTaskRepository_Filter_ProjectAndStatus(t *testing.T) {
	f := seedTasks(t)
	status := models.TaskStatusTodo
	order, _ := sorting.Parse("title", repository.TaskSortFields)

	tasks, err := f.repo.Filter(context.Background(), repository.TaskFilter{
		ProjectID: &f.projectA,
		Status:    &status,
		Order:     order,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b1"}, titles(tasks))
}

func TestTaskRepository_Filter_OrderThenLimit(t *testing.T) {
	f := seedTasks(t)
	order, _ := sorting.Parse("-priority", repository.TaskSortFields)

	tasks, err := f.repo.Filter(context.Background(), repository.TaskFilter{
		AssigneeID: &f.alice,
		Order:      order,
		Limit:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3"}, titles(tasks))
}

func TestTaskRepository_Filter_NonPositiveLimitIsUnlimited(t *testing.T) {
	f := seedTasks(t)

	tasks, err := f.repo.Filter(context.Background(), repository.TaskFilter{Limit: -1})

	require.NoError(t, err)
	assert.Len(t, tasks, 5)
}

func TestTaskRepository_DeleteTwice(t *testing.T) {
	f := seedTasks(t)
	ctx := context.Background()

	all, err := f.repo.List(ctx, nil)
	require.NoError(t, err)
	id := all[0].ID

	require.NoError(t, f.repo.Delete(ctx, id))
	require.NoError(t, f.repo.Delete(ctx, id))

	_, err = f.repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestChatMessageRepository_ListByUser_NewestFirst(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := repository.NewChatMessageRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.ChatMessage{
			UserID:    userID,
			Message:   text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: uuid.New(), Message: "other"}))

	messages, err := repo.ListByUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Message)
	assert.Equal(t, "first", messages[2].Message)
}
