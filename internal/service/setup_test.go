package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Seba01D/pm-app/internal/accesscode"
	"github.com/Seba01D/pm-app/internal/auth"
	"github.com/Seba01D/pm-app/internal/model"
	"github.com/Seba01D/pm-app/internal/repository"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	db         *gorm.DB
	issuer     *auth.TokenIssuer
	users      *repository.UserRepository
	projects   *service.ProjectService
	membership *service.MembershipService
	tiles      *service.TileService
	tasks      *service.TaskService
	settings   *service.SettingsService
	accounts   *service.AccountService
}

// newEnv wires the services over a private in-memory store.
func newEnv(t *testing.T, generate accesscode.Generator, retries int) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Membership{},
		&model.Tile{},
		&model.Priority{},
		&model.Task{},
		&model.UserSettings{},
	))
	require.NoError(t, db.Create(&[]model.Priority{
		{ID: 1, Name: "Low", Color: "#22c55e"},
		{ID: 2, Name: "Medium", Color: "#eab308"},
		{ID: 3, Name: "High", Color: "#ef4444"},
	}).Error)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	issuer := auth.NewTokenIssuer("test-secret", 1)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	tileRepo := repository.NewTileRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &env{
		db:         db,
		issuer:     issuer,
		users:      userRepo,
		projects:   service.NewProjectService(projectRepo, memberRepo, generate, retries, log),
		membership: service.NewMembershipService(auth.NewJWTIdentityProvider(issuer, userRepo), projectRepo, memberRepo, log),
		tiles:      service.NewTileService(tileRepo, projectRepo, log),
		tasks:      service.NewTaskService(taskRepo, tileRepo, repository.NewPriorityRepository(db), log),
		settings:   service.NewSettingsService(repository.NewSettingsRepository(db), log),
		accounts:   service.NewAccountService(userRepo, issuer),
	}
}

// user stores a user and returns its id with a valid session token.
func (e *env) user(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	u := &model.User{Email: email, Name: email, HashedPassword: "x"}
	require.NoError(t, e.users.Create(context.Background(), u))
	token, err := e.issuer.GenerateToken(u.ID)
	require.NoError(t, err)
	return u.ID, token
}

func (e *env) count(t *testing.T, m interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

// sequence yields codes in order, repeating the last one.
func sequence(codes ...string) accesscode.Generator {
	i := 0
	return func() string {
		code := codes[i]
		if i < len(codes)-1 {
			i++
		}
		return code
	}
}
