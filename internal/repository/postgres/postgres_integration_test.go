package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"casa-do-pai/config"
	"casa-do-pai/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	groups, err := repo.Groups(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	groupID := groups[0].ID

	exists, err := repo.GroupExists(ctx, groupID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.GroupExists(ctx, 99999)
	require.NoError(t, err)
	require.False(t, exists)

	anaID, err := repo.CreateMember(ctx, entities.NewMember{
		FullName: "Ana", Email: "ana@x.com", Password: "$2a$10$hash-ana",
		Role: entities.RoleCommon, GroupID: &groupID, InGroup: true,
	})
	require.NoError(t, err)
	require.Positive(t, anaID)

	_, err = repo.CreateMember(ctx, entities.NewMember{
		FullName: "Ana Clone", Email: "ana@x.com", Password: "$2a$10$other",
		Role: entities.RoleCommon,
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)

	bobID, err := repo.CreateMember(ctx, entities.NewMember{
		FullName: "Bob", Email: "bob@x.com", Password: "$2a$10$hash-bob",
		Role: entities.RoleCommon,
	})
	require.NoError(t, err)

	byEmail, err := repo.MemberByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, anaID, byEmail.ID)
	require.Equal(t, "$2a$10$hash-ana", byEmail.PasswordHash)

	_, err = repo.MemberByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	// Bob has no group yet; promoting him must fail and persist nothing.
	require.ErrorIs(t, repo.PromoteMember(ctx, bobID), entities.ErrNoGroupAssigned)

	bob, err := repo.MemberByID(ctx, bobID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleCommon, bob.Role)

	require.NoError(t, repo.PromoteMember(ctx, anaID))
	require.ErrorIs(t, repo.PromoteMember(ctx, anaID), entities.ErrAlreadyLeader)

	ana, err := repo.MemberByID(ctx, anaID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleLeader, ana.Role)
	require.NotNil(t, ana.GroupName)
	require.NotNil(t, ana.LeaderName)
	require.Equal(t, "Ana", *ana.LeaderName)

	// Group listing filters out leaders; Ana alone in the group yields no rows.
	_, err = repo.GroupMembers(ctx, groupID)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	phone := "11999990000"
	require.NoError(t, repo.UpdateMember(ctx, bobID, entities.MemberUpdate{
		Phone:   &phone,
		GroupID: &groupID,
	}))

	members, err := repo.GroupMembers(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, bobID, members[0].ID)
	require.Equal(t, phone, members[0].Phone)

	all, err := repo.Members(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.ErrorIs(t, repo.UpdateMember(ctx, 99999, entities.MemberUpdate{Phone: &phone}), entities.ErrMemberNotFound)

	require.NoError(t, repo.DemoteMember(ctx, anaID))
	require.ErrorIs(t, repo.DemoteMember(ctx, anaID), entities.ErrLeaderNotFound)

	ana, err = repo.MemberByID(ctx, anaID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleCommon, ana.Role)
	require.Nil(t, ana.LeaderName)

	require.NoError(t, repo.SetRecoveryToken(ctx, "ana@x.com", "0123456789abcdef0123456789abcdef", time.Now().Add(time.Hour)))
	require.ErrorIs(t, repo.SetRecoveryToken(ctx, "nobody@x.com", "t", time.Now()), entities.ErrEmailNotRegistered)

	require.NoError(t, repo.DeleteMember(ctx, anaID))
	require.ErrorIs(t, repo.DeleteMember(ctx, anaID), entities.ErrMemberNotFound)

	_, err = repo.MemberByID(ctx, anaID)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
}

func TestRepositoryDeleteCascadeIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	groups, err := repo.Groups(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	groupID := groups[0].ID

	id, err := repo.CreateMember(ctx, entities.NewMember{
		FullName: "Carla", Email: "carla@x.com", Password: "$2a$10$hash-carla",
		Role: entities.RoleCommon, GroupID: &groupID, InGroup: true,
	})
	require.NoError(t, err)
	require.NoError(t, repo.PromoteMember(ctx, id))

	// Seed the join tables referencing the member directly.
	sqlDB, err := sql.Open("postgres", cfg.Postgres.DSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = sqlDB.ExecContext(ctx, "INSERT INTO usuarios_celulas (id_usuario, id_celula) VALUES ($1, $2)", id, groupID)
	require.NoError(t, err)
	_, err = sqlDB.ExecContext(ctx, "INSERT INTO usuarios_ministerios (id_usuario, nome_ministerio) VALUES ($1, 'Louvor')", id)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteMember(ctx, id))

	for _, q := range []string{
		"SELECT COUNT(*) FROM usuarios WHERE id = $1",
		"SELECT COUNT(*) FROM usuarios_celulas WHERE id_usuario = $1",
		"SELECT COUNT(*) FROM usuarios_ministerios WHERE id_usuario = $1",
		"SELECT COUNT(*) FROM lideres_celulas WHERE id_lider = $1",
	} {
		var count int
		require.NoError(t, sqlDB.QueryRowContext(ctx, q, id).Scan(&count))
		require.Zero(t, count, q)
	}
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=casa_do_pai_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "casa_do_pai_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			PingInterval:   time.Minute,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=casa_do_pai_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
