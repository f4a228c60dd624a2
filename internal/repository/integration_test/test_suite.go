package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"logistics/internal/pkg/config"
	pgpool "logistics/internal/pkg/postgres"
	"logistics/migrations"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

const postgresImage = "postgres:16-alpine"

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		// godotenv.Load(.env.test) не вызываем, переменные подгружает Makefile.
		// Без POSTGRES_HOST поднимаем одноразовый контейнер, его убирает reaper testcontainers.
		dbCfg := config.LoadDatabase()
		dsn := pgpool.DSN(&dbCfg)
		if dbCfg.Host == "" {
			dsn = startContainer(ctx)
		}

		connPool, err := pgpool.NewConnPoolFromDSN(ctx, zapLogger, dsn)
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}

		if err := migrations.Up(ctx, connPool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetTxManager возвращает менеджер транзакций поверх того же пула, что и GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return tx.New(poolInstance)
}

func startContainer(ctx context.Context) string {
	pgContainer, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase("logistics_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after conn string error: %v", termErr)
		}
		log.Fatalf("failed to get connection string from container: %v", err)
	}

	return connStr
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE orders, recipients, deliverymen RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
