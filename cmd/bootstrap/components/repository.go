package components

import (
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/infra/readstore"
	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/infra/uow"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/queries"
	"voucher-seckill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		clock.NewRealClock,
		uow.NewPostgresUoW,
	),
	readstoreModule,
	snapshotModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Voucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherReadQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
	),
)

var snapshotModule = fx.Module("repository/snapshot",
	fx.Provide(
		fx.Annotate(
			NewIDGenerator,
			fx.As(new(shared.IDGenerator)),
		),
		fx.Annotate(
			NewAdmissionStore,
			fx.As(new(shared.AdmissionStore)),
		),
		fx.Annotate(
			NewLocker,
			fx.As(new(shared.Locker)),
		),
		fx.Annotate(
			NewStreamQueue,
			fx.As(new(shared.OrderQueue)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewIDGenerator(rdb *redis.Client, clk clock.Clock, cfg config.Config) *redisstore.IDGenerator {
	return redisstore.NewIDGenerator(rdb, clk, cfg.Seckill.IDEpoch)
}

func NewAdmissionStore(rdb *redis.Client, cfg config.Config) *redisstore.AdmissionStore {
	return redisstore.NewAdmissionStore(rdb, cfg.Seckill.StreamKey)
}

// NewLocker tags every lock token with a per-process instance id.
func NewLocker(rdb *redis.Client, cfg config.Config) *redisstore.Locker {
	return redisstore.NewLocker(rdb, uuid.NewString(), cfg.Seckill.LockTTL)
}

func NewStreamQueue(rdb *redis.Client, cfg config.Config) *redisstore.StreamQueue {
	return redisstore.NewStreamQueue(rdb, cfg.Seckill)
}
