package components

import (
	"tablebook/internal/infra/feed"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/writerepo"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read-side store serves both the list/get views and the overlap probe
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
			fx.As(new(queries.ConflictReader)),
		),
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Stream handler needs the concrete feed for subscriptions,
		// commands only need the publisher side
		fx.Annotate(
			NewChangeFeed,
			fx.As(fx.Self()),
			fx.As(new(commands.ChangeFeedPublisher)),
		),
	),
)

func NewChangeFeed(client *redis.Client, cfg config.Config) *feed.RedisChangeFeed {
	return feed.NewRedisChangeFeed(client, cfg.Redis.Channel)
}
