package routes

import (
	"context"
	"errors"

	"workorder_engine/internal/adapter/persistence/repository"
	"workorder_engine/internal/config"
	"workorder_engine/internal/infrastructure/database"
	"workorder_engine/internal/infrastructure/lock"
	"workorder_engine/internal/infrastructure/notification"
	"workorder_engine/internal/infrastructure/storage"
	"workorder_engine/internal/usecase"
	"workorder_engine/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type dependencies struct {
	workOrders usecase.IWorkOrderUseCase
	closers    []func() error
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

// buildDependencies wires the adapters selected by the configured drivers.
func buildDependencies(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*dependencies, error) {
	deps := &dependencies{}

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dispatcher, err := newDispatcher(ctx, cfg, log, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}
	blobs, err := newBlobStore(ctx, cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	opts := []usecase.Option{usecase.WithLogger(log)}
	if cfg.Lock.Enabled {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, rdb.Close)
		opts = append(opts, usecase.WithLocker(lock.NewRedisLocker(rdb, cfg.Lock.TTL)))
	}

	deps.workOrders = usecase.NewWorkOrderUseCase(repo, dispatcher, blobs, usecase.WorkOrderUseCaseConfig{
		StoreTimeout:           cfg.Store.Timeout,
		NotificationTimeout:    cfg.Notification.Timeout,
		Recipients:             cfg.Notification.Recipients,
		NotifyOnReopen:         cfg.Audit.NotifyOnReopen,
		LedgerOnPriorityChange: cfg.Audit.LedgerOnPriorityChange,
	}, opts...)
	return deps, nil
}

func newRepository(ctx context.Context, cfg config.Config) (interfaces.IWorkOrderRepository, error) {
	switch cfg.Store.Driver {
	case "memory":
		return repository.NewWorkOrderMemoryRepository(), nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return repository.NewWorkOrderDynamoRepository(ddb, cfg.DynamoDB.Table), nil
	default:
		return nil, errors.New("unsupported store driver: " + cfg.Store.Driver)
	}
}

func newDispatcher(ctx context.Context, cfg config.Config, log logrus.FieldLogger, deps *dependencies) (interfaces.INotificationDispatcher, error) {
	if cfg.Notification.Driver != "pubsub" {
		return notification.NewLogDispatcher(log), nil
	}
	client, err := notification.NewPubSubClient(ctx, cfg.Notification.ProjectID, cfg.Notification.CredentialsJSON)
	if err != nil {
		return nil, err
	}
	d := notification.NewPubSubDispatcher(client, cfg.Notification.Topic, log)
	deps.closers = append(deps.closers, func() error {
		d.Stop()
		return client.Close()
	})
	return d, nil
}

func newBlobStore(ctx context.Context, cfg config.Config, deps *dependencies) (interfaces.IBlobStore, error) {
	if cfg.Storage.Driver != "gcs" {
		return storage.NewMemoryBlobStore(cfg.Storage.PublicBaseURL), nil
	}
	client, err := storage.NewGCSClient(ctx, cfg.Storage.CredentialsJSON)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, client.Close)
	return storage.NewGCSBlobStore(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL), nil
}
