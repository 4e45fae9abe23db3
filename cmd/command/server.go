package command

import (
	"context"
	"fmt"

	"kairos/turn-engine/internal/api"
	"kairos/turn-engine/internal/api/handler/ticket"
	"kairos/turn-engine/internal/config"
	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/infra"
	"kairos/turn-engine/internal/journal"
	"kairos/turn-engine/internal/notify"
	"kairos/turn-engine/internal/repository"
	queueService "kairos/turn-engine/internal/service/queue"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run queue engine server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
		return
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
		}
	}()

	kafkaWriter := infra.NewKafkaWriter(cfg.Kafka)

	// create repositories
	ticketRepository := repository.NewTicketRepository(db.GetDb())
	clientRepository := repository.NewClientRepository(db.GetDb())
	serviceRepository := repository.NewServiceRepository(db.GetDb())
	counterRepository := repository.NewCounterRepository(db.GetDb())
	dlqRepository := repository.NewDlqRepository(db.GetDb())

	// fan-out: local hub bridged over redis pub/sub
	hub := notify.NewHub()
	broker := notify.NewBroker(redisClient, hub, cmd.Logger)
	go broker.Run(ctx)

	// audit journal with background kafka producers
	ticketJournal := journal.New(kafkaWriter, dlqRepository, cmd.Logger)
	for i := 0; i < constant.JournalWorkerCount; i++ {
		go ticketJournal.Produce(i)
	}
	cmd.Logger.WithContext(ctx).Infof("started %d journal producer workers", constant.JournalWorkerCount)

	// create services
	queueServiceInstance := queueService.NewQueueService(
		ticketRepository,
		clientRepository,
		serviceRepository,
		counterRepository,
		broker,
		ticketJournal,
		cmd.Logger,
	)

	// create handlers
	ticketHandler := ticket.New(queueServiceInstance, hub)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(ticketHandler)

	defer func() {
		cmd.Logger.Info("shutting down journal...")
		ticketJournal.Close()
	}()

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}
