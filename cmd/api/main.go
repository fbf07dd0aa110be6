package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/mailbox/imapclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/mailbox/mailer"
	"github.com/sugarart/commerce-sync-api/infrastructure/repository"
	"github.com/sugarart/commerce-sync-api/internal/api"
	"github.com/sugarart/commerce-sync-api/internal/api/handler"
	"github.com/sugarart/commerce-sync-api/internal/config"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/scheduler"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
	"github.com/sugarart/commerce-sync-api/internal/usecases/relaying"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository()
	orderRepo := repository.NewOrderRepository()
	productRepo := repository.NewProductRepository()
	boletoRepo := repository.NewBoletoRepository()

	sigeClient := sigecloudclient.NewClient(cfg)

	pageSize := cfg.SigeCloud.PageSize

	ordersEngine := reconciling.NewEngine(
		reconciling.NewOrdersPipeline(sigeClient, orderRepo, customerRepo, cfg.OrdersSync.SinceDays),
		pgConn,
		pageSize,
	)
	productsEngine := reconciling.NewEngine(
		reconciling.NewProductsPipeline(sigeClient, productRepo, domain.WriteMode(cfg.ProductsSync.WriteMode)),
		pgConn,
		pageSize,
	)
	boletosEngine := reconciling.NewEngine(
		reconciling.NewBoletosPipeline(sigeClient, boletoRepo, customerRepo, cfg.BoletosSync.SinceDays),
		pgConn,
		pageSize,
	)
	customersEngine := reconciling.NewEngine(
		reconciling.NewCustomersPipeline(sigeClient, customerRepo, cfg.CustomersSync.SinceDays),
		pgConn,
		pageSize,
	)

	syncServices := handler.SyncServices{
		Orders: scheduler.NewEntitySyncService("pedidos", ordersEngine, scheduler.EntitySyncConfig{
			CronSchedule: cfg.OrdersSync.CronSchedule,
			Enabled:      cfg.OrdersSync.Enabled,
		}),
		Products: scheduler.NewEntitySyncService("produtos", productsEngine, scheduler.EntitySyncConfig{
			CronSchedule: cfg.ProductsSync.CronSchedule,
			Enabled:      cfg.ProductsSync.Enabled,
		}),
		Boletos: scheduler.NewEntitySyncService("boletos", boletosEngine, scheduler.EntitySyncConfig{
			CronSchedule: cfg.BoletosSync.CronSchedule,
			Enabled:      cfg.BoletosSync.Enabled,
		}),
		Customers: scheduler.NewEntitySyncService("clientes", customersEngine, scheduler.EntitySyncConfig{
			CronSchedule: cfg.CustomersSync.CronSchedule,
			Enabled:      cfg.CustomersSync.Enabled,
		}),
	}

	relayService := relaying.NewService(imapclient.NewClient(cfg), mailer.NewMailer(cfg))
	mailboxPoll := scheduler.NewMailboxPollService(relayService, cfg)

	// Inicia os agendadores em background
	for entity, service := range map[string]*scheduler.EntitySyncService{
		"pedidos":  syncServices.Orders,
		"produtos": syncServices.Products,
		"boletos":  syncServices.Boletos,
		"clientes": syncServices.Customers,
	} {
		if err := service.Start(ctx); err != nil {
			logrus.WithError(err).WithField("entity", entity).
				Error("Erro ao iniciar o agendador de sincronização")
		} else {
			logrus.WithField("entity", entity).
				Info("Agendador de sincronização iniciado com sucesso")
		}
	}

	if err := mailboxPoll.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da caixa de entrada")
	} else {
		logrus.Info("Agendador da caixa de entrada iniciado com sucesso")
	}

	server, err := api.New(cfg, syncServices, mailboxPoll, relayService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
