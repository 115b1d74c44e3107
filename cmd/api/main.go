package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository"
	"github.com/halsbagel/sales-dashboard-api/internal/api"
	"github.com/halsbagel/sales-dashboard-api/internal/config"
	"github.com/halsbagel/sales-dashboard-api/internal/scheduler"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/recording"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting"
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

	salesRepo := repository.NewSalesRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	minimumTargetRepo := repository.NewMinimumTargetRepository(pgConn)
	monthlySummaryRepo := repository.NewMonthlySummaryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	recorder := recording.NewService(salesRepo, targetRepo, minimumTargetRepo)

	// O serviço de relatórios implementa Reporter e SummarySyncer
	reporter := reporting.NewService(salesRepo, targetRepo, monthlySummaryRepo)

	// Inicializa o agendador de snapshots mensais
	monthlySummarySyncService := scheduler.NewMonthlySummarySyncService(reporter, cfg)

	if err := monthlySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots mensais")
	} else {
		logrus.Info("Agendador de snapshots mensais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		recorder,
		reporter,
		authenticator,
		monthlySummarySyncService,
	)
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
