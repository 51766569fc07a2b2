package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saasfoundry/controlplane/pkg/appconfig"
	"github.com/saasfoundry/controlplane/pkg/cognito"
	"github.com/saasfoundry/controlplane/pkg/config"
	"github.com/saasfoundry/controlplane/pkg/httpserver"
	"github.com/saasfoundry/controlplane/pkg/logger"
	"github.com/saasfoundry/controlplane/pkg/tenantstore"
	"github.com/saasfoundry/controlplane/svc/features"
	"github.com/saasfoundry/controlplane/svc/registration"
)

const serviceName = "controlplane"

type awsSettings struct {
	Region string `env:"AWS_REGION,required"`
}

func main() {
	var (
		logCfg    logger.Config
		httpCfg   httpserver.Config
		awsCfg    awsSettings
		sourceCfg appconfig.Config
		poolCfg   cognito.Config
		tableCfg  tenantstore.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&awsCfg)
	config.MustLoad(&sourceCfg)
	config.MustLoad(&poolCfg)
	config.MustLoad(&tableCfg)

	log := logger.NewFromConfig(logCfg, logger.WithAttr(slog.String("service", serviceName)))
	slog.SetDefault(log)

	ctx := context.Background()

	awsConf, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsCfg.Region))
	if err != nil {
		log.Error("failed to load AWS configuration", logger.Error(err))
		os.Exit(1)
	}

	identity := cognito.NewProvider(cognitoidentityprovider.NewFromConfig(awsConf), poolCfg)
	tenants := tenantstore.New(dynamodb.NewFromConfig(awsConf), tableCfg)
	source := appconfig.NewClient(sourceCfg)

	featureSvc := features.NewService(source, log)
	registrationSvc := registration.NewService(identity, tenants, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Mount("/features", features.NewHandler(featureSvc, log).Router())
	r.Mount("/register", registration.NewHandler(registrationSvc, log).Router())

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}
