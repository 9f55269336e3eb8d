package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/helpdesk-community/helpdesk-api/background"
	"github.com/helpdesk-community/helpdesk-api/geo"
	"github.com/helpdesk-community/helpdesk-api/store"
)

var (
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpdesk")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("worker.concurrency", 5)
	viper.SetDefault("worker.expiry_interval", "5m")
	viper.SetDefault("worker.metrics_interval", "10m")
}

// scheduleExpirySweep enqueues the expiry job every interval until ctx is done
func scheduleExpirySweep(ctx context.Context, sender background.TaskSender, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := background.EnqueueCloseExpiredCards(sender); err != nil {
				log.WithError(err).Error("enqueue expiry sweep")
			}
		}
	}
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")
		cancel()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			mongoClient.Disconnect(shutdownCtx)
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}

	var err error

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(ctx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	database := viper.GetString("mongo.database")

	resolvers := []geo.LocationResolver{geo.NewMongodbLocationResolver(mongoClient, database)}
	if key := viper.GetString("map.apikey"); key != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Panic(err)
		}
		resolvers = append(resolvers, geo.NewGeocodingLocationResolver(mapClient))
	}

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "helpdesk_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(
		store.NewMongoStore(mongoClient, database),
		geo.NewMultipleLocationResolver(resolvers...),
		taskServer,
	)
	panicIfError(manager.RegisterTasks())

	go scheduleExpirySweep(ctx, taskServer, viper.GetDuration("worker.expiry_interval"))
	go manager.ReportMetrics(ctx, viper.GetDuration("worker.metrics_interval"))

	if err := manager.Run(viper.GetInt("worker.concurrency")); err != nil {
		log.Panic(err)
	}
}
