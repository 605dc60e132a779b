package config

import (
	"flag"
	"fmt"

	"seqmine/dataset"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const DEVELOPMENT = "development"

var env = flag.String("env", DEVELOPMENT, "")
var port = flag.Int("port", 8000, "")
var datasetCacheSize = flag.Int("dataset_cache_size", 128, "Max datasets held in memory")
var maxUploadBytes = flag.Int64("max_upload_bytes", 50*1024*1024, "Max CSV upload size in bytes")

var initiated bool = false

type Configuration struct {
	Env              string `envconfig:"ENV"`
	Port             int    `envconfig:"PORT"`
	DatasetCacheSize int    `envconfig:"DATASET_CACHE_SIZE"`
	MaxUploadBytes   int64  `envconfig:"MAX_UPLOAD_BYTES"`
}

type Services struct {
	Datasets *dataset.Registry
}

var configuration *Configuration = nil
var services *Services = nil

func initFlags() {
	flag.Parse()
}

func initLogging() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})
}

func initConfig() error {
	configuration = &Configuration{
		Env:              *env,
		Port:             *port,
		DatasetCacheSize: *datasetCacheSize,
		MaxUploadBytes:   *maxUploadBytes,
	}
	// Environment variables override flags, e.g. SEQMINE_PORT.
	if err := envconfig.Process("seqmine", configuration); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to read config from environment")
		return err
	}
	log.WithFields(log.Fields{"config": configuration}).Info("Config loaded")
	return nil
}

func initServices() error {
	datasets, err := dataset.NewRegistry(configuration.DatasetCacheSize)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed dataset registry initialization")
		return err
	}
	services = &Services{Datasets: datasets}
	log.Info("Services initialized")
	return nil
}

func Init() error {
	if initiated {
		return fmt.Errorf("Config already initialized")
	}
	initFlags()
	initLogging()
	if err := initConfig(); err != nil {
		return err
	}
	if err := initServices(); err != nil {
		return err
	}
	initiated = true
	return nil
}

func GetConfig() *Configuration {
	return configuration
}

func GetServices() *Services {
	return services
}

func IsDevelopment() bool {
	return configuration.Env == DEVELOPMENT
}
