package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"freebusy/config"
	"freebusy/schedule"
	"freebusy/server"
)

var (
	configPath = kingpin.Flag("config", "Path to the TOML configuration file.").Short('c').String()
	listen     = kingpin.Flag("listen", "Address to serve on, overrides the config file.").String()
	logLevel   = kingpin.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
)

func main() {
	kingpin.Parse()

	level, _ := logrus.ParseLevel(*logLevel)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level != logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(context.Background()); err != nil {
		logrus.WithError(err).Error("freebusy exited")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	strategy, err := cfg.IntersectStrategy()
	if err != nil {
		return err
	}

	resolver, closeResolver, err := newResolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeResolver()

	planner := schedule.NewPlanner(resolver, strategy)
	logrus.WithFields(logrus.Fields{
		"listen":   cfg.Listen,
		"strategy": planner.Strategy(),
	}).Info("serving free/busy API")

	return server.New(planner).Handler().Run(cfg.Listen)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newResolver builds the schedule source described by cfg: MySQL when a DSN
// is set, the configured parties otherwise, behind a Redis cache when an
// address is set.
func newResolver(ctx context.Context, cfg *config.Config) (schedule.Resolver, func(), error) {
	var (
		resolver schedule.Resolver
		closers  []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.MySQL.DSN != "" {
		sqlResolver, err := schedule.OpenSQLResolver(ctx, cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := sqlResolver.Close(); err != nil {
				logrus.WithError(err).Warn("failed to close mysql")
			}
		})
		resolver = sqlResolver
	} else {
		static := schedule.NewStaticResolver()
		for party, busy := range cfg.Parties {
			if err := static.Set(party, busy); err != nil {
				return nil, nil, err
			}
		}
		logrus.WithField("parties", static.Parties()).Info("serving configured schedules")
		resolver = static
	}

	if cfg.Redis.Addr != "" {
		cache := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := cache.Ping(ctx).Err(); err != nil {
			cache.Close()
			cleanup()
			return nil, nil, errors.Wrapf(err, "ping redis %s", cfg.Redis.Addr)
		}
		closers = append(closers, func() { cache.Close() })
		resolver = schedule.NewCachedResolver(cache, resolver, cfg.Redis.TTL.Duration)
	}

	return resolver, cleanup, nil
}
