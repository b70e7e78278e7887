// Command docstore opens the school store, seeds it when empty and reports
// what it holds.
package main

import (
	"context"

	"github.com/ti/docstore/config"
	"github.com/ti/docstore/dependencies/database"
	"github.com/ti/docstore/log"
	"github.com/ti/docstore/password"
	"github.com/ti/docstore/seed"

	// Backends are picked by the URI scheme of Config.Database.
	_ "github.com/ti/docstore/dependencies/database/mock"
	_ "github.com/ti/docstore/dependencies/mongo"
)

// Config the command configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Database string `yaml:"database"`
	Seed     bool   `yaml:"seed"`
}

func defaultConfig() *Config {
	cfg := &Config{Database: "mock://local/school", Seed: true}
	cfg.Log.Level = "info"
	return cfg
}

func main() {
	ctx := context.Background()
	cfg := defaultConfig()
	if err := config.Init(ctx, "", cfg); err != nil {
		log.Action("InitConfig").Fatal(err.Error())
	}
	if err := run(ctx, cfg); err != nil {
		log.Action("Run").Fatal(err.Error())
	}
}

func run(ctx context.Context, cfg *Config) error {
	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			log.Action("Close").Warn(err.Error())
		}
	}()
	ctx = log.NewContext(ctx, map[string]any{"app": "docstore"})
	if cfg.Seed {
		if err = seed.Bootstrap(ctx, db, password.NewArgon2()); err != nil {
			return err
		}
	}
	return report(ctx, db)
}

func report(ctx context.Context, db database.Database) error {
	logger := log.Extract(ctx).Action("Report")
	for _, name := range []string{seed.Activities, seed.Teachers} {
		n, err := db.Collection(name).CountDocuments(ctx, nil)
		if err != nil {
			return err
		}
		logger.Info("%s: %d documents", name, n)
	}
	days, err := db.Collection(seed.Activities).Aggregate(ctx, database.DistinctDaysPipeline())
	if err != nil {
		return err
	}
	names := make([]any, 0, len(days))
	for _, d := range days {
		names = append(names, d[database.IDField])
	}
	logger.Info("activity days: %v", names)
	return nil
}
