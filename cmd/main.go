package main

import (
	"context"
	"os"
	"time"

	"exlog/gates/server"
	storage "exlog/gates/storage/mongo"
	"exlog/internal/config"
	"exlog/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.MustLoad()

	log := logger.MustInitLogger(cfg)

	// MONGO_URI from the environment wins over the config file
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = cfg.Mongo.URI
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic(err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		panic(err)
	}
	db := storage.NewStore(client.Database(cfg.Mongo.Database), log)
	if err = db.EnsureIndexes(ctx); err != nil {
		panic(err)
	}
	log.Info("connected to mongo", "database", cfg.Mongo.Database)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), cors.Default())
	_ = server.NewServer(db, cfg, log, router)

	addr := cfg.Rest.Host + ":" + cfg.Rest.Port
	log.Info("starting rest server", "addr", addr)
	if err = router.Run(addr); err != nil {
		panic(err)
	}
}
