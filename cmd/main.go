package main

import (
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"disqus-client/config"
	"disqus-client/delivery"
	"disqus-client/repository"
)

// Stub API endpoint: serves seeded fixtures over the same contract as the
// remote comment API.
func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %s", err.Error())
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		log.Fatalf("init logger failed: %s", err.Error())
	}
	defer logger.Sync()

	storage := repository.NewForumStorage(cfg.Stub.UserKey, cfg.Stub.UserName)
	repository.Seed(storage, cfg.Stub.ForumKey)

	api := delivery.NewApi(storage, logger)
	router := delivery.NewRouter(api)

	logger.Info("Stub server starting", zap.String("addr", cfg.Stub.Addr))
	if err := fasthttp.ListenAndServe(cfg.Stub.Addr, router.Handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
