package main

import (
	"context"
	"fmt"

	"recipeshare/backend/api"
	"recipeshare/backend/config"
	"recipeshare/backend/db"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	store, err := db.Connect(ctx)
	if err != nil {
		panic(err)
	}
	defer store.Close(ctx)

	if err := store.EnsureIndexes(ctx); err != nil {
		panic(err)
	}

	a, err := api.NewRouter(store)
	if err != nil {
		panic(err)
	}

	if config.SetupOnly() {
		zap.L().Info("Indexes created, exiting")
		return
	}

	zap.L().Info("Server starting", zap.Int("port", viper.GetInt("host.port")))

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
