package main

import (
	"net/http"
	"os"

	"uule-converter/internal/config"
	"uule-converter/internal/handler"
	"uule-converter/internal/service"
	"uule-converter/internal/uulev2"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()
	zerolog.SetGlobalLevel(config.Level())

	// Initialize layers
	encodeService := service.NewEncodeService(uulev2.SystemClock{}, service.Defaults{
		Radius:     config.DefaultRadius,
		Provenance: config.DefaultProvenance,
	})
	decodeService := service.NewDecodeService()

	encodeHandler := handler.NewEncodeHandler(encodeService)
	decodeHandler := handler.NewDecodeHandler(decodeService)

	gin.SetMode(config.GinMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/v1/encode", encodeHandler.EncodePlace)
	r.GET("/v2/encode", encodeHandler.EncodePoint)
	r.GET("/decode", decodeHandler.Decode)

	log.Info().Str("address", config.ServerAddress).Msg("starting uule api")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
