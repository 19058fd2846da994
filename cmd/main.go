package main

import (
	"fmt"
	"time"

	"github.com/Igormartins234/backend-ia-historia/application/ports/outbound"
	"github.com/Igormartins234/backend-ia-historia/application/services"
	"github.com/Igormartins234/backend-ia-historia/config"
	"github.com/Igormartins234/backend-ia-historia/infrastructure/adapters"
	"github.com/Igormartins234/backend-ia-historia/infrastructure/gin_interface/controllers"
	"github.com/Igormartins234/backend-ia-historia/infrastructure/gin_interface/dto"
	"github.com/Igormartins234/backend-ia-historia/middleware"
	mockgenerator "github.com/Igormartins234/backend-ia-historia/mock"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

const mockGeneratorDelay = 300 * time.Millisecond

func main() {
	// Same behavior as the original deployment: a .env file is optional.
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	var textGenerator outbound.StoryTextGeneratorPort
	if serverConfig.MockAI {
		zeroLogger.Warn("MOCK_AI is set, stories are canned and the Gemini API is never called")
		textGenerator = mockgenerator.NewStaticStoryGenerator(mockGeneratorDelay, zeroLogger)
	} else {
		geminiConfig, err := config.GetGeminiConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get Gemini config")
		}

		contentFetcher := adapters.NewContentFetcher(geminiConfig.Timeout, zeroLogger)
		textGenerator = adapters.NewGeminiTextGenerator(contentFetcher, geminiConfig, zeroLogger)
	}

	storyMaker := services.NewStoryMaker(zeroLogger, textGenerator, workerPool)

	storyController := controllers.NewStoryController(zeroLogger, storyMaker)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zeroLogger.ErrorWithFields(fmt.Errorf("%v", recovered), "Panic while handling request", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(500, dto.ErrorResponse{
			Error: fmt.Sprintf("internal server error: %v", recovered),
		})
	}))
	router.Use(middleware.CORSMiddleware())

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	storyController.RegisterRoutes(router)

	err = router.Run(":" + serverConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
