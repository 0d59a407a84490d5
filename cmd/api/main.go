package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"second-brain/brain"
	"second-brain/cmd/api/auth"
	"second-brain/cmd/api/router"
	"second-brain/cmd/api/services"
	"second-brain/config"
	"second-brain/db"
	"second-brain/embedder"
	"second-brain/eventbus"
	"second-brain/internal/logger"
	"second-brain/repositories"
	"second-brain/summarizer"
	"second-brain/transcript"
	"second-brain/vectorstore"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	emb, err := embedder.NewOpenAI()
	if err != nil {
		log.Fatal(err)
	}
	whisper, err := transcript.NewWhisperASR()
	if err != nil {
		log.Fatal(err)
	}
	gemini := summarizer.NewGemini()

	var bus eventbus.EventBus
	if cfg.Kafka.Brokers != "" {
		bus, err = eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		bus = eventbus.NewLogEventBus()
	}
	defer bus.Close()

	users := repositories.NewUserRepository(db.Database())
	docs := repositories.NewDocumentRepository(db.Database())
	store := vectorstore.NewMongoStore(db.Database(), cfg.Mongo.VectorCollection)

	pipeline := brain.NewPipeline(gemini, emb, store, docs, bus)
	knowledge := brain.NewQuery(emb, gemini, store)
	pipeline.SetIndex(knowledge)

	acquirer := transcript.NewAcquirer(
		transcript.NewYouTubeCaptions(cfg.Transcript.Language),
		transcript.NewYtDlpAudio(),
		whisper,
		cfg.Transcript.AudioDir,
		cfg.Transcript.ArchiveDir,
	)

	authSvc := services.NewAuthService(users, jwtManager)
	captureSvc := services.NewCaptureService(pipeline, acquirer)

	r := router.New(authSvc, captureSvc, knowledge, docs)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Log.Infof("second-brain api listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
