package main

import (
	"context"
	"log"
	"os"

	fsdirartifact "chunkatlas/internal/adapter/artifact/fsdir"
	minioartifact "chunkatlas/internal/adapter/artifact/minio"
	httpadapter "chunkatlas/internal/adapter/http"
	gormrepo "chunkatlas/internal/adapter/repo/gorm"
	"chunkatlas/internal/adapter/repo/memory"
	"chunkatlas/internal/app/classify"
	"chunkatlas/internal/app/export"
	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/app/renderplan"
	"chunkatlas/internal/app/survey"
	"chunkatlas/internal/app/tiles"
	"chunkatlas/internal/config"
	"chunkatlas/internal/schema"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("CHUNKATLAS_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	surveyRepo, runRepo := mustBuildRepos(cfg)
	artifacts := mustBuildArtifactStore(cfg)
	surveySchema, err := schema.NewValidator([]byte(schema.SurveySchema))
	if err != nil {
		log.Fatalf("compile survey schema: %v", err)
	}

	h := httpadapter.Handler{
		SurveyUC: survey.UseCase{Surveys: surveyRepo},
		ClassifyUC: classify.UseCase{
			Surveys:        surveyRepo,
			Runs:           runRepo,
			DefaultHorizon: &cfg.Horizon,
		},
		GetRunUC:     classify.GetUseCase{Runs: runRepo},
		PlanUC:       renderplan.UseCase{Runs: runRepo},
		TilesUC:      tiles.UseCase{Artifacts: artifacts},
		ExportUC:     export.UseCase{Surveys: surveyRepo, Runs: runRepo, Artifacts: artifacts},
		SurveySchema: surveySchema,
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	log.Printf("chunkatlas server listening on %s (horizon %d)", cfg.ListenAddr, cfg.Horizon)
	s.Spin()
}

func mustBuildRepos(cfg config.Config) (ports.SurveyRepository, ports.RunRepository) {
	if cfg.Database.DSN == "" {
		log.Println("CHUNKATLAS_DB_DSN not set, using in-memory repositories")
		store := memory.NewStore()
		return memory.NewSurveyRepo(store), memory.NewRunRepo(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewSurveyRepo(db), gormrepo.NewRunRepo(db)
}

func mustBuildArtifactStore(cfg config.Config) ports.ArtifactStore {
	switch cfg.Artifacts.Backend {
	case "minio":
		store, err := minioartifact.New(context.Background(), minioartifact.Config{
			Endpoint:  cfg.Artifacts.MinIO.Endpoint,
			AccessKey: cfg.Artifacts.MinIO.AccessKey,
			SecretKey: cfg.Artifacts.MinIO.SecretKey,
			Bucket:    cfg.Artifacts.MinIO.Bucket,
			UseSSL:    cfg.Artifacts.MinIO.UseSSL,
		})
		if err != nil {
			log.Fatalf("open minio artifact store: %v", err)
		}
		return store
	default:
		store, err := fsdirartifact.New(cfg.Artifacts.Dir)
		if err != nil {
			log.Fatalf("open fs artifact store: %v", err)
		}
		return store
	}
}
