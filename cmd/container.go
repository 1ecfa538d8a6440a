package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/hireline/hireline/pkg/auth"
	"github.com/hireline/hireline/pkg/fsx"
	"github.com/hireline/hireline/pkg/fsx/fsxs3"
	"github.com/hireline/hireline/pkg/logx"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/application/applicationapi"
	"github.com/hireline/hireline/portal/application/applicationinfra"
	"github.com/hireline/hireline/portal/application/applicationsrv"
	"github.com/hireline/hireline/portal/application/worker"
	"github.com/hireline/hireline/portal/job/jobapi"
	"github.com/hireline/hireline/portal/job/jobinfra"
	"github.com/hireline/hireline/portal/job/jobsrv"
)

const cleanupQueueName = "resume_cleanup"

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB          *sqlx.DB
	Redis       *redis.Client
	FileSystem  fsx.FileSystem
	S3Client    *s3.Client
	ResumeStore application.ResumeStore

	// Services
	TokenService       *auth.JWTService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService

	// Background workers
	CleanupWorker *worker.CleanupWorker

	// API Handlers
	JobHandler         *jobapi.Handler
	ApplicationHandler *applicationapi.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration. The client is built once here and injected
	// everywhere a store is needed.
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
	c.ResumeStore = applicationinfra.NewFsxResumeStore(c.FileSystem)

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Cleanup queue for orphaned uploads ---
	cleanupQueue := applicationinfra.NewRedisCleanupQueue(c.Redis, cleanupQueueName)

	// --- Token Service ---
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		jobRepo,
		c.ResumeStore,
		cleanupQueue,
	)

	// --- Background workers ---
	c.CleanupWorker = worker.NewCleanupWorker(cleanupQueue, c.ResumeStore, cleanupWorkerCount())

	// --- Handlers ---
	c.JobHandler = jobapi.NewHandler(c.JobService)
	c.ApplicationHandler = applicationapi.NewHandler(c.ApplicationService)
}

func cleanupWorkerCount() int {
	n, err := strconv.Atoi(os.Getenv("CLEANUP_WORKERS"))
	if err != nil || n < 1 {
		return 2
	}
	return n
}
