package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/natnael-worku/mazerace/config"
	"github.com/natnael-worku/mazerace/infrastruture/cache"
	"github.com/natnael-worku/mazerace/infrastruture/repo"
	"github.com/natnael-worku/mazerace/maze"
	"github.com/natnael-worku/mazerace/service"
)

// Global variables for dependencies
var (
	mongoClient   *mongo.Client
	redisClient   *redis.Client
	snapshotRepo  *repo.MazeSnapshotRepo
	snapshotCache *cache.RedisSnapshotCache
	generator     *maze.Generator
	mazeManager   *service.MazeManager
	appLogger     = log.New(os.Stdout, "[APP] ", log.LstdFlags)
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs().DBUser, config.Envs().DBPassword, config.Envs().DBHost, config.Envs().DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs().RedisHost, config.Envs().RedisPort),
		Password: config.Envs().RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initSnapshotStorage() {
	snapshotRepo = repo.NewMazeSnapshotRepo(mongoClient, config.Envs().DBName, config.Envs().SnapshotCollection)
	snapshotCache = cache.New(redisClient, time.Duration(config.Envs().CacheTTLMinutes)*time.Minute)
	appLogger.Printf("%s[INFO]%s Snapshot storage initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeManager() {
	generator = maze.NewGenerator(&maze.Options{
		Logger: appLogger,
	})

	var err error
	mazeManager, err = service.NewMazeManager(&service.Config{
		Engine:     generator,
		Store:      snapshotRepo,
		Cache:      snapshotCache,
		Locker:     snapshotCache,
		Logger:     appLogger,
		Rows:       config.Envs().MazeRows,
		Cols:       config.Envs().MazeCols,
		Difficulty: config.Envs().MazeDifficulty,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Maze manager initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	initSnapshotStorage()
	initMazeManager()

	// Smoke run: stand up a maze for a fresh table and trace a route
	// through it.
	tableID := uuid.New()
	result, err := mazeManager.MazeForTable(ctx, tableID)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Generating maze for table %s: %v", config.LogErrorColor, config.LogColorReset, tableID, err)
		os.Exit(1)
	}

	route, err := mazeManager.RouteForRacer(ctx, tableID, result.Start, result.Finish)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Routing through maze for table %s: %v", config.LogErrorColor, config.LogColorReset, tableID, err)
		os.Exit(1)
	}

	fmt.Print(result.Grid.String())
	appLogger.Printf("%s[INFO]%s Table %s: %dx%d %s maze, start %v, finish %v, route length %d",
		config.LogInfoColor, config.LogColorReset, tableID,
		result.Meta.Rows, result.Meta.Cols, result.Meta.Difficulty,
		result.Start, result.Finish, len(route))
}
