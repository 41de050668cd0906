package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/barangaylink/api/config"
	"github.com/barangaylink/api/internal/audit"
	"github.com/barangaylink/api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The composition root (cmd/main.go) fills it once at startup; the router
// auto-wires modules from these singletons. Services and handlers still take
// their dependencies through constructors so tests can substitute fakes.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	appPool     *pgxpool.Pool
	authPool    *pgxpool.Pool
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	gcsClient   *storage.Client
	esClient    *elasticsearch.Client
	recorder    *audit.Recorder
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetAppPool(p *pgxpool.Pool)              { appPool = p }
func GetAppPool() *pgxpool.Pool               { return appPool }
func SetAuthPool(p *pgxpool.Pool)             { authPool = p }
func GetAuthPool() *pgxpool.Pool              { return authPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetJWT(m *helpers.JWTManager)            { jwtManager = m }
func GetJWT() *helpers.JWTManager             { return jwtManager }
func SetGCS(s *storage.Client)                { gcsClient = s }
func GetGCS() *storage.Client                 { return gcsClient }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }
func SetAudit(r *audit.Recorder)              { recorder = r }
func GetAudit() *audit.Recorder               { return recorder }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
