package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/config"
	"github.com/vespasoft/taskhub/internal/domain/repository"
	"github.com/vespasoft/taskhub/internal/infrastructure/eventbus"
	"github.com/vespasoft/taskhub/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	rabbitPub   *helpers.RabbitPublisher
	bus         *eventbus.Bus
	users       repository.UserRepository
	projects    repository.ProjectRepository
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetBus(b *eventbus.Bus)                  { bus = b }
func GetBus() *eventbus.Bus                   { return bus }

func SetUserRepo(r repository.UserRepository)       { users = r }
func GetUserRepo() repository.UserRepository        { return users }
func SetProjectRepo(r repository.ProjectRepository) { projects = r }
func GetProjectRepo() repository.ProjectRepository  { return projects }
