package container

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/cache"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/dynamo"
	"github.com/saulo-duarte/quizbank-lambda/internal/memory"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
	"github.com/saulo-duarte/quizbank-lambda/internal/result"
	"github.com/saulo-duarte/quizbank-lambda/internal/router"
	"github.com/saulo-duarte/quizbank-lambda/internal/user"
)

// Stores groups the three collections a Container is built on.
type Stores struct {
	Questions question.Repository
	Quizzes   quiz.Repository
	Results   result.Repository
}

type Container struct {
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
	ResultContainer   *result.ResultContainer
	UserContainer     *user.UserContainer
	Guard             *auth.Guard
}

// New wires every feature against the store selected by cfg.StoreDriver.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	auth.Init(cfg.JWTSecret)

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg == nil {
			loaded, err := dynamo.LoadAWSConfig(ctx, cfg.AWS)
			if err != nil {
				return aws.Config{}, err
			}
			awsCfg = &loaded
		}
		return *awsCfg, nil
	}

	var stores Stores
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		loaded, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := dynamo.NewClient(loaded, cfg.AWS.DynamoDBEndpoint)
		stores = Stores{
			Questions: dynamo.NewQuestionRepository(client, cfg.Tables.Questions),
			Quizzes:   dynamo.NewQuizRepository(client, cfg.Tables.Quizzes),
			Results:   dynamo.NewResultRepository(client, cfg.Tables.Results),
		}
	case config.StorePostgres:
		if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
			return nil, err
		}
		stores = Stores{
			Questions: question.NewRepository(config.DB),
			Quizzes:   quiz.NewRepository(config.DB),
			Results:   result.NewRepository(config.DB),
		}
	case config.StoreMemory:
		stores = Stores{
			Questions: memory.NewQuestionRepository(),
			Quizzes:   memory.NewQuizRepository(),
			Results:   memory.NewResultRepository(),
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		stores.Quizzes = cache.NewQuizRepository(client, stores.Quizzes, cfg.Redis.QuizCacheTTL)
		config.WithContext(ctx).WithField("addr", cfg.Redis.Addr).Info("Quiz cache enabled")
	}

	var directory user.Directory = user.NewStaticDirectory()
	if cfg.AWS.UserPoolID != "" {
		loaded, err := loadAWS()
		if err != nil {
			return nil, err
		}
		directory = user.NewCognitoDirectory(user.NewCognitoClient(loaded), cfg.AWS.UserPoolID)
	}

	c := NewWithStores(stores, directory, auth.NewGuard(cfg.AdminGroup))
	config.WithContext(ctx).WithField("store", cfg.StoreDriver).Info("Container ready")
	return c, nil
}

func NewWithStores(stores Stores, directory user.Directory, guard *auth.Guard) *Container {
	return &Container{
		QuestionContainer: question.NewQuestionContainer(stores.Questions),
		QuizContainer:     quiz.NewQuizContainer(stores.Quizzes, stores.Questions),
		ResultContainer:   result.NewResultContainer(stores.Results, stores.Quizzes, stores.Questions),
		UserContainer:     user.NewUserContainer(directory),
		Guard:             guard,
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		QuestionHandler: c.QuestionContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		ResultHandler:   c.ResultContainer.Handler,
		UserHandler:     c.UserContainer.Handler,
		Guard:           c.Guard,
	})
}

// Migrate creates or updates the Postgres tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&question.Question{}, &quiz.Quiz{}, &result.Result{})
}
