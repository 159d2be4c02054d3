package app

import (
	"context"
	"errors"
	"net/http"

	"church-office-go/internal/config"
	"church-office-go/internal/db"
	cellleaderdomain "church-office-go/internal/domain/cellleader"
	dashboarddomain "church-office-go/internal/domain/dashboard"
	departmentdomain "church-office-go/internal/domain/department"
	memberdomain "church-office-go/internal/domain/member"
	ministrydomain "church-office-go/internal/domain/ministry"
	newcomerdomain "church-office-go/internal/domain/newcomer"
	reservationdomain "church-office-go/internal/domain/reservation"
	servingdomain "church-office-go/internal/domain/servingpeople"
	trainingdomain "church-office-go/internal/domain/training"
	"church-office-go/internal/repository/inmemory"
	cellleaderrepo "church-office-go/internal/repository/postgres/cellleader"
	dashboardrepo "church-office-go/internal/repository/postgres/dashboard"
	departmentrepo "church-office-go/internal/repository/postgres/department"
	memberrepo "church-office-go/internal/repository/postgres/member"
	ministryrepo "church-office-go/internal/repository/postgres/ministry"
	newcomerrepo "church-office-go/internal/repository/postgres/newcomer"
	reservationrepo "church-office-go/internal/repository/postgres/reservation"
	servingrepo "church-office-go/internal/repository/postgres/servingpeople"
	trainingrepo "church-office-go/internal/repository/postgres/training"
	redisrepo "church-office-go/internal/repository/redis"
	"church-office-go/internal/transport/httpserver"
	"church-office-go/internal/transport/httpserver/handler"
	cellleadershandler "church-office-go/internal/transport/httpserver/handler/cellleaders"
	commonhandler "church-office-go/internal/transport/httpserver/handler/common"
	dashboardhandler "church-office-go/internal/transport/httpserver/handler/dashboard"
	departmentshandler "church-office-go/internal/transport/httpserver/handler/departments"
	membershandler "church-office-go/internal/transport/httpserver/handler/members"
	ministrieshandler "church-office-go/internal/transport/httpserver/handler/ministries"
	newcomershandler "church-office-go/internal/transport/httpserver/handler/newcomers"
	reservationshandler "church-office-go/internal/transport/httpserver/handler/reservations"
	servingpeoplehandler "church-office-go/internal/transport/httpserver/handler/servingpeople"
	trainingshandler "church-office-go/internal/transport/httpserver/handler/trainings"
	"church-office-go/pkg/logger"
	"church-office-go/pkg/mq"
	goredis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *goredis.Client
	publisher  eventPublisher
	log        logger.Logger
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, db: dbConn, log: log}

	if err := db.Migrate(dbConn, log); err != nil {
		_ = a.Close()
		return nil, err
	}

	facilityCache, err := a.newFacilityCache(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.publisher = mq.Nop{}
	if cfg.Rabbit.URL != "" {
		log.Info("app: connecting to rabbitmq", "exchange", cfg.Rabbit.Exchange)
		publisher, err := mq.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Exchange)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.publisher = publisher
	}

	loc := cfg.Location()
	reservations := reservationdomain.NewService(
		reservationrepo.NewPostgres(dbConn),
		facilityCache,
		a.publisher,
		log,
		reservationdomain.Config{Location: loc, FacilityCacheTTL: cfg.FacilityCache.TTL},
	)
	newcomers := newcomerdomain.NewService(newcomerrepo.NewPostgres(dbConn), cfg.Roles.NewFamily, a.publisher, log)
	members := memberdomain.NewService(memberrepo.NewPostgres(dbConn), cfg.Roles.Default, log)
	cellLeaders := cellleaderdomain.NewService(cellleaderrepo.NewPostgres(dbConn))
	departments := departmentdomain.NewService(departmentrepo.NewPostgres(dbConn))
	dashboard := dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn), loc, log)
	ministries := ministrydomain.NewService(ministryrepo.NewPostgres(dbConn), log)
	trainings := trainingdomain.NewService(trainingrepo.NewPostgres(dbConn))
	servingPeople := servingdomain.NewService(servingrepo.NewPostgres(dbConn), log)

	seeds := facilitySeeds(cfg.Facilities)
	if cfg.SeedFacilitiesOnBoot {
		if _, err := reservations.SeedFacilities(ctx, seeds); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	peopleSeeds := servingPeopleSeeds(cfg.ServingPeople)
	if cfg.SeedServingPeopleOnBoot {
		if _, err := servingPeople.SeedPeople(ctx, peopleSeeds); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	handlers := &handler.Handlers{
		Common:        commonhandler.New(sqlDB, log),
		Dashboard:     dashboardhandler.New(dashboard, log),
		Reservations:  reservationshandler.New(reservations, seeds, loc, log),
		Newcomers:     newcomershandler.New(newcomers, log),
		Members:       membershandler.New(members, log),
		CellLeaders:   cellleadershandler.New(cellLeaders, log),
		Departments:   departmentshandler.New(departments, log),
		Ministries:    ministrieshandler.New(ministries, log),
		Trainings:     trainingshandler.New(trainings, log),
		ServingPeople: servingpeoplehandler.New(servingPeople, peopleSeeds, log),
	}

	log.Info("app: initializing http server")
	a.httpServer = httpserver.New(cfg, httpserver.NewRouter(cfg, handlers, log))
	return a, nil
}

func (a *App) newFacilityCache(ctx context.Context) (reservationdomain.FacilityCache, error) {
	switch {
	case !a.cfg.FacilityCache.Enabled:
		return nil, nil
	case a.cfg.Redis.Addr != "":
		a.log.Info("app: facility cache backed by redis", "addr", a.cfg.Redis.Addr)
		client, err := redisrepo.NewClient(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = client
		return redisrepo.NewFacilityCache(client, a.log), nil
	default:
		return inmemory.NewFacilityCache(), nil
	}
}

func facilitySeeds(facilities []config.FacilityConfig) []reservationdomain.FacilitySeed {
	seeds := make([]reservationdomain.FacilitySeed, 0, len(facilities))
	for _, f := range facilities {
		seeds = append(seeds, reservationdomain.FacilitySeed{
			Name:     f.Name,
			Location: f.Location,
			Capacity: f.Capacity,
		})
	}
	return seeds
}

func servingPeopleSeeds(people []config.ServingPersonConfig) []servingdomain.Seed {
	seeds := make([]servingdomain.Seed, 0, len(people))
	for _, p := range people {
		seeds = append(seeds, servingdomain.Seed{
			Category:    p.Category,
			Role:        p.Role,
			Name:        p.Name,
			Description: p.Description,
			SortOrder:   p.SortOrder,
		})
	}
	return seeds
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
