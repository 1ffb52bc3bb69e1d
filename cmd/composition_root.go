package cmd

import (
	"log/slog"
	"strings"
	"time"

	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/hebcal"
	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	location   *time.Location
	links      services.TrackerLinkBuilder
	advancer   services.StatusAdvancer
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	location *time.Location,
	logger *slog.Logger,
) (CompositionRoot, error) {
	links, err := services.NewTrackerLinkBuilder(config.TrackerBaseURL, services.Branding{
		Logo:      config.Logo,
		LogoDark:  config.LogoDark,
		LogoLight: config.LogoLight,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	providers := []ports.HolidayProvider{hebcal.NewProvider()}
	if dates := splitDates(config.StaticHolidays); len(dates) > 0 {
		providers = append(providers, hebcal.NewStaticProvider(dates))
	}

	calendar := services.NewBusinessCalendar(providers, location, logger)

	advancer, err := services.NewStatusAdvancer(calendar, services.DefaultStepDurations())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		location:   location,
		links:      links,
		advancer:   advancer,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateUpsertOrderCommandHandler() commands.UpsertOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertOrderCommandHandler(f, c.links, time.Now)
}

func (c *CompositionRoot) CreateLogFailedUpdateCommandHandler() commands.LogFailedUpdateCommandHandler {
	var f commands.UpdateLogUoWFactory = FuncUpdateLogUoWFactory(func() commands.UpdateLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogFailedUpdateCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateAdvanceStatusesCommandHandler() commands.AdvanceStatusesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceStatusesCommandHandler(f, c.advancer, time.Now, c.logger)
}

func (c *CompositionRoot) CreateRefreshTrackerLinksCommandHandler() commands.RefreshTrackerLinksCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshTrackerLinksCommandHandler(f, c.links)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.location)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.config.SharedSecret,
		c.CreateUpsertOrderCommandHandler(),
		c.CreateLogFailedUpdateCommandHandler(),
		c.CreateRefreshTrackerLinksCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAdvanceStatusesCommandHandler(),
		c.config.AdvancementSchedule,
		c.location,
		c.logger,
	)
}

func splitDates(raw string) []string {
	var dates []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			dates = append(dates, trimmed)
		}
	}
	return dates
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUpdateLogUoWFactory func() commands.UpdateLogUoW

func (f FuncUpdateLogUoWFactory) Create() commands.UpdateLogUoW {
	return f()
}
