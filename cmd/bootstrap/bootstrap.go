package bootstrap

import (
	"fmt"
	"os"

	"clinica-agenda/config"
	"clinica-agenda/internal/repository"
	"clinica-agenda/internal/usecase"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the scheduling engine.
type App struct {
	Config  *config.Config
	Log     *logrus.Logger
	Session *usecase.ScheduleSession
}

// New creates a new App instance with all dependencies initialized.
func New() (*App, error) {
	app := &App{}

	app.Log = setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")

	client := repository.NewClient(cfg.API, app.Log)
	scheduleRepo := repository.NewScheduleRepository(client)
	capacityRepo := repository.NewCapacityRepository(client)
	lookupRepo := repository.NewLookupRepository(client)

	app.Session = usecase.NewScheduleSession(app.Log, scheduleRepo, capacityRepo, lookupRepo, cfg.App.ListPerPage)

	return app, nil
}

// setupLogger configures the logrus logger.
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}
