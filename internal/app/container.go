package app

import (
	"context"

	"github.com/doeshing/intent-apparatus/internal/application/doctor"
	"github.com/doeshing/intent-apparatus/internal/application/session"
	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/infrastructure/actuator"
	"github.com/doeshing/intent-apparatus/internal/infrastructure/config"
	"github.com/doeshing/intent-apparatus/internal/infrastructure/interpret"
	"github.com/doeshing/intent-apparatus/internal/pkg/logger"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Options carries command-line overrides into the dependency graph.
type Options struct {
	// Verbose enables debug logging.
	Verbose bool
	// ConfigPath overrides the config file location.
	ConfigPath string
	// Simulate forces the simulated actuator regardless of config.
	Simulate bool
	// ScreenshotDir overrides where capture artifacts land.
	ScreenshotDir string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Session        *session.Service
	Interpreter    ports.Interpreter
	Actuator       ports.Actuator
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Config         domain.Config
	DoctorService  *doctor.Service
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Simulate {
		cfg.Actuator.Mode = domain.ActuatorModeSimulated
	}
	if opts.ScreenshotDir != "" {
		cfg.Screenshots.Dir = opts.ScreenshotDir
	}

	log := logger.NewStd(opts.Verbose)
	interpreter := interpret.New()

	act, err := actuator.NewFromConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(interpreter, act, log)
	if err != nil {
		return nil, err
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		ProbeDriver:    actuator.ProbeTools,
		DriverName:     actuator.DriverName(),
	}

	return &Container{
		Session:        sess,
		Interpreter:    interpreter,
		Actuator:       act,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Config:         cfg,
		DoctorService:  doctorService,
		Logger:         log,
	}, nil
}
