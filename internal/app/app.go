package app

import (
	"context"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/realtime"
	"github.com/cargoshop/cargoshop/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	docStore  store.Store
	bus       EventBus.Bus
	hub       *realtime.Hub
	sched     *cron.Cron
}

// Ensure Application implements all provider interfaces
var (
	_ StoreProvider     = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() store.Store {
	return a.docStore
}

// OverrideStore replaces the document store handle (used in tests).
func (a *Application) OverrideStore(s store.Store) {
	a.docStore = s
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Hub() *realtime.Hub {
	return a.hub
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Init(ctx context.Context) error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	switch cfg.Database.Type {
	case "", "mongodb":
		s, err := store.NewMongoStore(ctx, cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return fmt.Errorf("store init: %w", err)
		}
		a.docStore = s
	case "memory":
		a.docStore = store.NewMemoryStore()
	default:
		return fmt.Errorf("unknown database type %q", cfg.Database.Type)
	}
	zap.S().Infof("document store ready, type: %s", cfg.Database.Type)

	a.bus = EventBus.New()
	a.hub = realtime.NewHub()
	if err := a.hub.BindBus(a.bus); err != nil {
		return fmt.Errorf("hub bind: %w", err)
	}

	if err := a.checkSuper(ctx); err != nil {
		zap.S().Errorf("admin bootstrap failed: %v", err)
	}

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.hub != nil {
		a.hub.Close()
	}
	if a.docStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.docStore.Close(ctx)
	}
	_ = zap.L().Sync()
}
