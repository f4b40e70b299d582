package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/realtime"
	"github.com/cargoshop/cargoshop/internal/store"
)

// StoreProvider provides document store access
type StoreProvider interface {
	Store() store.Store
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	StoreProvider
	ConfigProvider
	BusProvider
	SchedulerProvider

	Hub() *realtime.Hub
	Release()
}
