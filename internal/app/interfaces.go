package app

import (
	"github.com/riizpect/ServiceApp-sub000/config"
	"github.com/riizpect/ServiceApp-sub000/internal/auth"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
	"github.com/riizpect/ServiceApp-sub000/internal/storage"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides raw key-value store access
type StoreProvider interface {
	Store() kvstore.Store
}

// StorageProvider provides the per-entity collection helpers
type StorageProvider interface {
	Storage() *storage.Storage
}

// AuthProvider provides the authentication helper
type AuthProvider interface {
	Auth() *auth.Service
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	StorageProvider
	AuthProvider
}
