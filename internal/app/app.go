package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/riizpect/ServiceApp-sub000/config"
	"github.com/riizpect/ServiceApp-sub000/internal/auth"
	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
	"github.com/riizpect/ServiceApp-sub000/internal/storage"
)

// StoreFilename is the bbolt file under the workdir.
const StoreFilename = "serviceapp.db"

type Application struct {
	appConfig *config.AppConfig
	boltStore *kvstore.BoltStore
	store     kvstore.Store
	storages  *storage.Storage
	authsrv   *auth.Service
	bus       EventBus.Bus
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider  = (*Application)(nil)
	_ StoreProvider   = (*Application)(nil)
	_ StorageProvider = (*Application)(nil)
	_ AuthProvider    = (*Application)(nil)
	_ AppContext      = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() kvstore.Store {
	return a.store
}

func (a *Application) Storage() *storage.Storage {
	return a.storages
}

func (a *Application) Auth() *auth.Service {
	return a.authsrv
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// OverrideStore replaces the application's key-value store (used in tests).
func (a *Application) OverrideStore(store kvstore.Store) {
	a.store = store
	a.bus = EventBus.New()
	a.storages = storage.New(store, a.bus)
	a.authsrv = auth.NewService(store, a.appConfig.Web.JwtSecret)
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
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
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Open the on-device key-value store
	if err := os.MkdirAll(cfg.System.Workdir, 0755); err != nil {
		zap.S().Errorf("workdir init failed: %v", err)
	}
	storePath := filepath.Join(cfg.System.Workdir, StoreFilename)
	a.boltStore, err = kvstore.NewBoltStore(storePath)
	if err != nil {
		zap.S().Fatalf("store open failed: %v", err)
	}
	a.store = a.boltStore
	zap.S().Infof("Store opened: %s", storePath)

	a.bus = EventBus.New()
	a.storages = storage.New(a.store, a.bus)
	a.authsrv = auth.NewService(a.store, cfg.Web.JwtSecret)

	a.subscribeChangeLog()

	a.checkAdminUser()
	a.checkCategories()
}

// subscribeChangeLog logs every collection change at debug level. This is the
// in-process stand-in for the UI refresh hooks of the mobile client.
func (a *Application) subscribeChangeLog() {
	for _, key := range domain.CollectionKeys {
		for _, event := range []string{"saved", "deleted"} {
			topic := "storage." + key + "." + event
			collection, change := key, event
			if err := a.bus.Subscribe(topic, func(id string) {
				zap.L().Debug("collection changed",
					zap.String("collection", collection),
					zap.String("event", change),
					zap.String("id", id))
			}); err != nil {
				zap.L().Warn("change log subscription failed",
					zap.String("topic", topic), zap.Error(err))
			}
		}
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.boltStore != nil {
		_ = a.boltStore.Close()
	}
	_ = zap.L().Sync()
}
