package app

import (
	"errors"

	"github.com/orderdesk/internal/cache"
	"github.com/orderdesk/internal/config"
	"github.com/orderdesk/internal/dialogue"
	"github.com/orderdesk/internal/gateway"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/repository"
	"github.com/orderdesk/internal/service"
)

// BuildRunner wires repositories, services, the dialogue engine and the
// webhook router into a runnable set of services.
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if models.DB == nil {
		return nil, errors.New("database is not initialized")
	}

	userRepo := repository.NewUserRepository(models.DB)
	refRepo := repository.NewReferenceRepository(models.DB)
	orderRepo := repository.NewOrderRepository(models.DB)

	userService, err := service.NewUserService(userRepo, cfg.Auth.AdminPassword)
	if err != nil {
		return nil, err
	}
	orderService := service.NewOrderService(orderRepo, refRepo)
	refService := service.NewReferenceService(refRepo)

	var sessions dialogue.SessionStore
	if cache.Enabled() {
		sessions = dialogue.NewCacheSessionStore()
	} else {
		sessions = dialogue.NewMemorySessionStore()
	}

	engine := dialogue.NewEngine(sessions, orderService, refService, userService)
	router := gateway.SetupRouter(cfg, engine)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	httpService := NewHTTPService(addr, router)

	return NewRunner(httpService), nil
}

// Run is the application entry point.
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr)
	return RunWithOptions(runner, opts)
}
