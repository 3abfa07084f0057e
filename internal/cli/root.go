package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/api"
	"github.com/spec-kit/erp-admin-client/internal/authz"
	"github.com/spec-kit/erp-admin-client/internal/config"
	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/events"
	"github.com/spec-kit/erp-admin-client/internal/observability"
	"github.com/spec-kit/erp-admin-client/internal/session"
	"github.com/spec-kit/erp-admin-client/internal/tokenstore"
	"github.com/spec-kit/erp-admin-client/internal/transport"
)

// app carries the explicitly constructed client stack shared by all
// commands. Nothing here is package-global state.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   tokenstore.Store
	api     *api.Client
	session *session.Manager
}

// NewRootCmd creates the root cobra command for erpctl.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "erpctl",
		Short:        "Admin client for the ERP backend",
		Long:         "erpctl manages categories, menus, products, orders, staff, and inventory against the ERP REST API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newNavCmd(a),
		newCategoriesCmd(a),
		newMenusCmd(a),
		newProductsCmd(a),
		newOrdersCmd(a),
		newStaffCmd(a),
		newInventoryCmd(a),
		newProfileCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	a.logger = logger

	switch cfg.TokenStore.Backend {
	case "redis":
		a.store = tokenstore.NewRedis(cfg.Redis, logger)
	case "memory":
		a.store = tokenstore.NewMemory()
	default:
		a.store = tokenstore.NewFile(cfg.TokenStore.Path)
	}

	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventAuthExpired, func(context.Context, events.Event) error {
		fmt.Println("Session expired; run 'erpctl login' to sign in again.")
		return nil
	})

	httpClient := transport.NewClient(cfg.API.BaseURL, a.store, logger, transport.Options{
		Timeout: cfg.API.Timeout(),
		Metrics: observability.NewMetrics(),
		OnAuthExpired: func() {
			if a.session != nil {
				a.session.Invalidate(context.Background())
			}
		},
	})
	a.api = api.NewClient(httpClient, logger)
	a.session = session.NewManager(a.store, a.api, logger, dispatcher)
	a.session.Subscribe(func(state session.State) {
		logger.Debug("session state changed", zap.String("status", state.Status.String()))
	})
	return nil
}

// guard rehydrates the session and applies the route guard before a
// protected command runs.
func (a *app) guard(ctx context.Context, roles ...domain.Role) error {
	if err := a.session.Rehydrate(ctx); err != nil {
		return err
	}

	switch authz.Guard(a.session.State(), roles) {
	case authz.DecisionRedirectLogin:
		return errors.New("not signed in; run 'erpctl login' first")
	case authz.DecisionRedirectUnauthorized:
		return errors.New("your role does not permit this action")
	}
	return nil
}
