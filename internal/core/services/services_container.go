package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		slog.Warn("Unknown business timezone, falling back to UTC", "timezone", cfg.BusinessTimezone, "error", err)
		loc = time.UTC
	}

	container := &portssvc.ServiceContainer{}
	container.Bank = NewBankService(repos.BankRepo, repos.CheckbookRepo)
	container.Checkbook = NewCheckbookService(repos.CheckbookRepo, repos.BankRepo, repos.CheckRepo)
	container.Check = NewCheckService(
		repos.CheckRepo,
		repos.CheckbookRepo,
		WithLocation(loc),
		WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
	)
	container.Report = NewReportService(container.Check, WithReportLocation(loc))

	return container
}
