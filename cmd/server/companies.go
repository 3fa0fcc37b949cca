package main

import (
	"context"

	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/storage"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
)

// seedCompanyProfiles stores the configured DATEV identifiers so exports
// carry advisor and client numbers.
func seedCompanyProfiles(ctx context.Context, store *storage.MemoryStore, companies []config.CompanyProfileConfig, log *logger.Logger) error {
	for _, c := range companies {
		profile := &domain.CompanyProfile{
			ID:              c.CompanyID,
			AdvisorNumber:   c.AdvisorNumber,
			ClientNumber:    c.ClientNumber,
			FiscalYearStart: c.FiscalYearStart,
		}
		if err := store.SaveCompanyProfile(ctx, profile); err != nil {
			return err
		}
		log.Info(logger.WithCompanyID(ctx, c.CompanyID), "Company profile registered",
			"client_number", c.ClientNumber,
		)
	}
	return nil
}
