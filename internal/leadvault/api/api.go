package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/leadvault/internal/leadvault/service"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	backup *Backup
	lead   *Lead
}

func New(addr string, backupService *service.BackupService, leadService *service.LeadService, statsService *service.StatsService) (*API, error) {
	engine := gin.Default()
	api := &API{
		engine: engine,
		backup: NewBackup(backupService),
		lead:   NewLead(leadService, statsService),
	}
	group := engine.Group("/api")
	api.backup.RegisterRoutes(group)
	api.lead.RegisterRoutes(group)
	api.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	return api, nil
}

func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "LeadVault API"
}
