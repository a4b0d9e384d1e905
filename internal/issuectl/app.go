// Package issuectl wires the client's services together for commands to
// consume.
package issuectl

import (
	"github.com/colonyops/issuectl/internal/api"
	"github.com/colonyops/issuectl/internal/core/auth"
	"github.com/colonyops/issuectl/internal/core/config"
	"github.com/colonyops/issuectl/internal/core/notify"
	"github.com/colonyops/issuectl/internal/data/db"
)

// App is the central entry point for all issuectl operations. Commands
// consume App instead of cherry-picking raw dependencies.
type App struct {
	Session *auth.Controller
	API     *api.Client
	Bus     *notify.Bus
	Config  *config.Config
	DB      *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	session *auth.Controller,
	client *api.Client,
	bus *notify.Bus,
	cfg *config.Config,
	database *db.DB,
) *App {
	return &App{
		Session: session,
		API:     client,
		Bus:     bus,
		Config:  cfg,
		DB:      database,
	}
}
