// Package api provides the HTTP API for the application
package api

import (
	_ "embed"
	"time"

	"hangman/internal/core/catalog"
	"hangman/internal/platform/config"
	"hangman/internal/platform/logger"
	phttp "hangman/internal/platform/net/http"
	"hangman/internal/platform/store"

	"hangman/internal/modkit"
	"hangman/internal/modkit/httpkit"
	"hangman/internal/modkit/module"
	"hangman/internal/modkit/swaggerkit"

	gamesmod "hangman/internal/services/api/games/module"
	metamod "hangman/internal/services/api/meta/module"
	usersmod "hangman/internal/services/api/users/module"
	wordbanksmod "hangman/internal/services/api/wordbanks/module"
)

//go:embed openapi.yaml
var openAPI []byte

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Catalog        *catalog.Catalog
	EnableSwagger  bool
	EnableProfiler bool
}

// FromConfig reads the CORE_API_ toggles
func FromConfig(cfg config.Conf) Options {
	ac := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  ac.MayBool("SWAGGER", false),
		EnableProfiler: ac.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Catalog: opt.Catalog,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	// users owns identity, its player port guards the other modules
	users := usersmod.New(deps)
	auth := module.MustPortsOf[usersmod.Ports](users).Player

	mods := []module.Module{
		metamod.New(deps),
		users,
		gamesmod.New(deps, gamesmod.FromConfig(deps.Cfg), modkit.WithPorts(gamesmod.Ports{Auth: auth})),
		wordbanksmod.New(deps, modkit.WithPorts(wordbanksmod.Ports{Auth: auth})),
	}

	ac := deps.Cfg.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: ac.MayCSV("CORS_ORIGINS", nil),
		Timeout:     ac.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        ac.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	})

	swaggerkit.Mount(r, opt.EnableSwagger, openAPI)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			deps.Logger().Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}
