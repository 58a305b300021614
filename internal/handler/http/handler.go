package http

import (
	"net/http"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/config"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/utils"
)

// sessionIssuer is the iss claim stamped on every session cookie.
const sessionIssuer = "monosync-gate"

// Handler is the session gate. It authenticates requests via a signed
// session cookie, exchanges verified record-service tokens for new sessions,
// and serves the pre-rendered client pages with configuration flags
// injected.
type Handler struct {
	verifier baas.TokenVerifier
	config   *config.GateConfig
	pages    *pageCache
	static   http.Handler
	uuid     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(verifier baas.TokenVerifier, cfg *config.GateConfig, logger *logger.Logger) (*Handler, error) {
	pages, err := loadPages(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("gate handler created")
	return &Handler{
		verifier: verifier,
		config:   cfg,
		pages:    pages,
		static:   http.FileServer(http.Dir(cfg.DistDir)),
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}
