package setup

import (
	"github.com/feedboard-dev/feedboard/internal/config"
	"github.com/feedboard-dev/feedboard/internal/handler"
	"github.com/feedboard-dev/feedboard/internal/jwt"
	"github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/service"
	"github.com/feedboard-dev/feedboard/internal/storage/pg"
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes storage, services and handlers.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey())

	board := service.NewBoard(storage)
	feedback := service.NewFeedback(storage, storage)
	comment := service.NewComment(storage, storage)
	membership := service.NewMembership(storage, storage)
	invite := service.NewInvite(storage, storage, cfg.Public.InviteTokenLen)
	analytics := service.NewAnalytics(storage)

	h := handler.New(board, feedback, comment, membership, invite, analytics, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
