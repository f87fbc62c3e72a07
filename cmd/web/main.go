package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/shiftease/shiftease-web/internal/config"
	"github.com/shiftease/shiftease-web/internal/gateway/restapi"
	"github.com/shiftease/shiftease-web/internal/handler/web"
	availabilityService "github.com/shiftease/shiftease-web/internal/service/availability"
	requestService "github.com/shiftease/shiftease-web/internal/service/request"
	rosterService "github.com/shiftease/shiftease-web/internal/service/roster"
	scheduleService "github.com/shiftease/shiftease-web/internal/service/schedule"
	"github.com/shiftease/shiftease-web/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.App.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftease-web"),
		slog.String("env", cfg.App.Env),
	)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.App.Env == "production")

	apiClient := restapi.NewClient(cfg.API)
	authGW := restapi.NewAuthGateway(apiClient)
	userGW := restapi.NewUserGateway(apiClient)
	shiftGW := restapi.NewShiftGateway(apiClient)
	timeoffGW := restapi.NewTimeOffGateway(apiClient)
	swapGW := restapi.NewSwapGateway(apiClient)
	clockGW := restapi.NewClockGateway(apiClient)

	rosterSvc := rosterService.NewService(userGW)
	scheduleSvc := scheduleService.NewService(shiftGW)
	availSvc := availabilityService.NewService(userGW)
	requestSvc := requestService.NewService(timeoffGW, swapGW, shiftGW)

	renderer := web.NewRenderer(logger)

	handlers := web.Handlers{
		Auth:         web.NewAuthHandler(authGW, sessions, renderer, logger),
		Dashboard:    web.NewDashboardHandler(rosterSvc, clockGW, renderer, logger),
		Admin:        web.NewAdminHandler(rosterSvc, availSvc, shiftGW, renderer, logger),
		Schedule:     web.NewScheduleHandler(scheduleSvc, renderer, logger),
		Availability: web.NewAvailabilityHandler(availSvc, rosterSvc, renderer, logger),
		Requests:     web.NewRequestHandler(requestSvc, renderer, logger),
		Profile:      web.NewProfileHandler(rosterSvc, renderer, logger),
	}

	router := web.NewRouter(logger, sessions, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("ShiftEase web listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
