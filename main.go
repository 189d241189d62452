package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mpetrov/flightdesk/bootstrap"
	"github.com/mpetrov/flightdesk/config"
	"github.com/mpetrov/flightdesk/log"
	"github.com/mpetrov/flightdesk/reqctx"
)

type toolServer struct {
	app *bootstrap.App
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type toolResponse struct {
	Tool string `json:"tool"`
	Text string `json:"text"`
}

func (s *toolServer) listTools(c echo.Context) error {
	infos := make([]toolInfo, 0)
	for _, name := range s.app.Registry.Names() {
		tool, _ := s.app.Registry.Get(name)
		infos = append(infos, toolInfo{Name: tool.Name(), Description: tool.Description()})
	}
	return c.JSON(http.StatusOK, infos)
}

func (s *toolServer) callTool(c echo.Context) error {
	name := c.Param("name")

	args := map[string]interface{}{}
	if err := c.Bind(&args); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON arguments")
	}

	ctx := reqctx.WithRequestID(c.Request().Context(), reqctx.NewRequestID())
	log.Infof(ctx, "tool called: %s", name)

	text, err := s.app.Registry.Execute(ctx, name, args)
	if err != nil {
		log.Errorf(ctx, "tool %s failed: %v", name, err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, toolResponse{Tool: name, Text: text})
}

func main() {
	log.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Infof(context.Background(), "shutdown signal received")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "setup failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := &toolServer{app: app}
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/tools", server.listTools)
	e.POST("/tools/:name", server.callTool)

	go func() {
		<-ctx.Done()
		log.Infof(context.Background(), "shutting down server")
		e.Shutdown(context.Background())
	}()

	log.Infof(context.Background(), "starting server on port %s", cfg.Server.Port)
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf(context.Background(), "server failed: %v", err)
	}
}
