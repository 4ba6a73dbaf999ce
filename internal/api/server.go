package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/cleanup"
)

type Server struct {
	mx           *chi.Mux
	tasksService service.TasksServiceI
	prefsService service.PreferencesServiceI
}

type ServicesList struct {
	TasksService       service.TasksServiceI
	PreferencesService service.PreferencesServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.TasksService == nil || servicesOptions.PreferencesService == nil {
		log.Fatal("api server: provided nil services")
	}
	s := &Server{
		mx:           chi.NewMux(),
		tasksService: servicesOptions.TasksService,
		prefsService: servicesOptions.PreferencesService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.ListTasks)
			r.Post("/", s.CreateTask)
			r.Get("/{id}", s.GetTask)
			r.Put("/{id}", s.UpdateTask)
			r.Delete("/{id}", s.DeleteTask)
			r.Post("/{id}/complete", s.CompleteTask)
		})
		r.Get("/stats", s.GetStats)
		r.Get("/stats/activity", s.GetActivity)
		r.Get("/stats/streaks", s.GetStreaks)
		r.Get("/calendar", s.GetCalendar)
		r.Get("/preferences", s.GetPreferences)
		r.Patch("/preferences", s.UpdatePreferences)
		r.Get("/user", s.GetUser)
		r.Patch("/user", s.UpdateUser)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks serving on address until the server is shut down by cleanup.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
