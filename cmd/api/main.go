// @title Planner API
// @description API for the personal task planner: tasks, streaks, calendar and statistics
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/planner/internal/api"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/internal/seed"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/cleanup"
	"github.com/limbo/planner/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	loc := cfg.GetLocation("TIMEZONE")

	tasksRepo := repository.NewTasksRepo()
	if cfg.GetBool("SEED_TASKS", true) {
		tasks, err := seed.DefaultTasks(time.Now().In(loc))
		if err != nil {
			log.Fatal("loading default tasks error: " + err.Error())
		}
		tasksRepo = repository.NewTasksRepoWithTasks(tasks)
		slog.Info("default tasks loaded", slog.Int("count", len(tasks)))
	}
	prefsRepo := repository.NewPreferencesRepo(
		cfg.GetStringOr("USER_NAME", "User"),
		cfg.GetStringOr("USER_EMAIL", "user@example.com"),
	)

	serv := api.New(&api.ServicesList{
		TasksService: service.NewTasksService(tasksRepo, service.TasksServiceOpts{
			WeekStart: cfg.GetWeekday("WEEK_START", time.Saturday),
			Location:  loc,
		}),
		PreferencesService: service.NewPreferencesService(prefsRepo, cfg.GetDuration("PREFERENCES_SAVE_DELAY", 0)),
	})

	cleanedUp := make(chan struct{})
	go func() {
		defer close(cleanedUp)
		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
		<-exit
		slog.Info("shutting down")
		cleanup.CleanUp()
	}()

	address := cfg.GetStringOr("API_ADDRESS", ":8080")
	slog.Info("starting server", slog.String("address", address))
	err := serv.Run(address)
	if err != nil {
		log.Println("Server error: " + err.Error())
		return
	}
	<-cleanedUp
}
