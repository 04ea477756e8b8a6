package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/AMSkillPower/TaskMngrCommenti/internal/configs"
	httpapi "github.com/AMSkillPower/TaskMngrCommenti/internal/http"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/queue"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API and the overdue task sweeper",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, database, err := bootstrap()
		if err != nil {
			return err
		}

		redisClient, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return err
		}

		var lease queue.Lease = queue.NewLocalLease()
		if redisClient != nil {
			defer redisClient.Close()
			lease = queue.NewRedisLease(redisClient, cfg.RedisLeaseKey)
			logging.Logger.WithField("addr", cfg.RedisAddr).Info("overdue sweep lease stored in redis")
		}

		taskRepo := repository.NewTaskRepository(database)
		userService := services.NewUserService(repository.NewUserRepository(database))
		notificationService := services.NewNotificationService(
			repository.NewNotificationRepository(database),
			userService,
			services.BreakerSettings{
				Failures: cfg.NotifyBreakerFailures,
				Timeout:  time.Duration(cfg.NotifyBreakerTimeoutSeconds) * time.Second,
			},
		)

		overdue := services.NewOverdueService(taskRepo, userService, notificationService, lease, services.OverdueOptions{
			Workers:   cfg.OverdueWorkers,
			QueueSize: cfg.OverdueQueueSize,
			BatchSize: cfg.OverdueBatchSize,
			Interval:  time.Duration(cfg.OverdueScanIntervalSeconds) * time.Second,
		})

		handler := httpapi.NewHandler(
			services.NewTaskService(taskRepo, repository.NewTaskLogRepository(database), userService, notificationService),
			services.NewCommentService(repository.NewCommentRepository(database), taskRepo),
			services.NewAttachmentService(repository.NewAttachmentRepository(database), taskRepo),
			notificationService,
			userService,
		)

		e := echo.New()
		httpapi.Register(e, handler, httpapi.Options{
			RateLimitPerMinute: cfg.RateLimit,
			AllowedOrigins:     cfg.CORSAllowedOrigins,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Logger.WithError(err).Error("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logging.Logger.WithError(err).Warn("HTTP server shutdown failed")
		}
		overdue.Shutdown(shutdownCtx)

		logging.Logger.Info("HTTP server and overdue sweeper shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
