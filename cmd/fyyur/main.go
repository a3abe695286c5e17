package main

import (
	"context"
	"errors"
	"fmt"
	"fyyur-backend/cmd/fyyur/apis"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"fyyur-backend/cmd/fyyur/seed"
	"fyyur-backend/cmd/fyyur/templates"
	"io"
	"io/fs"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	ListenAddr string `envconfig:"LISTEN_ADDR" default:":5000"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
	LogFile    string `envconfig:"LOG_FILE" default:"error.log"`
	SeedDir    string `envconfig:"SEED_DIR"`
}

func (cfg EnvCfg) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

// loadConfig reads an optional .env file before processing FYYUR_* variables.
func loadConfig() (EnvCfg, error) {
	var cfg EnvCfg

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	err := envconfig.Process("FYYUR", &cfg)
	return cfg, err
}

// logWriter tees logs into a rotated file unless running in debug mode.
func logWriter(cfg EnvCfg) io.Writer {
	if cfg.Debug || cfg.LogFile == "" {
		return os.Stdout
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func gormLogger(cfg EnvCfg, w io.Writer) logger.Interface {
	level := logger.Warn
	if cfg.Debug {
		level = logger.Info
	}

	return logger.New(
		stdlog.New(w, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.Debug,
		},
	)
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func newServer(cfg EnvCfg, db *gorm.DB, w io.Writer) (*echo.Echo, error) {

	renderer, err := templates.New()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Logger.SetOutput(w)
	e.Logger.SetLevel(log.INFO)
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Validator = forms.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = apis.NewHTTPErrorHandler()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("[%s] %s %s %d %s", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	rootg := e.Group("")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	apis.
		NewHomeAPI().
		Setup(rootg)

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	apis.
		NewVenueAPI(venueRepo).
		Setup(rootg)

	apis.
		NewArtistAPI(artistRepo).
		Setup(rootg)

	apis.
		NewShowAPI(showRepo).
		Setup(rootg)

	return e, nil
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	w := logWriter(cfg)

	db, err := gorm.Open(
		postgres.Open(cfg.DSN()),
		&gorm.Config{
			Logger: gormLogger(cfg, w),
		},
	)
	if err != nil {
		panic(err)
	}

	err = db.AutoMigrate(&model.Venue{}, &model.Artist{}, &model.Show{})
	if err != nil {
		panic(err)
	}

	e, err := newServer(cfg, db, w)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDir != "" {
		res, err := seed.LoadDB(ctx, db, cfg.SeedDir, cfg.Debug)
		if err != nil {
			e.Logger.Fatalf("seed %s: %v", cfg.SeedDir, err)
		}
		e.Logger.Infof("seeded %d venues, %d artists, %d shows", res.Venues, res.Artists, res.Shows)
	}

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}

}
