package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "pet-care-reminders/docs"
	mem "pet-care-reminders/internal/adapters/storage/memory"
	pg "pet-care-reminders/internal/adapters/storage/postgres"
	"pet-care-reminders/internal/domain/pets"
	"pet-care-reminders/internal/domain/reminders"
	"pet-care-reminders/internal/middleware"
	"pet-care-reminders/internal/platform/logger"
	"pet-care-reminders/internal/platform/metrics"
	"pet-care-reminders/internal/ports/auth"
	"pet-care-reminders/internal/ports/capabilities"
	"pet-care-reminders/internal/ports/notifications"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres (ya migrado). Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger      // nil => nop
	Metrics *metrics.Collector // nil => sin /metrics

	// nil => no se notifica al generar recordatorios.
	Notifier notifications.Dispatcher

	// nil => el alta manual de recordatorios no se restringe por plan.
	Capabilities capabilities.CapabilitiesResolver

	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.DebugUserHeader},
			ExposedHeaders:   []string{"X-Request-Id", reminders.HeaderTotalCount, reminders.HeaderNextOffset},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(opts.Metrics))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo      pets.Repository
		reminderRepo reminders.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		reminderRepo = pg.NewRemindersRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		reminderRepo = mem.NewReminderRepo(petRepo)
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo, log)
	remindersSvc := reminders.NewService(reminderRepo, petsSvc, reminders.Options{
		Notifier: opts.Notifier,
		Logger:   log,
		Metrics:  opts.Metrics,
	})

	// Alta de mascota => generación de recordatorios.
	petsSvc.OnRegistered(func(ctx context.Context, p pets.Pet) error {
		_, err := remindersSvc.Schedule(ctx, reminders.Pet{
			ID:        p.ID,
			Species:   p.Species,
			BirthDate: p.BirthDate,
			UserID:    p.OwnerUserID,
		})
		return err
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	reminders.RegisterRoutes(r, remindersSvc, opts.Capabilities)

	return r
}
