package main

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Nerzal/gocloak/v13"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NGanna24/mi-gban-sub000/config"
	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/handlers"
	"github.com/NGanna24/mi-gban-sub000/notifiers"
)

var (
	auth           *handlers.AuthHandler
	UserContextKey = "user"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(90)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	usersRepo := repos.NewUserRepo(db)
	listingsRepo := repos.NewListingRepo(db)
	alertsRepo := repos.NewAlertRepo(db)
	notificationsRepo := repos.NewNotificationRepo(db)
	reservationsRepo := repos.NewReservationRepo(db)
	preferencesRepo := repos.NewPreferenceRepo(db)
	favoritesRepo := repos.NewFavoriteRepo(db)
	paymentsRepo := repos.NewPaymentRepo(db)

	keycloakClient := gocloak.NewClient(config.Config.KeycloakURL)
	auth = handlers.NewAuthHandler(keycloakClient)
	go auth.StartTokenTicker()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	push, err := notifiers.NewFCMSender(ctx, config.Config.FirebaseCredentials)
	if err != nil {
		slog.Error("failed to create push sender", "error", err)
		os.Exit(1)
	}

	mailer := notifiers.NewMailer(
		config.Config.SMTPHost,
		config.Config.SMTPPort,
		config.Config.SMTPFrom,
		config.Config.SMTPPassword,
	)

	sweeper := NewSweeper(alertsRepo, listingsRepo, notificationsRepo, push,
		time.Duration(config.Config.SweepIntervalMinutes)*time.Minute)
	if config.Config.EnableSweepTicker {
		go sweeper.Start(ctx)
	}

	users := handlers.NewUserHandler(usersRepo)
	listings := handlers.NewListingHandler(listingsRepo)
	search := handlers.NewSearchHandler(listingsRepo, preferencesRepo)
	alerts := handlers.NewAlertHandler(alertsRepo)
	notifications := handlers.NewNotificationHandler(notificationsRepo)
	reservations := handlers.NewReservationHandler(reservationsRepo)
	preferences := handlers.NewPreferenceHandler(preferencesRepo)
	favorites := handlers.NewFavoriteHandler(favoritesRepo, listingsRepo)
	payments := handlers.NewPaymentHandler(paymentsRepo, listingsRepo)
	messages := handlers.NewMessageHandler(mailer, listingsRepo, usersRepo)

	var media *handlers.MediaHandler
	if config.Config.CloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(config.Config.CloudinaryURL)
		if err != nil {
			slog.Error("failed to create cloudinary client", "error", err)
			os.Exit(1)
		}
		media = handlers.NewMediaHandler(cld)
	} else {
		media = handlers.NewMediaHandler(nil)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /users/init", private(users.InitializeUser))
	mux.HandleFunc("POST /users/push-token", private(users.RegisterPushToken))

	mux.HandleFunc("POST /listings", private(listings.CreateListing))
	mux.HandleFunc("GET /listings/search", optional(search.Search))
	mux.HandleFunc("GET /listings/{id}", public(listings.GetListing))
	mux.HandleFunc("PUT /listings/{id}", private(listings.UpdateListing))
	mux.HandleFunc("PATCH /listings/{id}/status", private(listings.UpdateStatus))
	mux.HandleFunc("DELETE /listings/{id}", private(listings.DeleteListing))
	mux.HandleFunc("POST /listings/{id}/view", optional(listings.RecordView))
	mux.HandleFunc("GET /listings/{id}/availability", public(reservations.GetAvailability))

	mux.HandleFunc("POST /alerts", private(alerts.CreateAlert))
	mux.HandleFunc("GET /alerts", private(alerts.GetAlerts))
	mux.HandleFunc("GET /alerts/{id}", private(alerts.GetAlert))
	mux.HandleFunc("PUT /alerts/{id}", private(alerts.UpdateAlert))
	mux.HandleFunc("DELETE /alerts/{id}", private(alerts.DeleteAlert))

	mux.HandleFunc("GET /notifications", private(notifications.GetNotifications))
	mux.HandleFunc("PATCH /notifications/{id}", private(notifications.UpdateNotification))

	mux.HandleFunc("POST /favorites", private(favorites.AddFavorite))
	mux.HandleFunc("GET /favorites", private(favorites.GetFavorites))
	mux.HandleFunc("DELETE /favorites/{id}", private(favorites.RemoveFavorite))

	mux.HandleFunc("POST /reservations", private(reservations.CreateReservation))
	mux.HandleFunc("GET /reservations", private(reservations.GetReservations))

	mux.HandleFunc("GET /preferences", private(preferences.GetProfile))
	mux.HandleFunc("PUT /preferences", private(preferences.UpdateProfile))

	mux.HandleFunc("POST /payments", private(payments.CreatePayment))
	mux.HandleFunc("GET /payments", private(payments.GetPayments))

	mux.HandleFunc("GET /media/upload-signature", private(media.GetUploadSignature))

	mux.HandleFunc("POST /messages/contact", private(messages.ContactAgency))

	mux.HandleFunc("POST /sweep", sweepTrigger(sweeper))

	mux.Handle("GET /metrics", promhttp.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)

	}()

	slog.Info("Starting server on port 8080")
	err = http.ListenAndServe(":8080", withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

// sweepTrigger lets an external scheduler run one sweep pass. It is
// guarded by a shared key rather than a user token.
func sweepTrigger(sweeper *Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != config.Config.SweepAPIKey {
			writeResult(w, handlers.Unauthorized("Invalid API key"))
			return
		}

		result, err := sweeper.Sweep(r.Context())
		if err != nil {
			writeResult(w, handlers.InternalError(err, "sweep: "))
			return
		}

		writeResult(w, handlers.Ok(map[string]interface{}{
			"checked":  result.Checked,
			"skipped":  result.Skipped,
			"notified": result.Notified,
			"failed":   result.Failed,
		}))
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-api-key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func private(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyHeader := r.Header.Get("x-api-key")
		authHeader := r.Header.Get("Authorization")
		result := auth.GetUser(r.Context(), keyHeader, authHeader)
		if result.Code != http.StatusOK {
			slog.Debug("unauthorized request", "path", r.URL.Path)
			writeResult(w, result)
			return
		}

		user := result.Body.(data.User)
		ctx := context.WithValue(r.Context(), UserContextKey, user)

		public(handler)(w, r.WithContext(ctx))
	}
}

// optional resolves the user when a token is present but serves the
// request anonymously otherwise.
func optional(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			public(handler)(w, r)
			return
		}

		result := auth.GetUser(r.Context(), r.Header.Get("x-api-key"), authHeader)
		if result.Code != http.StatusOK {
			public(handler)(w, r)
			return
		}

		user := result.Body.(data.User)
		ctx := context.WithValue(r.Context(), UserContextKey, user)
		public(handler)(w, r.WithContext(ctx))
	}
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		httpRequests.WithLabelValues(r.Method, strconv.Itoa(res.Code)).Inc()
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Code == http.StatusInternalServerError {
		slog.Error("internal error", "error", res.Error.Error())
	}
}
