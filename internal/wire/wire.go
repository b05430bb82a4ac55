package wire

import (
	"net/http"

	"cinema-backend/internal/adaptor"
	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/mailer"
	"cinema-backend/pkg/middleware"
	"cinema-backend/pkg/paygate"
	"cinema-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router   *chi.Mux
	Dispatch *mailer.Dispatcher
}

// Wiring initializes services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	mail := mailer.NewSMTPMailer(config.SMTP, logger)
	dispatch := mailer.NewDispatcher(mail, config.Notify.Workers, config.Notify.QueueSize, config.Notify.SendTimeout, logger)

	gateway, err := paygate.New(config.Payment)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, mail, dispatch, gateway, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:   setupRouter(handler, logger),
		Dispatch: dispatch,
	}, nil
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireBooking(r, handler.Booking)
	wireInvoice(r, handler.Invoice)
	wireShowtime(r, handler.Showtime)
	wireCustomer(r, handler.Customer)
	wireCatalog(r, handler.Cinema, handler.Product)
	wireSave(r, handler.Save)
	wirePayment(r, handler.Payment)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
