package usecase

import (
	"cinema-backend/internal/data/repository"
	"cinema-backend/pkg/mailer"
	"cinema-backend/pkg/paygate"
	"cinema-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking  BookingService
	Invoice  InvoiceService
	Showtime ShowtimeService
	Notify   NotifyService
	Customer CustomerService
	Cinema   CinemaService
	Product  ProductService
	Save     SaveService
	Payment  PaymentService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, dispatch *mailer.Dispatcher, gateway *paygate.Gateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:  NewBookingService(repo, dispatch, config, log),
		Invoice:  NewInvoiceService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Notify:   NewNotifyService(repo, mail, config.Notify, log),
		Customer: NewCustomerService(repo, log),
		Cinema:   NewCinemaService(repo, log),
		Product:  NewProductService(repo, log),
		Save:     NewSaveService(repo, log),
		Payment:  NewPaymentService(repo, gateway, log),
	}
}
