package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// ShowtimeAlertData feeds the "new showtime" notification mail.
type ShowtimeAlertData struct {
	MovieTitle string
	StartTime  time.Time
	CinemaName string
}

// BookingConfirmationData feeds the booking confirmation mail.
type BookingConfirmationData struct {
	CustomerName  string
	InvoiceCode   string
	MovieTitle    string
	CinemaName    string
	CinemaAddress string
	StartTime     time.Time
	TicketPrice   float64
	Seats         []string
	Products      []BookingProductLine
	TotalAmount   float64
}

type BookingProductLine struct {
	Name     string
	Quantity int
	Price    float64
}

var showtimeAlertTmpl = template.Must(template.New("showtime_alert").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
    <h2 style="margin: 0;">New showtime: {{.MovieTitle}}</h2>
  </div>
  <div style="background: #fff; padding: 20px; border: 1px solid #eee;">
    <p>Hello,</p>
    <p><strong>{{.MovieTitle}}</strong> has a new showtime:</p>
    <ul>
      <li><strong>Time:</strong> {{.StartTime.Format "02 Jan 2006 15:04"}}</li>
      {{if .CinemaName}}<li><strong>Cinema:</strong> {{.CinemaName}}</li>{{end}}
    </ul>
    <p>Check it out and book your seats if you are interested.</p>
  </div>
  <div style="text-align: center; font-size: 12px; color: #888; margin-top: 12px;">&copy; Cinema Booking System</div>
</div>
`))

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 30px; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">Booking Confirmed</h1>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border: 1px solid #ddd; border-top: none;">
    <p style="margin-top: 0;">Hello <strong>{{.CustomerName}}</strong>,</p>
    <p>Your booking has been confirmed. Details below:</p>
    <div style="background: white; padding: 20px; border-left: 4px solid #667eea; margin: 20px 0;">
      <p><strong>Booking code:</strong> {{.InvoiceCode}}</p>
      <p><strong>Movie:</strong> {{.MovieTitle}}</p>
      <p><strong>Cinema:</strong> {{.CinemaName}}</p>
      <p><strong>Address:</strong> {{.CinemaAddress}}</p>
      <p><strong>Time:</strong> {{.StartTime.Format "02 Jan 2006 15:04"}}</p>
      <p><strong>Ticket price:</strong> {{printf "%.0f" .TicketPrice}}</p>
      <p><strong>Seats:</strong> {{range $i, $s := .Seats}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
    </div>
    {{if .Products}}
    <table style="width: 100%; border-collapse: collapse; background: white;">
      <thead><tr>
        <th style="padding: 8px; text-align: left;">Product</th>
        <th style="padding: 8px; text-align: center;">Qty</th>
        <th style="padding: 8px; text-align: right;">Price</th>
      </tr></thead>
      <tbody>
      {{range .Products}}
        <tr style="border-bottom: 1px solid #eee;">
          <td style="padding: 8px;">{{.Name}}</td>
          <td style="padding: 8px; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 8px; text-align: right;">{{printf "%.0f" .Price}}</td>
        </tr>
      {{end}}
      </tbody>
    </table>
    {{end}}
    <div style="background: #f0f4ff; padding: 15px; margin: 20px 0; border-left: 4px solid #667eea;">
      <strong>Total:</strong> {{printf "%.0f" .TotalAmount}}
    </div>
    <p style="color: #888; font-size: 13px;">Please arrive 15 minutes early and bring this booking code.</p>
  </div>
  <div style="text-align: center; font-size: 12px; color: #888; margin-top: 12px;">&copy; Cinema Booking System</div>
</div>
`))

// RenderShowtimeAlert returns subject and HTML body for a new showtime mail.
func RenderShowtimeAlert(data ShowtimeAlertData) (string, string, error) {
	var buf bytes.Buffer
	if err := showtimeAlertTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render showtime alert: %w", err)
	}
	subject := fmt.Sprintf("New showtime: %s", data.MovieTitle)
	return subject, buf.String(), nil
}

// RenderBookingConfirmation returns subject and HTML body for a confirmation mail.
func RenderBookingConfirmation(data BookingConfirmationData) (string, string, error) {
	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render booking confirmation: %w", err)
	}
	subject := fmt.Sprintf("Booking Confirmation - Code: %s", data.InvoiceCode)
	return subject, buf.String(), nil
}
