package usecase

import (
	"fmt"
	"time"

	"garatge-booking/internal/data/entity"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/utils"
)

// Email bodies mirror the production site's notifications: one message
// to the customer, one to the workshop inbox, per flow.

const displayDateLayout = "02/01/2006"

func fmtDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func cancelLink(cfg *utils.Config, path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", cfg.App.BaseURL, path, token)
}

func reservationCustomerEmail(r *entity.Reservation, cfg *utils.Config) mailer.Message {
	subject := "✅ Sol·licitud de Reserva Rebuda - Garatge Estació"
	if r.Kind == entity.ResourceKindMotorhome {
		subject = "🏕️ Sol·licitud de Reserva Rebuda - Garatge Estació"
	}

	return mailer.Message{
		To:      r.CustomerEmail,
		Subject: subject,
		HTML: fmt.Sprintf(`<h1>Hola %s,</h1>
<p>Hem rebut correctament la teva sol·licitud de reserva per a <strong>%s</strong>.</p>
<p><strong>Dates:</strong> del %s al %s (%d dies).</p>
<p><strong>Preu total estimat:</strong> %.2f€</p>
<p>En breu, un membre del nostre equip es posarà en contacte amb tu per confirmar tots els detalls.</p>
<p>Si necessites cancel·lar la reserva, fes servir aquest enllaç: <a href="%s">cancel·lar la reserva</a>.</p>
<p>Gràcies per la teva confiança!</p>
<p><strong>Garatge Estació</strong></p>`,
			r.CustomerName, r.ResourceName, fmtDate(r.StartDate), fmtDate(r.EndDate), r.Days,
			r.TotalPrice, cancelLink(cfg, "/api/bookings/cancel", r.CancelToken)),
	}
}

func reservationAdminEmail(r *entity.Reservation, cfg *utils.Config) mailer.Message {
	subject := fmt.Sprintf("🚗 Nova Reserva de Vehicle: %s", r.ResourceName)
	if r.Kind == entity.ResourceKindMotorhome {
		subject = fmt.Sprintf("🚐 Nova Reserva d'Autocaravana: %s", r.ResourceName)
	}

	return mailer.Message{
		To:      cfg.Email.AdminEmail,
		Subject: subject,
		HTML: fmt.Sprintf(`<h2>Nova sol·licitud de reserva</h2>
<p><strong>Client:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telèfon:</strong> %s</p>
<hr>
<p><strong>Vehicle:</strong> %s</p>
<p><strong>Dates:</strong> del %s al %s (%d dies)</p>
<p><strong>Preu Total Estimat:</strong> %.2f€</p>`,
			r.CustomerName, r.CustomerEmail, r.CustomerPhone,
			r.ResourceName, fmtDate(r.StartDate), fmtDate(r.EndDate), r.Days, r.TotalPrice),
	}
}

func reservationCancelledAdminEmail(r *entity.Reservation, cfg *utils.Config) mailer.Message {
	return mailer.Message{
		To:      cfg.Email.AdminEmail,
		Subject: fmt.Sprintf("❌ Reserva Cancel·lada: %s - %s", r.CustomerName, r.ResourceName),
		HTML: fmt.Sprintf(`<h2>Reserva cancel·lada pel client</h2>
<p><strong>Client:</strong> %s (%s, %s)</p>
<p><strong>Vehicle:</strong> %s</p>
<p><strong>Dates:</strong> del %s al %s</p>`,
			r.CustomerName, r.CustomerEmail, r.CustomerPhone,
			r.ResourceName, fmtDate(r.StartDate), fmtDate(r.EndDate)),
	}
}

func appointmentCustomerEmail(a *entity.Appointment, cfg *utils.Config) mailer.Message {
	return mailer.Message{
		To:      a.Email,
		Subject: "✅ Cita al taller confirmada - Garatge Estació",
		HTML: fmt.Sprintf(`<h1>Hola %s,</h1>
<p>Hem rebut i confirmat la teva cita per al servei de <strong>%s</strong>.</p>
<p><strong>Data:</strong> %s</p>
<p><strong>Hora:</strong> %s</p>
<p>Si necessites cancel·lar la cita, fes servir aquest enllaç: <a href="%s">cancel·lar la cita</a>.</p>
<p>Gràcies per la teva confiança. T'esperem!</p>
<p><strong>Garatge Estació</strong></p>`,
			a.Name, a.Service, fmtDate(a.Date), a.Time,
			cancelLink(cfg, "/api/appointments/cancel", a.CancelToken)),
	}
}

func appointmentAdminEmail(a *entity.Appointment, cfg *utils.Config) mailer.Message {
	message := a.Message
	if message == "" {
		message = "Cap"
	}

	return mailer.Message{
		To:      cfg.Email.AdminEmail,
		Subject: fmt.Sprintf("🛠️ Nova Cita al Taller: %s", a.Service),
		HTML: fmt.Sprintf(`<h2>Nova Cita de Taller</h2>
<p><strong>Client:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telèfon:</strong> %s</p>
<p><strong>Vehicle:</strong> %s %s</p>
<p><strong>Servei:</strong> %s</p>
<p><strong>Data:</strong> %s a les %s</p>
<p><strong>Missatge:</strong> %s</p>`,
			a.Name, a.Email, a.Phone, a.VehicleBrand, a.VehicleModel,
			a.Service, fmtDate(a.Date), a.Time, message),
	}
}

func appointmentCancelledAdminEmail(a *entity.Appointment, cfg *utils.Config) mailer.Message {
	return mailer.Message{
		To:      cfg.Email.AdminEmail,
		Subject: fmt.Sprintf("❌ Cita Cancel·lada: %s - %s", a.Name, a.Service),
		HTML: fmt.Sprintf(`<h2>Cita cancel·lada pel client</h2>
<p><strong>Client:</strong> %s (%s, %s)</p>
<p><strong>Vehicle:</strong> %s %s</p>
<p><strong>Servei:</strong> %s</p>
<p><strong>Data:</strong> %s a les %s</p>`,
			a.Name, a.Email, a.Phone, a.VehicleBrand, a.VehicleModel,
			a.Service, fmtDate(a.Date), a.Time),
	}
}
