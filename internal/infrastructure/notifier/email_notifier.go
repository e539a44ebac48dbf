package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	appconfig "academia_bere/config"
	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/jordan-wright/email"
)

// sendFunc matches (*email.Email).Send; swapped in tests.
type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// EmailNotifier mails the docente when something needs manual follow-up.
type EmailNotifier struct {
	cfg  appconfig.SMTPConfig
	send sendFunc
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg appconfig.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg: cfg,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// New returns an EmailNotifier when SMTP is configured and a no-op notifier
// otherwise.
func New(cfg appconfig.SMTPConfig) interfaces.INotifier {
	if cfg.Host == "" || cfg.AdminEmail == "" {
		logger.Warn().Msg("[notifier] SMTP not configured, admin emails disabled")
		return NoopNotifier{}
	}
	return NewEmailNotifier(cfg)
}

func (n *EmailNotifier) NotifyTransferRequest(ctx context.Context, r entities.TransferRequest) error {
	e := email.NewEmail()
	e.From = n.cfg.From
	if e.From == "" {
		e.From = n.cfg.User
	}
	e.To = []string{n.cfg.AdminEmail}
	e.Subject = fmt.Sprintf("Nueva solicitud de transferencia: %s", r.CourseTitle)
	e.Text = []byte(transferRequestBody(r))

	addr := fmt.Sprintf("%s:%s", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}
	if err := n.send(e, addr, auth); err != nil {
		return fmt.Errorf("send transfer request email: %w", err)
	}
	logger.WithContext(ctx).Info().Str("transfer_request_id", r.ID).Msg("[notifier] admin notified")
	return nil
}

func transferRequestBody(r entities.TransferRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alumno: %s\n", r.UserName)
	fmt.Fprintf(&b, "Teléfono: %s\n", r.UserPhone)
	fmt.Fprintf(&b, "Curso: %s (%s)\n", r.CourseTitle, r.CourseID)
	fmt.Fprintf(&b, "Fecha: %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString("\nConfirma la inscripción desde el panel de solicitudes una vez recibido el pago.\n")
	return b.String()
}

type NoopNotifier struct{}

func (NoopNotifier) NotifyTransferRequest(context.Context, entities.TransferRequest) error {
	return nil
}
