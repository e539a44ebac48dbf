package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	appconfig "academia_bere/config"
	"academia_bere/internal/domain/entities"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToNoop(t *testing.T) {
	_, ok := New(appconfig.SMTPConfig{}).(NoopNotifier)
	assert.True(t, ok)

	_, ok = New(appconfig.SMTPConfig{Host: "smtp.example.com", AdminEmail: "docente@example.com"}).(*EmailNotifier)
	assert.True(t, ok)
}

func TestEmailNotifier_NotifyTransferRequest(t *testing.T) {
	n := NewEmailNotifier(appconfig.SMTPConfig{
		Host:       "smtp.example.com",
		Port:       "587",
		User:       "bot@example.com",
		Password:   "secret",
		AdminEmail: "docente@example.com",
	})

	var sent *email.Email
	var sentAddr string
	n.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sent, sentAddr = e, addr
		assert.NotNil(t, auth)
		return nil
	}

	err := n.NotifyTransferRequest(context.Background(), entities.TransferRequest{
		ID:          "r1",
		UserName:    "Ana",
		UserPhone:   "555",
		CourseID:    "c1",
		CourseTitle: "Colorimetría",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", sentAddr)
	assert.Equal(t, "bot@example.com", sent.From)
	assert.Equal(t, []string{"docente@example.com"}, sent.To)
	assert.Contains(t, sent.Subject, "Colorimetría")
	assert.Contains(t, string(sent.Text), "Ana")
	assert.Contains(t, string(sent.Text), "555")
}

func TestEmailNotifier_SendError(t *testing.T) {
	n := NewEmailNotifier(appconfig.SMTPConfig{Host: "h", Port: "25", AdminEmail: "a@b.c"})
	boom := errors.New("dial failed")
	n.send = func(*email.Email, string, smtp.Auth) error { return boom }

	err := n.NotifyTransferRequest(context.Background(), entities.TransferRequest{ID: "r1"})
	assert.ErrorIs(t, err, boom)
}
