package service

import (
	"context"
	"fmt"

	"github.com/visualapp/storefront-api/internal/models"
	"github.com/visualapp/storefront-api/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, to string, order *models.Order) error
}

type notificationService struct {
	email sendgrid.EmailService
}

func NewNotificationService(email sendgrid.EmailService) NotificationService {
	return &notificationService{email: email}
}

func (s *notificationService) SendOrderConfirmation(ctx context.Context, to string, order *models.Order) error {

	body := fmt.Sprintf("Recebemos o seu pedido #%d no valor de R$ %.2f. Obrigado pela compra!",
		order.OrderNumber, order.Total)

	if order.PixCode != nil {
		body += fmt.Sprintf("\n\nPague com o código Pix abaixo:\n%s", *order.PixCode)
	}

	return s.email.Send(ctx, &sendgrid.Email{
		To:      to,
		Subject: fmt.Sprintf("Pedido #%d confirmado - Visual Fashion Kids", order.OrderNumber),
		Content: body,
	})
}
