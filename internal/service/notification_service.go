package service

import (
	"context"

	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/internal/form"

	"github.com/sirupsen/logrus"
)

// NotificationService records the outcome of every submission so the
// notifications a user saw can be traced afterwards.
type NotificationService interface {
	form.Notifier
}

type notificationService struct {
	log *logrus.Logger
}

func NewNotificationService(log *logrus.Logger) NotificationService {
	return &notificationService{log: log}
}

func (s *notificationService) Notify(ctx context.Context, n form.Notification) {
	fields := logrus.Fields{
		"title":   n.Title,
		"variant": n.Variant,
	}
	if n.Description != "" {
		fields["description"] = n.Description
	}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		fields["user_id"] = userID.String()
	}

	entry := s.log.WithFields(fields)
	if n.Variant == form.VariantDestructive {
		entry.Warn("Submission failed")
		return
	}
	entry.Info("Submission succeeded")
}
