package service

import (
	"context"
	"testing"

	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/form"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyLogsByVariant(t *testing.T) {
	log, hook := test.NewNullLogger()
	svc := NewNotificationService(log)
	ctx := middleware.WithPrincipal(context.Background(), entity.DeveloperPrincipal)

	svc.Notify(ctx, form.Notification{Title: "Paciente cadastrado", Variant: form.VariantDefault})
	svc.Notify(ctx, form.Notification{Title: "Erro", Description: "duplicate key", Variant: form.VariantDestructive})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, "Paciente cadastrado", entries[0].Data["title"])
	assert.Equal(t, entity.DeveloperPrincipal.ID.String(), entries[0].Data["user_id"])
	assert.NotContains(t, entries[0].Data, "description")

	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, "duplicate key", entries[1].Data["description"])
}

func TestNotifyWithoutPrincipal(t *testing.T) {
	log, hook := test.NewNullLogger()
	NewNotificationService(log).Notify(context.Background(), form.Notification{Title: "ok"})

	require.Len(t, hook.AllEntries(), 1)
	assert.NotContains(t, hook.LastEntry().Data, "user_id")
}
