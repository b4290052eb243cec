package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// Flujo feliz: pending → approved → fulfilled → delivered.
func TestCanTransitionDispatch_FlujoCompleto(t *testing.T) {
	assert.True(t, entity.CanTransitionDispatch(entity.DispatchPending, entity.DispatchApproved))
	assert.True(t, entity.CanTransitionDispatch(entity.DispatchApproved, entity.DispatchFulfilled))
	assert.True(t, entity.CanTransitionDispatch(entity.DispatchApproved, entity.DispatchPartiallyFulfilled))
	assert.True(t, entity.CanTransitionDispatch(entity.DispatchFulfilled, entity.DispatchDelivered))
	assert.True(t, entity.CanTransitionDispatch(entity.DispatchPartiallyFulfilled, entity.DispatchDelivered))
}

// rejected es alcanzable desde cualquier estado previo a la entrega.
func TestCanTransitionDispatch_RechazoPreEntrega(t *testing.T) {
	for _, from := range []string{
		entity.DispatchPending,
		entity.DispatchApproved,
		entity.DispatchFulfilled,
		entity.DispatchPartiallyFulfilled,
	} {
		assert.True(t, entity.CanTransitionDispatch(from, entity.DispatchRejected), "desde %s", from)
	}
}

// delivered y rejected son terminales; no se permiten saltos ni retrocesos.
func TestCanTransitionDispatch_Invalidas(t *testing.T) {
	cases := [][2]string{
		{entity.DispatchDelivered, entity.DispatchRejected},
		{entity.DispatchDelivered, entity.DispatchPending},
		{entity.DispatchRejected, entity.DispatchApproved},
		{entity.DispatchPending, entity.DispatchDelivered},  // salto directo
		{entity.DispatchPending, entity.DispatchFulfilled},  // sin aprobación
		{entity.DispatchApproved, entity.DispatchPending},   // retroceso
		{entity.DispatchFulfilled, entity.DispatchApproved}, // retroceso
	}
	for _, c := range cases {
		assert.False(t, entity.CanTransitionDispatch(c[0], c[1]), "%s → %s", c[0], c[1])
	}
}

func TestIsDispatchStatus(t *testing.T) {
	assert.True(t, entity.IsDispatchStatus(entity.DispatchPartiallyFulfilled))
	assert.False(t, entity.IsDispatchStatus("enviado"))
}
