package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soportec/gestor-api/pkg/textutil"
)

func TestNormalize_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "martinez", textutil.Normalize("Martínez"))
	assert.Equal(t, "cotizacion numero 1", textutil.Normalize("Cotización Número 1"))
	assert.Equal(t, "nunez", textutil.Normalize("NÚÑEZ"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Soporte Técnico", "tecnico"))
	assert.True(t, textutil.ContainsFold("García Hosting SA", "GARCIA"))
	assert.False(t, textutil.ContainsFold("Hosting", "vps"))
}

func TestContainsFold_SubstrVacioNoFiltra(t *testing.T) {
	assert.True(t, textutil.ContainsFold("cualquier cosa", ""))
}
