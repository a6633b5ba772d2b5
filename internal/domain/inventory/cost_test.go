package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Caso de referencia: 100 t @ $10 + 50 t @ $16 => 150 t @ $12.
func TestWeightedAverageCost_PromedioBasico(t *testing.T) {
	got := inventory.WeightedAverageCost(dec("100"), dec("10"), dec("50"), dec("16"))
	assert.True(t, got.Equal(dec("12")), "esperaba 12, obtuve %s", got)
}

// Primera entrada sobre stock cero: el promedio es el costo de la entrada.
func TestWeightedAverageCost_StockCero(t *testing.T) {
	got := inventory.WeightedAverageCost(decimal.Zero, decimal.Zero, dec("20"), dec("8"))
	assert.True(t, got.Equal(dec("8")))
}

// Entrada con costo cero (material sin costo) sí promedia hacia abajo.
func TestWeightedAverageCost_EntradaCostoCero(t *testing.T) {
	got := inventory.WeightedAverageCost(dec("100"), dec("10"), dec("100"), dec("0"))
	assert.True(t, got.Equal(dec("5")), "100t@10 + 100t@0 debe promediar a 5, obtuve %s", got)
}

// División no exacta: redondeo estable a 4 decimales.
func TestWeightedAverageCost_RedondeoEstable(t *testing.T) {
	// (10×10 + 20×10.55) / 30 = 311/30 = 10.36666... -> 10.3667
	got := inventory.WeightedAverageCost(dec("10"), dec("10"), dec("20"), dec("10.55"))
	assert.True(t, got.Equal(dec("10.3667")), "obtuve %s", got)
}

// Suma total no positiva: devuelve cero en lugar de dividir por cero.
func TestWeightedAverageCost_SumaNoPositiva(t *testing.T) {
	got := inventory.WeightedAverageCost(dec("5"), dec("10"), dec("-5"), dec("10"))
	assert.True(t, got.IsZero())
}

func TestTotalValue_RedondeoMonetario(t *testing.T) {
	got := inventory.TotalValue(dec("3"), dec("10.3667"))
	assert.True(t, got.Equal(dec("31.10")), "3 × 10.3667 = 31.1001 -> 31.10, obtuve %s", got)
}
