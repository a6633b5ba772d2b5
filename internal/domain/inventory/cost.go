package inventory

import "github.com/shopspring/decimal"

// Escalas de redondeo del libro de stock. El costo promedio se lleva a 4
// decimales para que el error no se acumule a lo largo de miles de
// movimientos; los valores monetarios se redondean a 2.
const (
	CostScale  = 4
	MoneyScale = 2
)

// WeightedAverageCost implementa el costo promedio ponderado (servicio de dominio):
//
//	NuevoCosto = ((StockActual × CostoActual) + (CantEntrada × CostoEntrada)) / (StockActual + CantEntrada)
//
// La división usa DivRound (redondeo half-away-from-zero) a CostScale decimales,
// de forma estable y consistente en todos los movimientos. Una entrada con costo
// cero es válida (material sin costo, sobrantes de descapote) y SÍ promedia.
func WeightedAverageCost(stockQty, avgCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := stockQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockQty.Mul(avgCost).Add(inQty.Mul(inCost))
	return num.DivRound(sum, CostScale)
}

// TotalValue devuelve el valor del inventario (cantidad × costo promedio)
// redondeado a escala monetaria.
func TotalValue(qty, avgCost decimal.Decimal) decimal.Decimal {
	return qty.Mul(avgCost).Round(MoneyScale)
}
