package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen operativo del día para la pantalla principal.
type DashboardResponse struct {
	TotalOnHand      decimal.Decimal      `json:"total_on_hand"`       // toneladas en todos los acopios
	TotalStockValue  decimal.Decimal      `json:"total_stock_value"`   // valor del inventario
	TodayProduction  decimal.Decimal      `json:"today_production"`    // toneladas producidas hoy
	TodaySalesTonnes decimal.Decimal      `json:"today_sales_tonnes"`  // toneladas vendidas hoy
	TodaySalesValue  decimal.Decimal      `json:"today_sales_value"`   // ingresos de hoy
	TodayMovements   int                  `json:"today_movements"`     // registros del libro hoy
	LowStock         []LowStockItem       `json:"low_stock"`           // pares con saldo bajo
}

// LowStockItem par (producto, acopio) con saldo por debajo del umbral.
type LowStockItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	StockpileID string          `json:"stockpile_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}
