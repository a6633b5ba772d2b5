package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

const deliveryColumns = `id, movement_id, docket_number, customer_id, carrier_id, vehicle_id, driver_id,
		delivery_date, destination, notes, created_at`

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de despachos.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste un despacho. Devuelve ErrDuplicate si la guía ya existe.
func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.MovementID, d.DocketNumber, d.CustomerID,
		nullable(d.CarrierID), nullable(d.VehicleID), nullable(d.DriverID),
		d.DeliveryDate, nullable(d.Destination), nullable(d.Notes), d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create delivery: %w", err)
	}
	return nil
}

// GetByID obtiene un despacho por ID. Devuelve nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`
	return r.getOne(query, id)
}

// GetByDocketNumber obtiene un despacho por número de guía. Devuelve nil si no existe.
func (r *DeliveryRepo) GetByDocketNumber(docketNumber string) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE docket_number = $1`
	return r.getOne(query, docketNumber)
}

func (r *DeliveryRepo) getOne(query string, arg any) (*entity.Delivery, error) {
	d, err := scanDelivery(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

// List lista despachos, más recientes primero.
func (r *DeliveryRepo) List(limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries ORDER BY delivery_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	return collectDeliveries(rows)
}

// ListByCustomer lista despachos de un cliente, más recientes primero.
func (r *DeliveryRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries WHERE customer_id = $1
		ORDER BY delivery_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries by customer: %w", err)
	}
	defer rows.Close()
	return collectDeliveries(rows)
}

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	var d entity.Delivery
	var carrier, vehicle, driver, destination, notes *string
	err := row.Scan(
		&d.ID, &d.MovementID, &d.DocketNumber, &d.CustomerID,
		&carrier, &vehicle, &driver, &d.DeliveryDate, &destination, &notes, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.CarrierID = fromNullable(carrier)
	d.VehicleID = fromNullable(vehicle)
	d.DriverID = fromNullable(driver)
	d.Destination = fromNullable(destination)
	d.Notes = fromNullable(notes)
	return &d, nil
}

func collectDeliveries(rows pgx.Rows) ([]*entity.Delivery, error) {
	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
