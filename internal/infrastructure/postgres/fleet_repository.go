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

var (
	_ repository.CarrierRepository = (*CarrierRepo)(nil)
	_ repository.DriverRepository  = (*DriverRepo)(nil)
	_ repository.VehicleRepository = (*VehicleRepo)(nil)
)

// CarrierRepo implementación de CarrierRepository sobre PostgreSQL.
type CarrierRepo struct {
	q Querier
}

// NewCarrierRepository construye el adaptador de transportadoras.
func NewCarrierRepository(q Querier) *CarrierRepo {
	return &CarrierRepo{q: q}
}

func (r *CarrierRepo) Create(c *entity.Carrier) error {
	query := `
		INSERT INTO carriers (id, name, tax_id, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullable(c.TaxID), nullable(c.Phone), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create carrier: %w", err)
	}
	return nil
}

func (r *CarrierRepo) GetByID(id string) (*entity.Carrier, error) {
	query := `SELECT id, name, tax_id, phone, created_at, updated_at FROM carriers WHERE id = $1`
	var c entity.Carrier
	var taxID, phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &taxID, &phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrier: %w", err)
	}
	c.TaxID = fromNullable(taxID)
	c.Phone = fromNullable(phone)
	return &c, nil
}

func (r *CarrierRepo) Update(c *entity.Carrier) error {
	query := `UPDATE carriers SET name = $2, tax_id = $3, phone = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullable(c.TaxID), nullable(c.Phone), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update carrier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CarrierRepo) List(limit, offset int) ([]*entity.Carrier, error) {
	query := `SELECT id, name, tax_id, phone, created_at, updated_at FROM carriers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Carrier
	for rows.Next() {
		var c entity.Carrier
		var taxID, phone *string
		if err := rows.Scan(&c.ID, &c.Name, &taxID, &phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan carrier: %w", err)
		}
		c.TaxID = fromNullable(taxID)
		c.Phone = fromNullable(phone)
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CarrierRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM carriers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete carrier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DriverRepo implementación de DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador de conductores.
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

const driverColumns = `id, carrier_id, name, license_number, phone, created_at, updated_at`

func (r *DriverRepo) Create(d *entity.Driver) error {
	query := `INSERT INTO drivers (` + driverColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, nullable(d.CarrierID), d.Name, nullable(d.LicenseNumber), nullable(d.Phone),
		d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create driver: %w", err)
	}
	return nil
}

func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	d, err := scanDriver(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return d, nil
}

func (r *DriverRepo) Update(d *entity.Driver) error {
	query := `
		UPDATE drivers
		SET carrier_id = $2, name = $3, license_number = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		d.ID, nullable(d.CarrierID), d.Name, nullable(d.LicenseNumber), nullable(d.Phone),
		d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepo) List(limit, offset int) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()
	return collectDrivers(rows)
}

func (r *DriverRepo) ListByCarrier(carrierID string) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE carrier_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, carrierID)
	if err != nil {
		return nil, fmt.Errorf("list drivers by carrier: %w", err)
	}
	defer rows.Close()
	return collectDrivers(rows)
}

func (r *DriverRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDriver(row pgx.Row) (*entity.Driver, error) {
	var d entity.Driver
	var carrierID, license, phone *string
	err := row.Scan(&d.ID, &carrierID, &d.Name, &license, &phone, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.CarrierID = fromNullable(carrierID)
	d.LicenseNumber = fromNullable(license)
	d.Phone = fromNullable(phone)
	return &d, nil
}

func collectDrivers(rows pgx.Rows) ([]*entity.Driver, error) {
	var list []*entity.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// VehicleRepo implementación de VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador de vehículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, carrier_id, plate, description, capacity, created_at, updated_at`

func (r *VehicleRepo) Create(v *entity.Vehicle) error {
	query := `INSERT INTO vehicles (` + vehicleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, nullable(v.CarrierID), v.Plate, nullable(v.Description), v.Capacity,
		v.CreatedAt, v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return r.getOne(query, id)
}

func (r *VehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	return r.getOne(query, plate)
}

func (r *VehicleRepo) getOne(query string, arg any) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepo) Update(v *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET carrier_id = $2, plate = $3, description = $4, capacity = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		v.ID, nullable(v.CarrierID), v.Plate, nullable(v.Description), v.Capacity, v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VehicleRepo) List(limit, offset int) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY plate LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *VehicleRepo) ListByCarrier(carrierID string) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE carrier_id = $1 ORDER BY plate`
	rows, err := r.q.Query(context.Background(), query, carrierID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles by carrier: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *VehicleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	var carrierID, description *string
	err := row.Scan(&v.ID, &carrierID, &v.Plate, &description, &v.Capacity,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.CarrierID = fromNullable(carrierID)
	v.Description = fromNullable(description)
	return &v, nil
}

func collectVehicles(rows pgx.Rows) ([]*entity.Vehicle, error) {
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
