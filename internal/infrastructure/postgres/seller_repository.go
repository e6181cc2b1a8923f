package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL
// (usable con pool o tx).
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

const sellerColumns = `code, name, territory, commission, authorized, authorized_at, approved_by, active, created_at, updated_at`

func scanSeller(row pgx.Row) (*entity.Seller, error) {
	var s entity.Seller
	var approvedBy *string
	err := row.Scan(
		&s.Code, &s.Name, &s.Territory, &s.Commission,
		&s.Authorized, &s.AuthorizedAt, &approvedBy,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if approvedBy != nil {
		s.ApprovedBy = *approvedBy
	}
	return &s, nil
}

// Create persiste un nuevo vendedor (estado Pending).
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (` + sellerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	approvedBy := (*string)(nil)
	if seller.ApprovedBy != "" {
		approvedBy = &seller.ApprovedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		seller.Code, seller.Name, seller.Territory, seller.Commission,
		seller.Authorized, seller.AuthorizedAt, approvedBy,
		seller.Active, seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByCode obtiene un vendedor por código.
func (r *SellerRepo) GetByCode(code string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE code = $1`
	s, err := scanSeller(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return s, nil
}

// GetByCodeForUpdate obtiene el vendedor y bloquea su fila (SELECT FOR UPDATE)
// durante la transición de autorización.
func (r *SellerRepo) GetByCodeForUpdate(code string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE code = $1 FOR UPDATE`
	s, err := scanSeller(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller for update: %w", err)
	}
	return s, nil
}

// Update actualiza un vendedor existente.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	query := `
		UPDATE sellers
		SET name = $2, territory = $3, commission = $4, authorized = $5, authorized_at = $6, approved_by = $7, updated_at = $8
		WHERE code = $1`
	approvedBy := (*string)(nil)
	if seller.ApprovedBy != "" {
		approvedBy = &seller.ApprovedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		seller.Code, seller.Name, seller.Territory, seller.Commission,
		seller.Authorized, seller.AuthorizedAt, approvedBy, seller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

// List lista vendedores con paginación; onlyActive filtra bajas lógicas.
func (r *SellerRepo) List(onlyActive bool, limit, offset int) ([]*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Seller
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Deactivate baja lógica del vendedor; la fila no se borra.
func (r *SellerRepo) Deactivate(code string) error {
	query := `UPDATE sellers SET active = false, updated_at = now() WHERE code = $1`
	_, err := r.q.Exec(context.Background(), query, code)
	if err != nil {
		return fmt.Errorf("deactivate seller: %w", err)
	}
	return nil
}
