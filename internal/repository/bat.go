package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/willowworks/batrack/internal/model"
)

var (
	ErrBatNotFound = errors.New("bat not found")
)

type BatRepository interface {
	Create(bat *model.Bat) error
	ByID(id string) (*model.Bat, error)
	All() ([]*model.Bat, error)
	Update(bat *model.Bat) error
	Delete(id string) error
}

type batRepository struct {
	db *sqlx.DB
}

func NewBatRepository(db *sqlx.DB) BatRepository {
	return &batRepository{db: db}
}

func (r *batRepository) Create(bat *model.Bat) error {
	query := `INSERT INTO bats (id, user_id, brand_name, price, description, brand_ambassador, image_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		bat.ID,
		bat.UserID,
		bat.BrandName,
		bat.Price,
		bat.Description,
		bat.BrandAmbassador,
		bat.ImagePath,
		bat.CreatedAt,
	)

	return err
}

func (r *batRepository) ByID(id string) (*model.Bat, error) {
	bat := &model.Bat{}
	query := `SELECT * FROM bats WHERE id = $1`

	err := r.db.Get(bat, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrBatNotFound
	}

	return bat, err
}

// All returns every listing, newest first.
func (r *batRepository) All() ([]*model.Bat, error) {
	var bats []*model.Bat
	query := `SELECT * FROM bats ORDER BY created_at DESC`

	err := r.db.Select(&bats, query)
	if err != nil {
		return nil, err
	}

	return bats, nil
}

// Update persists the mutable listing fields. Brand name, image and owner are
// immutable after creation and deliberately absent from the statement.
func (r *batRepository) Update(bat *model.Bat) error {
	query := `UPDATE bats SET price = $1, description = $2, brand_ambassador = $3 WHERE id = $4`

	result, err := r.db.Exec(query,
		bat.Price,
		bat.Description,
		bat.BrandAmbassador,
		bat.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrBatNotFound
	}

	return nil
}

func (r *batRepository) Delete(id string) error {
	query := `DELETE FROM bats WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrBatNotFound
	}

	return nil
}
