package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repo is the SQL record store.
type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, mapSQLError("list", err)
	}
	return items, nil
}

func (r *Repo) Insert(ctx context.Context, f Fields) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
		CreatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, mapSQLError("insert", err)
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (Product, error) {
	if id == "" {
		return Product{}, ErrMissingID
	}
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        f.Name,
			"description": f.Description,
			"price":       f.Price,
			"image_url":   f.ImageURL,
			"category":    f.Category,
		})
	if res.Error != nil {
		return Product{}, mapSQLError("update", res.Error)
	}
	// MySQL değişiklik yoksa RowsAffected=0 döner; varlığı Get ile kontrol et
	return r.Get(ctx, id)
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, mapSQLError("get", err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	res := r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return mapSQLError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}

func mapSQLError(op string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		msg := me.Message
		if IsDuplicateKey(err) {
			msg = "Bu ürün zaten kayıtlı."
		}
		return &StoreError{Op: op, Status: int(me.Number), Message: msg, Err: err}
	}
	return &StoreError{Op: op, Err: err}
}
