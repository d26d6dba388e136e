package api

import (
	"fmt"

	"github.com/jerseystore/storefront-go/domain"
)

// productRow is the wire shape of a product. Required fields are pointers so
// that a row missing its canonical field is a decode error, not a zero value
// silently passed on. club_id is genuinely nullable for uncategorized
// products.
type productRow struct {
	ID       *int64  `json:"id_products"`
	Name     *string `json:"name_products"`
	Stock    *int    `json:"stock"`
	Price    *int64  `json:"prices"`
	ImageURL string  `json:"image_products"`
	ClubID   *int64  `json:"club_id"`
}

func (r productRow) toDomain() (domain.Product, error) {
	if r.ID == nil {
		return domain.Product{}, fmt.Errorf("product row missing id_products")
	}
	if r.Name == nil {
		return domain.Product{}, fmt.Errorf("product %d: missing name_products", *r.ID)
	}
	if r.Price == nil {
		return domain.Product{}, fmt.Errorf("product %d: missing prices", *r.ID)
	}
	if r.Stock == nil {
		return domain.Product{}, fmt.Errorf("product %d: missing stock", *r.ID)
	}

	p := domain.Product{
		ID:       *r.ID,
		Name:     *r.Name,
		Price:    *r.Price,
		ImageURL: r.ImageURL,
		Stock:    *r.Stock,
	}
	if r.ClubID != nil {
		p.CategoryID = *r.ClubID
	}
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// clubRow is the wire shape of a category.
type clubRow struct {
	ID      *int64  `json:"id_club"`
	Name    *string `json:"name_club"`
	LogoURL string  `json:"logo_club"`
	Slug    string  `json:"slug"`
}

func (r clubRow) toDomain() (domain.Category, error) {
	if r.ID == nil {
		return domain.Category{}, fmt.Errorf("club row missing id_club")
	}
	if r.Name == nil {
		return domain.Category{}, fmt.Errorf("club %d: missing name_club", *r.ID)
	}
	return domain.Category{
		ID:      *r.ID,
		Name:    *r.Name,
		LogoURL: r.LogoURL,
		Slug:    r.Slug,
	}, nil
}

// userPayload is the wire shape of a user profile.
type userPayload struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u userPayload) toDomain() (domain.User, error) {
	if u.ID == nil || *u.ID <= 0 {
		return domain.User{}, fmt.Errorf("user payload missing id")
	}
	return domain.User{
		ID:    *u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
