package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type Foods struct {
	r *Resource
}

func NewFoods(c *Client) *Foods {
	return &Foods{r: c.Resource("Food")}
}

func (s *Foods) GetAllFoods(ctx context.Context, q ListQuery) (domain.Page[domain.Food], error) {
	return get[domain.Page[domain.Food]](ctx, s.r, s.r.Path(), "Failed to fetch foods.", WithQuery(q.Values()))
}

func (s *Foods) GetFoodByID(ctx context.Context, id int) (domain.Food, error) {
	if err := requirePositiveID("food id", id); err != nil {
		return domain.Food{}, err
	}

	return get[domain.Food](ctx, s.r, s.r.Path(id), "Failed to fetch food.")
}

func (s *Foods) GetFoodsByCategory(ctx context.Context, categoryID int, q ListQuery) (domain.Page[domain.Food], error) {
	if err := requirePositiveID("category id", categoryID); err != nil {
		return domain.Page[domain.Food]{}, err
	}

	return get[domain.Page[domain.Food]](ctx, s.r, s.r.Path("category", categoryID), "Failed to fetch foods for this category.", WithQuery(q.Values()))
}

func (s *Foods) CreateFood(ctx context.Context, in domain.FoodInput) (domain.Food, error) {
	return post[domain.Food](ctx, s.r, s.r.Path(), in, "Failed to create food.")
}

func (s *Foods) UpdateFood(ctx context.Context, id int, in domain.FoodInput) (domain.Food, error) {
	if err := requirePositiveID("food id", id); err != nil {
		return domain.Food{}, err
	}

	return put[domain.Food](ctx, s.r, s.r.Path(id), in, "Failed to update food.")
}

func (s *Foods) DeleteFood(ctx context.Context, id int) error {
	if err := requirePositiveID("food id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete food.")
}
