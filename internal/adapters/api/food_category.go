package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type FoodCategories struct {
	r *Resource
}

func NewFoodCategories(c *Client) *FoodCategories {
	return &FoodCategories{r: c.Resource("FoodCategory")}
}

func (s *FoodCategories) GetAllCategories(ctx context.Context, q ListQuery) (domain.Page[domain.FoodCategory], error) {
	return get[domain.Page[domain.FoodCategory]](ctx, s.r, s.r.Path(), "Failed to fetch food categories.", WithQuery(q.Values()))
}

func (s *FoodCategories) GetAllActiveCategories(ctx context.Context, q ListQuery) (domain.Page[domain.FoodCategory], error) {
	return get[domain.Page[domain.FoodCategory]](ctx, s.r, s.r.Path("all-active-category"), "Failed to fetch active food categories.", WithQuery(q.Values()))
}

func (s *FoodCategories) GetCategoryByID(ctx context.Context, id int) (domain.FoodCategory, error) {
	if err := requirePositiveID("category id", id); err != nil {
		return domain.FoodCategory{}, err
	}

	return get[domain.FoodCategory](ctx, s.r, s.r.Path(id), "Failed to fetch food category.")
}

func (s *FoodCategories) CreateCategory(ctx context.Context, in domain.FoodCategoryInput) (domain.FoodCategory, error) {
	return post[domain.FoodCategory](ctx, s.r, s.r.Path(), in, "Failed to create food category.")
}

func (s *FoodCategories) UpdateCategory(ctx context.Context, id int, in domain.FoodCategoryInput) (domain.FoodCategory, error) {
	if err := requirePositiveID("category id", id); err != nil {
		return domain.FoodCategory{}, err
	}

	return put[domain.FoodCategory](ctx, s.r, s.r.Path(id), in, "Failed to update food category.")
}

func (s *FoodCategories) DeleteCategory(ctx context.Context, id int) error {
	if err := requirePositiveID("category id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete food category.")
}
