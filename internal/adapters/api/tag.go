package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type Tags struct {
	r *Resource
}

func NewTags(c *Client) *Tags {
	return &Tags{r: c.Resource("Tag")}
}

func (s *Tags) GetAllTags(ctx context.Context, q ListQuery) (domain.Page[domain.Tag], error) {
	return get[domain.Page[domain.Tag]](ctx, s.r, s.r.Path(), "Failed to fetch tags.", WithQuery(q.Values()))
}

func (s *Tags) GetTagByID(ctx context.Context, id int) (domain.Tag, error) {
	if err := requirePositiveID("tag id", id); err != nil {
		return domain.Tag{}, err
	}

	return get[domain.Tag](ctx, s.r, s.r.Path(id), "Failed to fetch tag.")
}

func (s *Tags) CreateTag(ctx context.Context, in domain.TagInput) (domain.Tag, error) {
	return post[domain.Tag](ctx, s.r, s.r.Path(), in, "Failed to create tag.")
}

func (s *Tags) UpdateTag(ctx context.Context, id int, in domain.TagInput) (domain.Tag, error) {
	if err := requirePositiveID("tag id", id); err != nil {
		return domain.Tag{}, err
	}

	return put[domain.Tag](ctx, s.r, s.r.Path(id), in, "Failed to update tag.")
}

func (s *Tags) DeleteTag(ctx context.Context, id int) error {
	if err := requirePositiveID("tag id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete tag.")
}
