package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type PostReports struct {
	r *Resource
}

func NewPostReports(c *Client) *PostReports {
	return &PostReports{r: c.Resource("PostReport")}
}

func (s *PostReports) GetAllReports(ctx context.Context, q ListQuery) (domain.Page[domain.PostReport], error) {
	return get[domain.Page[domain.PostReport]](ctx, s.r, s.r.Path(), "Failed to fetch reports.", WithQuery(q.Values()))
}

func (s *PostReports) GetReportByID(ctx context.Context, id int) (domain.PostReport, error) {
	if err := requirePositiveID("report id", id); err != nil {
		return domain.PostReport{}, err
	}

	return get[domain.PostReport](ctx, s.r, s.r.Path(id), "Failed to fetch report.")
}

// CheckUserReport reports whether the signed-in user already reported postID.
func (s *PostReports) CheckUserReport(ctx context.Context, postID int) (domain.ReportCheck, error) {
	if err := requirePositiveID("post id", postID); err != nil {
		return domain.ReportCheck{}, err
	}

	return get[domain.ReportCheck](ctx, s.r, s.r.Path("check", postID), "Failed to check report status.")
}

func (s *PostReports) CreateReport(ctx context.Context, in domain.PostReportInput) (domain.PostReport, error) {
	if err := requirePositiveID("post id", in.PostID); err != nil {
		return domain.PostReport{}, err
	}
	if err := requirePositiveID("reason id", in.ReasonID); err != nil {
		return domain.PostReport{}, err
	}

	return post[domain.PostReport](ctx, s.r, s.r.Path(), in, "Failed to submit report.")
}

type reportStatusBody struct {
	Status domain.ReportStatus `json:"status"`
}

func (s *PostReports) UpdateReportStatus(ctx context.Context, id int, status domain.ReportStatus) (domain.PostReport, error) {
	if err := requirePositiveID("report id", id); err != nil {
		return domain.PostReport{}, err
	}
	if err := status.Validate(); err != nil {
		return domain.PostReport{}, err
	}

	return put[domain.PostReport](ctx, s.r, s.r.Path(id, "status"), reportStatusBody{Status: status}, "Failed to update report status.")
}

func (s *PostReports) DeleteReport(ctx context.Context, id int) error {
	if err := requirePositiveID("report id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete report.")
}
