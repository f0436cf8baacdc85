package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValidateRequiresAccessToken(t *testing.T) {
	t.Parallel()

	err := Session{Email: "a@b.c"}.Validate()
	require.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, Session{AccessToken: "abc123"}.Validate())
}

func TestSessionDisplayNamePrefersFullName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		session Session
		want    string
	}{
		{name: "full name", session: Session{FullName: "Lan Anh", Email: "lan@example.com", ID: "u-1"}, want: "Lan Anh"},
		{name: "email", session: Session{Email: "lan@example.com", ID: "u-1"}, want: "lan@example.com"},
		{name: "id", session: Session{ID: "u-1"}, want: "u-1"},
		{name: "empty", session: Session{}, want: "unknown user"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.session.DisplayName())
		})
	}
}

func TestPageTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Page[Food]{PageSize: 10, TotalCount: 21}.TotalPages())
	assert.Equal(t, 2, Page[Food]{PageSize: 10, TotalCount: 20}.TotalPages())
	assert.Equal(t, 0, Page[Food]{PageSize: 0, TotalCount: 20}.TotalPages())
}

func TestWaterSummaryRemainingNeverNegative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 750, WaterSummary{TotalInML: 1250, TargetInML: 2000}.Remaining())
	assert.Equal(t, 0, WaterSummary{TotalInML: 2500, TargetInML: 2000}.Remaining())
}
