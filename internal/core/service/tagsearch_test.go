package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

func TestFindByTagsExactMatchBothKeys(t *testing.T) {
	api := new(MockCloudAPI)
	ts := NewTagSearch(api, "minecraft", "prod", NewTestLogger())

	candidates := []domain.Candidate{
		{Name: "a", ARN: "arn:a"},
		{Name: "b", ARN: "arn:b"},
		{Name: "c", ARN: "arn:c"},
		{Name: "d", ARN: "arn:d"},
	}
	api.On("ListCandidates", mock.Anything, domain.KindCluster, domain.Scope{}).Return(candidates, nil)

	// Only candidate c carries both keys with the exact values.
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[0]).
		Return(map[string]string{TagKeyProject: "minecraft"}, nil)
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[1]).
		Return(map[string]string{TagKeyProject: "minecraft", TagKeyEnvironment: "dev"}, nil)
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[2]).
		Return(map[string]string{TagKeyProject: "minecraft", TagKeyEnvironment: "prod"}, nil)
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[3]).
		Return(map[string]string{TagKeyProject: "Minecraft", TagKeyEnvironment: "prod"}, nil)

	matches, err := ts.FindByTags(context.Background(), domain.KindCluster, domain.Scope{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "c", matches[0].Name)
}

func TestFindByTagsPerCandidateFailureSkips(t *testing.T) {
	api := new(MockCloudAPI)
	ts := NewTagSearch(api, "minecraft", "prod", NewTestLogger())

	candidates := []domain.Candidate{
		{Name: "broken", ARN: "arn:broken"},
		{Name: "good", ARN: "arn:good"},
	}
	api.On("ListCandidates", mock.Anything, domain.KindCluster, domain.Scope{}).Return(candidates, nil)
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[0]).
		Return(nil, errors.New(errors.CodePlatformAPIError, "throttled"))
	api.On("ResourceTags", mock.Anything, domain.KindCluster, candidates[1]).
		Return(map[string]string{TagKeyProject: "minecraft", TagKeyEnvironment: "prod"}, nil)

	matches, err := ts.FindByTags(context.Background(), domain.KindCluster, domain.Scope{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "good", matches[0].Name)
}

func TestFindByTagsListingFailureExhaustsStrategy(t *testing.T) {
	api := new(MockCloudAPI)
	ts := NewTagSearch(api, "minecraft", "prod", NewTestLogger())

	api.On("ListCandidates", mock.Anything, domain.KindCluster, domain.Scope{}).
		Return(nil, fmt.Errorf("listing failed"))

	matches, err := ts.FindByTags(context.Background(), domain.KindCluster, domain.Scope{})
	require.Error(t, err)
	assert.Nil(t, matches)
	assert.Equal(t, errors.CodeListingFailure, errors.GetCode(err))
	api.AssertNotCalled(t, "ResourceTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindByTagsPreservesListingOrder(t *testing.T) {
	api := new(MockCloudAPI)
	ts := NewTagSearch(api, "minecraft", "prod", NewTestLogger())

	match := map[string]string{TagKeyProject: "minecraft", TagKeyEnvironment: "prod"}
	candidates := []domain.Candidate{
		{Name: "first", ARN: "arn:1"},
		{Name: "second", ARN: "arn:2"},
	}
	api.On("ListCandidates", mock.Anything, domain.KindCluster, domain.Scope{}).Return(candidates, nil)
	api.On("ResourceTags", mock.Anything, domain.KindCluster, mock.Anything).Return(match, nil)

	matches, err := ts.FindByTags(context.Background(), domain.KindCluster, domain.Scope{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Name)
	assert.Equal(t, "second", matches[1].Name)
}
