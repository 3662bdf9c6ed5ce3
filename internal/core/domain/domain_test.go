package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	for _, kind := range ChainKinds {
		assert.True(t, kind.Required(), "kind %s", kind)
	}
	for _, kind := range OptionalKinds {
		assert.False(t, kind.Required(), "kind %s", kind)
	}
}

func TestSentinelFor(t *testing.T) {
	s, ok := SentinelFor(KindInstance)
	require.True(t, ok)
	assert.Equal(t, SentinelNoInstance, s)

	s, ok = SentinelFor(KindLoadBalancer)
	require.True(t, ok)
	assert.Equal(t, SentinelNoLoadBalancer, s)

	_, ok = SentinelFor(KindCluster)
	assert.False(t, ok)
}

func TestParseDetectionMode(t *testing.T) {
	tests := []struct {
		input   string
		want    DetectionMode
		wantErr bool
	}{
		{"auto", ModeAuto, false},
		{"env", ModeEnv, false},
		{"tags", ModeTags, false},
		{"naming", ModeNaming, false},
		{"", ModeAuto, false},
		{"magic", "", true},
		{"TAGS", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDetectionMode(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestByKind(t *testing.T) {
	rc := ResourceConfig{
		Cluster:  ResolvedResource{Kind: KindCluster, Identifier: "c", Strategy: StrategyTags},
		Instance: ResolvedResource{Kind: KindInstance, Identifier: SentinelNoInstance, Strategy: StrategySentinel},
	}

	got, ok := rc.ByKind(KindCluster)
	require.True(t, ok)
	assert.Equal(t, "c", got.Identifier)

	got, ok = rc.ByKind(KindInstance)
	require.True(t, ok)
	assert.Equal(t, SentinelNoInstance, got.Identifier)

	_, ok = rc.ByKind(ResourceKind("bogus"))
	assert.False(t, ok)
}

func TestResolutionErrorMessage(t *testing.T) {
	err := &ResolutionError{Kind: KindCluster, Project: "minecraft", Environment: "prod"}
	assert.Equal(t, `no Cluster resolved for project "minecraft" in environment "prod"`, err.Error())

	var target *ResolutionError
	assert.True(t, errors.As(error(err), &target))
}
