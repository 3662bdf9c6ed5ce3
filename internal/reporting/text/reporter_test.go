package text

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
)

func testSnapshot() *domain.ResourceConfig {
	return &domain.ResourceConfig{
		Cluster:       domain.ResolvedResource{Kind: domain.KindCluster, Identifier: "minecraft-cluster", Strategy: domain.StrategyTags},
		Service:       domain.ResolvedResource{Kind: domain.KindService, Identifier: "minecraft-service", Strategy: domain.StrategyFirstService},
		Task:          domain.ResolvedResource{Kind: domain.KindTask, Identifier: "arn:task", Strategy: domain.StrategyRunningTask},
		Container:     domain.ResolvedResource{Kind: domain.KindContainer, Identifier: "minecraft-server", Strategy: domain.StrategyFirstContainer},
		Instance:      domain.ResolvedResource{Kind: domain.KindInstance, Identifier: domain.SentinelNoInstance, Strategy: domain.StrategySentinel},
		LoadBalancer:  domain.ResolvedResource{Kind: domain.KindLoadBalancer, Identifier: "minecraft-nlb.elb.amazonaws.com", Strategy: domain.StrategyTags},
		DetectionMode: domain.ModeAuto,
		ProjectName:   "minecraft",
		Environment:   "prod",
		Region:        "ap-northeast-1",
	}
}

func TestReportRendersAllKinds(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	r := &Reporter{writer: &buf}

	require.NoError(t, r.Report(context.Background(), testSnapshot()))
	out := buf.String()

	assert.Contains(t, out, "Project:")
	assert.Contains(t, out, "minecraft")
	assert.Contains(t, out, "prod")
	assert.Contains(t, out, "ap-northeast-1")
	for _, kind := range append(append([]domain.ResourceKind{}, domain.ChainKinds...), domain.OptionalKinds...) {
		assert.Contains(t, out, string(kind))
	}
	assert.Contains(t, out, "minecraft-cluster")
	assert.Contains(t, out, domain.SentinelNoInstance)
	assert.Contains(t, out, "first-service")
	assert.Contains(t, out, "sentinel")
}

func TestReportNilSnapshot(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{writer: &buf}
	assert.Error(t, r.Report(context.Background(), nil))
	assert.Zero(t, buf.Len())
}
