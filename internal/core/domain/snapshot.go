package domain

// StrategyName records which method produced a resolved identifier.
type StrategyName string

const (
	StrategyTags        StrategyName = "tags"
	StrategyEnvOverride StrategyName = "env"
	StrategyNaming      StrategyName = "naming"

	// Kind-specific last resorts, never disabled by DetectionMode.
	StrategyFirstService   StrategyName = "first-service"
	StrategyRunningTask    StrategyName = "running-task"
	StrategyFirstContainer StrategyName = "first-container"

	// StrategySentinel marks an optional kind that exhausted every
	// strategy and fell back to its sentinel token.
	StrategySentinel StrategyName = "sentinel"
)

// ResolvedResource is produced once per kind per pipeline run and never
// mutated afterwards.
type ResolvedResource struct {
	Kind       ResourceKind
	Identifier string
	Strategy   StrategyName
}

// ResourceConfig is the immutable snapshot emitted by one pipeline run.
// A caller needing freshness re-invokes the pipeline; the snapshot is
// never updated in place.
type ResourceConfig struct {
	Cluster      ResolvedResource
	Service      ResolvedResource
	Task         ResolvedResource
	Container    ResolvedResource
	Instance     ResolvedResource
	LoadBalancer ResolvedResource

	DetectionMode DetectionMode
	ProjectName   string
	Environment   string
	Region        string
}

func (rc ResourceConfig) ByKind(kind ResourceKind) (ResolvedResource, bool) {
	switch kind {
	case KindCluster:
		return rc.Cluster, true
	case KindService:
		return rc.Service, true
	case KindTask:
		return rc.Task, true
	case KindContainer:
		return rc.Container, true
	case KindInstance:
		return rc.Instance, true
	case KindLoadBalancer:
		return rc.LoadBalancer, true
	}
	return ResolvedResource{}, false
}

// Candidate is one listed resource of a kind. Name is the human-facing
// name that naming patterns match against; Identifier is what ends up in
// the snapshot; ARN (when present) is the handle for tag lookups.
type Candidate struct {
	Name       string
	Identifier string
	ARN        string
}

// Scope narrows a listing to already-resolved parents. Cluster is needed
// for service and task listings; Service additionally for task listings.
type Scope struct {
	Cluster string
	Service string
}
