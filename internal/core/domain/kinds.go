package domain

type ResourceKind string

const (
	KindCluster      ResourceKind = "Cluster"
	KindService      ResourceKind = "Service"
	KindTask         ResourceKind = "Task"
	KindContainer    ResourceKind = "Container"
	KindInstance     ResourceKind = "Instance"
	KindLoadBalancer ResourceKind = "LoadBalancer"
)

func (rk ResourceKind) String() string {
	return string(rk)
}

// Required reports whether resolution of this kind is mandatory.
// Exhausting every strategy for a required kind fails the whole run;
// optional kinds degrade to their sentinel instead.
func (rk ResourceKind) Required() bool {
	switch rk {
	case KindCluster, KindService, KindTask, KindContainer:
		return true
	}
	return false
}

// ChainKinds is the dependency chain: each kind's lookup needs the
// identifier of the one before it.
var ChainKinds = []ResourceKind{KindCluster, KindService, KindTask, KindContainer}

// OptionalKinds resolve independently of the chain.
var OptionalKinds = []ResourceKind{KindInstance, KindLoadBalancer}

// Sentinel tokens stand in for "resource not present" on optional kinds.
// Callers must compare against these literals, never against emptiness.
const (
	SentinelNoInstance     = "fargate-no-ec2"
	SentinelNoLoadBalancer = "no-nlb-configured"
)

func SentinelFor(kind ResourceKind) (string, bool) {
	switch kind {
	case KindInstance:
		return SentinelNoInstance, true
	case KindLoadBalancer:
		return SentinelNoLoadBalancer, true
	}
	return "", false
}
