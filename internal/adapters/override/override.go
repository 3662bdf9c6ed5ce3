package override

import "github.com/t-tkm/rcon-resolver/internal/core/domain"

// Overrides holds operator-pinned identifiers. Values come from the
// configuration layer only; no component reads process environment
// directly.
type Overrides struct {
	ClusterName         string
	ServiceName         string
	ContainerName       string
	TaskARN             string
	InstanceID          string
	LoadBalancerDNSName string
}

// Lookup returns the pinned identifier for a kind, if any. Side-effect
// free.
func (o Overrides) Lookup(kind domain.ResourceKind) (string, bool) {
	var v string
	switch kind {
	case domain.KindCluster:
		v = o.ClusterName
	case domain.KindService:
		v = o.ServiceName
	case domain.KindContainer:
		v = o.ContainerName
	case domain.KindTask:
		v = o.TaskARN
	case domain.KindInstance:
		v = o.InstanceID
	case domain.KindLoadBalancer:
		v = o.LoadBalancerDNSName
	}
	return v, v != ""
}
