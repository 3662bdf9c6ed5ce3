package service

// runState tracks one resolution pass through the dependency chain.
// Failed is terminal and reachable from any state when a required kind
// exhausts its strategies; optional kinds never cause the transition.
type runState int

const (
	stateNotStarted runState = iota
	stateClusterResolved
	stateServiceResolved
	stateTaskResolved
	stateContainerResolved
	stateComplete
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateNotStarted:
		return "NotStarted"
	case stateClusterResolved:
		return "ClusterResolved"
	case stateServiceResolved:
		return "ServiceResolved"
	case stateTaskResolved:
		return "TaskResolved"
	case stateContainerResolved:
		return "ContainerResolved"
	case stateComplete:
		return "Complete"
	case stateFailed:
		return "Failed"
	}
	return "Unknown"
}
