package domain

import "fmt"

// DetectionMode restricts which strategy families the pipeline may use.
// Auto runs the full cascade; the other modes pin a single family.
type DetectionMode string

const (
	ModeAuto   DetectionMode = "auto"
	ModeEnv    DetectionMode = "env"
	ModeTags   DetectionMode = "tags"
	ModeNaming DetectionMode = "naming"
)

func (m DetectionMode) String() string {
	return string(m)
}

func ParseDetectionMode(s string) (DetectionMode, error) {
	switch DetectionMode(s) {
	case ModeAuto, ModeEnv, ModeTags, ModeNaming:
		return DetectionMode(s), nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("invalid detection mode %q (expected auto, env, tags or naming)", s)
}
