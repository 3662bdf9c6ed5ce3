package service

import "github.com/t-tkm/rcon-resolver/internal/core/domain"

// StrategySelector interprets the configured detection mode. It gates the
// three strategy families only; kind-specific last resorts (first service,
// running-task listing, first container, sentinels) always apply.
type StrategySelector struct {
	mode domain.DetectionMode
}

func NewStrategySelector(mode domain.DetectionMode) StrategySelector {
	return StrategySelector{mode: mode}
}

func (s StrategySelector) Mode() domain.DetectionMode {
	return s.mode
}

func (s StrategySelector) Allows(strategy domain.StrategyName) bool {
	if s.mode == domain.ModeAuto {
		return true
	}
	switch strategy {
	case domain.StrategyTags:
		return s.mode == domain.ModeTags
	case domain.StrategyEnvOverride:
		return s.mode == domain.ModeEnv
	case domain.StrategyNaming:
		return s.mode == domain.ModeNaming
	}
	return true
}
