package quote

import "strings"

// Params expresses tunable knobs required by strategy constructors.
type Params struct {
	PositionLimit int
	LayerSize     int
	SkewTrigger   int
}

// Build returns a strategy implementation matching the configured mode.
func Build(mode string, params Params) Strategy {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "layered", "layered_maker", "maker":
		return NewLayeredMaker(params.PositionLimit, params.LayerSize, params.SkewTrigger)
	case "follower", "signal_follower", "taker":
		return NewSignalFollower(params.PositionLimit)
	default:
		return NewLayeredMaker(params.PositionLimit, params.LayerSize, params.SkewTrigger)
	}
}
