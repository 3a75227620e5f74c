package models

// NodeData holds display attributes for a graph node.
type NodeData struct {
	Label     string       `json:"label"`
	NodeType  string       `json:"nodeType,omitempty"`
	Price     string       `json:"price"`
	Change    string       `json:"change"`
	IsUp      bool         `json:"isUp"`
	IsFocused bool         `json:"isFocused,omitempty"`
	Whale     *WhaleReport `json:"whale,omitempty"`
}

// GraphNode is one node of the insight graph: the focused target instrument
// or one of its correlated movers.
type GraphNode struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Data NodeData `json:"data"`
}

// EdgeStyle carries sign-derived visual attributes for a correlation edge.
type EdgeStyle struct {
	Stroke          string `json:"stroke"`
	StrokeWidth     int    `json:"strokeWidth"`
	StrokeDasharray string `json:"strokeDasharray,omitempty"`
}

// GraphEdge links a correlated mover to the target.
type GraphEdge struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Style    EdgeStyle `json:"style"`
	Animated bool      `json:"animated"`
}

// Insight is the aggregated directional verdict.
type Insight struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Score   int    `json:"score"`
}

// IntelGraph is the full per-request result: node set, edge set, and the
// conviction insight. Built fresh per request, never cached beyond the
// response byte cache.
type IntelGraph struct {
	Nodes   []GraphNode `json:"nodes"`
	Edges   []GraphEdge `json:"edges"`
	Insight Insight     `json:"insight"`
}

// IntelResponse wraps a successful SEARCH/CONTEXT result.
type IntelResponse struct {
	Status string      `json:"status"`
	Ticker string      `json:"ticker"`
	Intel  *IntelGraph `json:"intel"`
}

// RiskPlan is the standalone stop-loss/position-size calculation.
type RiskPlan struct {
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
	Shares     int     `json:"shares"`
}
