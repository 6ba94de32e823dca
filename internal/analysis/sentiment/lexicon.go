package sentiment

// Per-class keyword weights (lowercase, single tokens). Negative terms
// cover disruption, shortage, and financial-distress vocabulary seen
// in supply-chain reporting; positive terms cover recovery and growth.
// Neutral terms are low-weight reporting vocabulary that damps weak
// one-keyword signals.

var negativeWeights = map[string]float64{
	"delay": 0.6, "delays": 0.6, "delayed": 0.6,
	"shortage": 0.7, "shortages": 0.7, "disruption": 0.7, "disruptions": 0.7,
	"missing": 0.5, "backlog": 0.5, "bottleneck": 0.6, "halt": 0.6, "halted": 0.6,
	"strike": 0.6, "recall": 0.6, "bankruptcy": 0.8, "insolvency": 0.8,
	"crash": 0.8, "plunge": 0.7, "slump": 0.6, "decline": 0.5, "fall": 0.4,
	"loss": 0.4, "losses": 0.4, "weak": 0.4, "negative": 0.4,
	"downgrade": 0.6, "underperform": 0.6, "selloff": 0.7,
	"fraud": 0.8, "scam": 0.8, "investigation": 0.5, "lawsuit": 0.5,
	"tariff": 0.4, "tariffs": 0.4, "sanctions": 0.5, "embargo": 0.6,
	"warning": 0.5, "concern": 0.3, "concerns": 0.3, "risk": 0.3, "risks": 0.3,
	"cut": 0.3, "cuts": 0.3, "miss": 0.5, "fail": 0.5, "failure": 0.5,
}

var neutralWeights = map[string]float64{
	"report": 0.2, "reports": 0.2, "reported": 0.2,
	"announce": 0.2, "announced": 0.2, "announcement": 0.2,
	"quarter": 0.2, "quarterly": 0.2, "annual": 0.2,
	"update": 0.2, "plan": 0.2, "plans": 0.2, "expects": 0.2,
	"forecast": 0.2, "estimate": 0.2, "statement": 0.2,
	"market": 0.1, "industry": 0.1, "company": 0.1, "supplier": 0.1,
}

var positiveWeights = map[string]float64{
	"growth": 0.4, "strong": 0.4, "record": 0.5, "surge": 0.7,
	"rally": 0.6, "recovery": 0.5, "recovered": 0.5, "rebound": 0.5,
	"reliable": 0.6, "resilient": 0.5, "stable": 0.4, "improved": 0.5,
	"improve": 0.5, "improving": 0.5, "expansion": 0.4, "expand": 0.4,
	"upgrade": 0.6, "outperform": 0.6, "beat": 0.5, "beats": 0.5,
	"exceeds": 0.5, "profit": 0.3, "profits": 0.3, "gain": 0.4, "gains": 0.4,
	"great": 0.5, "positive": 0.4, "success": 0.5, "successful": 0.5,
	"partnership": 0.4, "breakthrough": 0.6, "efficient": 0.4,
	"upbeat": 0.5, "bullish": 0.7, "accumulate": 0.5, "dividend": 0.4,
}
