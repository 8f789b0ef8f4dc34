package fixtures

// Category identifies a keyword-rule fallback bucket. The matcher owns the
// keyword priority table; this package owns the canned content.
type Category string

const (
	CategoryCost      Category = "cost"
	CategoryQuality   Category = "quality"
	CategoryInventory Category = "inventory"
	CategoryDelay     Category = "delay"
	CategoryGeneric   Category = "generic"
)

// FallbackTemplate returns the fully pre-written answer for a keyword
// category. The generic template is the guaranteed terminal case of every
// fallback chain.
func FallbackTemplate(cat Category) AnswerContent {
	switch cat {
	case CategoryCost:
		return AnswerContent{
			Narrative: &Narrative{
				What:           "Transportation and freight costs are running 18-23% above budget across the network, with the West Coast region and the Chicago-Atlanta corridor the largest contributors. Carrier-side overcharges account for roughly $156K of identified quarterly variance.",
				Why:            "Cost pressure traces to three drivers: regional driver shortages forcing premium rates, port congestion adding detention charges, and freight misclassification by primary carriers going uncaught by manual invoice review.",
				Recommendation: "Prioritize an automated freight audit covering classification and surcharge duplication, then renegotiate the two highest-variance carrier contracts. Regional rebalancing toward inland hubs reduces exposure to the most congested corridors.",
			},
			References: []Citation{
				{ID: 1, Document: "regional-transport-analysis.pdf", Title: "Regional Transportation Cost Analysis", Excerpt: "West Coast transportation costs: $3.2M quarterly, LA-Portland corridor at $4.67/mile vs $2.85 national average", Page: 8},
				{ID: 2, Document: "freight-analysis-q3-2024.pdf", Title: "Quarterly Freight Cost Analysis", Excerpt: "TransLogistics Inc. freight class misclassification: Class 85 applied instead of Class 60, resulting in $47,300 overcharges across 23 shipments", Page: 12},
			},
		}
	case CategoryQuality:
		return AnswerContent{
			Narrative: &Narrative{
				What:           "Supplier quality performance is split sharply: the top five suppliers average 98.9% defect-free delivery while the bottom quartile sits at 87.3%, a gap worth roughly $890K annually in rework and expedite costs.",
				Why:            "High performers run statistical process control with real-time monitoring and third-party-audited certifications; low performers rely on manual inspection and lack corrective-action discipline, so the same defect classes recur quarter over quarter.",
				Recommendation: "Shift volume toward the top quality tier, require improvement plans with quarterly milestones from suppliers below 95%, and stand up supplier scorecards reviewed monthly for every contract above $1M.",
			},
			References: []Citation{
				{ID: 1, Document: "supplier-quality-rankings.pdf", Title: "Supplier Quality Performance Rankings Q1 2024", Excerpt: "PrecisionTech: 99.7% quality rate, 0.02% returns. Excellence Manufacturing: 24-hour corrective action response", Page: 4},
				{ID: 2, Document: "supplier-compliance-q3.pdf", Title: "Supplier Compliance Report Q3 2024", Excerpt: "Meridian Supply Co.: 23 violations including 8 missed delivery deadlines, 12 quality failures, 3 pricing disputes", Page: 15},
			},
		}
	case CategoryInventory:
		return AnswerContent{
			Narrative: &Narrative{
				What:           "Inventory health is deteriorating in fast-moving categories: electronics components show a 23.4% stockout rate while seasonal buildup ties up $22.4M in working capital between the February low and November peak.",
				Why:            "Forecast accuracy (67.3% overall, 43.2% for electronics) lags the 78-82% industry benchmark, and safety stock policy is static rather than velocity-driven, so demand spikes convert directly into stockouts while slow movers accumulate.",
				Recommendation: "Introduce velocity-based dynamic reorder points, raise safety stock for A-class electronics to 14 days, and move the top seasonal SKUs onto vendor-managed inventory to compress the working-capital swing.",
			},
			References: []Citation{
				{ID: 1, Document: "stockout-analysis-q1.pdf", Title: "Q1 2024 Stockout Analysis", Excerpt: "Electronics components: 23.4% stockout rate, 147 SKUs affected, $1.87M lost sales", Page: 9},
				{ID: 2, Document: "demand-forecast-accuracy.pdf", Title: "Demand Forecast Accuracy Report", Excerpt: "Consumer electronics demand sensing accuracy: 22% (industry benchmark: 75-80%)", Page: 14},
			},
		}
	case CategoryDelay:
		return AnswerContent{
			Narrative: &Narrative{
				What:           "Delivery reliability is dominated by a single corridor problem: Asia-West Coast lanes account for 67% of delay incidents, with Shanghai-Los Angeles running 3.4 days behind schedule on average and $234K monthly in detention fees.",
				Why:            "Long Beach operates above capacity with multi-day vessel queues, inland rail capacity is constrained, and upstream manufacturing schedules are themselves running late, so delays compound along the lane rather than averaging out.",
				Recommendation: "Shift a portion of Asia volume to East Coast routings, pre-position buffer inventory inland for delay-prone SKUs, and negotiate priority berthing for time-sensitive cargo on the remaining West Coast volume.",
			},
			References: []Citation{
				{ID: 1, Document: "trade-lane-performance.pdf", Title: "Trade Lane Performance Analysis Q1 2024", Excerpt: "Asia-West Coast: 67% of delays. Shanghai-LA averaging 3.4 days behind, $234K monthly detention", Page: 11},
				{ID: 2, Document: "port-congestion-impact.pdf", Title: "Port Congestion Analysis", Excerpt: "Long Beach and Houston port delays averaging 4.2 days, causing $156K in detention charges", Page: 3},
			},
		}
	default:
		return AnswerContent{
			Narrative: &Narrative{
				What:           "Across the network, performance sits near the 67th percentile of industry benchmarks: on-time delivery at 89.3%, inventory turnover at 8.2x, and cost per shipment 23% above the median.",
				Why:            "The common thread behind each gap is limited real-time visibility - decisions are made on month-old aggregates, so cost anomalies, quality drift, and lane delays are detected after their impact lands rather than as they emerge.",
				Recommendation: "Start with the highest-variance area for your operation - freight audit, supplier scorecards, or lane diversification - and instrument it for weekly review before expanding the program.",
			},
			References: []Citation{
				{ID: 1, Document: "industry-benchmark-study.pdf", Title: "Supply Chain Industry Benchmark Study 2024", Excerpt: "Performance ranking: 67th percentile. Inventory turnover: 8.2x vs best-in-class 12.4x", Page: 5},
			},
		}
	}
}

// FollowUpPair returns the curated follow-up questions for a category, used
// when the remote suggestion sources are unavailable.
func FollowUpPair(cat Category) []string {
	switch cat {
	case CategoryCost:
		return []string{
			"Which carriers contribute most to freight overcharges?",
			"What's the impact of fuel price volatility?",
		}
	case CategoryQuality:
		return []string{
			"Which suppliers have the highest contract compliance risk?",
			"What's the average time to resolve supplier disputes?",
		}
	case CategoryInventory:
		return []string{
			"How effective are our demand forecasting models?",
			"How do seasonal patterns affect inventory levels?",
		}
	case CategoryDelay:
		return []string{
			"Which trade lanes show the most delays?",
			"How do weather patterns affect our logistics performance?",
		}
	default:
		return nil
	}
}
