package fixtures

// sourceDocuments returns the pre-authored document bodies. Lines wrapped as
// [HIGHLIGHTED: ...] are pre-marked excerpts that render highlighted
// regardless of the active highlight string.
func sourceDocuments() []Document {
	return []Document{
		{
			ID:    "freight-analysis-q3-2024.pdf",
			Title: "Quarterly Freight Cost Analysis Q3 2024",
			Pages: 28,
			Type:  "Financial Analysis",
			Content: `QUARTERLY FREIGHT COST ANALYSIS
Q3 2024 EXECUTIVE SUMMARY

TRANSLOGISTICS INC. FREIGHT SERVICES
Invoice Analysis & Cost Optimization Report

Executive Summary:
Total freight spend for Q3 2024: $2,847,300
Variance from budget: +23.4% ($542,100 over)
Key anomalies identified: $156,800 in questionable charges

CARRIER PERFORMANCE ANALYSIS:

TransLogistics Inc.:
- Total spend: $1,247,300
- Overcharges identified: $156,800
- Primary issues: Freight classification errors (67% of overcharges)

[HIGHLIGHTED: TransLogistics Inc. freight class misclassification: Class 85 applied instead of Class 60, resulting in $47,300 overcharges across 23 shipments]

Detailed Freight Class Issues:
- 23 machinery shipments incorrectly classified as Class 85 instead of Class 60
- Cost per shipment impact: $2,056 average overcharge
- Recovery potential: $47,300 confirmed recoverable amount

Route Analysis:
Route A (New York-Miami): Performance within 5% of budget
Route B (Chicago-Atlanta): 340% cost increase vs Q2 baseline
Route C (Los Angeles-Dallas): 12% under budget due to carrier optimization

Route B Cost Increase:
Q2 2024: $2.34/mile
Q3 2024: $10.30/mile
Variance: 340% increase

Root Causes:
- Driver shortage premium: +$1.20/mile
- Fuel volatility: +$0.87/mile
- Equipment shortage: +$2.45/mile
- Routing inefficiency: +$3.44/mile`,
		},
		{
			ID:    "supplier-compliance-q3.pdf",
			Title: "Supplier Compliance Report Q3 2024",
			Pages: 45,
			Type:  "Compliance Report",
			Content: `SUPPLIER COMPLIANCE REPORT
Q3 2024 COMPREHENSIVE ANALYSIS

EXECUTIVE DASHBOARD:
Total Active Suppliers: 234
Compliant Suppliers: 167 (71.4%)
Non-Compliant: 67 (28.6%)
Critical Issues: 12 suppliers

HIGH-RISK SUPPLIER ANALYSIS:

Meridian Supply Co. (Contract Value: $2.3M annually)
Violations This Quarter: 23
- Delivery delays: 8 instances (avg 5.2 days late)
- Quality failures: 12 cases (4.7% defect rate vs 0.8% standard)
- Pricing disputes: 3 instances

[HIGHLIGHTED: Meridian Supply Co.: 23 violations including 8 missed delivery deadlines, 12 quality failures, 3 pricing disputes]

Cost Impact:
- Production delays: $89,400
- Quality rework: $34,500
- Expedited shipping: $23,100
Total Impact: $147,000

Global Parts Inc. (Contract Value: $1.8M annually)
Force Majeure Claims: 12 (vs industry avg 3-4)
Pattern Analysis: Suspect abuse of contract terms
Recommended Action: Contract renegotiation required

Performance Metrics:
- On-time delivery: 67% (Target: 95%)
- Quality rating: 2.3/5 (Target: 4.5/5)
- Cost adherence: 78% (Target: 98%)

FINANCIAL SUMMARY:
Total compliance-related costs Q3: $847,300
- Supplier penalties: $234,100
- Quality issues: $278,900
- Delivery delays: $189,700
- Administrative costs: $144,600

Projected annual impact: $3.2M
Industry average: $1.8M (78% higher than benchmark)`,
		},
	}
}

// additionalQuestions is the static pool sampled for follow-up suggestions
// when neither the remote source nor a category pair is available.
func additionalQuestions() []string {
	return []string{
		"What's the ROI on our last supply chain automation project?",
		"Which regions have the highest transportation costs?",
		"How do weather patterns affect our logistics performance?",
		"What's our average supplier onboarding time?",
		"Which product categories have the most stockouts?",
		"How effective are our demand forecasting models?",
		"What's the impact of fuel price volatility?",
		"Which suppliers provide the best quality metrics?",
		"How do trade tariffs affect our sourcing strategy?",
		"What's our carbon footprint from transportation?",
		"Which warehouses have the highest operating costs?",
		"How do seasonal patterns affect inventory levels?",
		"What's the average time to resolve supplier disputes?",
		"Which trade lanes show the most delays?",
		"How does our performance compare to industry benchmarks?",
		"What's the total cost of ownership for our logistics network?",
		"Which suppliers have the best ESG ratings?",
		"How do geopolitical events impact supply continuity?",
		"What's the financial impact of product recalls?",
		"Which distribution channels are most cost-effective?",
		"How do labor shortages affect our operations?",
		"What's the average lead time for critical components?",
		"Which suppliers offer the best payment terms?",
		"How do we measure supplier innovation contribution?",
		"What's the cost impact of regulatory compliance changes?",
	}
}

// StarterQuestions is the static fallback shown before any question is asked,
// used when the remote starter source is unavailable.
var StarterQuestions = []string{
	"What are the main freight cost anomalies this quarter?",
	"Which suppliers have the highest contract compliance risk?",
	"What's the ROI on our last supply chain automation project?",
	"Which regions have the highest transportation costs?",
}
