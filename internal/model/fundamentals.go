package model

// Canonical fundamentals ratio names. A snapshot maps any subset of these to
// numeric values; missing or unconvertible fields are simply absent.
const (
	FieldTrailingPE              = "trailingPE"
	FieldEarningsQuarterlyGrowth = "earningsQuarterlyGrowth"
	FieldRevenueQuarterlyGrowth  = "revenueQuarterlyGrowth"
	FieldDebtToEquity            = "debtToEquity"
)

// FundamentalFields lists the canonical ratio names kept by the adapter.
var FundamentalFields = []string{
	FieldTrailingPE,
	FieldEarningsQuarterlyGrowth,
	FieldRevenueQuarterlyGrowth,
	FieldDebtToEquity,
}
