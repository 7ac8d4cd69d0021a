package analytics

// DashboardData is the single payload behind the admin dashboard.
type DashboardData struct {
	Counts            Counts          `json:"counts"`
	Revenue           Revenue         `json:"revenue"`
	CategoryBreakdown []CategoryStat  `json:"categories"`
	MonthlyRevenue    []MonthlyBucket `json:"monthlyRevenue"`
}

type Counts struct {
	Children   int64 `json:"children"`
	Donations  int64 `json:"donations"`
	Volunteers int64 `json:"volunteers"`
	Sponsors   int64 `json:"sponsors"`
}

type Revenue struct {
	TotalRevenue float64 `bson:"totalRevenue" json:"totalRevenue"`
	AvgDonation  float64 `bson:"avgDonation" json:"avgDonation"`
}

type CategoryStat struct {
	Category string  `bson:"_id" json:"_id"`
	Total    float64 `bson:"total" json:"total"`
	Count    int64   `bson:"count" json:"count"`
}

type MonthKey struct {
	Month int `bson:"month" json:"month"`
	Year  int `bson:"year" json:"year"`
}

type MonthlyBucket struct {
	ID    MonthKey `bson:"_id" json:"_id"`
	Total float64  `bson:"total" json:"total"`
}
