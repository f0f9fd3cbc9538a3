package vigilio

// FundType is a category of funds (ETF, leveraged, ...).
type FundType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// ShareHolder is an entry of the shareholder list.
type ShareHolder struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// ShareHolderSummary aggregates the holdings of one shareholder.
type ShareHolderSummary struct {
	ID         int32   `json:"id"`
	Name       string  `json:"name"`
	NumFunds   int32   `json:"num_funds"`
	TotalValue float64 `json:"total_value"`
}

// ShareHolderHistory is one holding of a shareholder in one fund at one date.
type ShareHolderHistory struct {
	FundID      int32   `json:"fund_id"`
	Fund        string  `json:"fund"`
	FundType    string  `json:"fund_type"`
	ShareCount  float64 `json:"share_count"`
	Value       float64 `json:"value"`
	PctOfShares float64 `json:"pct_of_shares"`
	Date        string  `json:"date"`
}

type ShareHolderForDate struct {
	ID                   int32                `json:"id"`
	ShareHolderName      string               `json:"shareholder_name"`
	ShareHolderHistories []ShareHolderHistory `json:"share_holder_histories"`
}

type ChartData struct {
	Dates       []string  `json:"dates"`
	ShareCounts []float64 `json:"share_counts"`
}

type ShareHolderDetail struct {
	ShareHolderName      string               `json:"shareholder_name"`
	ShareHolderHistories []ShareHolderHistory `json:"share_holder_histories"`
	ChartData            []ChartData          `json:"chart_data"`
}

// ExcelFile is a spreadsheet produced by the upstream service.
type ExcelFile struct {
	Data     []byte
	Filename string
}

type CashFlow struct {
	CashFlow      float64 `json:"cash_flow"`
	InFlow        float64 `json:"in_flow"`
	OutFlow       float64 `json:"out_flow"`
	Profits       float64 `json:"profits"`
	FundName      string  `json:"fund_name"`
	FundType      string  `json:"fund_type"`
	FundID        int32   `json:"fund_id"`
	Symbol        string  `json:"symbol"`
	InstituteKind string  `json:"institute_kind"`
}

type CashFlowDetail struct {
	CashFlow     float64 `json:"cash_flow"`
	InFlow       float64 `json:"in_flow"`
	OutFlow      float64 `json:"out_flow"`
	TotalUnits   float64 `json:"total_units"`
	Purchase     float64 `json:"purchase"`
	Redemption   float64 `json:"redemption"`
	IssuedUnits  float64 `json:"issued_units"`
	RevokedUnits float64 `json:"revoked_units"`
	FundName     string  `json:"fund_name"`
	FundType     string  `json:"fund_type"`
	FundID       int32   `json:"fund_id"`
	Symbol       string  `json:"symbol"`
	Date         string  `json:"date"`
}

// FundReturn carries NAV, price and period returns of a fund.
type FundReturn struct {
	ID            int32   `json:"id"`
	Date          string  `json:"date"`
	FundID        int32   `json:"fund_id"`
	FundName      string  `json:"fund_name"`
	FundType      string  `json:"fund_type"`
	InstituteKind string  `json:"institute_kind"`
	LastNav       float64 `json:"last_nav"`
	LastNavDate   string  `json:"last_nav_date"`
	LastPrice     float64 `json:"last_price"`
	LastPriceDate string  `json:"last_price_date"`
	HasProfit     bool    `json:"has_profit"`
	HasSplit      bool    `json:"has_split"`
	TotalUnits    float64 `json:"total_units"`
	Bubble        float64 `json:"bubble"`
	Thirty        float64 `json:"thirty"`
	Ninety        float64 `json:"ninety"`
	OneEighty     float64 `json:"one_eighty"`
	ThreeSixty    float64 `json:"three_sixty"`
}

// NavData holds the NAV variants of one day. Nil means the upstream did not report it.
type NavData struct {
	Purchase            *float64 `json:"purchase"`
	Redemption          *float64 `json:"redemption"`
	Statistical         *float64 `json:"statistical"`
	PreferredPurchase   *float64 `json:"preferred_purchase"`
	PreferredRedemption *float64 `json:"preferred_redemption"`
	Common              *float64 `json:"common"`
}

type NavTrendItem struct {
	NetAssetValue float64 `json:"net_asset_value"`
	Date          string  `json:"date"`
	NavData       NavData `json:"nav_data"`
}

type NavChartData struct {
	Dates        []string  `json:"dates"`
	Statisticals []float64 `json:"statisticals"`
	Purchases    []float64 `json:"purchases"`
	Redemptions  []float64 `json:"redemptions"`
}

type NavTrend struct {
	NavTrend  []NavTrendItem `json:"nav_trend"`
	ChartData NavChartData   `json:"chart_data"`
}

type Split struct {
	Date       string  `json:"date"`
	UnitsRatio float64 `json:"units_ratio"`
}

type Profit struct {
	Profit float64 `json:"profit"`
	Date   string  `json:"date"`
}

type Price struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
