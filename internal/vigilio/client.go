package vigilio

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Spreadsheet exports can exceed the 4 MB gRPC default.
const maxMsgSize = 16 * 1024 * 1024 // 16 MB

// DialConfig describes how to reach the upstream service.
type DialConfig struct {
	Host            string // host:port
	Secure          bool
	CredentialsPath string // PEM root certificates, used only when Secure
}

// Client implements Upstream over a gRPC connection.
type Client struct {
	conn grpc.ClientConnInterface
	cc   *grpc.ClientConn
}

// NewClient wraps an existing connection. Close is a no-op for it.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial creates a client for cfg. The connection is established lazily on the first call.
func Dial(cfg DialConfig) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("vigilio: grpc host is required")
	}

	var creds credentials.TransportCredentials
	switch {
	case !cfg.Secure:
		creds = insecure.NewCredentials()
	case cfg.CredentialsPath != "":
		c, err := credentials.NewClientTLSFromFile(cfg.CredentialsPath, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load grpc credentials: %w", err)
		}
		creds = c
	default:
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	cc, err := grpc.NewClient(cfg.Host,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMsgSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client for %s: %w", cfg.Host, err)
	}
	return &Client{conn: cc, cc: cc}, nil
}

// Close releases the connection created by Dial.
func (c *Client) Close() error {
	if c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// invoke performs one unary call. Errors are returned untouched so callers
// can read the gRPC status.
func (c *Client) invoke(ctx context.Context, method string, req request) (reader, error) {
	resp := dynamicpb.NewMessage(Method(method).Output())
	if id := RequestIDFrom(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, id)
	}
	if err := c.conn.Invoke(ctx, FullMethod(method), req.m, resp); err != nil {
		return reader{}, err
	}
	return reader{m: resp.ProtoReflect()}, nil
}

func (c *Client) GetFundTypes(ctx context.Context) ([]FundType, error) {
	r, err := c.invoke(ctx, "GetFundTypes", newRequest("GetFundTypes"))
	if err != nil {
		return nil, err
	}
	out := make([]FundType, 0, r.count("fund_types"))
	r.each("fund_types", func(ft reader) {
		out = append(out, FundType{ID: ft.i32("id"), Name: ft.str("name")})
	})
	return out, nil
}

func (c *Client) ListShareHolders(ctx context.Context, fundType string) ([]ShareHolder, error) {
	req := newRequest("ListShareHolders").str("fund_type", fundType)
	r, err := c.invoke(ctx, "ListShareHolders", req)
	if err != nil {
		return nil, err
	}
	out := make([]ShareHolder, 0, r.count("shareholders"))
	r.each("shareholders", func(sh reader) {
		out = append(out, ShareHolder{ID: sh.i32("id"), Name: sh.str("name")})
	})
	return out, nil
}

func (c *Client) ShareHoldersSummary(ctx context.Context, f SummaryFilter) ([]ShareHolderSummary, error) {
	req := newRequest("ShareHoldersSummary").
		str("date", f.Date).
		str("fund_type", f.FundType).
		str("search", f.Search).
		str("ordering", f.Ordering)
	r, err := c.invoke(ctx, "ShareHoldersSummary", req)
	if err != nil {
		return nil, err
	}
	out := make([]ShareHolderSummary, 0, r.count("shareholders"))
	r.each("shareholders", func(sh reader) {
		out = append(out, ShareHolderSummary{
			ID:         sh.i32("id"),
			Name:       sh.str("name"),
			NumFunds:   sh.i32("num_funds"),
			TotalValue: sh.f64("total_value"),
		})
	})
	return out, nil
}

func (c *Client) ExportShareHoldersSummaryExcel(ctx context.Context, e SummaryExport) (ExcelFile, error) {
	req := newRequest("ExportShareHoldersSummaryExcel").
		str("fund_type", e.FundType).
		str("date", e.Date)
	r, err := c.invoke(ctx, "ExportShareHoldersSummaryExcel", req)
	if err != nil {
		return ExcelFile{}, err
	}
	return ExcelFile{Data: r.bytes("excel_data"), Filename: r.str("filename")}, nil
}

func (c *Client) GetShareHolderForDate(ctx context.Context, f ForDateFilter) (ShareHolderForDate, error) {
	req := newRequest("GetShareHolderForDate").
		i32("shareholder_id", f.ShareHolderID).
		str("date", f.Date).
		str("fund_type", f.FundType)
	r, err := c.invoke(ctx, "GetShareHolderForDate", req)
	if err != nil {
		return ShareHolderForDate{}, err
	}
	return ShareHolderForDate{
		ID:                   r.i32("id"),
		ShareHolderName:      r.str("shareholder_name"),
		ShareHolderHistories: readHistories(r),
	}, nil
}

func (c *Client) GetShareHolderDetail(ctx context.Context, id int32, fund string) (ShareHolderDetail, error) {
	req := newRequest("GetShareHolderDetail").
		i32("shareholder_id", id).
		str("fund", fund)
	r, err := c.invoke(ctx, "GetShareHolderDetail", req)
	if err != nil {
		return ShareHolderDetail{}, err
	}
	charts := make([]ChartData, 0, r.count("chart_data"))
	r.each("chart_data", func(ch reader) {
		charts = append(charts, ChartData{
			Dates:       ch.strings("dates"),
			ShareCounts: ch.floats("share_counts"),
		})
	})
	return ShareHolderDetail{
		ShareHolderName:      r.str("shareholder_name"),
		ShareHolderHistories: readHistories(r),
		ChartData:            charts,
	}, nil
}

func (c *Client) ExportShareHolderExcel(ctx context.Context, id int32, fund string) (ExcelFile, error) {
	req := newRequest("ExportShareHolderExcel").
		i32("shareholder_id", id).
		str("fund", fund)
	r, err := c.invoke(ctx, "ExportShareHolderExcel", req)
	if err != nil {
		return ExcelFile{}, err
	}
	return ExcelFile{Data: r.bytes("excel_file"), Filename: r.str("file_name")}, nil
}

func (c *Client) ListCashFlows(ctx context.Context, f CashFlowFilter) ([]CashFlow, error) {
	req := newRequest("ListCashFlows").
		str("start_date", f.StartDate).
		str("end_date", f.EndDate).
		str("institute_kind", f.InstituteKind)
	r, err := c.invoke(ctx, "ListCashFlows", req)
	if err != nil {
		return nil, err
	}
	out := make([]CashFlow, 0, r.count("cash_flows"))
	r.each("cash_flows", func(cf reader) {
		out = append(out, CashFlow{
			CashFlow:      cf.f64("cash_flow"),
			InFlow:        cf.f64("in_flow"),
			OutFlow:       cf.f64("out_flow"),
			Profits:       cf.f64("profits"),
			FundName:      cf.str("fund_name"),
			FundType:      cf.str("fund_type"),
			FundID:        cf.i32("fund_id"),
			Symbol:        cf.str("symbol"),
			InstituteKind: cf.str("institute_kind"),
		})
	})
	return out, nil
}

func (c *Client) GetCashFlowDetail(ctx context.Context, f CashFlowDetailFilter) ([]CashFlowDetail, error) {
	req := newRequest("GetCashFlowDetail").
		i32("fund_id", f.FundID).
		str("start_date", f.StartDate).
		str("end_date", f.EndDate).
		str("fund_type", f.FundType).
		str("institute_kind", f.InstituteKind)
	r, err := c.invoke(ctx, "GetCashFlowDetail", req)
	if err != nil {
		return nil, err
	}
	out := make([]CashFlowDetail, 0, r.count("cash_flows"))
	r.each("cash_flows", func(cf reader) {
		out = append(out, CashFlowDetail{
			CashFlow:     cf.f64("cash_flow"),
			InFlow:       cf.f64("in_flow"),
			OutFlow:      cf.f64("out_flow"),
			TotalUnits:   cf.f64("total_units"),
			Purchase:     cf.f64("purchase"),
			Redemption:   cf.f64("redemption"),
			IssuedUnits:  cf.f64("issued_units"),
			RevokedUnits: cf.f64("revoked_units"),
			FundName:     cf.str("fund_name"),
			FundType:     cf.str("fund_type"),
			FundID:       cf.i32("fund_id"),
			Symbol:       cf.str("symbol"),
			Date:         cf.str("date"),
		})
	})
	return out, nil
}

func (c *Client) ListTotalReturns(ctx context.Context, f TotalReturnFilter) ([]FundReturn, error) {
	req := newRequest("ListTotalReturns").
		str("fund_type", f.FundType).
		i32("fund_id", f.FundID).
		str("institute_kind", f.InstituteKind).
		str("date", f.Date)
	r, err := c.invoke(ctx, "ListTotalReturns", req)
	if err != nil {
		return nil, err
	}
	return readFundReturns(r), nil
}

func (c *Client) ListEtfReturns(ctx context.Context, f EtfReturnFilter) ([]FundReturn, error) {
	req := newRequest("ListEtfReturns").
		i32("fund_id", f.FundID).
		str("institute_kind", f.InstituteKind).
		str("date", f.Date)
	r, err := c.invoke(ctx, "ListEtfReturns", req)
	if err != nil {
		return nil, err
	}
	return readFundReturns(r), nil
}

func (c *Client) GetNavTrend(ctx context.Context, fundID int32) (NavTrend, error) {
	r, err := c.invoke(ctx, "GetNavTrend", newRequest("GetNavTrend").i32("fund_id", fundID))
	if err != nil {
		return NavTrend{}, err
	}
	items := make([]NavTrendItem, 0, r.count("nav_trend"))
	r.each("nav_trend", func(it reader) {
		nd := it.msg("nav_data")
		items = append(items, NavTrendItem{
			NetAssetValue: it.f64("net_asset_value"),
			Date:          it.str("date"),
			NavData: NavData{
				Purchase:            nd.optF64("purchase"),
				Redemption:          nd.optF64("redemption"),
				Statistical:         nd.optF64("statistical"),
				PreferredPurchase:   nd.optF64("preferred_purchase"),
				PreferredRedemption: nd.optF64("preferred_redemption"),
				Common:              nd.optF64("common"),
			},
		})
	})
	chart := r.msg("chart_data")
	return NavTrend{
		NavTrend: items,
		ChartData: NavChartData{
			Dates:        chart.strings("dates"),
			Statisticals: chart.floats("statisticals"),
			Purchases:    chart.floats("purchases"),
			Redemptions:  chart.floats("redemptions"),
		},
	}, nil
}

func (c *Client) GetSplits(ctx context.Context, fundID int32) ([]Split, error) {
	r, err := c.invoke(ctx, "GetSplits", newRequest("GetSplits").i32("fund_id", fundID))
	if err != nil {
		return nil, err
	}
	out := make([]Split, 0, r.count("splits"))
	r.each("splits", func(s reader) {
		out = append(out, Split{Date: s.str("date"), UnitsRatio: s.f64("units_ratio")})
	})
	return out, nil
}

func (c *Client) GetProfits(ctx context.Context, fundID int32) ([]Profit, error) {
	r, err := c.invoke(ctx, "GetProfits", newRequest("GetProfits").i32("fund_id", fundID))
	if err != nil {
		return nil, err
	}
	out := make([]Profit, 0, r.count("profits"))
	r.each("profits", func(p reader) {
		out = append(out, Profit{Profit: p.f64("profit"), Date: p.str("date")})
	})
	return out, nil
}

func (c *Client) GetPrices(ctx context.Context, fundID int32) ([]Price, error) {
	r, err := c.invoke(ctx, "GetPrices", newRequest("GetPrices").i32("fund_id", fundID))
	if err != nil {
		return nil, err
	}
	out := make([]Price, 0, r.count("prices"))
	r.each("prices", func(p reader) {
		out = append(out, Price{Date: p.str("date"), Price: p.f64("price")})
	})
	return out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetFundTypes(ctx)
	return err
}
