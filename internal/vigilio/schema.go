package vigilio

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ServiceName is the fully qualified name of the upstream gRPC service.
const ServiceName = "vigilio.VigilioService"

const protoPackage = "vigilio"

// The upstream ships no Go bindings, so the wire schema (mirrored in
// proto/vigilio.proto) is described here and messages travel as dynamicpb
// values through the regular proto codec.

type fieldType = descriptorpb.FieldDescriptorProto_Type

const (
	tString = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tInt32  = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tDouble = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	tBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	tBytes  = descriptorpb.FieldDescriptorProto_TYPE_BYTES
	tMsg    = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func field(name string, num int32, t fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   t.Enum(),
	}
}

func list(name string, num int32, t fieldType) *descriptorpb.FieldDescriptorProto {
	f := field(name, num, t)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func msgField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, num, tMsg)
	f.TypeName = proto.String("." + protoPackage + "." + typeName)
	return f
}

func msgList(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := msgField(name, num, typeName)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

// optionalMessage declares every field as proto3 "optional" so presence
// survives the wire. Each field gets its own synthetic oneof.
func optionalMessage(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	m := message(name, fields...)
	for i, f := range fields {
		f.Proto3Optional = proto.Bool(true)
		f.OneofIndex = proto.Int32(int32(i))
		m.OneofDecl = append(m.OneofDecl, &descriptorpb.OneofDescriptorProto{
			Name: proto.String("_" + f.GetName()),
		})
	}
	return m
}

func rpc(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String("." + protoPackage + "." + in),
		OutputType: proto.String("." + protoPackage + "." + out),
	}
}

func fundReturnMessage() *descriptorpb.DescriptorProto {
	return message("FundReturn",
		field("id", 1, tInt32),
		field("date", 2, tString),
		field("fund_id", 3, tInt32),
		field("fund_name", 4, tString),
		field("fund_type", 5, tString),
		field("institute_kind", 6, tString),
		field("last_nav", 7, tDouble),
		field("last_nav_date", 8, tString),
		field("last_price", 9, tDouble),
		field("last_price_date", 10, tString),
		field("has_profit", 11, tBool),
		field("has_split", 12, tBool),
		field("total_units", 13, tDouble),
		field("bubble", 14, tDouble),
		field("thirty", 15, tDouble),
		field("ninety", 16, tDouble),
		field("one_eighty", 17, tDouble),
		field("three_sixty", 18, tDouble),
	)
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("vigilio.proto"),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			// fund types
			message("GetFundTypesRequest"),
			message("FundType",
				field("id", 1, tInt32),
				field("name", 2, tString),
			),
			message("GetFundTypesResponse", msgList("fund_types", 1, "FundType")),

			// shareholders
			message("ShareHolderListRequest", field("fund_type", 1, tString)),
			message("ShareHolderListItem",
				field("id", 1, tInt32),
				field("name", 2, tString),
			),
			message("ShareHolderListResponse", msgList("shareholders", 1, "ShareHolderListItem")),
			message("ShareHolderSummaryListRequest",
				field("date", 1, tString),
				field("fund_type", 2, tString),
				field("search", 3, tString),
				field("ordering", 4, tString),
			),
			message("ShareHolderSummary",
				field("id", 1, tInt32),
				field("name", 2, tString),
				field("num_funds", 3, tInt32),
				field("total_value", 4, tDouble),
			),
			message("ShareHolderSummaryListResponse", msgList("shareholders", 1, "ShareHolderSummary")),
			message("ShareHolderSummaryExportRequest",
				field("fund_type", 1, tString),
				field("date", 2, tString),
			),
			message("ShareHolderSummaryExportResponse",
				field("excel_data", 1, tBytes),
				field("filename", 2, tString),
			),
			message("ShareHolderFundHistory",
				field("fund_id", 1, tInt32),
				field("fund", 2, tString),
				field("share_count", 3, tDouble),
				field("value", 4, tDouble),
				field("date", 5, tString),
				field("fund_type", 6, tString),
				field("pct_of_shares", 7, tDouble),
			),
			message("ShareHolderForDateRequest",
				field("shareholder_id", 1, tInt32),
				field("date", 2, tString),
				field("fund_type", 3, tString),
			),
			message("ShareHolderForDateResponse",
				field("id", 1, tInt32),
				field("shareholder_name", 2, tString),
				msgList("share_holder_histories", 3, "ShareHolderFundHistory"),
			),
			message("ChartData",
				list("dates", 1, tString),
				list("share_counts", 2, tDouble),
			),
			message("GetShareHolderDetailRequest",
				field("shareholder_id", 1, tInt32),
				field("fund", 2, tString),
			),
			message("GetShareHolderDetailResponse",
				field("shareholder_name", 1, tString),
				msgList("share_holder_histories", 2, "ShareHolderFundHistory"),
				msgList("chart_data", 3, "ChartData"),
			),
			message("ExportShareHolderExcelRequest",
				field("shareholder_id", 1, tInt32),
				field("fund", 2, tString),
			),
			message("ExportShareHolderExcelResponse",
				field("excel_file", 1, tBytes),
				field("file_name", 2, tString),
			),

			// cash flows
			message("ListCashFlowsRequest",
				field("start_date", 1, tString),
				field("end_date", 2, tString),
				field("institute_kind", 3, tString),
			),
			message("CashFlow",
				field("cash_flow", 1, tDouble),
				field("in_flow", 2, tDouble),
				field("out_flow", 3, tDouble),
				field("profits", 4, tDouble),
				field("fund_name", 5, tString),
				field("fund_type", 6, tString),
				field("fund_id", 7, tInt32),
				field("symbol", 8, tString),
				field("institute_kind", 9, tString),
			),
			message("ListCashFlowsResponse", msgList("cash_flows", 1, "CashFlow")),
			message("GetCashFlowDetailRequest",
				field("fund_id", 1, tInt32),
				field("start_date", 2, tString),
				field("end_date", 3, tString),
				field("fund_type", 4, tString),
				field("institute_kind", 5, tString),
			),
			message("CashFlowDetail",
				field("cash_flow", 1, tDouble),
				field("in_flow", 2, tDouble),
				field("out_flow", 3, tDouble),
				field("total_units", 4, tDouble),
				field("purchase", 5, tDouble),
				field("redemption", 6, tDouble),
				field("issued_units", 7, tDouble),
				field("revoked_units", 8, tDouble),
				field("fund_name", 9, tString),
				field("fund_type", 10, tString),
				field("fund_id", 11, tInt32),
				field("symbol", 12, tString),
				field("date", 13, tString),
			),
			message("GetCashFlowDetailResponse", msgList("cash_flows", 1, "CashFlowDetail")),

			// returns
			fundReturnMessage(),
			message("ListTotalReturnsRequest",
				field("fund_type", 1, tString),
				field("fund_id", 2, tInt32),
				field("institute_kind", 3, tString),
				field("date", 4, tString),
			),
			message("ListTotalReturnsResponse", msgList("returns", 1, "FundReturn")),
			message("ListEtfReturnsRequest",
				field("fund_id", 1, tInt32),
				field("institute_kind", 2, tString),
				field("date", 3, tString),
			),
			message("ListEtfReturnsResponse", msgList("returns", 1, "FundReturn")),

			// fund detail
			message("GetNavTrendRequest", field("fund_id", 1, tInt32)),
			optionalMessage("NavData",
				field("purchase", 1, tDouble),
				field("redemption", 2, tDouble),
				field("statistical", 3, tDouble),
				field("preferred_purchase", 4, tDouble),
				field("preferred_redemption", 5, tDouble),
				field("common", 6, tDouble),
			),
			message("NavTrendItem",
				field("net_asset_value", 1, tDouble),
				field("date", 2, tString),
				msgField("nav_data", 3, "NavData"),
			),
			message("NavChartData",
				list("dates", 1, tString),
				list("statisticals", 2, tDouble),
				list("purchases", 3, tDouble),
				list("redemptions", 4, tDouble),
			),
			message("GetNavTrendResponse",
				msgList("nav_trend", 1, "NavTrendItem"),
				msgField("chart_data", 2, "NavChartData"),
			),
			message("GetSplitsRequest", field("fund_id", 1, tInt32)),
			message("Split",
				field("date", 1, tString),
				field("units_ratio", 2, tDouble),
			),
			message("GetSplitsResponse", msgList("splits", 1, "Split")),
			message("GetProfitsRequest", field("fund_id", 1, tInt32)),
			message("Profit",
				field("profit", 1, tDouble),
				field("date", 2, tString),
			),
			message("GetProfitsResponse", msgList("profits", 1, "Profit")),
			message("GetPricesRequest", field("fund_id", 1, tInt32)),
			message("Price",
				field("date", 1, tString),
				field("price", 2, tDouble),
			),
			message("GetPricesResponse", msgList("prices", 1, "Price")),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("VigilioService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				rpc("GetFundTypes", "GetFundTypesRequest", "GetFundTypesResponse"),
				rpc("ListShareHolders", "ShareHolderListRequest", "ShareHolderListResponse"),
				rpc("ShareHoldersSummary", "ShareHolderSummaryListRequest", "ShareHolderSummaryListResponse"),
				rpc("ExportShareHoldersSummaryExcel", "ShareHolderSummaryExportRequest", "ShareHolderSummaryExportResponse"),
				rpc("GetShareHolderForDate", "ShareHolderForDateRequest", "ShareHolderForDateResponse"),
				rpc("GetShareHolderDetail", "GetShareHolderDetailRequest", "GetShareHolderDetailResponse"),
				rpc("ExportShareHolderExcel", "ExportShareHolderExcelRequest", "ExportShareHolderExcelResponse"),
				rpc("ListCashFlows", "ListCashFlowsRequest", "ListCashFlowsResponse"),
				rpc("GetCashFlowDetail", "GetCashFlowDetailRequest", "GetCashFlowDetailResponse"),
				rpc("ListTotalReturns", "ListTotalReturnsRequest", "ListTotalReturnsResponse"),
				rpc("ListEtfReturns", "ListEtfReturnsRequest", "ListEtfReturnsResponse"),
				rpc("GetNavTrend", "GetNavTrendRequest", "GetNavTrendResponse"),
				rpc("GetSplits", "GetSplitsRequest", "GetSplitsResponse"),
				rpc("GetProfits", "GetProfitsRequest", "GetProfitsResponse"),
				rpc("GetPrices", "GetPricesRequest", "GetPricesResponse"),
			},
		}},
	}
}

var (
	schemaFile    protoreflect.FileDescriptor
	schemaService protoreflect.ServiceDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("vigilio: invalid schema: %v", err))
	}
	schemaFile = fd
	schemaService = fd.Services().ByName("VigilioService")
}

// Schema returns the file descriptor of the upstream service.
func Schema() protoreflect.FileDescriptor {
	return schemaFile
}

// Method looks up an RPC of the upstream service by its short name.
func Method(name string) protoreflect.MethodDescriptor {
	return schemaService.Methods().ByName(protoreflect.Name(name))
}

// FullMethod returns the gRPC path for an RPC, e.g. "/vigilio.VigilioService/GetFundTypes".
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// NewMessage returns an empty dynamic message of the named type.
func NewMessage(name string) *dynamicpb.Message {
	md := schemaFile.Messages().ByName(protoreflect.Name(name))
	if md == nil {
		panic("vigilio: unknown message " + name)
	}
	return dynamicpb.NewMessage(md)
}
