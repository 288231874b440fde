// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: quotes/v1/quotes.proto

package quotesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QuotesService_UploadQuote_FullMethodName      = "/quotes.v1.QuotesService/UploadQuote"
	QuotesService_GetQuoteStatus_FullMethodName   = "/quotes.v1.QuotesService/GetQuoteStatus"
	QuotesService_ListQuotes_FullMethodName       = "/quotes.v1.QuotesService/ListQuotes"
	QuotesService_ConfirmQuote_FullMethodName     = "/quotes.v1.QuotesService/ConfirmQuote"
	QuotesService_GetOffersReady_FullMethodName   = "/quotes.v1.QuotesService/GetOffersReady"
	QuotesService_ListOffers_FullMethodName       = "/quotes.v1.QuotesService/ListOffers"
	QuotesService_MarkOffersViewed_FullMethodName = "/quotes.v1.QuotesService/MarkOffersViewed"
	QuotesService_AcceptOffer_FullMethodName      = "/quotes.v1.QuotesService/AcceptOffer"
	QuotesService_RejectOffer_FullMethodName      = "/quotes.v1.QuotesService/RejectOffer"
)

// QuotesServiceClient is the client API for QuotesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QuotesService is the patient-facing surface: upload a quote document, watch
// it move through processing, confirm the structured result, and act on the
// counter-offers clinics send back.
type QuotesServiceClient interface {
	UploadQuote(ctx context.Context, in *UploadQuoteRequest, opts ...grpc.CallOption) (*UploadQuoteResponse, error)
	GetQuoteStatus(ctx context.Context, in *GetQuoteStatusRequest, opts ...grpc.CallOption) (*GetQuoteStatusResponse, error)
	ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error)
	ConfirmQuote(ctx context.Context, in *ConfirmQuoteRequest, opts ...grpc.CallOption) (*ConfirmQuoteResponse, error)
	GetOffersReady(ctx context.Context, in *GetOffersReadyRequest, opts ...grpc.CallOption) (*GetOffersReadyResponse, error)
	ListOffers(ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption) (*ListOffersResponse, error)
	MarkOffersViewed(ctx context.Context, in *MarkOffersViewedRequest, opts ...grpc.CallOption) (*MarkOffersViewedResponse, error)
	AcceptOffer(ctx context.Context, in *AcceptOfferRequest, opts ...grpc.CallOption) (*AcceptOfferResponse, error)
	RejectOffer(ctx context.Context, in *RejectOfferRequest, opts ...grpc.CallOption) (*RejectOfferResponse, error)
}

type quotesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQuotesServiceClient(cc grpc.ClientConnInterface) QuotesServiceClient {
	return &quotesServiceClient{cc}
}

func (c *quotesServiceClient) UploadQuote(ctx context.Context, in *UploadQuoteRequest, opts ...grpc.CallOption) (*UploadQuoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadQuoteResponse)
	err := c.cc.Invoke(ctx, QuotesService_UploadQuote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) GetQuoteStatus(ctx context.Context, in *GetQuoteStatusRequest, opts ...grpc.CallOption) (*GetQuoteStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQuoteStatusResponse)
	err := c.cc.Invoke(ctx, QuotesService_GetQuoteStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListQuotesResponse)
	err := c.cc.Invoke(ctx, QuotesService_ListQuotes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) ConfirmQuote(ctx context.Context, in *ConfirmQuoteRequest, opts ...grpc.CallOption) (*ConfirmQuoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmQuoteResponse)
	err := c.cc.Invoke(ctx, QuotesService_ConfirmQuote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) GetOffersReady(ctx context.Context, in *GetOffersReadyRequest, opts ...grpc.CallOption) (*GetOffersReadyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOffersReadyResponse)
	err := c.cc.Invoke(ctx, QuotesService_GetOffersReady_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) ListOffers(ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption) (*ListOffersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListOffersResponse)
	err := c.cc.Invoke(ctx, QuotesService_ListOffers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) MarkOffersViewed(ctx context.Context, in *MarkOffersViewedRequest, opts ...grpc.CallOption) (*MarkOffersViewedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarkOffersViewedResponse)
	err := c.cc.Invoke(ctx, QuotesService_MarkOffersViewed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) AcceptOffer(ctx context.Context, in *AcceptOfferRequest, opts ...grpc.CallOption) (*AcceptOfferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AcceptOfferResponse)
	err := c.cc.Invoke(ctx, QuotesService_AcceptOffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotesServiceClient) RejectOffer(ctx context.Context, in *RejectOfferRequest, opts ...grpc.CallOption) (*RejectOfferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectOfferResponse)
	err := c.cc.Invoke(ctx, QuotesService_RejectOffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QuotesServiceServer is the server API for QuotesService service.
// All implementations must embed UnimplementedQuotesServiceServer
// for forward compatibility.
//
// QuotesService is the patient-facing surface: upload a quote document, watch
// it move through processing, confirm the structured result, and act on the
// counter-offers clinics send back.
type QuotesServiceServer interface {
	UploadQuote(context.Context, *UploadQuoteRequest) (*UploadQuoteResponse, error)
	GetQuoteStatus(context.Context, *GetQuoteStatusRequest) (*GetQuoteStatusResponse, error)
	ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error)
	ConfirmQuote(context.Context, *ConfirmQuoteRequest) (*ConfirmQuoteResponse, error)
	GetOffersReady(context.Context, *GetOffersReadyRequest) (*GetOffersReadyResponse, error)
	ListOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error)
	MarkOffersViewed(context.Context, *MarkOffersViewedRequest) (*MarkOffersViewedResponse, error)
	AcceptOffer(context.Context, *AcceptOfferRequest) (*AcceptOfferResponse, error)
	RejectOffer(context.Context, *RejectOfferRequest) (*RejectOfferResponse, error)
	mustEmbedUnimplementedQuotesServiceServer()
}

// UnimplementedQuotesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQuotesServiceServer struct{}

func (UnimplementedQuotesServiceServer) UploadQuote(context.Context, *UploadQuoteRequest) (*UploadQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadQuote not implemented")
}
func (UnimplementedQuotesServiceServer) GetQuoteStatus(context.Context, *GetQuoteStatusRequest) (*GetQuoteStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQuoteStatus not implemented")
}
func (UnimplementedQuotesServiceServer) ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListQuotes not implemented")
}
func (UnimplementedQuotesServiceServer) ConfirmQuote(context.Context, *ConfirmQuoteRequest) (*ConfirmQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmQuote not implemented")
}
func (UnimplementedQuotesServiceServer) GetOffersReady(context.Context, *GetOffersReadyRequest) (*GetOffersReadyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOffersReady not implemented")
}
func (UnimplementedQuotesServiceServer) ListOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOffers not implemented")
}
func (UnimplementedQuotesServiceServer) MarkOffersViewed(context.Context, *MarkOffersViewedRequest) (*MarkOffersViewedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkOffersViewed not implemented")
}
func (UnimplementedQuotesServiceServer) AcceptOffer(context.Context, *AcceptOfferRequest) (*AcceptOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcceptOffer not implemented")
}
func (UnimplementedQuotesServiceServer) RejectOffer(context.Context, *RejectOfferRequest) (*RejectOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectOffer not implemented")
}
func (UnimplementedQuotesServiceServer) mustEmbedUnimplementedQuotesServiceServer() {}
func (UnimplementedQuotesServiceServer) testEmbeddedByValue()                       {}

// UnsafeQuotesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QuotesServiceServer will
// result in compilation errors.
type UnsafeQuotesServiceServer interface {
	mustEmbedUnimplementedQuotesServiceServer()
}

func RegisterQuotesServiceServer(s grpc.ServiceRegistrar, srv QuotesServiceServer) {
	// If the following call pancis, it indicates UnimplementedQuotesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QuotesService_ServiceDesc, srv)
}

func _QuotesService_UploadQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).UploadQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_UploadQuote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).UploadQuote(ctx, req.(*UploadQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_GetQuoteStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuoteStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).GetQuoteStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_GetQuoteStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).GetQuoteStatus(ctx, req.(*GetQuoteStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_ListQuotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListQuotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).ListQuotes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_ListQuotes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).ListQuotes(ctx, req.(*ListQuotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_ConfirmQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).ConfirmQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_ConfirmQuote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).ConfirmQuote(ctx, req.(*ConfirmQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_GetOffersReady_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOffersReadyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).GetOffersReady(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_GetOffersReady_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).GetOffersReady(ctx, req.(*GetOffersReadyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_ListOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).ListOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_ListOffers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).ListOffers(ctx, req.(*ListOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_MarkOffersViewed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkOffersViewedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).MarkOffersViewed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_MarkOffersViewed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).MarkOffersViewed(ctx, req.(*MarkOffersViewedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_AcceptOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).AcceptOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_AcceptOffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).AcceptOffer(ctx, req.(*AcceptOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuotesService_RejectOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotesServiceServer).RejectOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuotesService_RejectOffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuotesServiceServer).RejectOffer(ctx, req.(*RejectOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QuotesService_ServiceDesc is the grpc.ServiceDesc for QuotesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QuotesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "quotes.v1.QuotesService",
	HandlerType: (*QuotesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadQuote",
			Handler:    _QuotesService_UploadQuote_Handler,
		},
		{
			MethodName: "GetQuoteStatus",
			Handler:    _QuotesService_GetQuoteStatus_Handler,
		},
		{
			MethodName: "ListQuotes",
			Handler:    _QuotesService_ListQuotes_Handler,
		},
		{
			MethodName: "ConfirmQuote",
			Handler:    _QuotesService_ConfirmQuote_Handler,
		},
		{
			MethodName: "GetOffersReady",
			Handler:    _QuotesService_GetOffersReady_Handler,
		},
		{
			MethodName: "ListOffers",
			Handler:    _QuotesService_ListOffers_Handler,
		},
		{
			MethodName: "MarkOffersViewed",
			Handler:    _QuotesService_MarkOffersViewed_Handler,
		},
		{
			MethodName: "AcceptOffer",
			Handler:    _QuotesService_AcceptOffer_Handler,
		},
		{
			MethodName: "RejectOffer",
			Handler:    _QuotesService_RejectOffer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quotes/v1/quotes.proto",
}

const (
	PriceListService_GetEffectivePriceList_FullMethodName = "/quotes.v1.PriceListService/GetEffectivePriceList"
	PriceListService_SetOverride_FullMethodName           = "/quotes.v1.PriceListService/SetOverride"
	PriceListService_AddCustomItem_FullMethodName         = "/quotes.v1.PriceListService/AddCustomItem"
	PriceListService_UpdateCustomItem_FullMethodName      = "/quotes.v1.PriceListService/UpdateCustomItem"
	PriceListService_DeleteCustomItem_FullMethodName      = "/quotes.v1.PriceListService/DeleteCustomItem"
	PriceListService_RecomputeEligibility_FullMethodName  = "/quotes.v1.PriceListService/RecomputeEligibility"
)

// PriceListServiceClient is the client API for PriceListService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PriceListService is the provider-facing surface for maintaining the price
// list the reconciliation matches against.
type PriceListServiceClient interface {
	GetEffectivePriceList(ctx context.Context, in *GetEffectivePriceListRequest, opts ...grpc.CallOption) (*GetEffectivePriceListResponse, error)
	SetOverride(ctx context.Context, in *SetOverrideRequest, opts ...grpc.CallOption) (*SetOverrideResponse, error)
	AddCustomItem(ctx context.Context, in *AddCustomItemRequest, opts ...grpc.CallOption) (*AddCustomItemResponse, error)
	UpdateCustomItem(ctx context.Context, in *UpdateCustomItemRequest, opts ...grpc.CallOption) (*UpdateCustomItemResponse, error)
	DeleteCustomItem(ctx context.Context, in *DeleteCustomItemRequest, opts ...grpc.CallOption) (*DeleteCustomItemResponse, error)
	// RecomputeEligibility re-derives the provider's completion markers. Photo
	// and staff mutations live outside this service and call this afterwards.
	RecomputeEligibility(ctx context.Context, in *RecomputeEligibilityRequest, opts ...grpc.CallOption) (*RecomputeEligibilityResponse, error)
}

type priceListServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPriceListServiceClient(cc grpc.ClientConnInterface) PriceListServiceClient {
	return &priceListServiceClient{cc}
}

func (c *priceListServiceClient) GetEffectivePriceList(ctx context.Context, in *GetEffectivePriceListRequest, opts ...grpc.CallOption) (*GetEffectivePriceListResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEffectivePriceListResponse)
	err := c.cc.Invoke(ctx, PriceListService_GetEffectivePriceList_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceListServiceClient) SetOverride(ctx context.Context, in *SetOverrideRequest, opts ...grpc.CallOption) (*SetOverrideResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetOverrideResponse)
	err := c.cc.Invoke(ctx, PriceListService_SetOverride_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceListServiceClient) AddCustomItem(ctx context.Context, in *AddCustomItemRequest, opts ...grpc.CallOption) (*AddCustomItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddCustomItemResponse)
	err := c.cc.Invoke(ctx, PriceListService_AddCustomItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceListServiceClient) UpdateCustomItem(ctx context.Context, in *UpdateCustomItemRequest, opts ...grpc.CallOption) (*UpdateCustomItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCustomItemResponse)
	err := c.cc.Invoke(ctx, PriceListService_UpdateCustomItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceListServiceClient) DeleteCustomItem(ctx context.Context, in *DeleteCustomItemRequest, opts ...grpc.CallOption) (*DeleteCustomItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteCustomItemResponse)
	err := c.cc.Invoke(ctx, PriceListService_DeleteCustomItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceListServiceClient) RecomputeEligibility(ctx context.Context, in *RecomputeEligibilityRequest, opts ...grpc.CallOption) (*RecomputeEligibilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecomputeEligibilityResponse)
	err := c.cc.Invoke(ctx, PriceListService_RecomputeEligibility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PriceListServiceServer is the server API for PriceListService service.
// All implementations must embed UnimplementedPriceListServiceServer
// for forward compatibility.
//
// PriceListService is the provider-facing surface for maintaining the price
// list the reconciliation matches against.
type PriceListServiceServer interface {
	GetEffectivePriceList(context.Context, *GetEffectivePriceListRequest) (*GetEffectivePriceListResponse, error)
	SetOverride(context.Context, *SetOverrideRequest) (*SetOverrideResponse, error)
	AddCustomItem(context.Context, *AddCustomItemRequest) (*AddCustomItemResponse, error)
	UpdateCustomItem(context.Context, *UpdateCustomItemRequest) (*UpdateCustomItemResponse, error)
	DeleteCustomItem(context.Context, *DeleteCustomItemRequest) (*DeleteCustomItemResponse, error)
	// RecomputeEligibility re-derives the provider's completion markers. Photo
	// and staff mutations live outside this service and call this afterwards.
	RecomputeEligibility(context.Context, *RecomputeEligibilityRequest) (*RecomputeEligibilityResponse, error)
	mustEmbedUnimplementedPriceListServiceServer()
}

// UnimplementedPriceListServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPriceListServiceServer struct{}

func (UnimplementedPriceListServiceServer) GetEffectivePriceList(context.Context, *GetEffectivePriceListRequest) (*GetEffectivePriceListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEffectivePriceList not implemented")
}
func (UnimplementedPriceListServiceServer) SetOverride(context.Context, *SetOverrideRequest) (*SetOverrideResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetOverride not implemented")
}
func (UnimplementedPriceListServiceServer) AddCustomItem(context.Context, *AddCustomItemRequest) (*AddCustomItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddCustomItem not implemented")
}
func (UnimplementedPriceListServiceServer) UpdateCustomItem(context.Context, *UpdateCustomItemRequest) (*UpdateCustomItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateCustomItem not implemented")
}
func (UnimplementedPriceListServiceServer) DeleteCustomItem(context.Context, *DeleteCustomItemRequest) (*DeleteCustomItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCustomItem not implemented")
}
func (UnimplementedPriceListServiceServer) RecomputeEligibility(context.Context, *RecomputeEligibilityRequest) (*RecomputeEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecomputeEligibility not implemented")
}
func (UnimplementedPriceListServiceServer) mustEmbedUnimplementedPriceListServiceServer() {}
func (UnimplementedPriceListServiceServer) testEmbeddedByValue()                          {}

// UnsafePriceListServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PriceListServiceServer will
// result in compilation errors.
type UnsafePriceListServiceServer interface {
	mustEmbedUnimplementedPriceListServiceServer()
}

func RegisterPriceListServiceServer(s grpc.ServiceRegistrar, srv PriceListServiceServer) {
	// If the following call pancis, it indicates UnimplementedPriceListServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PriceListService_ServiceDesc, srv)
}

func _PriceListService_GetEffectivePriceList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEffectivePriceListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).GetEffectivePriceList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_GetEffectivePriceList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).GetEffectivePriceList(ctx, req.(*GetEffectivePriceListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceListService_SetOverride_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetOverrideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).SetOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_SetOverride_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).SetOverride(ctx, req.(*SetOverrideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceListService_AddCustomItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddCustomItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).AddCustomItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_AddCustomItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).AddCustomItem(ctx, req.(*AddCustomItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceListService_UpdateCustomItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCustomItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).UpdateCustomItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_UpdateCustomItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).UpdateCustomItem(ctx, req.(*UpdateCustomItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceListService_DeleteCustomItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCustomItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).DeleteCustomItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_DeleteCustomItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).DeleteCustomItem(ctx, req.(*DeleteCustomItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceListService_RecomputeEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecomputeEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceListServiceServer).RecomputeEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceListService_RecomputeEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceListServiceServer).RecomputeEligibility(ctx, req.(*RecomputeEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PriceListService_ServiceDesc is the grpc.ServiceDesc for PriceListService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PriceListService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "quotes.v1.PriceListService",
	HandlerType: (*PriceListServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEffectivePriceList",
			Handler:    _PriceListService_GetEffectivePriceList_Handler,
		},
		{
			MethodName: "SetOverride",
			Handler:    _PriceListService_SetOverride_Handler,
		},
		{
			MethodName: "AddCustomItem",
			Handler:    _PriceListService_AddCustomItem_Handler,
		},
		{
			MethodName: "UpdateCustomItem",
			Handler:    _PriceListService_UpdateCustomItem_Handler,
		},
		{
			MethodName: "DeleteCustomItem",
			Handler:    _PriceListService_DeleteCustomItem_Handler,
		},
		{
			MethodName: "RecomputeEligibility",
			Handler:    _PriceListService_RecomputeEligibility_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quotes/v1/quotes.proto",
}

const (
	ExportService_ExportAcceptedOffers_FullMethodName = "/quotes.v1.ExportService/ExportAcceptedOffers"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces downloadable reports.
type ExportServiceClient interface {
	ExportAcceptedOffers(ctx context.Context, in *ExportAcceptedOffersRequest, opts ...grpc.CallOption) (*ExportAcceptedOffersResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportAcceptedOffers(ctx context.Context, in *ExportAcceptedOffersRequest, opts ...grpc.CallOption) (*ExportAcceptedOffersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAcceptedOffersResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportAcceptedOffers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces downloadable reports.
type ExportServiceServer interface {
	ExportAcceptedOffers(context.Context, *ExportAcceptedOffersRequest) (*ExportAcceptedOffersResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportAcceptedOffers(context.Context, *ExportAcceptedOffersRequest) (*ExportAcceptedOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportAcceptedOffers not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportAcceptedOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAcceptedOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportAcceptedOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportAcceptedOffers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportAcceptedOffers(ctx, req.(*ExportAcceptedOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "quotes.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportAcceptedOffers",
			Handler:    _ExportService_ExportAcceptedOffers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quotes/v1/quotes.proto",
}
