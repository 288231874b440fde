// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: quotes/v1/quotes.proto

package quotesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price         float64                `protobuf:"fixed64,3,opt,name=price,proto3" json:"price,omitempty"` // line total, euro
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{0}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type QuotePayload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LineItems     []*LineItem            `protobuf:"bytes,1,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	Total         float64                `protobuf:"fixed64,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuotePayload) Reset() {
	*x = QuotePayload{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuotePayload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuotePayload) ProtoMessage() {}

func (x *QuotePayload) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuotePayload.ProtoReflect.Descriptor instead.
func (*QuotePayload) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{1}
}

func (x *QuotePayload) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *QuotePayload) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type OfferLine struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	OriginalDescription string                 `protobuf:"bytes,1,opt,name=original_description,json=originalDescription,proto3" json:"original_description,omitempty"`
	MatchedDescription  string                 `protobuf:"bytes,2,opt,name=matched_description,json=matchedDescription,proto3" json:"matched_description,omitempty"` // "no match" when nothing in the price list fits
	Quantity            int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price               float64                `protobuf:"fixed64,4,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *OfferLine) Reset() {
	*x = OfferLine{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OfferLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OfferLine) ProtoMessage() {}

func (x *OfferLine) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OfferLine.ProtoReflect.Descriptor instead.
func (*OfferLine) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{2}
}

func (x *OfferLine) GetOriginalDescription() string {
	if x != nil {
		return x.OriginalDescription
	}
	return ""
}

func (x *OfferLine) GetMatchedDescription() string {
	if x != nil {
		return x.MatchedDescription
	}
	return ""
}

func (x *OfferLine) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OfferLine) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type OfferPayload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OfferItems    []*OfferLine           `protobuf:"bytes,1,rep,name=offer_items,json=offerItems,proto3" json:"offer_items,omitempty"`
	Total         float64                `protobuf:"fixed64,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OfferPayload) Reset() {
	*x = OfferPayload{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OfferPayload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OfferPayload) ProtoMessage() {}

func (x *OfferPayload) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OfferPayload.ProtoReflect.Descriptor instead.
func (*OfferPayload) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{3}
}

func (x *OfferPayload) GetOfferItems() []*OfferLine {
	if x != nil {
		return x.OfferItems
	}
	return nil
}

func (x *OfferPayload) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type Quote struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId        string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,3,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`                                 // uploaded | in_processing | completed | error
	Payload          *QuotePayload          `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`                               // set once status is completed
	ErrorMessage     string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"` // set once status is error
	CreatedAt        string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`          // RFC 3339
	UpdatedAt        string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Quote) Reset() {
	*x = Quote{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Quote) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Quote) ProtoMessage() {}

func (x *Quote) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Quote.ProtoReflect.Descriptor instead.
func (*Quote) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{4}
}

func (x *Quote) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Quote) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *Quote) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Quote) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Quote) GetPayload() *QuotePayload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Quote) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Quote) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Quote) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Offer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	QuoteId       string                 `protobuf:"bytes,2,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	ProviderId    string                 `protobuf:"bytes,3,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ProviderName  string                 `protobuf:"bytes,4,opt,name=provider_name,json=providerName,proto3" json:"provider_name,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // sent | viewed | accepted | rejected
	Payload       *OfferPayload          `protobuf:"bytes,6,opt,name=payload,proto3" json:"payload,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Offer) Reset() {
	*x = Offer{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Offer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Offer) ProtoMessage() {}

func (x *Offer) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Offer.ProtoReflect.Descriptor instead.
func (*Offer) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{5}
}

func (x *Offer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Offer) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *Offer) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *Offer) GetProviderName() string {
	if x != nil {
		return x.ProviderName
	}
	return ""
}

func (x *Offer) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Offer) GetPayload() *OfferPayload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Offer) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Offer) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadQuoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadQuoteRequest) Reset() {
	*x = UploadQuoteRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadQuoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadQuoteRequest) ProtoMessage() {}

func (x *UploadQuoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadQuoteRequest.ProtoReflect.Descriptor instead.
func (*UploadQuoteRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{6}
}

func (x *UploadQuoteRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *UploadQuoteRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadQuoteRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadQuoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuoteId       string                 `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadQuoteResponse) Reset() {
	*x = UploadQuoteResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadQuoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadQuoteResponse) ProtoMessage() {}

func (x *UploadQuoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadQuoteResponse.ProtoReflect.Descriptor instead.
func (*UploadQuoteResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{7}
}

func (x *UploadQuoteResponse) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *UploadQuoteResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetQuoteStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	QuoteId       string                 `protobuf:"bytes,2,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuoteStatusRequest) Reset() {
	*x = GetQuoteStatusRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteStatusRequest) ProtoMessage() {}

func (x *GetQuoteStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteStatusRequest.ProtoReflect.Descriptor instead.
func (*GetQuoteStatusRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{8}
}

func (x *GetQuoteStatusRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *GetQuoteStatusRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

type GetQuoteStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quote         *Quote                 `protobuf:"bytes,1,opt,name=quote,proto3" json:"quote,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuoteStatusResponse) Reset() {
	*x = GetQuoteStatusResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteStatusResponse) ProtoMessage() {}

func (x *GetQuoteStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteStatusResponse.ProtoReflect.Descriptor instead.
func (*GetQuoteStatusResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{9}
}

func (x *GetQuoteStatusResponse) GetQuote() *Quote {
	if x != nil {
		return x.Quote
	}
	return nil
}

type ListQuotesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuotesRequest) Reset() {
	*x = ListQuotesRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuotesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuotesRequest) ProtoMessage() {}

func (x *ListQuotesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuotesRequest.ProtoReflect.Descriptor instead.
func (*ListQuotesRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{10}
}

func (x *ListQuotesRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type ListQuotesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quotes        []*Quote               `protobuf:"bytes,1,rep,name=quotes,proto3" json:"quotes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuotesResponse) Reset() {
	*x = ListQuotesResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuotesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuotesResponse) ProtoMessage() {}

func (x *ListQuotesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuotesResponse.ProtoReflect.Descriptor instead.
func (*ListQuotesResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{11}
}

func (x *ListQuotesResponse) GetQuotes() []*Quote {
	if x != nil {
		return x.Quotes
	}
	return nil
}

type ConfirmQuoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	QuoteId       string                 `protobuf:"bytes,2,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	LineItems     []*LineItem            `protobuf:"bytes,3,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"` // edited line items; total is recomputed server-side
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmQuoteRequest) Reset() {
	*x = ConfirmQuoteRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmQuoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmQuoteRequest) ProtoMessage() {}

func (x *ConfirmQuoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmQuoteRequest.ProtoReflect.Descriptor instead.
func (*ConfirmQuoteRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{12}
}

func (x *ConfirmQuoteRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ConfirmQuoteRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *ConfirmQuoteRequest) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

type ConfirmQuoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quote         *Quote                 `protobuf:"bytes,1,opt,name=quote,proto3" json:"quote,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmQuoteResponse) Reset() {
	*x = ConfirmQuoteResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmQuoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmQuoteResponse) ProtoMessage() {}

func (x *ConfirmQuoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmQuoteResponse.ProtoReflect.Descriptor instead.
func (*ConfirmQuoteResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{13}
}

func (x *ConfirmQuoteResponse) GetQuote() *Quote {
	if x != nil {
		return x.Quote
	}
	return nil
}

type GetOffersReadyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	QuoteId       string                 `protobuf:"bytes,2,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOffersReadyRequest) Reset() {
	*x = GetOffersReadyRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOffersReadyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOffersReadyRequest) ProtoMessage() {}

func (x *GetOffersReadyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOffersReadyRequest.ProtoReflect.Descriptor instead.
func (*GetOffersReadyRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{14}
}

func (x *GetOffersReadyRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *GetOffersReadyRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

type GetOffersReadyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ready         bool                   `protobuf:"varint,1,opt,name=ready,proto3" json:"ready,omitempty"` // true once at least one counter-offer exists
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOffersReadyResponse) Reset() {
	*x = GetOffersReadyResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOffersReadyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOffersReadyResponse) ProtoMessage() {}

func (x *GetOffersReadyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOffersReadyResponse.ProtoReflect.Descriptor instead.
func (*GetOffersReadyResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{15}
}

func (x *GetOffersReadyResponse) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

type ListOffersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOffersRequest) Reset() {
	*x = ListOffersRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOffersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOffersRequest) ProtoMessage() {}

func (x *ListOffersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOffersRequest.ProtoReflect.Descriptor instead.
func (*ListOffersRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{16}
}

func (x *ListOffersRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type ListOffersResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NewOffers      []*Offer               `protobuf:"bytes,1,rep,name=new_offers,json=newOffers,proto3" json:"new_offers,omitempty"`                // status sent, not yet seen
	ArchivedOffers []*Offer               `protobuf:"bytes,2,rep,name=archived_offers,json=archivedOffers,proto3" json:"archived_offers,omitempty"` // viewed, accepted or rejected
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListOffersResponse) Reset() {
	*x = ListOffersResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOffersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOffersResponse) ProtoMessage() {}

func (x *ListOffersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOffersResponse.ProtoReflect.Descriptor instead.
func (*ListOffersResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{17}
}

func (x *ListOffersResponse) GetNewOffers() []*Offer {
	if x != nil {
		return x.NewOffers
	}
	return nil
}

func (x *ListOffersResponse) GetArchivedOffers() []*Offer {
	if x != nil {
		return x.ArchivedOffers
	}
	return nil
}

type MarkOffersViewedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	OfferIds      []string               `protobuf:"bytes,2,rep,name=offer_ids,json=offerIds,proto3" json:"offer_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkOffersViewedRequest) Reset() {
	*x = MarkOffersViewedRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkOffersViewedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkOffersViewedRequest) ProtoMessage() {}

func (x *MarkOffersViewedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkOffersViewedRequest.ProtoReflect.Descriptor instead.
func (*MarkOffersViewedRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{18}
}

func (x *MarkOffersViewedRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *MarkOffersViewedRequest) GetOfferIds() []string {
	if x != nil {
		return x.OfferIds
	}
	return nil
}

type MarkOffersViewedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkOffersViewedResponse) Reset() {
	*x = MarkOffersViewedResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkOffersViewedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkOffersViewedResponse) ProtoMessage() {}

func (x *MarkOffersViewedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkOffersViewedResponse.ProtoReflect.Descriptor instead.
func (*MarkOffersViewedResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{19}
}

type AcceptOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	OfferId       string                 `protobuf:"bytes,2,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptOfferRequest) Reset() {
	*x = AcceptOfferRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptOfferRequest) ProtoMessage() {}

func (x *AcceptOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptOfferRequest.ProtoReflect.Descriptor instead.
func (*AcceptOfferRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{20}
}

func (x *AcceptOfferRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *AcceptOfferRequest) GetOfferId() string {
	if x != nil {
		return x.OfferId
	}
	return ""
}

type AcceptOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offer         *Offer                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptOfferResponse) Reset() {
	*x = AcceptOfferResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptOfferResponse) ProtoMessage() {}

func (x *AcceptOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptOfferResponse.ProtoReflect.Descriptor instead.
func (*AcceptOfferResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{21}
}

func (x *AcceptOfferResponse) GetOffer() *Offer {
	if x != nil {
		return x.Offer
	}
	return nil
}

type RejectOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	OfferId       string                 `protobuf:"bytes,2,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectOfferRequest) Reset() {
	*x = RejectOfferRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectOfferRequest) ProtoMessage() {}

func (x *RejectOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectOfferRequest.ProtoReflect.Descriptor instead.
func (*RejectOfferRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{22}
}

func (x *RejectOfferRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *RejectOfferRequest) GetOfferId() string {
	if x != nil {
		return x.OfferId
	}
	return ""
}

type RejectOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offer         *Offer                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectOfferResponse) Reset() {
	*x = RejectOfferResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectOfferResponse) ProtoMessage() {}

func (x *RejectOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectOfferResponse.ProtoReflect.Descriptor instead.
func (*RejectOfferResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{23}
}

func (x *RejectOfferResponse) GetOffer() *Offer {
	if x != nil {
		return x.Offer
	}
	return nil
}

type PriceEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         float64                `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriceEntry) Reset() {
	*x = PriceEntry{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriceEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriceEntry) ProtoMessage() {}

func (x *PriceEntry) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriceEntry.ProtoReflect.Descriptor instead.
func (*PriceEntry) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{24}
}

func (x *PriceEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PriceEntry) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type GetEffectivePriceListRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEffectivePriceListRequest) Reset() {
	*x = GetEffectivePriceListRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEffectivePriceListRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEffectivePriceListRequest) ProtoMessage() {}

func (x *GetEffectivePriceListRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEffectivePriceListRequest.ProtoReflect.Descriptor instead.
func (*GetEffectivePriceListRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{25}
}

func (x *GetEffectivePriceListRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

type GetEffectivePriceListResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*PriceEntry          `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEffectivePriceListResponse) Reset() {
	*x = GetEffectivePriceListResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEffectivePriceListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEffectivePriceListResponse) ProtoMessage() {}

func (x *GetEffectivePriceListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEffectivePriceListResponse.ProtoReflect.Descriptor instead.
func (*GetEffectivePriceListResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{26}
}

func (x *GetEffectivePriceListResponse) GetEntries() []*PriceEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type SetOverrideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	CatalogItemId int32                  `protobuf:"varint,2,opt,name=catalog_item_id,json=catalogItemId,proto3" json:"catalog_item_id,omitempty"`
	Price         *float64               `protobuf:"fixed64,3,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Active        bool                   `protobuf:"varint,4,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetOverrideRequest) Reset() {
	*x = SetOverrideRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetOverrideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetOverrideRequest) ProtoMessage() {}

func (x *SetOverrideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetOverrideRequest.ProtoReflect.Descriptor instead.
func (*SetOverrideRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{27}
}

func (x *SetOverrideRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *SetOverrideRequest) GetCatalogItemId() int32 {
	if x != nil {
		return x.CatalogItemId
	}
	return 0
}

func (x *SetOverrideRequest) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *SetOverrideRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SetOverrideResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	PriceListComplete bool                   `protobuf:"varint,1,opt,name=price_list_complete,json=priceListComplete,proto3" json:"price_list_complete,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SetOverrideResponse) Reset() {
	*x = SetOverrideResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetOverrideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetOverrideResponse) ProtoMessage() {}

func (x *SetOverrideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetOverrideResponse.ProtoReflect.Descriptor instead.
func (*SetOverrideResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{28}
}

func (x *SetOverrideResponse) GetPriceListComplete() bool {
	if x != nil {
		return x.PriceListComplete
	}
	return false
}

type AddCustomItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Price         float64                `protobuf:"fixed64,4,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCustomItemRequest) Reset() {
	*x = AddCustomItemRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCustomItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCustomItemRequest) ProtoMessage() {}

func (x *AddCustomItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCustomItemRequest.ProtoReflect.Descriptor instead.
func (*AddCustomItemRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{29}
}

func (x *AddCustomItemRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *AddCustomItemRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddCustomItemRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AddCustomItemRequest) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type AddCustomItemResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ItemId            string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	PriceListComplete bool                   `protobuf:"varint,2,opt,name=price_list_complete,json=priceListComplete,proto3" json:"price_list_complete,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *AddCustomItemResponse) Reset() {
	*x = AddCustomItemResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCustomItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCustomItemResponse) ProtoMessage() {}

func (x *AddCustomItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCustomItemResponse.ProtoReflect.Descriptor instead.
func (*AddCustomItemResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{30}
}

func (x *AddCustomItemResponse) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *AddCustomItemResponse) GetPriceListComplete() bool {
	if x != nil {
		return x.PriceListComplete
	}
	return false
}

type UpdateCustomItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Price         float64                `protobuf:"fixed64,5,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCustomItemRequest) Reset() {
	*x = UpdateCustomItemRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCustomItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCustomItemRequest) ProtoMessage() {}

func (x *UpdateCustomItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCustomItemRequest.ProtoReflect.Descriptor instead.
func (*UpdateCustomItemRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{31}
}

func (x *UpdateCustomItemRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *UpdateCustomItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *UpdateCustomItemRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateCustomItemRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateCustomItemRequest) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type UpdateCustomItemResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	PriceListComplete bool                   `protobuf:"varint,1,opt,name=price_list_complete,json=priceListComplete,proto3" json:"price_list_complete,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateCustomItemResponse) Reset() {
	*x = UpdateCustomItemResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCustomItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCustomItemResponse) ProtoMessage() {}

func (x *UpdateCustomItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCustomItemResponse.ProtoReflect.Descriptor instead.
func (*UpdateCustomItemResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{32}
}

func (x *UpdateCustomItemResponse) GetPriceListComplete() bool {
	if x != nil {
		return x.PriceListComplete
	}
	return false
}

type DeleteCustomItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCustomItemRequest) Reset() {
	*x = DeleteCustomItemRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCustomItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCustomItemRequest) ProtoMessage() {}

func (x *DeleteCustomItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCustomItemRequest.ProtoReflect.Descriptor instead.
func (*DeleteCustomItemRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{33}
}

func (x *DeleteCustomItemRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *DeleteCustomItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type DeleteCustomItemResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	PriceListComplete bool                   `protobuf:"varint,1,opt,name=price_list_complete,json=priceListComplete,proto3" json:"price_list_complete,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *DeleteCustomItemResponse) Reset() {
	*x = DeleteCustomItemResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCustomItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCustomItemResponse) ProtoMessage() {}

func (x *DeleteCustomItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCustomItemResponse.ProtoReflect.Descriptor instead.
func (*DeleteCustomItemResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{34}
}

func (x *DeleteCustomItemResponse) GetPriceListComplete() bool {
	if x != nil {
		return x.PriceListComplete
	}
	return false
}

type RecomputeEligibilityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecomputeEligibilityRequest) Reset() {
	*x = RecomputeEligibilityRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecomputeEligibilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecomputeEligibilityRequest) ProtoMessage() {}

func (x *RecomputeEligibilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecomputeEligibilityRequest.ProtoReflect.Descriptor instead.
func (*RecomputeEligibilityRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{35}
}

func (x *RecomputeEligibilityRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

type RecomputeEligibilityResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	PriceListComplete bool                   `protobuf:"varint,1,opt,name=price_list_complete,json=priceListComplete,proto3" json:"price_list_complete,omitempty"`
	ProfileComplete   bool                   `protobuf:"varint,2,opt,name=profile_complete,json=profileComplete,proto3" json:"profile_complete,omitempty"`
	StaffComplete     bool                   `protobuf:"varint,3,opt,name=staff_complete,json=staffComplete,proto3" json:"staff_complete,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RecomputeEligibilityResponse) Reset() {
	*x = RecomputeEligibilityResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecomputeEligibilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecomputeEligibilityResponse) ProtoMessage() {}

func (x *RecomputeEligibilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecomputeEligibilityResponse.ProtoReflect.Descriptor instead.
func (*RecomputeEligibilityResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{36}
}

func (x *RecomputeEligibilityResponse) GetPriceListComplete() bool {
	if x != nil {
		return x.PriceListComplete
	}
	return false
}

func (x *RecomputeEligibilityResponse) GetProfileComplete() bool {
	if x != nil {
		return x.ProfileComplete
	}
	return false
}

func (x *RecomputeEligibilityResponse) GetStaffComplete() bool {
	if x != nil {
		return x.StaffComplete
	}
	return false
}

type ExportAcceptedOffersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAcceptedOffersRequest) Reset() {
	*x = ExportAcceptedOffersRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAcceptedOffersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAcceptedOffersRequest) ProtoMessage() {}

func (x *ExportAcceptedOffersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAcceptedOffersRequest.ProtoReflect.Descriptor instead.
func (*ExportAcceptedOffersRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{37}
}

func (x *ExportAcceptedOffersRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

type ExportAcceptedOffersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAcceptedOffersResponse) Reset() {
	*x = ExportAcceptedOffersResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAcceptedOffersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAcceptedOffersResponse) ProtoMessage() {}

func (x *ExportAcceptedOffersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAcceptedOffersResponse.ProtoReflect.Descriptor instead.
func (*ExportAcceptedOffersResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{38}
}

func (x *ExportAcceptedOffersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportAcceptedOffersResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_quotes_v1_quotes_proto protoreflect.FileDescriptor

const file_quotes_v1_quotes_proto_rawDesc = "" +
	"\n" +
	"\x16quotes/v1/quotes.proto\x12\tquotes.v1\"^\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x01R\x05price\"X\n" +
	"\fQuotePayload\x122\n" +
	"\n" +
	"line_items\x18\x01 \x03(\v2\x13.quotes.v1.LineItemR\tlineItems\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x01R\x05total\"\xa1\x01\n" +
	"\tOfferLine\x121\n" +
	"\x14original_description\x18\x01 \x01(\tR\x13originalDescription\x12/\n" +
	"\x13matched_description\x18\x02 \x01(\tR\x12matchedDescription\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x01R\x05price\"[\n" +
	"\fOfferPayload\x125\n" +
	"\voffer_items\x18\x01 \x03(\v2\x14.quotes.v1.OfferLineR\n" +
	"offerItems\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x01R\x05total\"\x91\x02\n" +
	"\x05Quote\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12+\n" +
	"\x11original_filename\x18\x03 \x01(\tR\x10originalFilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x121\n" +
	"\apayload\x18\x05 \x01(\v2\x17.quotes.v1.QuotePayloadR\apayload\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\x81\x02\n" +
	"\x05Offer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bquote_id\x18\x02 \x01(\tR\aquoteId\x12\x1f\n" +
	"\vprovider_id\x18\x03 \x01(\tR\n" +
	"providerId\x12#\n" +
	"\rprovider_name\x18\x04 \x01(\tR\fproviderName\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x121\n" +
	"\apayload\x18\x06 \x01(\v2\x17.quotes.v1.OfferPayloadR\apayload\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"i\n" +
	"\x12UploadQuoteRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"H\n" +
	"\x13UploadQuoteResponse\x12\x19\n" +
	"\bquote_id\x18\x01 \x01(\tR\aquoteId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"Q\n" +
	"\x15GetQuoteStatusRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x19\n" +
	"\bquote_id\x18\x02 \x01(\tR\aquoteId\"@\n" +
	"\x16GetQuoteStatusResponse\x12&\n" +
	"\x05quote\x18\x01 \x01(\v2\x10.quotes.v1.QuoteR\x05quote\"2\n" +
	"\x11ListQuotesRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\">\n" +
	"\x12ListQuotesResponse\x12(\n" +
	"\x06quotes\x18\x01 \x03(\v2\x10.quotes.v1.QuoteR\x06quotes\"\x83\x01\n" +
	"\x13ConfirmQuoteRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x19\n" +
	"\bquote_id\x18\x02 \x01(\tR\aquoteId\x122\n" +
	"\n" +
	"line_items\x18\x03 \x03(\v2\x13.quotes.v1.LineItemR\tlineItems\">\n" +
	"\x14ConfirmQuoteResponse\x12&\n" +
	"\x05quote\x18\x01 \x01(\v2\x10.quotes.v1.QuoteR\x05quote\"Q\n" +
	"\x15GetOffersReadyRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x19\n" +
	"\bquote_id\x18\x02 \x01(\tR\aquoteId\".\n" +
	"\x16GetOffersReadyResponse\x12\x14\n" +
	"\x05ready\x18\x01 \x01(\bR\x05ready\"2\n" +
	"\x11ListOffersRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\"\x80\x01\n" +
	"\x12ListOffersResponse\x12/\n" +
	"\n" +
	"new_offers\x18\x01 \x03(\v2\x10.quotes.v1.OfferR\tnewOffers\x129\n" +
	"\x0farchived_offers\x18\x02 \x03(\v2\x10.quotes.v1.OfferR\x0earchivedOffers\"U\n" +
	"\x17MarkOffersViewedRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x1b\n" +
	"\toffer_ids\x18\x02 \x03(\tR\bofferIds\"\x1a\n" +
	"\x18MarkOffersViewedResponse\"N\n" +
	"\x12AcceptOfferRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x19\n" +
	"\boffer_id\x18\x02 \x01(\tR\aofferId\"=\n" +
	"\x13AcceptOfferResponse\x12&\n" +
	"\x05offer\x18\x01 \x01(\v2\x10.quotes.v1.OfferR\x05offer\"N\n" +
	"\x12RejectOfferRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x19\n" +
	"\boffer_id\x18\x02 \x01(\tR\aofferId\"=\n" +
	"\x13RejectOfferResponse\x12&\n" +
	"\x05offer\x18\x01 \x01(\v2\x10.quotes.v1.OfferR\x05offer\"6\n" +
	"\n" +
	"PriceEntry\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\x01R\x05price\"?\n" +
	"\x1cGetEffectivePriceListRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\"P\n" +
	"\x1dGetEffectivePriceListResponse\x12/\n" +
	"\aentries\x18\x01 \x03(\v2\x15.quotes.v1.PriceEntryR\aentries\"\x9a\x01\n" +
	"\x12SetOverrideRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12&\n" +
	"\x0fcatalog_item_id\x18\x02 \x01(\x05R\rcatalogItemId\x12\x19\n" +
	"\x05price\x18\x03 \x01(\x01H\x00R\x05price\x88\x01\x01\x12\x16\n" +
	"\x06active\x18\x04 \x01(\bR\x06activeB\b\n" +
	"\x06_price\"E\n" +
	"\x13SetOverrideResponse\x12.\n" +
	"\x13price_list_complete\x18\x01 \x01(\bR\x11priceListComplete\"\x83\x01\n" +
	"\x14AddCustomItemRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x01R\x05price\"`\n" +
	"\x15AddCustomItemResponse\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12.\n" +
	"\x13price_list_complete\x18\x02 \x01(\bR\x11priceListComplete\"\x9f\x01\n" +
	"\x17UpdateCustomItemRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x14\n" +
	"\x05price\x18\x05 \x01(\x01R\x05price\"J\n" +
	"\x18UpdateCustomItemResponse\x12.\n" +
	"\x13price_list_complete\x18\x01 \x01(\bR\x11priceListComplete\"S\n" +
	"\x17DeleteCustomItemRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\"J\n" +
	"\x18DeleteCustomItemResponse\x12.\n" +
	"\x13price_list_complete\x18\x01 \x01(\bR\x11priceListComplete\">\n" +
	"\x1bRecomputeEligibilityRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\"\xa0\x01\n" +
	"\x1cRecomputeEligibilityResponse\x12.\n" +
	"\x13price_list_complete\x18\x01 \x01(\bR\x11priceListComplete\x12)\n" +
	"\x10profile_complete\x18\x02 \x01(\bR\x0fprofileComplete\x12%\n" +
	"\x0estaff_complete\x18\x03 \x01(\bR\rstaffComplete\">\n" +
	"\x1bExportAcceptedOffersRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\"N\n" +
	"\x1cExportAcceptedOffersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xeb\x05\n" +
	"\rQuotesService\x12L\n" +
	"\vUploadQuote\x12\x1d.quotes.v1.UploadQuoteRequest\x1a\x1e.quotes.v1.UploadQuoteResponse\x12U\n" +
	"\x0eGetQuoteStatus\x12 .quotes.v1.GetQuoteStatusRequest\x1a!.quotes.v1.GetQuoteStatusResponse\x12I\n" +
	"\n" +
	"ListQuotes\x12\x1c.quotes.v1.ListQuotesRequest\x1a\x1d.quotes.v1.ListQuotesResponse\x12O\n" +
	"\fConfirmQuote\x12\x1e.quotes.v1.ConfirmQuoteRequest\x1a\x1f.quotes.v1.ConfirmQuoteResponse\x12U\n" +
	"\x0eGetOffersReady\x12 .quotes.v1.GetOffersReadyRequest\x1a!.quotes.v1.GetOffersReadyResponse\x12I\n" +
	"\n" +
	"ListOffers\x12\x1c.quotes.v1.ListOffersRequest\x1a\x1d.quotes.v1.ListOffersResponse\x12[\n" +
	"\x10MarkOffersViewed\x12\".quotes.v1.MarkOffersViewedRequest\x1a#.quotes.v1.MarkOffersViewedResponse\x12L\n" +
	"\vAcceptOffer\x12\x1d.quotes.v1.AcceptOfferRequest\x1a\x1e.quotes.v1.AcceptOfferResponse\x12L\n" +
	"\vRejectOffer\x12\x1d.quotes.v1.RejectOfferRequest\x1a\x1e.quotes.v1.RejectOfferResponse2\xc3\x04\n" +
	"\x10PriceListService\x12j\n" +
	"\x15GetEffectivePriceList\x12'.quotes.v1.GetEffectivePriceListRequest\x1a(.quotes.v1.GetEffectivePriceListResponse\x12L\n" +
	"\vSetOverride\x12\x1d.quotes.v1.SetOverrideRequest\x1a\x1e.quotes.v1.SetOverrideResponse\x12R\n" +
	"\rAddCustomItem\x12\x1f.quotes.v1.AddCustomItemRequest\x1a .quotes.v1.AddCustomItemResponse\x12[\n" +
	"\x10UpdateCustomItem\x12\".quotes.v1.UpdateCustomItemRequest\x1a#.quotes.v1.UpdateCustomItemResponse\x12[\n" +
	"\x10DeleteCustomItem\x12\".quotes.v1.DeleteCustomItemRequest\x1a#.quotes.v1.DeleteCustomItemResponse\x12g\n" +
	"\x14RecomputeEligibility\x12&.quotes.v1.RecomputeEligibilityRequest\x1a'.quotes.v1.RecomputeEligibilityResponse2x\n" +
	"\rExportService\x12g\n" +
	"\x14ExportAcceptedOffers\x12&.quotes.v1.ExportAcceptedOffersRequest\x1a'.quotes.v1.ExportAcceptedOffersResponseB;Z9github.com/smilematch/quotes/gen/proto/quotes/v1;quotesv1b\x06proto3"

var (
	file_quotes_v1_quotes_proto_rawDescOnce sync.Once
	file_quotes_v1_quotes_proto_rawDescData []byte
)

func file_quotes_v1_quotes_proto_rawDescGZIP() []byte {
	file_quotes_v1_quotes_proto_rawDescOnce.Do(func() {
		file_quotes_v1_quotes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_quotes_v1_quotes_proto_rawDesc), len(file_quotes_v1_quotes_proto_rawDesc)))
	})
	return file_quotes_v1_quotes_proto_rawDescData
}

var file_quotes_v1_quotes_proto_msgTypes = make([]protoimpl.MessageInfo, 39)
var file_quotes_v1_quotes_proto_goTypes = []any{
	(*LineItem)(nil),                      // 0: quotes.v1.LineItem
	(*QuotePayload)(nil),                  // 1: quotes.v1.QuotePayload
	(*OfferLine)(nil),                     // 2: quotes.v1.OfferLine
	(*OfferPayload)(nil),                  // 3: quotes.v1.OfferPayload
	(*Quote)(nil),                         // 4: quotes.v1.Quote
	(*Offer)(nil),                         // 5: quotes.v1.Offer
	(*UploadQuoteRequest)(nil),            // 6: quotes.v1.UploadQuoteRequest
	(*UploadQuoteResponse)(nil),           // 7: quotes.v1.UploadQuoteResponse
	(*GetQuoteStatusRequest)(nil),         // 8: quotes.v1.GetQuoteStatusRequest
	(*GetQuoteStatusResponse)(nil),        // 9: quotes.v1.GetQuoteStatusResponse
	(*ListQuotesRequest)(nil),             // 10: quotes.v1.ListQuotesRequest
	(*ListQuotesResponse)(nil),            // 11: quotes.v1.ListQuotesResponse
	(*ConfirmQuoteRequest)(nil),           // 12: quotes.v1.ConfirmQuoteRequest
	(*ConfirmQuoteResponse)(nil),          // 13: quotes.v1.ConfirmQuoteResponse
	(*GetOffersReadyRequest)(nil),         // 14: quotes.v1.GetOffersReadyRequest
	(*GetOffersReadyResponse)(nil),        // 15: quotes.v1.GetOffersReadyResponse
	(*ListOffersRequest)(nil),             // 16: quotes.v1.ListOffersRequest
	(*ListOffersResponse)(nil),            // 17: quotes.v1.ListOffersResponse
	(*MarkOffersViewedRequest)(nil),       // 18: quotes.v1.MarkOffersViewedRequest
	(*MarkOffersViewedResponse)(nil),      // 19: quotes.v1.MarkOffersViewedResponse
	(*AcceptOfferRequest)(nil),            // 20: quotes.v1.AcceptOfferRequest
	(*AcceptOfferResponse)(nil),           // 21: quotes.v1.AcceptOfferResponse
	(*RejectOfferRequest)(nil),            // 22: quotes.v1.RejectOfferRequest
	(*RejectOfferResponse)(nil),           // 23: quotes.v1.RejectOfferResponse
	(*PriceEntry)(nil),                    // 24: quotes.v1.PriceEntry
	(*GetEffectivePriceListRequest)(nil),  // 25: quotes.v1.GetEffectivePriceListRequest
	(*GetEffectivePriceListResponse)(nil), // 26: quotes.v1.GetEffectivePriceListResponse
	(*SetOverrideRequest)(nil),            // 27: quotes.v1.SetOverrideRequest
	(*SetOverrideResponse)(nil),           // 28: quotes.v1.SetOverrideResponse
	(*AddCustomItemRequest)(nil),          // 29: quotes.v1.AddCustomItemRequest
	(*AddCustomItemResponse)(nil),         // 30: quotes.v1.AddCustomItemResponse
	(*UpdateCustomItemRequest)(nil),       // 31: quotes.v1.UpdateCustomItemRequest
	(*UpdateCustomItemResponse)(nil),      // 32: quotes.v1.UpdateCustomItemResponse
	(*DeleteCustomItemRequest)(nil),       // 33: quotes.v1.DeleteCustomItemRequest
	(*DeleteCustomItemResponse)(nil),      // 34: quotes.v1.DeleteCustomItemResponse
	(*RecomputeEligibilityRequest)(nil),   // 35: quotes.v1.RecomputeEligibilityRequest
	(*RecomputeEligibilityResponse)(nil),  // 36: quotes.v1.RecomputeEligibilityResponse
	(*ExportAcceptedOffersRequest)(nil),   // 37: quotes.v1.ExportAcceptedOffersRequest
	(*ExportAcceptedOffersResponse)(nil),  // 38: quotes.v1.ExportAcceptedOffersResponse
}
var file_quotes_v1_quotes_proto_depIdxs = []int32{
	0,  // 0: quotes.v1.QuotePayload.line_items:type_name -> quotes.v1.LineItem
	2,  // 1: quotes.v1.OfferPayload.offer_items:type_name -> quotes.v1.OfferLine
	1,  // 2: quotes.v1.Quote.payload:type_name -> quotes.v1.QuotePayload
	3,  // 3: quotes.v1.Offer.payload:type_name -> quotes.v1.OfferPayload
	4,  // 4: quotes.v1.GetQuoteStatusResponse.quote:type_name -> quotes.v1.Quote
	4,  // 5: quotes.v1.ListQuotesResponse.quotes:type_name -> quotes.v1.Quote
	0,  // 6: quotes.v1.ConfirmQuoteRequest.line_items:type_name -> quotes.v1.LineItem
	4,  // 7: quotes.v1.ConfirmQuoteResponse.quote:type_name -> quotes.v1.Quote
	5,  // 8: quotes.v1.ListOffersResponse.new_offers:type_name -> quotes.v1.Offer
	5,  // 9: quotes.v1.ListOffersResponse.archived_offers:type_name -> quotes.v1.Offer
	5,  // 10: quotes.v1.AcceptOfferResponse.offer:type_name -> quotes.v1.Offer
	5,  // 11: quotes.v1.RejectOfferResponse.offer:type_name -> quotes.v1.Offer
	24, // 12: quotes.v1.GetEffectivePriceListResponse.entries:type_name -> quotes.v1.PriceEntry
	6,  // 13: quotes.v1.QuotesService.UploadQuote:input_type -> quotes.v1.UploadQuoteRequest
	8,  // 14: quotes.v1.QuotesService.GetQuoteStatus:input_type -> quotes.v1.GetQuoteStatusRequest
	10, // 15: quotes.v1.QuotesService.ListQuotes:input_type -> quotes.v1.ListQuotesRequest
	12, // 16: quotes.v1.QuotesService.ConfirmQuote:input_type -> quotes.v1.ConfirmQuoteRequest
	14, // 17: quotes.v1.QuotesService.GetOffersReady:input_type -> quotes.v1.GetOffersReadyRequest
	16, // 18: quotes.v1.QuotesService.ListOffers:input_type -> quotes.v1.ListOffersRequest
	18, // 19: quotes.v1.QuotesService.MarkOffersViewed:input_type -> quotes.v1.MarkOffersViewedRequest
	20, // 20: quotes.v1.QuotesService.AcceptOffer:input_type -> quotes.v1.AcceptOfferRequest
	22, // 21: quotes.v1.QuotesService.RejectOffer:input_type -> quotes.v1.RejectOfferRequest
	25, // 22: quotes.v1.PriceListService.GetEffectivePriceList:input_type -> quotes.v1.GetEffectivePriceListRequest
	27, // 23: quotes.v1.PriceListService.SetOverride:input_type -> quotes.v1.SetOverrideRequest
	29, // 24: quotes.v1.PriceListService.AddCustomItem:input_type -> quotes.v1.AddCustomItemRequest
	31, // 25: quotes.v1.PriceListService.UpdateCustomItem:input_type -> quotes.v1.UpdateCustomItemRequest
	33, // 26: quotes.v1.PriceListService.DeleteCustomItem:input_type -> quotes.v1.DeleteCustomItemRequest
	35, // 27: quotes.v1.PriceListService.RecomputeEligibility:input_type -> quotes.v1.RecomputeEligibilityRequest
	37, // 28: quotes.v1.ExportService.ExportAcceptedOffers:input_type -> quotes.v1.ExportAcceptedOffersRequest
	7,  // 29: quotes.v1.QuotesService.UploadQuote:output_type -> quotes.v1.UploadQuoteResponse
	9,  // 30: quotes.v1.QuotesService.GetQuoteStatus:output_type -> quotes.v1.GetQuoteStatusResponse
	11, // 31: quotes.v1.QuotesService.ListQuotes:output_type -> quotes.v1.ListQuotesResponse
	13, // 32: quotes.v1.QuotesService.ConfirmQuote:output_type -> quotes.v1.ConfirmQuoteResponse
	15, // 33: quotes.v1.QuotesService.GetOffersReady:output_type -> quotes.v1.GetOffersReadyResponse
	17, // 34: quotes.v1.QuotesService.ListOffers:output_type -> quotes.v1.ListOffersResponse
	19, // 35: quotes.v1.QuotesService.MarkOffersViewed:output_type -> quotes.v1.MarkOffersViewedResponse
	21, // 36: quotes.v1.QuotesService.AcceptOffer:output_type -> quotes.v1.AcceptOfferResponse
	23, // 37: quotes.v1.QuotesService.RejectOffer:output_type -> quotes.v1.RejectOfferResponse
	26, // 38: quotes.v1.PriceListService.GetEffectivePriceList:output_type -> quotes.v1.GetEffectivePriceListResponse
	28, // 39: quotes.v1.PriceListService.SetOverride:output_type -> quotes.v1.SetOverrideResponse
	30, // 40: quotes.v1.PriceListService.AddCustomItem:output_type -> quotes.v1.AddCustomItemResponse
	32, // 41: quotes.v1.PriceListService.UpdateCustomItem:output_type -> quotes.v1.UpdateCustomItemResponse
	34, // 42: quotes.v1.PriceListService.DeleteCustomItem:output_type -> quotes.v1.DeleteCustomItemResponse
	36, // 43: quotes.v1.PriceListService.RecomputeEligibility:output_type -> quotes.v1.RecomputeEligibilityResponse
	38, // 44: quotes.v1.ExportService.ExportAcceptedOffers:output_type -> quotes.v1.ExportAcceptedOffersResponse
	29, // [29:45] is the sub-list for method output_type
	13, // [13:29] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_quotes_v1_quotes_proto_init() }
func file_quotes_v1_quotes_proto_init() {
	if File_quotes_v1_quotes_proto != nil {
		return
	}
	file_quotes_v1_quotes_proto_msgTypes[27].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_quotes_v1_quotes_proto_rawDesc), len(file_quotes_v1_quotes_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   39,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_quotes_v1_quotes_proto_goTypes,
		DependencyIndexes: file_quotes_v1_quotes_proto_depIdxs,
		MessageInfos:      file_quotes_v1_quotes_proto_msgTypes,
	}.Build()
	File_quotes_v1_quotes_proto = out.File
	file_quotes_v1_quotes_proto_goTypes = nil
	file_quotes_v1_quotes_proto_depIdxs = nil
}
