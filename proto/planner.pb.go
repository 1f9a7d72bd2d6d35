// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: planner.proto

package plannerv1

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

type PlanRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CompletionId     string                 `protobuf:"bytes,1,opt,name=completion_id,json=completionId,proto3" json:"completion_id,omitempty"`
	AgentExecutionId string                 `protobuf:"bytes,2,opt,name=agent_execution_id,json=agentExecutionId,proto3" json:"agent_execution_id,omitempty"`
	SystemPrompt     string                 `protobuf:"bytes,3,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt       string                 `protobuf:"bytes,4,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	// JSON-encoded tool catalog for the requested plan types.
	CatalogJson   string            `protobuf:"bytes,5,opt,name=catalog_json,json=catalogJson,proto3" json:"catalog_json,omitempty"`
	Config        *GenerationConfig `protobuf:"bytes,6,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanRequest) Reset() {
	*x = PlanRequest{}
	mi := &file_planner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanRequest) ProtoMessage() {}

func (x *PlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanRequest.ProtoReflect.Descriptor instead.
func (*PlanRequest) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{0}
}

func (x *PlanRequest) GetCompletionId() string {
	if x != nil {
		return x.CompletionId
	}
	return ""
}

func (x *PlanRequest) GetAgentExecutionId() string {
	if x != nil {
		return x.AgentExecutionId
	}
	return ""
}

func (x *PlanRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *PlanRequest) GetUserPrompt() string {
	if x != nil {
		return x.UserPrompt
	}
	return ""
}

func (x *PlanRequest) GetCatalogJson() string {
	if x != nil {
		return x.CatalogJson
	}
	return ""
}

func (x *PlanRequest) GetConfig() *GenerationConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type GenerationConfig struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Model         string                 `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	Temperature   *float32               `protobuf:"fixed32,2,opt,name=temperature,proto3,oneof" json:"temperature,omitempty"`
	MaxTokens     *int32                 `protobuf:"varint,3,opt,name=max_tokens,json=maxTokens,proto3,oneof" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerationConfig) Reset() {
	*x = GenerationConfig{}
	mi := &file_planner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerationConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerationConfig) ProtoMessage() {}

func (x *GenerationConfig) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerationConfig.ProtoReflect.Descriptor instead.
func (*GenerationConfig) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{1}
}

func (x *GenerationConfig) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *GenerationConfig) GetTemperature() float32 {
	if x != nil && x.Temperature != nil {
		return *x.Temperature
	}
	return 0
}

func (x *GenerationConfig) GetMaxTokens() int32 {
	if x != nil && x.MaxTokens != nil {
		return *x.MaxTokens
	}
	return 0
}

type PlanResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*PlanResponse_Token
	//	*PlanResponse_Usage
	//	*PlanResponse_Error
	Content       isPlanResponse_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanResponse) Reset() {
	*x = PlanResponse{}
	mi := &file_planner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanResponse) ProtoMessage() {}

func (x *PlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanResponse.ProtoReflect.Descriptor instead.
func (*PlanResponse) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{2}
}

func (x *PlanResponse) GetContent() isPlanResponse_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *PlanResponse) GetToken() *TokenDelta {
	if x != nil {
		if x, ok := x.Content.(*PlanResponse_Token); ok {
			return x.Token
		}
	}
	return nil
}

func (x *PlanResponse) GetUsage() *Usage {
	if x != nil {
		if x, ok := x.Content.(*PlanResponse_Usage); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *PlanResponse) GetError() *Error {
	if x != nil {
		if x, ok := x.Content.(*PlanResponse_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isPlanResponse_Content interface {
	isPlanResponse_Content()
}

type PlanResponse_Token struct {
	Token *TokenDelta `protobuf:"bytes,1,opt,name=token,proto3,oneof"`
}

type PlanResponse_Usage struct {
	Usage *Usage `protobuf:"bytes,2,opt,name=usage,proto3,oneof"`
}

type PlanResponse_Error struct {
	Error *Error `protobuf:"bytes,3,opt,name=error,proto3,oneof"`
}

func (*PlanResponse_Token) isPlanResponse_Content() {}

func (*PlanResponse_Usage) isPlanResponse_Content() {}

func (*PlanResponse_Error) isPlanResponse_Content() {}

type TokenDelta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TokenDelta) Reset() {
	*x = TokenDelta{}
	mi := &file_planner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenDelta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenDelta) ProtoMessage() {}

func (x *TokenDelta) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenDelta.ProtoReflect.Descriptor instead.
func (*TokenDelta) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{3}
}

func (x *TokenDelta) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type Usage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InputTokens   int32                  `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int32                  `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	TotalTokens   int32                  `protobuf:"varint,3,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Usage) Reset() {
	*x = Usage{}
	mi := &file_planner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Usage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Usage) ProtoMessage() {}

func (x *Usage) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Usage.ProtoReflect.Descriptor instead.
func (*Usage) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{4}
}

func (x *Usage) GetInputTokens() int32 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *Usage) GetOutputTokens() int32 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

func (x *Usage) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

type Error struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Retryable     bool                   `protobuf:"varint,3,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Error) Reset() {
	*x = Error{}
	mi := &file_planner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Error) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Error) ProtoMessage() {}

func (x *Error) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Error.ProtoReflect.Descriptor instead.
func (*Error) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{5}
}

func (x *Error) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Error) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Error) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

type CompleteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SystemPrompt  string                 `protobuf:"bytes,1,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt    string                 `protobuf:"bytes,2,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	Config        *GenerationConfig      `protobuf:"bytes,3,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteRequest) Reset() {
	*x = CompleteRequest{}
	mi := &file_planner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteRequest) ProtoMessage() {}

func (x *CompleteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteRequest.ProtoReflect.Descriptor instead.
func (*CompleteRequest) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{6}
}

func (x *CompleteRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *CompleteRequest) GetUserPrompt() string {
	if x != nil {
		return x.UserPrompt
	}
	return ""
}

func (x *CompleteRequest) GetConfig() *GenerationConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type CompleteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Usage         *Usage                 `protobuf:"bytes,2,opt,name=usage,proto3" json:"usage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteResponse) Reset() {
	*x = CompleteResponse{}
	mi := &file_planner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteResponse) ProtoMessage() {}

func (x *CompleteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteResponse.ProtoReflect.Descriptor instead.
func (*CompleteResponse) Descriptor() ([]byte, []int) {
	return file_planner_proto_rawDescGZIP(), []int{7}
}

func (x *CompleteResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *CompleteResponse) GetUsage() *Usage {
	if x != nil {
		return x.Usage
	}
	return nil
}

var File_planner_proto protoreflect.FileDescriptor

const file_planner_proto_rawDesc = "" +
	"\n" +
	"\rplanner.proto\x12\n" +
	"planner.v1\"\xff\x01\n" +
	"\vPlanRequest\x12#\n" +
	"\rcompletion_id\x18\x01 \x01(\tR\fcompletionId\x12,\n" +
	"\x12agent_execution_id\x18\x02 \x01(\tR\x10agentExecutionId\x12#\n" +
	"\rsystem_prompt\x18\x03 \x01(\tR\fsystemPrompt\x12\x1f\n" +
	"\vuser_prompt\x18\x04 \x01(\tR\n" +
	"userPrompt\x12!\n" +
	"\fcatalog_json\x18\x05 \x01(\tR\vcatalogJson\x124\n" +
	"\x06config\x18\x06 \x01(\v2\x1c.planner.v1.GenerationConfigR\x06config\"\x92\x01\n" +
	"\x10GenerationConfig\x12\x14\n" +
	"\x05model\x18\x01 \x01(\tR\x05model\x12%\n" +
	"\vtemperature\x18\x02 \x01(\x02H\x00R\vtemperature\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_tokens\x18\x03 \x01(\x05H\x01R\tmaxTokens\x88\x01\x01B\x0e\n" +
	"\f_temperatureB\r\n" +
	"\v_max_tokens\"\x9f\x01\n" +
	"\fPlanResponse\x12.\n" +
	"\x05token\x18\x01 \x01(\v2\x16.planner.v1.TokenDeltaH\x00R\x05token\x12)\n" +
	"\x05usage\x18\x02 \x01(\v2\x11.planner.v1.UsageH\x00R\x05usage\x12)\n" +
	"\x05error\x18\x03 \x01(\v2\x11.planner.v1.ErrorH\x00R\x05errorB\t\n" +
	"\acontent\" \n" +
	"\n" +
	"TokenDelta\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"r\n" +
	"\x05Usage\x12!\n" +
	"\finput_tokens\x18\x01 \x01(\x05R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x02 \x01(\x05R\foutputTokens\x12!\n" +
	"\ftotal_tokens\x18\x03 \x01(\x05R\vtotalTokens\"S\n" +
	"\x05Error\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x1c\n" +
	"\tretryable\x18\x03 \x01(\bR\tretryable\"\x8d\x01\n" +
	"\x0fCompleteRequest\x12#\n" +
	"\rsystem_prompt\x18\x01 \x01(\tR\fsystemPrompt\x12\x1f\n" +
	"\vuser_prompt\x18\x02 \x01(\tR\n" +
	"userPrompt\x124\n" +
	"\x06config\x18\x03 \x01(\v2\x1c.planner.v1.GenerationConfigR\x06config\"O\n" +
	"\x10CompleteResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12'\n" +
	"\x05usage\x18\x02 \x01(\v2\x11.planner.v1.UsageR\x05usage2\x94\x01\n" +
	"\x0ePlannerService\x12;\n" +
	"\x04Plan\x12\x17.planner.v1.PlanRequest\x1a\x18.planner.v1.PlanResponse0\x01\x12E\n" +
	"\bComplete\x12\x1b.planner.v1.CompleteRequest\x1a\x1c.planner.v1.CompleteResponseB,Z*github.com/quarryhq/quarry/proto;plannerv1b\x06proto3"

var (
	file_planner_proto_rawDescOnce sync.Once
	file_planner_proto_rawDescData []byte
)

func file_planner_proto_rawDescGZIP() []byte {
	file_planner_proto_rawDescOnce.Do(func() {
		file_planner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_planner_proto_rawDesc), len(file_planner_proto_rawDesc)))
	})
	return file_planner_proto_rawDescData
}

var file_planner_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_planner_proto_goTypes = []any{
	(*PlanRequest)(nil),      // 0: planner.v1.PlanRequest
	(*GenerationConfig)(nil), // 1: planner.v1.GenerationConfig
	(*PlanResponse)(nil),     // 2: planner.v1.PlanResponse
	(*TokenDelta)(nil),       // 3: planner.v1.TokenDelta
	(*Usage)(nil),            // 4: planner.v1.Usage
	(*Error)(nil),            // 5: planner.v1.Error
	(*CompleteRequest)(nil),  // 6: planner.v1.CompleteRequest
	(*CompleteResponse)(nil), // 7: planner.v1.CompleteResponse
}
var file_planner_proto_depIdxs = []int32{
	1, // 0: planner.v1.PlanRequest.config:type_name -> planner.v1.GenerationConfig
	3, // 1: planner.v1.PlanResponse.token:type_name -> planner.v1.TokenDelta
	4, // 2: planner.v1.PlanResponse.usage:type_name -> planner.v1.Usage
	5, // 3: planner.v1.PlanResponse.error:type_name -> planner.v1.Error
	1, // 4: planner.v1.CompleteRequest.config:type_name -> planner.v1.GenerationConfig
	4, // 5: planner.v1.CompleteResponse.usage:type_name -> planner.v1.Usage
	0, // 6: planner.v1.PlannerService.Plan:input_type -> planner.v1.PlanRequest
	6, // 7: planner.v1.PlannerService.Complete:input_type -> planner.v1.CompleteRequest
	2, // 8: planner.v1.PlannerService.Plan:output_type -> planner.v1.PlanResponse
	7, // 9: planner.v1.PlannerService.Complete:output_type -> planner.v1.CompleteResponse
	8, // [8:10] is the sub-list for method output_type
	6, // [6:8] is the sub-list for method input_type
	6, // [6:6] is the sub-list for extension type_name
	6, // [6:6] is the sub-list for extension extendee
	0, // [0:6] is the sub-list for field type_name
}

func init() { file_planner_proto_init() }
func file_planner_proto_init() {
	if File_planner_proto != nil {
		return
	}
	file_planner_proto_msgTypes[1].OneofWrappers = []any{}
	file_planner_proto_msgTypes[2].OneofWrappers = []any{
		(*PlanResponse_Token)(nil),
		(*PlanResponse_Usage)(nil),
		(*PlanResponse_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_planner_proto_rawDesc), len(file_planner_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_planner_proto_goTypes,
		DependencyIndexes: file_planner_proto_depIdxs,
		MessageInfos:      file_planner_proto_msgTypes,
	}.Build()
	File_planner_proto = out.File
	file_planner_proto_goTypes = nil
	file_planner_proto_depIdxs = nil
}
