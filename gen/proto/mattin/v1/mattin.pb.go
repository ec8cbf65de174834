// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mattin/v1/mattin.proto

package mattinpb

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

type Agent struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name               string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description        string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Provider           string                 `protobuf:"bytes,4,opt,name=provider,proto3" json:"provider,omitempty"`
	TextModel          string                 `protobuf:"bytes,5,opt,name=text_model,json=textModel,proto3" json:"text_model,omitempty"`
	VisionModel        string                 `protobuf:"bytes,6,opt,name=vision_model,json=visionModel,proto3" json:"vision_model,omitempty"`
	VisionInstruction  string                 `protobuf:"bytes,7,opt,name=vision_instruction,json=visionInstruction,proto3" json:"vision_instruction,omitempty"`
	TextInstruction    string                 `protobuf:"bytes,8,opt,name=text_instruction,json=textInstruction,proto3" json:"text_instruction,omitempty"`
	OutputSchemaId     *int32                 `protobuf:"varint,9,opt,name=output_schema_id,json=outputSchemaId,proto3,oneof" json:"output_schema_id,omitempty"`
	SkipVisionWhenText bool                   `protobuf:"varint,10,opt,name=skip_vision_when_text,json=skipVisionWhenText,proto3" json:"skip_vision_when_text,omitempty"`
	Temperature        float32                `protobuf:"fixed32,11,opt,name=temperature,proto3" json:"temperature,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Agent) Reset() {
	*x = Agent{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Agent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Agent) ProtoMessage() {}

func (x *Agent) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Agent.ProtoReflect.Descriptor instead.
func (*Agent) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{0}
}

func (x *Agent) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Agent) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Agent) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Agent) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Agent) GetTextModel() string {
	if x != nil {
		return x.TextModel
	}
	return ""
}

func (x *Agent) GetVisionModel() string {
	if x != nil {
		return x.VisionModel
	}
	return ""
}

func (x *Agent) GetVisionInstruction() string {
	if x != nil {
		return x.VisionInstruction
	}
	return ""
}

func (x *Agent) GetTextInstruction() string {
	if x != nil {
		return x.TextInstruction
	}
	return ""
}

func (x *Agent) GetOutputSchemaId() int32 {
	if x != nil && x.OutputSchemaId != nil {
		return *x.OutputSchemaId
	}
	return 0
}

func (x *Agent) GetSkipVisionWhenText() bool {
	if x != nil {
		return x.SkipVisionWhenText
	}
	return false
}

func (x *Agent) GetTemperature() float32 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

func (x *Agent) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Agent) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateAgentRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Name               string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description        string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Provider           string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	TextModel          string                 `protobuf:"bytes,4,opt,name=text_model,json=textModel,proto3" json:"text_model,omitempty"`
	VisionModel        string                 `protobuf:"bytes,5,opt,name=vision_model,json=visionModel,proto3" json:"vision_model,omitempty"`
	VisionInstruction  string                 `protobuf:"bytes,6,opt,name=vision_instruction,json=visionInstruction,proto3" json:"vision_instruction,omitempty"`
	TextInstruction    string                 `protobuf:"bytes,7,opt,name=text_instruction,json=textInstruction,proto3" json:"text_instruction,omitempty"`
	OutputSchemaId     *int32                 `protobuf:"varint,8,opt,name=output_schema_id,json=outputSchemaId,proto3,oneof" json:"output_schema_id,omitempty"`
	SkipVisionWhenText bool                   `protobuf:"varint,9,opt,name=skip_vision_when_text,json=skipVisionWhenText,proto3" json:"skip_vision_when_text,omitempty"`
	Temperature        float32                `protobuf:"fixed32,10,opt,name=temperature,proto3" json:"temperature,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateAgentRequest) Reset() {
	*x = CreateAgentRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAgentRequest) ProtoMessage() {}

func (x *CreateAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAgentRequest.ProtoReflect.Descriptor instead.
func (*CreateAgentRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{1}
}

func (x *CreateAgentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateAgentRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateAgentRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *CreateAgentRequest) GetTextModel() string {
	if x != nil {
		return x.TextModel
	}
	return ""
}

func (x *CreateAgentRequest) GetVisionModel() string {
	if x != nil {
		return x.VisionModel
	}
	return ""
}

func (x *CreateAgentRequest) GetVisionInstruction() string {
	if x != nil {
		return x.VisionInstruction
	}
	return ""
}

func (x *CreateAgentRequest) GetTextInstruction() string {
	if x != nil {
		return x.TextInstruction
	}
	return ""
}

func (x *CreateAgentRequest) GetOutputSchemaId() int32 {
	if x != nil && x.OutputSchemaId != nil {
		return *x.OutputSchemaId
	}
	return 0
}

func (x *CreateAgentRequest) GetSkipVisionWhenText() bool {
	if x != nil {
		return x.SkipVisionWhenText
	}
	return false
}

func (x *CreateAgentRequest) GetTemperature() float32 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

type CreateAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agent         *Agent                 `protobuf:"bytes,1,opt,name=agent,proto3" json:"agent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAgentResponse) Reset() {
	*x = CreateAgentResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAgentResponse) ProtoMessage() {}

func (x *CreateAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAgentResponse.ProtoReflect.Descriptor instead.
func (*CreateAgentResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{2}
}

func (x *CreateAgentResponse) GetAgent() *Agent {
	if x != nil {
		return x.Agent
	}
	return nil
}

type GetAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAgentRequest) Reset() {
	*x = GetAgentRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAgentRequest) ProtoMessage() {}

func (x *GetAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAgentRequest.ProtoReflect.Descriptor instead.
func (*GetAgentRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{3}
}

func (x *GetAgentRequest) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

type GetAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agent         *Agent                 `protobuf:"bytes,1,opt,name=agent,proto3" json:"agent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAgentResponse) Reset() {
	*x = GetAgentResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAgentResponse) ProtoMessage() {}

func (x *GetAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAgentResponse.ProtoReflect.Descriptor instead.
func (*GetAgentResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{4}
}

func (x *GetAgentResponse) GetAgent() *Agent {
	if x != nil {
		return x.Agent
	}
	return nil
}

type ListAgentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAgentsRequest) Reset() {
	*x = ListAgentsRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAgentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAgentsRequest) ProtoMessage() {}

func (x *ListAgentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAgentsRequest.ProtoReflect.Descriptor instead.
func (*ListAgentsRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{5}
}

type ListAgentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agents        []*Agent               `protobuf:"bytes,1,rep,name=agents,proto3" json:"agents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAgentsResponse) Reset() {
	*x = ListAgentsResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAgentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAgentsResponse) ProtoMessage() {}

func (x *ListAgentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAgentsResponse.ProtoReflect.Descriptor instead.
func (*ListAgentsResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{6}
}

func (x *ListAgentsResponse) GetAgents() []*Agent {
	if x != nil {
		return x.Agents
	}
	return nil
}

type DeleteAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAgentRequest) Reset() {
	*x = DeleteAgentRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAgentRequest) ProtoMessage() {}

func (x *DeleteAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAgentRequest.ProtoReflect.Descriptor instead.
func (*DeleteAgentRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteAgentRequest) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

type DeleteAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAgentResponse) Reset() {
	*x = DeleteAgentResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAgentResponse) ProtoMessage() {}

func (x *DeleteAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAgentResponse.ProtoReflect.Descriptor instead.
func (*DeleteAgentResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{8}
}

type SchemaFieldSpec struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description    string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	FieldType      string                 `protobuf:"bytes,3,opt,name=field_type,json=fieldType,proto3" json:"field_type,omitempty"`
	NestedSchemaId *int32                 `protobuf:"varint,4,opt,name=nested_schema_id,json=nestedSchemaId,proto3,oneof" json:"nested_schema_id,omitempty"`
	ListItemType   string                 `protobuf:"bytes,5,opt,name=list_item_type,json=listItemType,proto3" json:"list_item_type,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SchemaFieldSpec) Reset() {
	*x = SchemaFieldSpec{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchemaFieldSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchemaFieldSpec) ProtoMessage() {}

func (x *SchemaFieldSpec) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SchemaFieldSpec.ProtoReflect.Descriptor instead.
func (*SchemaFieldSpec) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{9}
}

func (x *SchemaFieldSpec) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SchemaFieldSpec) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SchemaFieldSpec) GetFieldType() string {
	if x != nil {
		return x.FieldType
	}
	return ""
}

func (x *SchemaFieldSpec) GetNestedSchemaId() int32 {
	if x != nil && x.NestedSchemaId != nil {
		return *x.NestedSchemaId
	}
	return 0
}

func (x *SchemaFieldSpec) GetListItemType() string {
	if x != nil {
		return x.ListItemType
	}
	return ""
}

type CreateSchemaDefinitionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Fields        []*SchemaFieldSpec     `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSchemaDefinitionRequest) Reset() {
	*x = CreateSchemaDefinitionRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSchemaDefinitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSchemaDefinitionRequest) ProtoMessage() {}

func (x *CreateSchemaDefinitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSchemaDefinitionRequest.ProtoReflect.Descriptor instead.
func (*CreateSchemaDefinitionRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{10}
}

func (x *CreateSchemaDefinitionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSchemaDefinitionRequest) GetFields() []*SchemaFieldSpec {
	if x != nil {
		return x.Fields
	}
	return nil
}

type CreateSchemaDefinitionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSchemaDefinitionResponse) Reset() {
	*x = CreateSchemaDefinitionResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSchemaDefinitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSchemaDefinitionResponse) ProtoMessage() {}

func (x *CreateSchemaDefinitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSchemaDefinitionResponse.ProtoReflect.Descriptor instead.
func (*CreateSchemaDefinitionResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{11}
}

func (x *CreateSchemaDefinitionResponse) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

type ToolServer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Url           string                 `protobuf:"bytes,3,opt,name=url,proto3" json:"url,omitempty"`
	Transport     string                 `protobuf:"bytes,4,opt,name=transport,proto3" json:"transport,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolServer) Reset() {
	*x = ToolServer{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolServer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolServer) ProtoMessage() {}

func (x *ToolServer) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolServer.ProtoReflect.Descriptor instead.
func (*ToolServer) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{12}
}

func (x *ToolServer) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ToolServer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolServer) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ToolServer) GetTransport() string {
	if x != nil {
		return x.Transport
	}
	return ""
}

type CreateToolServerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	Transport     string                 `protobuf:"bytes,3,opt,name=transport,proto3" json:"transport,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateToolServerRequest) Reset() {
	*x = CreateToolServerRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateToolServerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateToolServerRequest) ProtoMessage() {}

func (x *CreateToolServerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateToolServerRequest.ProtoReflect.Descriptor instead.
func (*CreateToolServerRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{13}
}

func (x *CreateToolServerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateToolServerRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *CreateToolServerRequest) GetTransport() string {
	if x != nil {
		return x.Transport
	}
	return ""
}

type CreateToolServerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToolServer    *ToolServer            `protobuf:"bytes,1,opt,name=tool_server,json=toolServer,proto3" json:"tool_server,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateToolServerResponse) Reset() {
	*x = CreateToolServerResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateToolServerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateToolServerResponse) ProtoMessage() {}

func (x *CreateToolServerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateToolServerResponse.ProtoReflect.Descriptor instead.
func (*CreateToolServerResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{14}
}

func (x *CreateToolServerResponse) GetToolServer() *ToolServer {
	if x != nil {
		return x.ToolServer
	}
	return nil
}

type ListToolServersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListToolServersRequest) Reset() {
	*x = ListToolServersRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListToolServersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListToolServersRequest) ProtoMessage() {}

func (x *ListToolServersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListToolServersRequest.ProtoReflect.Descriptor instead.
func (*ListToolServersRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{15}
}

type ListToolServersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToolServers   []*ToolServer          `protobuf:"bytes,1,rep,name=tool_servers,json=toolServers,proto3" json:"tool_servers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListToolServersResponse) Reset() {
	*x = ListToolServersResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListToolServersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListToolServersResponse) ProtoMessage() {}

func (x *ListToolServersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListToolServersResponse.ProtoReflect.Descriptor instead.
func (*ListToolServersResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{16}
}

func (x *ListToolServersResponse) GetToolServers() []*ToolServer {
	if x != nil {
		return x.ToolServers
	}
	return nil
}

type Silo struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Collection     string                 `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	EmbeddingModel string                 `protobuf:"bytes,4,opt,name=embedding_model,json=embeddingModel,proto3" json:"embedding_model,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Silo) Reset() {
	*x = Silo{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Silo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Silo) ProtoMessage() {}

func (x *Silo) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Silo.ProtoReflect.Descriptor instead.
func (*Silo) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{17}
}

func (x *Silo) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Silo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Silo) GetCollection() string {
	if x != nil {
		return x.Collection
	}
	return ""
}

func (x *Silo) GetEmbeddingModel() string {
	if x != nil {
		return x.EmbeddingModel
	}
	return ""
}

type CreateSiloRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Collection     string                 `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	EmbeddingModel string                 `protobuf:"bytes,3,opt,name=embedding_model,json=embeddingModel,proto3" json:"embedding_model,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateSiloRequest) Reset() {
	*x = CreateSiloRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSiloRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSiloRequest) ProtoMessage() {}

func (x *CreateSiloRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSiloRequest.ProtoReflect.Descriptor instead.
func (*CreateSiloRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{18}
}

func (x *CreateSiloRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSiloRequest) GetCollection() string {
	if x != nil {
		return x.Collection
	}
	return ""
}

func (x *CreateSiloRequest) GetEmbeddingModel() string {
	if x != nil {
		return x.EmbeddingModel
	}
	return ""
}

type CreateSiloResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Silo          *Silo                  `protobuf:"bytes,1,opt,name=silo,proto3" json:"silo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSiloResponse) Reset() {
	*x = CreateSiloResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSiloResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSiloResponse) ProtoMessage() {}

func (x *CreateSiloResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSiloResponse.ProtoReflect.Descriptor instead.
func (*CreateSiloResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{19}
}

func (x *CreateSiloResponse) GetSilo() *Silo {
	if x != nil {
		return x.Silo
	}
	return nil
}

type ListSilosRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSilosRequest) Reset() {
	*x = ListSilosRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSilosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSilosRequest) ProtoMessage() {}

func (x *ListSilosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSilosRequest.ProtoReflect.Descriptor instead.
func (*ListSilosRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{20}
}

type ListSilosResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Silos         []*Silo                `protobuf:"bytes,1,rep,name=silos,proto3" json:"silos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSilosResponse) Reset() {
	*x = ListSilosResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSilosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSilosResponse) ProtoMessage() {}

func (x *ListSilosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSilosResponse.ProtoReflect.Descriptor instead.
func (*ListSilosResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{21}
}

func (x *ListSilosResponse) GetSilos() []*Silo {
	if x != nil {
		return x.Silos
	}
	return nil
}

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       int32                  `protobuf:"varint,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{22}
}

func (x *ExtractDocumentRequest) GetAgentId() int32 {
	if x != nil {
		return x.AgentId
	}
	return 0
}

func (x *ExtractDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ExtractDocumentResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	JobId  string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	// Extraction result as a JSON document.
	ResultJson    string `protobuf:"bytes,3,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{23}
}

func (x *ExtractDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractDocumentResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AgentId       int32                  `protobuf:"varint,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	DocumentName  string                 `protobuf:"bytes,3,opt,name=document_name,json=documentName,proto3" json:"document_name,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Pages         int32                  `protobuf:"varint,5,opt,name=pages,proto3" json:"pages,omitempty"`
	HasPlainText  bool                   `protobuf:"varint,6,opt,name=has_plain_text,json=hasPlainText,proto3" json:"has_plain_text,omitempty"`
	ResultJson    string                 `protobuf:"bytes,7,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Trace         []string               `protobuf:"bytes,9,rep,name=trace,proto3" json:"trace,omitempty"`
	StartedAt     string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,11,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{24}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetAgentId() int32 {
	if x != nil {
		return x.AgentId
	}
	return 0
}

func (x *Job) GetDocumentName() string {
	if x != nil {
		return x.DocumentName
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *Job) GetHasPlainText() bool {
	if x != nil {
		return x.HasPlainText
	}
	return false
}

func (x *Job) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetTrace() []string {
	if x != nil {
		return x.Trace
	}
	return nil
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{25}
}

func (x *GetJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{26}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       int32                  `protobuf:"varint,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{27}
}

func (x *ListJobsRequest) GetAgentId() int32 {
	if x != nil {
		return x.AgentId
	}
	return 0
}

func (x *ListJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{28}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       int32                  `protobuf:"varint,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{29}
}

func (x *ExportJobsRequest) GetAgentId() int32 {
	if x != nil {
		return x.AgentId
	}
	return 0
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_mattin_v1_mattin_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mattin_v1_mattin_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_mattin_v1_mattin_proto_rawDescGZIP(), []int{30}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportJobsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_mattin_v1_mattin_proto protoreflect.FileDescriptor

const file_mattin_v1_mattin_proto_rawDesc = "" +
	"\n" +
	"\x16mattin/v1/mattin.proto\x12\tmattin.v1\"\xdc\x03\n" +
	"\x05Agent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bprovider\x18\x04 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"text_model\x18\x05 \x01(\tR\ttextModel\x12!\n" +
	"\fvision_model\x18\x06 \x01(\tR\vvisionModel\x12-\n" +
	"\x12vision_instruction\x18\a \x01(\tR\x11visionInstruction\x12)\n" +
	"\x10text_instruction\x18\b \x01(\tR\x0ftextInstruction\x12-\n" +
	"\x10output_schema_id\x18\t \x01(\x05H\x00R\x0eoutputSchemaId\x88\x01\x01\x121\n" +
	"\x15skip_vision_when_text\x18\n" +
	" \x01(\bR\x12skipVisionWhenText\x12 \n" +
	"\vtemperature\x18\v \x01(\x02R\vtemperature\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAtB\x13\n" +
	"\x11_output_schema_id\"\x9b\x03\n" +
	"\x12CreateAgentRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"text_model\x18\x04 \x01(\tR\ttextModel\x12!\n" +
	"\fvision_model\x18\x05 \x01(\tR\vvisionModel\x12-\n" +
	"\x12vision_instruction\x18\x06 \x01(\tR\x11visionInstruction\x12)\n" +
	"\x10text_instruction\x18\a \x01(\tR\x0ftextInstruction\x12-\n" +
	"\x10output_schema_id\x18\b \x01(\x05H\x00R\x0eoutputSchemaId\x88\x01\x01\x121\n" +
	"\x15skip_vision_when_text\x18\t \x01(\bR\x12skipVisionWhenText\x12 \n" +
	"\vtemperature\x18\n" +
	" \x01(\x02R\vtemperatureB\x13\n" +
	"\x11_output_schema_id\"=\n" +
	"\x13CreateAgentResponse\x12&\n" +
	"\x05agent\x18\x01 \x01(\v2\x10.mattin.v1.AgentR\x05agent\"!\n" +
	"\x0fGetAgentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\":\n" +
	"\x10GetAgentResponse\x12&\n" +
	"\x05agent\x18\x01 \x01(\v2\x10.mattin.v1.AgentR\x05agent\"\x13\n" +
	"\x11ListAgentsRequest\">\n" +
	"\x12ListAgentsResponse\x12(\n" +
	"\x06agents\x18\x01 \x03(\v2\x10.mattin.v1.AgentR\x06agents\"$\n" +
	"\x12DeleteAgentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\"\x15\n" +
	"\x13DeleteAgentResponse\"\xd0\x01\n" +
	"\x0fSchemaFieldSpec\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"field_type\x18\x03 \x01(\tR\tfieldType\x12-\n" +
	"\x10nested_schema_id\x18\x04 \x01(\x05H\x00R\x0enestedSchemaId\x88\x01\x01\x12$\n" +
	"\x0elist_item_type\x18\x05 \x01(\tR\flistItemTypeB\x13\n" +
	"\x11_nested_schema_id\"g\n" +
	"\x1dCreateSchemaDefinitionRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x122\n" +
	"\x06fields\x18\x02 \x03(\v2\x1a.mattin.v1.SchemaFieldSpecR\x06fields\"0\n" +
	"\x1eCreateSchemaDefinitionResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\"`\n" +
	"\n" +
	"ToolServer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x10\n" +
	"\x03url\x18\x03 \x01(\tR\x03url\x12\x1c\n" +
	"\ttransport\x18\x04 \x01(\tR\ttransport\"]\n" +
	"\x17CreateToolServerRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x1c\n" +
	"\ttransport\x18\x03 \x01(\tR\ttransport\"R\n" +
	"\x18CreateToolServerResponse\x126\n" +
	"\vtool_server\x18\x01 \x01(\v2\x15.mattin.v1.ToolServerR\n" +
	"toolServer\"\x18\n" +
	"\x16ListToolServersRequest\"S\n" +
	"\x17ListToolServersResponse\x128\n" +
	"\ftool_servers\x18\x01 \x03(\v2\x15.mattin.v1.ToolServerR\vtoolServers\"s\n" +
	"\x04Silo\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1e\n" +
	"\n" +
	"collection\x18\x03 \x01(\tR\n" +
	"collection\x12'\n" +
	"\x0fembedding_model\x18\x04 \x01(\tR\x0eembeddingModel\"p\n" +
	"\x11CreateSiloRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1e\n" +
	"\n" +
	"collection\x18\x02 \x01(\tR\n" +
	"collection\x12'\n" +
	"\x0fembedding_model\x18\x03 \x01(\tR\x0eembeddingModel\"9\n" +
	"\x12CreateSiloResponse\x12#\n" +
	"\x04silo\x18\x01 \x01(\v2\x0f.mattin.v1.SiloR\x04silo\"\x12\n" +
	"\x10ListSilosRequest\":\n" +
	"\x11ListSilosResponse\x12%\n" +
	"\x05silos\x18\x01 \x03(\v2\x0f.mattin.v1.SiloR\x05silos\"i\n" +
	"\x16ExtractDocumentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\x05R\aagentId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"i\n" +
	"\x17ExtractDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\vresult_json\x18\x03 \x01(\tR\n" +
	"resultJson\"\xc5\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\x05R\aagentId\x12#\n" +
	"\rdocument_name\x18\x03 \x01(\tR\fdocumentName\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x14\n" +
	"\x05pages\x18\x05 \x01(\x05R\x05pages\x12$\n" +
	"\x0ehas_plain_text\x18\x06 \x01(\bR\fhasPlainText\x12\x1f\n" +
	"\vresult_json\x18\a \x01(\tR\n" +
	"resultJson\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12\x14\n" +
	"\x05trace\x18\t \x03(\tR\x05trace\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\v \x01(\tR\n" +
	"finishedAt\"\x1f\n" +
	"\rGetJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"2\n" +
	"\x0eGetJobResponse\x12 \n" +
	"\x03job\x18\x01 \x01(\v2\x0e.mattin.v1.JobR\x03job\"b\n" +
	"\x0fListJobsRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\x05R\aagentId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"6\n" +
	"\x10ListJobsResponse\x12\"\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0e.mattin.v1.JobR\x04jobs\"d\n" +
	"\x11ExportJobsRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\x05R\aagentId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"D\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xf4\x05\n" +
	"\rAgentsService\x12L\n" +
	"\vCreateAgent\x12\x1d.mattin.v1.CreateAgentRequest\x1a\x1e.mattin.v1.CreateAgentResponse\x12C\n" +
	"\bGetAgent\x12\x1a.mattin.v1.GetAgentRequest\x1a\x1b.mattin.v1.GetAgentResponse\x12I\n" +
	"\n" +
	"ListAgents\x12\x1c.mattin.v1.ListAgentsRequest\x1a\x1d.mattin.v1.ListAgentsResponse\x12L\n" +
	"\vDeleteAgent\x12\x1d.mattin.v1.DeleteAgentRequest\x1a\x1e.mattin.v1.DeleteAgentResponse\x12m\n" +
	"\x16CreateSchemaDefinition\x12(.mattin.v1.CreateSchemaDefinitionRequest\x1a).mattin.v1.CreateSchemaDefinitionResponse\x12[\n" +
	"\x10CreateToolServer\x12\".mattin.v1.CreateToolServerRequest\x1a#.mattin.v1.CreateToolServerResponse\x12X\n" +
	"\x0fListToolServers\x12!.mattin.v1.ListToolServersRequest\x1a\".mattin.v1.ListToolServersResponse\x12I\n" +
	"\n" +
	"CreateSilo\x12\x1c.mattin.v1.CreateSiloRequest\x1a\x1d.mattin.v1.CreateSiloResponse\x12F\n" +
	"\tListSilos\x12\x1b.mattin.v1.ListSilosRequest\x1a\x1c.mattin.v1.ListSilosResponse2\xbc\x02\n" +
	"\x11ExtractionService\x12X\n" +
	"\x0fExtractDocument\x12!.mattin.v1.ExtractDocumentRequest\x1a\".mattin.v1.ExtractDocumentResponse\x12=\n" +
	"\x06GetJob\x12\x18.mattin.v1.GetJobRequest\x1a\x19.mattin.v1.GetJobResponse\x12C\n" +
	"\bListJobs\x12\x1a.mattin.v1.ListJobsRequest\x1a\x1b.mattin.v1.ListJobsResponse\x12I\n" +
	"\n" +
	"ExportJobs\x12\x1c.mattin.v1.ExportJobsRequest\x1a\x1d.mattin.v1.ExportJobsResponseB:Z8github.com/mattin-ai/mattin/gen/proto/mattin/v1;mattinpbb\x06proto3"

var (
	file_mattin_v1_mattin_proto_rawDescOnce sync.Once
	file_mattin_v1_mattin_proto_rawDescData []byte
)

func file_mattin_v1_mattin_proto_rawDescGZIP() []byte {
	file_mattin_v1_mattin_proto_rawDescOnce.Do(func() {
		file_mattin_v1_mattin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mattin_v1_mattin_proto_rawDesc), len(file_mattin_v1_mattin_proto_rawDesc)))
	})
	return file_mattin_v1_mattin_proto_rawDescData
}

var file_mattin_v1_mattin_proto_msgTypes = make([]protoimpl.MessageInfo, 31)
var file_mattin_v1_mattin_proto_goTypes = []any{
	(*Agent)(nil),                          // 0: mattin.v1.Agent
	(*CreateAgentRequest)(nil),             // 1: mattin.v1.CreateAgentRequest
	(*CreateAgentResponse)(nil),            // 2: mattin.v1.CreateAgentResponse
	(*GetAgentRequest)(nil),                // 3: mattin.v1.GetAgentRequest
	(*GetAgentResponse)(nil),               // 4: mattin.v1.GetAgentResponse
	(*ListAgentsRequest)(nil),              // 5: mattin.v1.ListAgentsRequest
	(*ListAgentsResponse)(nil),             // 6: mattin.v1.ListAgentsResponse
	(*DeleteAgentRequest)(nil),             // 7: mattin.v1.DeleteAgentRequest
	(*DeleteAgentResponse)(nil),            // 8: mattin.v1.DeleteAgentResponse
	(*SchemaFieldSpec)(nil),                // 9: mattin.v1.SchemaFieldSpec
	(*CreateSchemaDefinitionRequest)(nil),  // 10: mattin.v1.CreateSchemaDefinitionRequest
	(*CreateSchemaDefinitionResponse)(nil), // 11: mattin.v1.CreateSchemaDefinitionResponse
	(*ToolServer)(nil),                     // 12: mattin.v1.ToolServer
	(*CreateToolServerRequest)(nil),        // 13: mattin.v1.CreateToolServerRequest
	(*CreateToolServerResponse)(nil),       // 14: mattin.v1.CreateToolServerResponse
	(*ListToolServersRequest)(nil),         // 15: mattin.v1.ListToolServersRequest
	(*ListToolServersResponse)(nil),        // 16: mattin.v1.ListToolServersResponse
	(*Silo)(nil),                           // 17: mattin.v1.Silo
	(*CreateSiloRequest)(nil),              // 18: mattin.v1.CreateSiloRequest
	(*CreateSiloResponse)(nil),             // 19: mattin.v1.CreateSiloResponse
	(*ListSilosRequest)(nil),               // 20: mattin.v1.ListSilosRequest
	(*ListSilosResponse)(nil),              // 21: mattin.v1.ListSilosResponse
	(*ExtractDocumentRequest)(nil),         // 22: mattin.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil),        // 23: mattin.v1.ExtractDocumentResponse
	(*Job)(nil),                            // 24: mattin.v1.Job
	(*GetJobRequest)(nil),                  // 25: mattin.v1.GetJobRequest
	(*GetJobResponse)(nil),                 // 26: mattin.v1.GetJobResponse
	(*ListJobsRequest)(nil),                // 27: mattin.v1.ListJobsRequest
	(*ListJobsResponse)(nil),               // 28: mattin.v1.ListJobsResponse
	(*ExportJobsRequest)(nil),              // 29: mattin.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),             // 30: mattin.v1.ExportJobsResponse
}
var file_mattin_v1_mattin_proto_depIdxs = []int32{
	0,  // 0: mattin.v1.CreateAgentResponse.agent:type_name -> mattin.v1.Agent
	0,  // 1: mattin.v1.GetAgentResponse.agent:type_name -> mattin.v1.Agent
	0,  // 2: mattin.v1.ListAgentsResponse.agents:type_name -> mattin.v1.Agent
	9,  // 3: mattin.v1.CreateSchemaDefinitionRequest.fields:type_name -> mattin.v1.SchemaFieldSpec
	12, // 4: mattin.v1.CreateToolServerResponse.tool_server:type_name -> mattin.v1.ToolServer
	12, // 5: mattin.v1.ListToolServersResponse.tool_servers:type_name -> mattin.v1.ToolServer
	17, // 6: mattin.v1.CreateSiloResponse.silo:type_name -> mattin.v1.Silo
	17, // 7: mattin.v1.ListSilosResponse.silos:type_name -> mattin.v1.Silo
	24, // 8: mattin.v1.GetJobResponse.job:type_name -> mattin.v1.Job
	24, // 9: mattin.v1.ListJobsResponse.jobs:type_name -> mattin.v1.Job
	1,  // 10: mattin.v1.AgentsService.CreateAgent:input_type -> mattin.v1.CreateAgentRequest
	3,  // 11: mattin.v1.AgentsService.GetAgent:input_type -> mattin.v1.GetAgentRequest
	5,  // 12: mattin.v1.AgentsService.ListAgents:input_type -> mattin.v1.ListAgentsRequest
	7,  // 13: mattin.v1.AgentsService.DeleteAgent:input_type -> mattin.v1.DeleteAgentRequest
	10, // 14: mattin.v1.AgentsService.CreateSchemaDefinition:input_type -> mattin.v1.CreateSchemaDefinitionRequest
	13, // 15: mattin.v1.AgentsService.CreateToolServer:input_type -> mattin.v1.CreateToolServerRequest
	15, // 16: mattin.v1.AgentsService.ListToolServers:input_type -> mattin.v1.ListToolServersRequest
	18, // 17: mattin.v1.AgentsService.CreateSilo:input_type -> mattin.v1.CreateSiloRequest
	20, // 18: mattin.v1.AgentsService.ListSilos:input_type -> mattin.v1.ListSilosRequest
	22, // 19: mattin.v1.ExtractionService.ExtractDocument:input_type -> mattin.v1.ExtractDocumentRequest
	25, // 20: mattin.v1.ExtractionService.GetJob:input_type -> mattin.v1.GetJobRequest
	27, // 21: mattin.v1.ExtractionService.ListJobs:input_type -> mattin.v1.ListJobsRequest
	29, // 22: mattin.v1.ExtractionService.ExportJobs:input_type -> mattin.v1.ExportJobsRequest
	2,  // 23: mattin.v1.AgentsService.CreateAgent:output_type -> mattin.v1.CreateAgentResponse
	4,  // 24: mattin.v1.AgentsService.GetAgent:output_type -> mattin.v1.GetAgentResponse
	6,  // 25: mattin.v1.AgentsService.ListAgents:output_type -> mattin.v1.ListAgentsResponse
	8,  // 26: mattin.v1.AgentsService.DeleteAgent:output_type -> mattin.v1.DeleteAgentResponse
	11, // 27: mattin.v1.AgentsService.CreateSchemaDefinition:output_type -> mattin.v1.CreateSchemaDefinitionResponse
	14, // 28: mattin.v1.AgentsService.CreateToolServer:output_type -> mattin.v1.CreateToolServerResponse
	16, // 29: mattin.v1.AgentsService.ListToolServers:output_type -> mattin.v1.ListToolServersResponse
	19, // 30: mattin.v1.AgentsService.CreateSilo:output_type -> mattin.v1.CreateSiloResponse
	21, // 31: mattin.v1.AgentsService.ListSilos:output_type -> mattin.v1.ListSilosResponse
	23, // 32: mattin.v1.ExtractionService.ExtractDocument:output_type -> mattin.v1.ExtractDocumentResponse
	26, // 33: mattin.v1.ExtractionService.GetJob:output_type -> mattin.v1.GetJobResponse
	28, // 34: mattin.v1.ExtractionService.ListJobs:output_type -> mattin.v1.ListJobsResponse
	30, // 35: mattin.v1.ExtractionService.ExportJobs:output_type -> mattin.v1.ExportJobsResponse
	23, // [23:36] is the sub-list for method output_type
	10, // [10:23] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_mattin_v1_mattin_proto_init() }
func file_mattin_v1_mattin_proto_init() {
	if File_mattin_v1_mattin_proto != nil {
		return
	}
	file_mattin_v1_mattin_proto_msgTypes[0].OneofWrappers = []any{}
	file_mattin_v1_mattin_proto_msgTypes[1].OneofWrappers = []any{}
	file_mattin_v1_mattin_proto_msgTypes[9].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mattin_v1_mattin_proto_rawDesc), len(file_mattin_v1_mattin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   31,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_mattin_v1_mattin_proto_goTypes,
		DependencyIndexes: file_mattin_v1_mattin_proto_depIdxs,
		MessageInfos:      file_mattin_v1_mattin_proto_msgTypes,
	}.Build()
	File_mattin_v1_mattin_proto = out.File
	file_mattin_v1_mattin_proto_goTypes = nil
	file_mattin_v1_mattin_proto_depIdxs = nil
}
