// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: interview.proto

package proto

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

// TranscriptTurn is one utterance in the conversation so far.
type TranscriptTurn struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Speaker       string                 `protobuf:"bytes,1,opt,name=speaker,proto3" json:"speaker,omitempty"` // "owner_agent" or "visitor_agent"
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Timestamp     string                 `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscriptTurn) Reset() {
	*x = TranscriptTurn{}
	mi := &file_interview_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscriptTurn) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscriptTurn) ProtoMessage() {}

func (x *TranscriptTurn) ProtoReflect() protoreflect.Message {
	mi := &file_interview_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscriptTurn.ProtoReflect.Descriptor instead.
func (*TranscriptTurn) Descriptor() ([]byte, []int) {
	return file_interview_proto_rawDescGZIP(), []int{0}
}

func (x *TranscriptTurn) GetSpeaker() string {
	if x != nil {
		return x.Speaker
	}
	return ""
}

func (x *TranscriptTurn) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *TranscriptTurn) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

type TurnRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MissionId      string                 `protobuf:"bytes,1,opt,name=mission_id,json=missionId,proto3" json:"mission_id,omitempty"`
	OwnerUserId    string                 `protobuf:"bytes,2,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"`
	VisitorUserId  string                 `protobuf:"bytes,3,opt,name=visitor_user_id,json=visitorUserId,proto3" json:"visitor_user_id,omitempty"`
	OwnerObjective string                 `protobuf:"bytes,4,opt,name=owner_objective,json=ownerObjective,proto3" json:"owner_objective,omitempty"`
	// Profiles and mission context are forwarded as JSON documents; their
	// shape is owned by the platform, not this contract.
	OwnerProfileJson   string `protobuf:"bytes,5,opt,name=owner_profile_json,json=ownerProfileJson,proto3" json:"owner_profile_json,omitempty"`
	VisitorProfileJson string `protobuf:"bytes,6,opt,name=visitor_profile_json,json=visitorProfileJson,proto3" json:"visitor_profile_json,omitempty"`
	ContextJson        string `protobuf:"bytes,7,opt,name=context_json,json=contextJson,proto3" json:"context_json,omitempty"`
	// 1-based owner turn number driving this exchange.
	Turn          int32             `protobuf:"varint,8,opt,name=turn,proto3" json:"turn,omitempty"`
	Transcript    []*TranscriptTurn `protobuf:"bytes,9,rep,name=transcript,proto3" json:"transcript,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TurnRequest) Reset() {
	*x = TurnRequest{}
	mi := &file_interview_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnRequest) ProtoMessage() {}

func (x *TurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_interview_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnRequest.ProtoReflect.Descriptor instead.
func (*TurnRequest) Descriptor() ([]byte, []int) {
	return file_interview_proto_rawDescGZIP(), []int{1}
}

func (x *TurnRequest) GetMissionId() string {
	if x != nil {
		return x.MissionId
	}
	return ""
}

func (x *TurnRequest) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *TurnRequest) GetVisitorUserId() string {
	if x != nil {
		return x.VisitorUserId
	}
	return ""
}

func (x *TurnRequest) GetOwnerObjective() string {
	if x != nil {
		return x.OwnerObjective
	}
	return ""
}

func (x *TurnRequest) GetOwnerProfileJson() string {
	if x != nil {
		return x.OwnerProfileJson
	}
	return ""
}

func (x *TurnRequest) GetVisitorProfileJson() string {
	if x != nil {
		return x.VisitorProfileJson
	}
	return ""
}

func (x *TurnRequest) GetContextJson() string {
	if x != nil {
		return x.ContextJson
	}
	return ""
}

func (x *TurnRequest) GetTurn() int32 {
	if x != nil {
		return x.Turn
	}
	return 0
}

func (x *TurnRequest) GetTranscript() []*TranscriptTurn {
	if x != nil {
		return x.Transcript
	}
	return nil
}

type TurnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AsUserMessage string                 `protobuf:"bytes,1,opt,name=as_user_message,json=asUserMessage,proto3" json:"as_user_message,omitempty"`
	StopSuggested bool                   `protobuf:"varint,2,opt,name=stop_suggested,json=stopSuggested,proto3" json:"stop_suggested,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TurnResponse) Reset() {
	*x = TurnResponse{}
	mi := &file_interview_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnResponse) ProtoMessage() {}

func (x *TurnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_interview_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnResponse.ProtoReflect.Descriptor instead.
func (*TurnResponse) Descriptor() ([]byte, []int) {
	return file_interview_proto_rawDescGZIP(), []int{2}
}

func (x *TurnResponse) GetAsUserMessage() string {
	if x != nil {
		return x.AsUserMessage
	}
	return ""
}

func (x *TurnResponse) GetStopSuggested() bool {
	if x != nil {
		return x.StopSuggested
	}
	return false
}

type JudgeRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OwnerObjective string                 `protobuf:"bytes,1,opt,name=owner_objective,json=ownerObjective,proto3" json:"owner_objective,omitempty"`
	Transcript     []*TranscriptTurn      `protobuf:"bytes,2,rep,name=transcript,proto3" json:"transcript,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *JudgeRequest) Reset() {
	*x = JudgeRequest{}
	mi := &file_interview_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JudgeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JudgeRequest) ProtoMessage() {}

func (x *JudgeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_interview_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JudgeRequest.ProtoReflect.Descriptor instead.
func (*JudgeRequest) Descriptor() ([]byte, []int) {
	return file_interview_proto_rawDescGZIP(), []int{3}
}

func (x *JudgeRequest) GetOwnerObjective() string {
	if x != nil {
		return x.OwnerObjective
	}
	return ""
}

func (x *JudgeRequest) GetTranscript() []*TranscriptTurn {
	if x != nil {
		return x.Transcript
	}
	return nil
}

type JudgeResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ShouldNotify     bool                   `protobuf:"varint,1,opt,name=should_notify,json=shouldNotify,proto3" json:"should_notify,omitempty"`
	NotificationText string                 `protobuf:"bytes,2,opt,name=notification_text,json=notificationText,proto3" json:"notification_text,omitempty"`
	SummaryText      string                 `protobuf:"bytes,3,opt,name=summary_text,json=summaryText,proto3" json:"summary_text,omitempty"`
	SoftMatch        bool                   `protobuf:"varint,4,opt,name=soft_match,json=softMatch,proto3" json:"soft_match,omitempty"`
	Confidence       *float64               `protobuf:"fixed64,5,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *JudgeResponse) Reset() {
	*x = JudgeResponse{}
	mi := &file_interview_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JudgeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JudgeResponse) ProtoMessage() {}

func (x *JudgeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_interview_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JudgeResponse.ProtoReflect.Descriptor instead.
func (*JudgeResponse) Descriptor() ([]byte, []int) {
	return file_interview_proto_rawDescGZIP(), []int{4}
}

func (x *JudgeResponse) GetShouldNotify() bool {
	if x != nil {
		return x.ShouldNotify
	}
	return false
}

func (x *JudgeResponse) GetNotificationText() string {
	if x != nil {
		return x.NotificationText
	}
	return ""
}

func (x *JudgeResponse) GetSummaryText() string {
	if x != nil {
		return x.SummaryText
	}
	return ""
}

func (x *JudgeResponse) GetSoftMatch() bool {
	if x != nil {
		return x.SoftMatch
	}
	return false
}

func (x *JudgeResponse) GetConfidence() float64 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

var File_interview_proto protoreflect.FileDescriptor

const file_interview_proto_rawDesc = "" +
	"\n" +
	"\x0finterview.proto\x12\finterview.v1\"b\n" +
	"\x0eTranscriptTurn\x12\x18\n" +
	"\aspeaker\x18\x01 \x01(\tR\aspeaker\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\tR\ttimestamp\"\xf6\x02\n" +
	"\vTurnRequest\x12\x1d\n" +
	"\n" +
	"mission_id\x18\x01 \x01(\tR\tmissionId\x12\"\n" +
	"\rowner_user_id\x18\x02 \x01(\tR\vownerUserId\x12&\n" +
	"\x0fvisitor_user_id\x18\x03 \x01(\tR\rvisitorUserId\x12'\n" +
	"\x0fowner_objective\x18\x04 \x01(\tR\x0eownerObjective\x12,\n" +
	"\x12owner_profile_json\x18\x05 \x01(\tR\x10ownerProfileJson\x120\n" +
	"\x14visitor_profile_json\x18\x06 \x01(\tR\x12visitorProfileJson\x12!\n" +
	"\fcontext_json\x18\a \x01(\tR\vcontextJson\x12\x12\n" +
	"\x04turn\x18\b \x01(\x05R\x04turn\x12<\n" +
	"\n" +
	"transcript\x18\t \x03(\v2\x1c.interview.v1.TranscriptTurnR\n" +
	"transcript\"]\n" +
	"\fTurnResponse\x12&\n" +
	"\x0fas_user_message\x18\x01 \x01(\tR\rasUserMessage\x12%\n" +
	"\x0estop_suggested\x18\x02 \x01(\bR\rstopSuggested\"u\n" +
	"\fJudgeRequest\x12'\n" +
	"\x0fowner_objective\x18\x01 \x01(\tR\x0eownerObjective\x12<\n" +
	"\n" +
	"transcript\x18\x02 \x03(\v2\x1c.interview.v1.TranscriptTurnR\n" +
	"transcript\"\xd7\x01\n" +
	"\rJudgeResponse\x12#\n" +
	"\rshould_notify\x18\x01 \x01(\bR\fshouldNotify\x12+\n" +
	"\x11notification_text\x18\x02 \x01(\tR\x10notificationText\x12!\n" +
	"\fsummary_text\x18\x03 \x01(\tR\vsummaryText\x12\x1d\n" +
	"\n" +
	"soft_match\x18\x04 \x01(\bR\tsoftMatch\x12#\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01H\x00R\n" +
	"confidence\x88\x01\x01B\r\n" +
	"\v_confidence2\xe7\x01\n" +
	"\x10InterviewService\x12E\n" +
	"\fRunOwnerTurn\x12\x19.interview.v1.TurnRequest\x1a\x1a.interview.v1.TurnResponse\x12G\n" +
	"\x0eRunVisitorTurn\x12\x19.interview.v1.TurnRequest\x1a\x1a.interview.v1.TurnResponse\x12C\n" +
	"\bEvaluate\x12\x1a.interview.v1.JudgeRequest\x1a\x1b.interview.v1.JudgeResponseB$Z\"github.com/venn-social/vennd/protob\x06proto3"

var (
	file_interview_proto_rawDescOnce sync.Once
	file_interview_proto_rawDescData []byte
)

func file_interview_proto_rawDescGZIP() []byte {
	file_interview_proto_rawDescOnce.Do(func() {
		file_interview_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_interview_proto_rawDesc), len(file_interview_proto_rawDesc)))
	})
	return file_interview_proto_rawDescData
}

var file_interview_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_interview_proto_goTypes = []any{
	(*TranscriptTurn)(nil), // 0: interview.v1.TranscriptTurn
	(*TurnRequest)(nil),    // 1: interview.v1.TurnRequest
	(*TurnResponse)(nil),   // 2: interview.v1.TurnResponse
	(*JudgeRequest)(nil),   // 3: interview.v1.JudgeRequest
	(*JudgeResponse)(nil),  // 4: interview.v1.JudgeResponse
}
var file_interview_proto_depIdxs = []int32{
	0, // 0: interview.v1.TurnRequest.transcript:type_name -> interview.v1.TranscriptTurn
	0, // 1: interview.v1.JudgeRequest.transcript:type_name -> interview.v1.TranscriptTurn
	1, // 2: interview.v1.InterviewService.RunOwnerTurn:input_type -> interview.v1.TurnRequest
	1, // 3: interview.v1.InterviewService.RunVisitorTurn:input_type -> interview.v1.TurnRequest
	3, // 4: interview.v1.InterviewService.Evaluate:input_type -> interview.v1.JudgeRequest
	2, // 5: interview.v1.InterviewService.RunOwnerTurn:output_type -> interview.v1.TurnResponse
	2, // 6: interview.v1.InterviewService.RunVisitorTurn:output_type -> interview.v1.TurnResponse
	4, // 7: interview.v1.InterviewService.Evaluate:output_type -> interview.v1.JudgeResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_interview_proto_init() }
func file_interview_proto_init() {
	if File_interview_proto != nil {
		return
	}
	file_interview_proto_msgTypes[4].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_interview_proto_rawDesc), len(file_interview_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_interview_proto_goTypes,
		DependencyIndexes: file_interview_proto_depIdxs,
		MessageInfos:      file_interview_proto_msgTypes,
	}.Build()
	File_interview_proto = out.File
	file_interview_proto_goTypes = nil
	file_interview_proto_depIdxs = nil
}
