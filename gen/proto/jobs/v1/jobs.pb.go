// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/jobs/v1/jobs.proto

package jobsv1

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

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	SiteName      string                 `protobuf:"bytes,2,opt,name=site_name,json=siteName,proto3" json:"site_name,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Area          string                 `protobuf:"bytes,4,opt,name=area,proto3" json:"area,omitempty"`
	Contact       string                 `protobuf:"bytes,5,opt,name=contact,proto3" json:"contact,omitempty"`
	GateCode      string                 `protobuf:"bytes,6,opt,name=gate_code,json=gateCode,proto3" json:"gate_code,omitempty"`
	MapLink       string                 `protobuf:"bytes,7,opt,name=map_link,json=mapLink,proto3" json:"map_link,omitempty"`
	AssignedTo    int64                  `protobuf:"varint,8,opt,name=assigned_to,json=assignedTo,proto3" json:"assigned_to,omitempty"`
	Status        string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	StartTime     string                 `protobuf:"bytes,10,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`             // RFC 3339, empty until started
	FinishTime    string                 `protobuf:"bytes,11,opt,name=finish_time,json=finishTime,proto3" json:"finish_time,omitempty"`          // RFC 3339, empty until finished
	ScheduledDate string                 `protobuf:"bytes,12,opt,name=scheduled_date,json=scheduledDate,proto3" json:"scheduled_date,omitempty"` // YYYY-MM-DD, empty for every-day jobs
	PhotoCount    int32                  `protobuf:"varint,13,opt,name=photo_count,json=photoCount,proto3" json:"photo_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[0]
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
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Job) GetSiteName() string {
	if x != nil {
		return x.SiteName
	}
	return ""
}

func (x *Job) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Job) GetArea() string {
	if x != nil {
		return x.Area
	}
	return ""
}

func (x *Job) GetContact() string {
	if x != nil {
		return x.Contact
	}
	return ""
}

func (x *Job) GetGateCode() string {
	if x != nil {
		return x.GateCode
	}
	return ""
}

func (x *Job) GetMapLink() string {
	if x != nil {
		return x.MapLink
	}
	return ""
}

func (x *Job) GetAssignedTo() int64 {
	if x != nil {
		return x.AssignedTo
	}
	return 0
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *Job) GetFinishTime() string {
	if x != nil {
		return x.FinishTime
	}
	return ""
}

func (x *Job) GetScheduledDate() string {
	if x != nil {
		return x.ScheduledDate
	}
	return ""
}

func (x *Job) GetPhotoCount() int32 {
	if x != nil {
		return x.PhotoCount
	}
	return 0
}

type UpsertSiteRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SiteName       string                 `protobuf:"bytes,1,opt,name=site_name,json=siteName,proto3" json:"site_name,omitempty"`
	Quote          string                 `protobuf:"bytes,2,opt,name=quote,proto3" json:"quote,omitempty"`
	Address        string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	OrderNo        string                 `protobuf:"bytes,4,opt,name=order_no,json=orderNo,proto3" json:"order_no,omitempty"`
	OrderPeriod    string                 `protobuf:"bytes,5,opt,name=order_period,json=orderPeriod,proto3" json:"order_period,omitempty"`
	Area           string                 `protobuf:"bytes,6,opt,name=area,proto3" json:"area,omitempty"`
	SummerSchedule string                 `protobuf:"bytes,7,opt,name=summer_schedule,json=summerSchedule,proto3" json:"summer_schedule,omitempty"`
	WinterSchedule string                 `protobuf:"bytes,8,opt,name=winter_schedule,json=winterSchedule,proto3" json:"winter_schedule,omitempty"`
	Contact        string                 `protobuf:"bytes,9,opt,name=contact,proto3" json:"contact,omitempty"`
	GateCode       string                 `protobuf:"bytes,10,opt,name=gate_code,json=gateCode,proto3" json:"gate_code,omitempty"`
	MapLink        string                 `protobuf:"bytes,11,opt,name=map_link,json=mapLink,proto3" json:"map_link,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpsertSiteRequest) Reset() {
	*x = UpsertSiteRequest{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertSiteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertSiteRequest) ProtoMessage() {}

func (x *UpsertSiteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertSiteRequest.ProtoReflect.Descriptor instead.
func (*UpsertSiteRequest) Descriptor() ([]byte, []int) {
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{1}
}

func (x *UpsertSiteRequest) GetSiteName() string {
	if x != nil {
		return x.SiteName
	}
	return ""
}

func (x *UpsertSiteRequest) GetQuote() string {
	if x != nil {
		return x.Quote
	}
	return ""
}

func (x *UpsertSiteRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *UpsertSiteRequest) GetOrderNo() string {
	if x != nil {
		return x.OrderNo
	}
	return ""
}

func (x *UpsertSiteRequest) GetOrderPeriod() string {
	if x != nil {
		return x.OrderPeriod
	}
	return ""
}

func (x *UpsertSiteRequest) GetArea() string {
	if x != nil {
		return x.Area
	}
	return ""
}

func (x *UpsertSiteRequest) GetSummerSchedule() string {
	if x != nil {
		return x.SummerSchedule
	}
	return ""
}

func (x *UpsertSiteRequest) GetWinterSchedule() string {
	if x != nil {
		return x.WinterSchedule
	}
	return ""
}

func (x *UpsertSiteRequest) GetContact() string {
	if x != nil {
		return x.Contact
	}
	return ""
}

func (x *UpsertSiteRequest) GetGateCode() string {
	if x != nil {
		return x.GateCode
	}
	return ""
}

func (x *UpsertSiteRequest) GetMapLink() string {
	if x != nil {
		return x.MapLink
	}
	return ""
}

type UpsertSiteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Created       bool                   `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertSiteResponse) Reset() {
	*x = UpsertSiteResponse{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertSiteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertSiteResponse) ProtoMessage() {}

func (x *UpsertSiteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertSiteResponse.ProtoReflect.Descriptor instead.
func (*UpsertSiteResponse) Descriptor() ([]byte, []int) {
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{2}
}

func (x *UpsertSiteResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *UpsertSiteResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[3]
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
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[4]
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
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// When assigned_to is set, lists that employee's jobs; otherwise lists
	// unassigned jobs page by page.
	AssignedTo    int64 `protobuf:"varint,1,opt,name=assigned_to,json=assignedTo,proto3" json:"assigned_to,omitempty"`
	Page          int32 `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32 `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[5]
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
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetAssignedTo() int64 {
	if x != nil {
		return x.AssignedTo
	}
	return 0
}

func (x *ListJobsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListJobsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[6]
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
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type TriggerResetRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD; empty means today in the deployment timezone.
	Date          string `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerResetRequest) Reset() {
	*x = TriggerResetRequest{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerResetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerResetRequest) ProtoMessage() {}

func (x *TriggerResetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerResetRequest.ProtoReflect.Descriptor instead.
func (*TriggerResetRequest) Descriptor() ([]byte, []int) {
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{7}
}

func (x *TriggerResetRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type TriggerResetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobsReset     int32                  `protobuf:"varint,1,opt,name=jobs_reset,json=jobsReset,proto3" json:"jobs_reset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerResetResponse) Reset() {
	*x = TriggerResetResponse{}
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerResetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerResetResponse) ProtoMessage() {}

func (x *TriggerResetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_jobs_v1_jobs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerResetResponse.ProtoReflect.Descriptor instead.
func (*TriggerResetResponse) Descriptor() ([]byte, []int) {
	return file_proto_jobs_v1_jobs_proto_rawDescGZIP(), []int{8}
}

func (x *TriggerResetResponse) GetJobsReset() int32 {
	if x != nil {
		return x.JobsReset
	}
	return 0
}

var File_proto_jobs_v1_jobs_proto protoreflect.FileDescriptor

const file_proto_jobs_v1_jobs_proto_rawDesc = "" +
	"\n" +
	"\x18proto/jobs/v1/jobs.proto\x12\ajobs.v1\"\xf3\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1b\n" +
	"\tsite_name\x18\x02 \x01(\tR\bsiteName\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12\x12\n" +
	"\x04area\x18\x04 \x01(\tR\x04area\x12\x18\n" +
	"\acontact\x18\x05 \x01(\tR\acontact\x12\x1b\n" +
	"\tgate_code\x18\x06 \x01(\tR\bgateCode\x12\x19\n" +
	"\bmap_link\x18\a \x01(\tR\amapLink\x12\x1f\n" +
	"\vassigned_to\x18\b \x01(\x03R\n" +
	"assignedTo\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"start_time\x18\n" +
	" \x01(\tR\tstartTime\x12\x1f\n" +
	"\vfinish_time\x18\v \x01(\tR\n" +
	"finishTime\x12%\n" +
	"\x0escheduled_date\x18\f \x01(\tR\rscheduledDate\x12\x1f\n" +
	"\vphoto_count\x18\r \x01(\x05R\n" +
	"photoCount\"\xd6\x02\n" +
	"\x11UpsertSiteRequest\x12\x1b\n" +
	"\tsite_name\x18\x01 \x01(\tR\bsiteName\x12\x14\n" +
	"\x05quote\x18\x02 \x01(\tR\x05quote\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12\x19\n" +
	"\border_no\x18\x04 \x01(\tR\aorderNo\x12!\n" +
	"\forder_period\x18\x05 \x01(\tR\vorderPeriod\x12\x12\n" +
	"\x04area\x18\x06 \x01(\tR\x04area\x12'\n" +
	"\x0fsummer_schedule\x18\a \x01(\tR\x0esummerSchedule\x12'\n" +
	"\x0fwinter_schedule\x18\b \x01(\tR\x0ewinterSchedule\x12\x18\n" +
	"\acontact\x18\t \x01(\tR\acontact\x12\x1b\n" +
	"\tgate_code\x18\n" +
	" \x01(\tR\bgateCode\x12\x19\n" +
	"\bmap_link\x18\v \x01(\tR\amapLink\"N\n" +
	"\x12UpsertSiteResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\"\x1f\n" +
	"\rGetJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"0\n" +
	"\x0eGetJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.jobs.v1.JobR\x03job\"c\n" +
	"\x0fListJobsRequest\x12\x1f\n" +
	"\vassigned_to\x18\x01 \x01(\x03R\n" +
	"assignedTo\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"4\n" +
	"\x10ListJobsResponse\x12 \n" +
	"\x04jobs\x18\x01 \x03(\v2\f.jobs.v1.JobR\x04jobs\")\n" +
	"\x13TriggerResetRequest\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\"5\n" +
	"\x14TriggerResetResponse\x12\x1d\n" +
	"\n" +
	"jobs_reset\x18\x01 \x01(\x05R\tjobsReset2\x9d\x02\n" +
	"\vJobsService\x12E\n" +
	"\n" +
	"UpsertSite\x12\x1a.jobs.v1.UpsertSiteRequest\x1a\x1b.jobs.v1.UpsertSiteResponse\x129\n" +
	"\x06GetJob\x12\x16.jobs.v1.GetJobRequest\x1a\x17.jobs.v1.GetJobResponse\x12?\n" +
	"\bListJobs\x12\x18.jobs.v1.ListJobsRequest\x1a\x19.jobs.v1.ListJobsResponse\x12K\n" +
	"\fTriggerReset\x12\x1c.jobs.v1.TriggerResetRequest\x1a\x1d.jobs.v1.TriggerResetResponseB;Z9github.com/joseph-ayodele/mowbot/gen/proto/jobs/v1;jobsv1b\x06proto3"

var (
	file_proto_jobs_v1_jobs_proto_rawDescOnce sync.Once
	file_proto_jobs_v1_jobs_proto_rawDescData []byte
)

func file_proto_jobs_v1_jobs_proto_rawDescGZIP() []byte {
	file_proto_jobs_v1_jobs_proto_rawDescOnce.Do(func() {
		file_proto_jobs_v1_jobs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_jobs_v1_jobs_proto_rawDesc), len(file_proto_jobs_v1_jobs_proto_rawDesc)))
	})
	return file_proto_jobs_v1_jobs_proto_rawDescData
}

var file_proto_jobs_v1_jobs_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_proto_jobs_v1_jobs_proto_goTypes = []any{
	(*Job)(nil),                  // 0: jobs.v1.Job
	(*UpsertSiteRequest)(nil),    // 1: jobs.v1.UpsertSiteRequest
	(*UpsertSiteResponse)(nil),   // 2: jobs.v1.UpsertSiteResponse
	(*GetJobRequest)(nil),        // 3: jobs.v1.GetJobRequest
	(*GetJobResponse)(nil),       // 4: jobs.v1.GetJobResponse
	(*ListJobsRequest)(nil),      // 5: jobs.v1.ListJobsRequest
	(*ListJobsResponse)(nil),     // 6: jobs.v1.ListJobsResponse
	(*TriggerResetRequest)(nil),  // 7: jobs.v1.TriggerResetRequest
	(*TriggerResetResponse)(nil), // 8: jobs.v1.TriggerResetResponse
}
var file_proto_jobs_v1_jobs_proto_depIdxs = []int32{
	0, // 0: jobs.v1.UpsertSiteResponse.job:type_name -> jobs.v1.Job
	0, // 1: jobs.v1.GetJobResponse.job:type_name -> jobs.v1.Job
	0, // 2: jobs.v1.ListJobsResponse.jobs:type_name -> jobs.v1.Job
	1, // 3: jobs.v1.JobsService.UpsertSite:input_type -> jobs.v1.UpsertSiteRequest
	3, // 4: jobs.v1.JobsService.GetJob:input_type -> jobs.v1.GetJobRequest
	5, // 5: jobs.v1.JobsService.ListJobs:input_type -> jobs.v1.ListJobsRequest
	7, // 6: jobs.v1.JobsService.TriggerReset:input_type -> jobs.v1.TriggerResetRequest
	2, // 7: jobs.v1.JobsService.UpsertSite:output_type -> jobs.v1.UpsertSiteResponse
	4, // 8: jobs.v1.JobsService.GetJob:output_type -> jobs.v1.GetJobResponse
	6, // 9: jobs.v1.JobsService.ListJobs:output_type -> jobs.v1.ListJobsResponse
	8, // 10: jobs.v1.JobsService.TriggerReset:output_type -> jobs.v1.TriggerResetResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_proto_jobs_v1_jobs_proto_init() }
func file_proto_jobs_v1_jobs_proto_init() {
	if File_proto_jobs_v1_jobs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_jobs_v1_jobs_proto_rawDesc), len(file_proto_jobs_v1_jobs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_jobs_v1_jobs_proto_goTypes,
		DependencyIndexes: file_proto_jobs_v1_jobs_proto_depIdxs,
		MessageInfos:      file_proto_jobs_v1_jobs_proto_msgTypes,
	}.Build()
	File_proto_jobs_v1_jobs_proto = out.File
	file_proto_jobs_v1_jobs_proto_goTypes = nil
	file_proto_jobs_v1_jobs_proto_depIdxs = nil
}
