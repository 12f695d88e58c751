package domain

// DispatchContext 投递入口类型。两种入口结构不同，
// 但渠道选择、发送与审计走同一条流水线。
type DispatchContext string

const (
	DispatchBroadcast DispatchContext = "BROADCAST" // 一条消息群发多个联系人
	DispatchReorder   DispatchContext = "REORDER"   // 面向经销商的单收件人补货请求
)

// Recipient 每次投递时临时解析出来的收件人，不落库。
// 从联系人解析而来时必须归属发起广播的商家。
type Recipient struct {
	ContactID int64         // 0 表示手工指定的收件人
	CatererID int64
	Name      string
	Phone     string
	Email     string
	Preferred ContactMethod
}

// Delivery 一次对单个目标地址的投递
type Delivery struct {
	Method      ContactMethod
	Destination string // 邮箱地址或电话号码，按 Method 取值
	Subject     string // 仅 EMAIL 渠道使用
	Body        string
}

// SendResult 渠道适配器的发送结果。适配器把供应商侧的一切异常
// 都收敛成 OK=false，不向上层抛出。
type SendResult struct {
	OK     bool
	Reason string
}

// ReorderRequest 补货请求。经销商可能是已有联系人，也可能是手工填写，
// 两种情况审计快照都记手工提供的名字和号码。
type ReorderRequest struct {
	CatererID int64
	// DealerName/DealerPhone 手工填写的经销商信息
	DealerName  string
	DealerPhone string
	// LinkedContactID 关联的经销商联系人，0 表示未关联。
	// 关联时按该联系人的首选渠道覆盖默认的短信渠道。
	LinkedContactID int64
	MessageText     string
}
