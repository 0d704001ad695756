package models

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams     = 1000 // 无效的参数
	CodeMissingParams     = 1001 // 缺少必要参数
	CodeNoAssessment      = 1002 // 会话中没有评估数据
	CodeCandidateNotFound = 1003 // 候选人不存在
	CodeInvalidCategory   = 1004 // 未知的任务栏目
	CodeInvalidPriority   = 1005 // 优先级超出范围
	CodeUnknownField      = 1006 // 未知的表单字段
	CodeSchemaViolation   = 1007 // 评估数据不符合schema

	// 服务端错误 (2000-2999)
	CodeServerError  = 2000 // 服务器内部错误
	CodeSessionError = 2001 // 会话存储错误
)

// 错误码对应的消息
var CodeMessages = map[int]string{
	CodeSuccess:           "success",
	CodeInvalidParams:     "无效的参数",
	CodeMissingParams:     "缺少必要参数",
	CodeNoAssessment:      "没有评估数据",
	CodeCandidateNotFound: "候选人不存在",
	CodeInvalidCategory:   "未知的任务栏目",
	CodeInvalidPriority:   "优先级超出范围",
	CodeUnknownField:      "未知的表单字段",
	CodeSchemaViolation:   "评估数据校验失败",
	CodeServerError:       "服务器内部错误",
	CodeSessionError:      "会话存储错误",
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "未知错误"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse 创建自定义错误消息的响应
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
