package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ToggleRequest 切换多选字段中的一个值
type ToggleRequest struct {
	Field string `json:"field" example:"software"` // role / practiceArea / supportNeeded / software
	Value string `json:"value" example:"clio"`
}

// TaskPriorityRequest 设置任务优先级，0表示移除
type TaskPriorityRequest struct {
	Category string `json:"category" example:"legal"`
	Task     string `json:"task" example:"Draft Motions"`
	Priority int    `json:"priority" example:"3"`
}

// OtherOptionRequest 选择栏目中的"Other"任务
type OtherOptionRequest struct {
	Category string `json:"category" example:"marketing"`
	Value    string `json:"value" example:"SEO Optimization"`
}

// FieldRequest 设置单值字段
type FieldRequest struct {
	Field string `json:"field" example:"firmName"` // firmName / weeklyHours / timeZone / availability / personality
	Value string `json:"value" example:"Johnson & Associates"`
}

// DraftResponse 填写中评估的状态
type DraftResponse struct {
	Step        int        `json:"step" example:"2"`
	TotalSteps  int        `json:"totalSteps" example:"6"`
	Title       string     `json:"title" example:"Section 2: Key Task Areas"`
	Description string     `json:"description"`
	CanGoBack   bool       `json:"canGoBack" example:"true"`
	Data        Assessment `json:"data"`
}

// NavigationResponse 前进/后退/提交后的状态，Redirect非空时表示评估已提交
type NavigationResponse struct {
	Step     int    `json:"step" example:"6"`
	Redirect string `json:"redirect,omitempty" example:"/results"`
}
