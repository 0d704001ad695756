package services

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"lawwork/models"
	"lawwork/utils"
)

// TotalSteps 评估总步数
const TotalSteps = 6

var (
	ErrInvalidCategory = errors.New("unknown task category")
	ErrInvalidPriority = errors.New("priority must be between 0 and 3")
	ErrUnknownField    = errors.New("unknown assessment field")
	ErrInvalidSetField = errors.New("field is not a multi-select field")
	ErrMissingTask     = errors.New("task name is required")
)

// AssessmentForm 评估表单的状态：当前步骤（1..TotalSteps）和答案
type AssessmentForm struct {
	Step int
	Data models.Assessment
}

// NewForm 从第一步开始的空白表单
func NewForm() *AssessmentForm {
	return &AssessmentForm{Step: 1, Data: models.NewAssessment()}
}

// FormFromDraft 从会话中的草稿恢复，步骤越界时夹到合法范围
func FormFromDraft(d models.AssessmentDraft) *AssessmentForm {
	f := &AssessmentForm{Step: clampStep(d.Step), Data: d.Data}
	f.Data.Normalize()
	return f
}

func clampStep(step int) int {
	if step < 1 {
		return 1
	}
	if step > TotalSteps {
		return TotalSteps
	}
	return step
}

// Draft 转换为可序列化的草稿
func (f *AssessmentForm) Draft() models.AssessmentDraft {
	return models.AssessmentDraft{Step: f.Step, Data: f.Data}
}

// Info 当前步骤的标题和说明
func (f *AssessmentForm) Info() models.StepInfo {
	return models.Steps[f.Step-1]
}

func (f *AssessmentForm) IsFirst() bool { return f.Step == 1 }
func (f *AssessmentForm) IsLast() bool  { return f.Step == TotalSteps }

// Next 前进一步；已经在最后一步时返回true，表示应当提交
func (f *AssessmentForm) Next() bool {
	if f.Step < TotalSteps {
		f.Step++
		return false
	}
	return true
}

// Back 后退一步，第一步时不动
func (f *AssessmentForm) Back() bool {
	if f.Step > 1 {
		f.Step--
		return true
	}
	return false
}

func (f *AssessmentForm) setField(field string) (*[]string, error) {
	switch field {
	case "role":
		return &f.Data.Role, nil
	case "practiceArea":
		return &f.Data.PracticeArea, nil
	case "supportNeeded":
		return &f.Data.SupportNeeded, nil
	case "software":
		return &f.Data.Software, nil
	}
	return nil, ErrInvalidSetField
}

// Toggle 切换多选字段中的一个值
func (f *AssessmentForm) Toggle(field, value string) error {
	s, err := f.setField(field)
	if err != nil {
		return err
	}
	*s = utils.ToggleValue(*s, value)
	return nil
}

// SetTaskPriority 设置任务优先级，0表示移除该任务
func (f *AssessmentForm) SetTaskPriority(category models.TaskCategory, task string, priority int) error {
	tasks := f.Data.TaskSelection.Tasks(category)
	if tasks == nil {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(task) == "" {
		return ErrMissingTask
	}
	if priority < models.PriorityNotSpecified || priority > models.PriorityHigh {
		return ErrInvalidPriority
	}
	if *tasks == nil {
		*tasks = map[string]int{}
	}
	if priority == models.PriorityNotSpecified {
		delete(*tasks, task)
		return nil
	}
	(*tasks)[task] = priority
	return nil
}

// SetOtherOption 记录"Other"下拉框的选择；非空时该任务按中等优先级加入
func (f *AssessmentForm) SetOtherOption(category models.TaskCategory, value string) error {
	field := f.Data.OtherOptions.Field(category)
	if field == nil {
		return ErrInvalidCategory
	}
	*field = value
	if value != "" {
		return f.SetTaskPriority(category, value, models.PriorityMedium)
	}
	return nil
}

// SetField 设置单值字段
func (f *AssessmentForm) SetField(field, value string) error {
	switch field {
	case "firmName":
		f.Data.FirmName = value
	case "weeklyHours":
		f.Data.WeeklyHours = value
	case "timeZone":
		f.Data.TimeZone = value
	case "availability":
		f.Data.Availability = value
	case "personality":
		f.Data.Personality = value
	default:
		return ErrUnknownField
	}
	return nil
}

// TaskFieldName HTML表单中任务优先级下拉框的name
func TaskFieldName(category models.TaskCategory, task string) string {
	return "task." + string(category) + "." + task
}

// OtherFieldName HTML表单中"Other"下拉框的name
func OtherFieldName(category models.TaskCategory) string {
	return "other." + string(category)
}

// ApplyStep 把当前步骤提交的HTML表单值写入答案；只处理本步骤拥有的字段
func (f *AssessmentForm) ApplyStep(values url.Values) error {
	switch f.Step {
	case 1:
		f.Data.FirmName = strings.TrimSpace(values.Get("firmName"))
		f.Data.Role = utils.DeduplicateSlice(values["role"])
		f.Data.PracticeArea = utils.DeduplicateSlice(values["practiceArea"])
	case 2:
		for _, col := range models.TaskColumns {
			for _, task := range col.Tasks {
				raw := values.Get(TaskFieldName(col.Category, task.Name))
				if raw == "" {
					continue
				}
				priority, err := strconv.Atoi(raw)
				if err != nil {
					return ErrInvalidPriority
				}
				if err := f.SetTaskPriority(col.Category, task.Name, priority); err != nil {
					return err
				}
			}
			name := OtherFieldName(col.Category)
			if _, ok := values[name]; !ok {
				continue
			}
			other := values.Get(name)
			if other == *f.Data.OtherOptions.Field(col.Category) {
				continue
			}
			if err := f.SetOtherOption(col.Category, other); err != nil {
				return err
			}
		}
	case 3:
		f.Data.SupportNeeded = utils.DeduplicateSlice(values["supportNeeded"])
		f.Data.WeeklyHours = values.Get("weeklyHours")
	case 4:
		f.Data.Software = utils.DeduplicateSlice(values["software"])
	case 5:
		f.Data.TimeZone = values.Get("timeZone")
		f.Data.Availability = values.Get("availability")
	case 6:
		f.Data.Personality = values.Get("personality")
	}
	return nil
}
