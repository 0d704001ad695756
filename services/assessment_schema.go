package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidAssessment 提交的评估JSON不符合结构要求
var ErrInvalidAssessment = errors.New("assessment does not match schema")

// 优先级0表示未选，不落库；任务名不能为空
const priorityMapSchema = `{
	"type": "object",
	"propertyNames": {"minLength": 1},
	"additionalProperties": {"type": "integer", "minimum": 1, "maximum": 3}
}`

// 多选字段按集合处理，同一个值只出现一次
const stringSetSchema = `{"type": "array", "items": {"type": "string"}, "uniqueItems": true}`

const otherOptionSchema = `{"type": "string"}`

var assessmentSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"firmName":      {"type": "string"},
		"role":          ` + stringSetSchema + `,
		"practiceArea":  ` + stringSetSchema + `,
		"taskSelection": {
			"type": "object",
			"properties": {
				"administrative": ` + priorityMapSchema + `,
				"legal":          ` + priorityMapSchema + `,
				"peopleFacing":   ` + priorityMapSchema + `,
				"marketing":      ` + priorityMapSchema + `
			},
			"additionalProperties": false
		},
		"otherOptions": {
			"type": "object",
			"properties": {
				"administrative": ` + otherOptionSchema + `,
				"legal":          ` + otherOptionSchema + `,
				"peopleFacing":   ` + otherOptionSchema + `,
				"marketing":      ` + otherOptionSchema + `
			},
			"additionalProperties": false
		},
		"supportNeeded": ` + stringSetSchema + `,
		"weeklyHours":   {"type": "string"},
		"software":      ` + stringSetSchema + `,
		"timeZone":      {"type": "string"},
		"availability":  {"type": "string"},
		"personality":   {"type": "string"}
	}
}`

var assessmentSchema = mustCompileSchema(assessmentSchemaJSON)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile assessment schema: %v", err))
	}
	return schema
}

// ValidateAssessmentJSON 校验原始JSON，错误信息包含全部不合规字段
func ValidateAssessmentJSON(body []byte) error {
	result, err := assessmentSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssessment, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidAssessment, strings.Join(errs, "; "))
	}
	return nil
}
