package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"lawwork/models"
)

// maxBodyBytes 接口请求体上限
const maxBodyBytes = 1 << 20

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// RequireParam 校验必填参数
func RequireParam(w http.ResponseWriter, name, value string) bool {
	if value == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": name,
		})
		return false
	}
	return true
}

// ReadBody 读取请求体原文
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "读取请求体失败: "+err.Error(), map[string]interface{}{})
		return nil, false
	}
	return body, true
}

// DecodeJSONBody 解析JSON请求体
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, ok := ReadBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "解析请求参数失败: "+err.Error(), map[string]interface{}{})
		return false
	}
	return true
}
