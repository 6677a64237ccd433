package api

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// decodePayload 解析 JSON 对象请求体
// 请求体为空、不是合法 JSON 或不是对象时返回空 map，由后续校验给出错误
func decodePayload(c *gin.Context) map[string]interface{} {
	payload := map[string]interface{}{}
	if c.Request.Body == nil {
		return payload
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil || payload == nil {
		return map[string]interface{}{}
	}
	return payload
}

// parseID 解析路径中的记录 id，非正整数视为路由不匹配
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c, "Not Found")
		return 0, false
	}
	return id, true
}
