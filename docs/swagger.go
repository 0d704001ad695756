package docs

// @title LawWork 匹配服务 API
// @version 1.0
// @description 律所评估问卷与候选人匹配服务：评估草稿、提交、结果与候选人详情
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
