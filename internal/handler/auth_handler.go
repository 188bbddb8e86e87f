package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

const sessionUserKey = "user_id"

// Register 处理用户注册请求
func (a *API) Register(c *gin.Context) {
	var input service.RegisterInput
	if !bindJSON(c, &input, "invalid registration payload") {
		return
	}

	user, err := a.users.Register(input)
	if err != nil {
		respondServiceError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user})
}

// Login 验证凭据并建立会话
func (a *API) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &input, "invalid login payload") {
		return
	}

	user, err := a.users.Authenticate(input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err, "authenticate user")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		respondServiceError(c, err, "save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondServiceError(c, err, "clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// CurrentUser 返回会话对应的当前用户
func (a *API) CurrentUser(c *gin.Context) {
	user, err := a.users.Get(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "load current user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AuthRequired 是一个简单的认证中间件：会话中没有用户时返回 401。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get(sessionUserKey).(string); !ok || userID == "" {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUserID 读取会话中的主体标识。仅在 AuthRequired 之后调用。
func currentUserID(c *gin.Context) string {
	session := sessions.Default(c)
	userID, _ := session.Get(sessionUserKey).(string)
	return userID
}
