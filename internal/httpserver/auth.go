package httpserver

import (
	"net/http"

	authsvc "ai-store/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			badRequest(c, "username and password required")
			return
		}
		u, token, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     token,
			"expiresIn": auth.AccessTTLSeconds(),
			"user":      u,
		})
	}
}

func logoutHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			_ = auth.Logout(c.Request.Context(), token)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func updateProfileHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		u, err := auth.UpdateProfile(c.Request.Context(), currentUser(c).ID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": u})
	}
}
