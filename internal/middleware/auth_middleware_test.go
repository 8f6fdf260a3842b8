package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studentms.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(m.JWTAuth(), m.RoleRequired(models.RoleAdmin))
	admin.GET("/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetInt64(ContextUserID),
			"username": c.GetString(ContextUsername),
		})
	})

	student := router.Group("/student")
	student.Use(m.JWTAuth(), m.RoleRequired(models.RoleStudent))
	student.GET("/profile", func(c *gin.Context) {
		id, ok := StudentIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"studentID": id, "present": ok})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, token string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "", "/admin/students")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, w.Body.String())
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "garbage", "/admin/students")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, w.Body.String())
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	studentID := int64(3)
	token, err := jwtService.GenerateToken(&models.User{
		ID:        2,
		Username:  "S1001",
		Role:      models.RoleStudent,
		StudentID: &studentID,
	})
	require.NoError(t, err)

	w := doRequest(router, token, "/admin/students")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"msg":"Access denied: You do not have the required role"}`, w.Body.String())
}

func TestJWTAuthAdmitsAdminWithClaims(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, err := jwtService.GenerateToken(&models.User{
		ID:       1,
		Username: "admin",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	w := doRequest(router, token, "/admin/students")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":1,"username":"admin"}`, w.Body.String())
}

func TestStudentIDClaimReachesHandler(t *testing.T) {
	router, jwtService := newTestRouter(t)

	studentID := int64(9)
	token, err := jwtService.GenerateToken(&models.User{
		ID:        4,
		Username:  "S2002",
		Role:      models.RoleStudent,
		StudentID: &studentID,
	})
	require.NoError(t, err)

	w := doRequest(router, token, "/student/profile")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"studentID":9,"present":true}`, w.Body.String())
}
