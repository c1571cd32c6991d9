package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alcahub/models"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	byTokenHash map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }
func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

func (r *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	u, ok := r.byTokenHash[tokenHash]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func authRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"role":   c.GetString("userRole"),
		})
	})
	return r
}

func TestJWTAuthAcceptsStoredToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "ana@example.com", models.RoleResident, time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{byTokenHash: map[string]*models.User{
		utils.HashToken(token): {ID: "user-1", Role: models.RoleResident},
	}}
	router := authRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), models.RoleResident)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router := authRouter(&fakeUserRepo{byTokenHash: map[string]*models.User{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	router := authRouter(&fakeUserRepo{byTokenHash: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsRevokedToken(t *testing.T) {
	// A validly signed token whose hash no longer matches a stored session.
	token, err := utils.GenerateToken("user-1", "ana@example.com", models.RoleResident, time.Hour)
	require.NoError(t, err)
	router := authRouter(&fakeUserRepo{byTokenHash: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
