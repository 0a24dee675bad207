package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/router"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	utils.InfoLogger.SetOutput(io.Discard)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	cfg    config.Config
}

// newTestApp wires the full router against a private in-memory database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(config.SQLiteDSN("file:"+uuid.NewString()+"?mode=memory&cache=shared")), &gorm.Config{
		TranslateError: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{
		CORSOrigin:   "http://127.0.0.1:5500",
		UploadDir:    t.TempDir(),
		RateLimitRPS: 1000,
	}
	return &testApp{t: t, db: db, router: router.SetupRouter(db, cfg), cfg: cfg}
}

// user creates an account directly and returns a bearer token for it.
func (a *testApp) user(email, role string) (models.User, string) {
	a.t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(a.t, err)
	u := models.User{Name: email, Email: email, Password: string(hashed), Role: role}
	require.NoError(a.t, a.db.Create(&u).Error)

	token, err := utils.GenerateToken(u.ID, u.Role)
	require.NoError(a.t, err)
	return u, token
}

func (a *testApp) item(creator models.User, slug, price string, pieces int) models.Item {
	a.t.Helper()
	it := models.Item{
		Title:       slug,
		Slug:        slug,
		Price:       decimal.RequireFromString(price),
		Pieces:      pieces,
		CreatedByID: creator.ID,
	}
	require.NoError(a.t, a.db.Create(&it).Error)
	return it
}

func (a *testApp) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path, token string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), token)
}

func (a *testApp) postJSON(path, token string, payload interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var body io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(a.t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, token)
}

func (a *testApp) patch(path, token string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodPatch, path, nil), token)
}

// postMultipart sends fields as a multipart form, with an optional file under "image".
func (a *testApp) postMultipart(path, token string, fields map[string]string, filename string, file []byte) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(a.t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		require.NoError(a.t, err)
		_, err = fw.Write(file)
		require.NoError(a.t, err)
	}
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.do(req, token)
}

type envelope struct {
	Status   bool              `json:"status"`
	Message  string            `json:"message"`
	Data     json.RawMessage   `json:"data"`
	Redirect string            `json:"redirect"`
	Errors   map[string]string `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

func itemFields(slug string) map[string]string {
	return map[string]string{
		"title":        strings.ReplaceAll(slug, "-", " "),
		"slug":         slug,
		"description":  "house special",
		"price":        "10.00",
		"pieces":       "8",
		"labels":       "Veg",
		"label_colour": "success",
	}
}
